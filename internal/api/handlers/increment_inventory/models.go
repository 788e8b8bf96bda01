package increment_inventory

// IncrementRequest HTTP request model
type IncrementRequest struct {
	Count int `json:"count"`
}

// MutationResponse единый формат ответа мутаций инвентаря,
// расширенный фактически примененной дельтой
type MutationResponse struct {
	Success        bool    `json:"success"`
	Error          *string `json:"error"`
	AvailableCount *int    `json:"availableCount"`
	AppliedDelta   *int    `json:"appliedDelta,omitempty"`
}

// OkResponse ответ успешной мутации
// appliedDelta меньше запрошенного count, когда сработал кап по total_capacity
func OkResponse(availableCount, appliedDelta int) *MutationResponse {
	return &MutationResponse{
		Success:        true,
		Error:          nil,
		AvailableCount: &availableCount,
		AppliedDelta:   &appliedDelta,
	}
}

// FailResponse ответ терминального отказа
func FailResponse(message string) *MutationResponse {
	return &MutationResponse{
		Success:        false,
		Error:          &message,
		AvailableCount: nil,
	}
}
