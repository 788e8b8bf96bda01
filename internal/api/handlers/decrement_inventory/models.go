package decrement_inventory

// DecrementRequest HTTP request model
type DecrementRequest struct {
	Count int `json:"count"`
}

// MutationResponse единый формат ответа мутаций инвентаря
//
// Вызывающие различают терминальные отказы (success=false с заполненным
// error) и транспортные сбои: только последние имеет смысл повторять
type MutationResponse struct {
	Success        bool    `json:"success"`
	Error          *string `json:"error"`
	AvailableCount *int    `json:"availableCount"`
}

// OkResponse ответ успешной мутации
func OkResponse(availableCount int) *MutationResponse {
	return &MutationResponse{
		Success:        true,
		Error:          nil,
		AvailableCount: &availableCount,
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
