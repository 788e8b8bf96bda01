package resolve_conflict

import (
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	resolveConflict "github.com/5n10sndkts-eng/Pulau-sub002/internal/usecase/resolve_conflict"
)

// ResolveConflictRequest HTTP request model
type ResolveConflictRequest struct {
	Date    string `json:"date"` // "2026-09-15"
	ItemID1 int64  `json:"itemId1"`
	ItemID2 int64  `json:"itemId2"`
}

// SuggestionResponse вариант разрешения для одной позиции
// proposedStartTime null означает, что свободного окна в дне нет
// и для позиции остается только удаление
type SuggestionResponse struct {
	ItemID            int64   `json:"itemId"`
	ProposedStartTime *string `json:"proposedStartTime"`
}

// ResolveConflictResponse HTTP response model
type ResolveConflictResponse struct {
	TripID      int64                `json:"tripId"`
	Date        string               `json:"date"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ResolveConflictRequest) ToUseCaseRequest(tripID int64) (*resolveConflict.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &resolveConflict.Request{
		TripID:  tripID,
		Date:    date,
		ItemID1: r.ItemID1,
		ItemID2: r.ItemID2,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveConflict.Response) *ResolveConflictResponse {
	suggestions := make([]SuggestionResponse, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		var proposed *string
		if s.ProposedStartTime != nil {
			value := s.ProposedStartTime.String()
			proposed = &value
		}
		suggestions = append(suggestions, SuggestionResponse{
			ItemID:            s.ItemID,
			ProposedStartTime: proposed,
		})
	}

	return &ResolveConflictResponse{
		TripID:      resp.TripID,
		Date:        resp.Date.Format(domain.DateFormat),
		Suggestions: suggestions,
	}
}
