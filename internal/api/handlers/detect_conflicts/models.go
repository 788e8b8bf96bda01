package detect_conflicts

import (
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	detectConflicts "github.com/5n10sndkts-eng/Pulau-sub002/internal/usecase/detect_conflicts"
)

// ConflictResponse одна пара пересекающихся позиций
type ConflictResponse struct {
	ItemID1        int64 `json:"itemId1"`
	ItemID2        int64 `json:"itemId2"`
	OverlapMinutes int   `json:"overlapMinutes"`
}

// ConflictsResponse HTTP response model
type ConflictsResponse struct {
	TripID    int64              `json:"tripId"`
	Date      string             `json:"date"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *detectConflicts.Response) *ConflictsResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			ItemID1:        c.ItemID1,
			ItemID2:        c.ItemID2,
			OverlapMinutes: c.OverlapMinutes,
		})
	}

	return &ConflictsResponse{
		TripID:    resp.TripID,
		Date:      resp.Date.Format(domain.DateFormat),
		Conflicts: conflicts,
	}
}
