package detect_conflicts

import (
	"context"

	detectConflicts "github.com/5n10sndkts-eng/Pulau-sub002/internal/usecase/detect_conflicts"
)

type DetectConflictsUseCase interface {
	Execute(ctx context.Context, req *detectConflicts.Request) (*detectConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
