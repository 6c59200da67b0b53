package inbound

import (
	"context"

	"github.com/shandysiswandi/studytrack/internal/notification/usecase"
)

type uc interface {
	ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error
}
