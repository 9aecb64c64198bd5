package ports

import (
	"context"

	"go.trai.ch/bubbles/internal/core/domain"
)

// AssignmentSink receives the assignment listing after every move.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type AssignmentSink interface {
	Publish(ctx context.Context, assignments []domain.Assignment) error
}
