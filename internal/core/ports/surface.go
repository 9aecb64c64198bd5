package ports

import (
	"context"
	"io"

	"go.trai.ch/bubbles/internal/core/domain"
)

// Surface draws frames in one output format.
//
//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks
type Surface interface {
	// Format returns the output format name, such as "svg".
	Format() string

	// Render draws the frame to w. Discs are drawn in element order and
	// every label is drawn after all discs.
	Render(ctx context.Context, w io.Writer, frame domain.Frame) error
}
