package ports

import (
	"context"

	"go.trai.ch/bubbles/internal/core/domain"
)

// RowSource defines the interface for reading input rows.
//
//go:generate mockgen -source=rows.go -destination=mocks/mock_rows.go -package=mocks
type RowSource interface {
	// Load reads every row from path. The format is picked from the file
	// extension.
	Load(ctx context.Context, path string) ([]domain.Row, error)
}
