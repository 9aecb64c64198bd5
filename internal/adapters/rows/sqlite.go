package rows

import (
	"context"
	"database/sql"
	"os"

	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// TopicsTable is the table read from SQLite files.
const TopicsTable = "topics"

const topicsQuery = `SELECT CAST(nodeID AS TEXT), CAST(parentID AS TEXT), title, COALESCE(weight, 0)
FROM ` + TopicsTable + ` ORDER BY rowid`

// loadSQLite reads the topics table in insertion order.
func loadSQLite(ctx context.Context, path string) ([]domain.Row, error) {
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, zerr.With(zerr.Wrap(statErr, domain.ErrRowsReadFailed.Error()), "path", path)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRowsReadFailed.Error()), "path", path)
	}
	defer func() { _ = db.Close() }()

	res, err := db.QueryContext(ctx, topicsQuery)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRowsReadFailed.Error()), "path", path)
	}
	defer func() { _ = res.Close() }()

	out := []domain.Row{}
	for res.Next() {
		var r domain.Row
		if err := res.Scan(&r.NodeID, &r.ParentID, &r.Title, &r.Weight); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRowsParseFailed.Error()), "path", path)
		}
		out = append(out, r)
	}
	if err := res.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRowsReadFailed.Error()), "path", path)
	}
	return out, nil
}
