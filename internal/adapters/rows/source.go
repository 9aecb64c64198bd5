// Package rows reads topic rows from CSV, JSON, YAML, TOML and SQLite files.
package rows

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/zerr"
)

// Format names accepted by Decode.
const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatTOML   = "toml"
	FormatSQLite = "sqlite"
)

// Stdin is the path that makes Load read from standard input.
const Stdin = "-"

// Source implements ports.RowSource.
type Source struct {
	// Stdin is read when Load is given Stdin as the path.
	Stdin io.Reader
	// StdinFormat is the format assumed for standard input.
	StdinFormat string
}

// NewSource creates a Source reading CSV from os.Stdin for "-".
func NewSource() *Source {
	return &Source{Stdin: os.Stdin, StdinFormat: FormatCSV}
}

// Load reads every row from path, picking the decoder from the extension.
func (s *Source) Load(ctx context.Context, path string) ([]domain.Row, error) {
	if path == Stdin {
		return Decode(s.StdinFormat, s.Stdin)
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	if format == FormatSQLite {
		return loadSQLite(ctx, path)
	}

	// #nosec G304 -- the path is chosen by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRowsReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	rows, err := Decode(format, f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return rows, nil
}

// FormatFor maps a file extension to a format name.
func FormatFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", zerr.With(domain.ErrUnsupportedFormat, "extension", ext)
	}
}

// Decode reads rows in the given format from r. SQLite is file-only and is
// rejected here.
func Decode(format string, r io.Reader) ([]domain.Row, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatTOML:
		return decodeTOML(r)
	default:
		return nil, zerr.With(domain.ErrUnsupportedFormat, "format", format)
	}
}
