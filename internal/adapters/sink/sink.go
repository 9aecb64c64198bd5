// Package sink publishes assignment listings after moves.
package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stdout is the target that publishes to standard output.
const Stdout = "-"

// Opener picks the sink for a configured target.
type Opener struct {
	Stdout io.Writer
}

// NewOpener creates an Opener writing "-" targets to os.Stdout.
func NewOpener() *Opener {
	return &Opener{Stdout: os.Stdout}
}

// Open returns the sink for target. An empty target discards listings,
// "-" writes one line per move to standard output and anything else is a
// file rewritten on every move.
func (o *Opener) Open(target string) ports.AssignmentSink {
	switch target {
	case "":
		return Discard{}
	case Stdout:
		return &Writer{W: o.Stdout}
	default:
		return &File{Path: target}
	}
}

// Discard drops every listing.
type Discard struct{}

// Publish does nothing.
func (Discard) Publish(context.Context, []domain.Assignment) error {
	return nil
}

// Writer appends each listing as one line.
type Writer struct {
	W io.Writer
}

// Publish writes the flattened listing followed by a newline.
func (s *Writer) Publish(ctx context.Context, assignments []domain.Assignment) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrPublishFailed.Error())
	}
	if _, err := fmt.Fprintln(s.W, domain.FormatAssignments(assignments)); err != nil {
		return zerr.Wrap(err, domain.ErrPublishFailed.Error())
	}
	return nil
}

// File keeps the latest listing in a file.
type File struct {
	Path string
}

// Publish replaces the file content with the flattened listing.
func (s *File) Publish(ctx context.Context, assignments []domain.Assignment) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrPublishFailed.Error())
	}

	err := ReplaceFile(s.Path, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, domain.FormatAssignments(assignments))
		return err
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", s.Path)
	}
	return nil
}

// ReplaceFile fills a temporary file next to path through write and renames
// it into place, so readers never see a partial file. Errors returned by
// write are passed through unchanged.
func ReplaceFile(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.Wrap(err, "failed to replace file")
	}
	return nil
}
