// Package svg draws frames as standalone SVG documents.
package svg

import (
	"bufio"
	"context"
	"fmt"
	"html"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/ui/palette"
	"go.trai.ch/zerr"
)

const labelStyle = "text-anchor:middle;pointer-events:none;fill:%s;font-family:sans-serif;font-size:%.2fpx"

// Surface implements ports.Surface for SVG.
type Surface struct{}

// NewSurface creates an SVG surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Format returns "svg".
func (s *Surface) Format() string {
	return domain.FormatSVG
}

// Render writes the frame as an SVG document whose origin is the surface
// center.
func (s *Surface) Render(ctx context.Context, w io.Writer, frame domain.Frame) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}

	buf := bufio.NewWriter(w)
	canvas := svg.New(buf)

	canvas.Start(frame.Size, frame.Size)
	canvas.Translate(frame.Size/2, frame.Size/2)
	for _, e := range frame.Elements {
		canvas.Circle(e.X, e.Y, e.R, nodeAttr(e.ID), "fill:"+palette.Hex(e))
	}
	label := palette.Label.Hex()
	for _, e := range frame.Elements {
		if len(e.Lines) == 0 {
			continue
		}
		canvas.Textspan(e.X, e.Y, "", fmt.Sprintf(labelStyle, label, e.FontSize))
		for _, l := range e.Lines {
			canvas.Span(l.Text, fmt.Sprintf(`x="%.2f"`, e.X), fmt.Sprintf(`y="%.2f"`, e.Y+l.DY))
		}
		canvas.TextEnd()
	}
	canvas.Gend()
	canvas.End()

	if err := buf.Flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", domain.FormatSVG)
	}
	return nil
}

func nodeAttr(id string) string {
	return fmt.Sprintf(`data-node="%s"`, html.EscapeString(id))
}
