// Package png rasterises frames with gg and the Go fonts.
package png

import (
	"context"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/ui/palette"
	"go.trai.ch/zerr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Surface implements ports.Surface for PNG.
type Surface struct {
	// TTF is the font used for labels.
	TTF []byte
}

// NewSurface creates a PNG surface drawing labels in Go Regular.
func NewSurface() *Surface {
	return &Surface{TTF: goregular.TTF}
}

// Format returns "png".
func (s *Surface) Format() string {
	return domain.FormatPNG
}

// Render rasterises the frame on a white square of frame.Size pixels.
func (s *Surface) Render(ctx context.Context, w io.Writer, frame domain.Frame) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	px := int(math.Ceil(frame.Size))
	if px < 1 {
		return zerr.With(domain.ErrRenderFailed, "size", frame.Size)
	}

	dc := gg.NewContext(px, px)
	dc.SetColor(palette.Blank)
	dc.Clear()
	dc.Translate(frame.Size/2, frame.Size/2)

	for _, e := range frame.Elements {
		dc.DrawCircle(e.X, e.Y, e.R)
		dc.SetColor(palette.Fill(e))
		dc.Fill()
	}

	faces := map[float64]font.Face{}
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()
	dc.SetColor(palette.Label)
	for _, e := range frame.Elements {
		if len(e.Lines) == 0 || e.FontSize <= 0 {
			continue
		}
		face, ok := faces[e.FontSize]
		if !ok {
			var err error
			face, err = gg.LoadFontFaceFromBytes(s.TTF, e.FontSize)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "font_size", e.FontSize)
			}
			faces[e.FontSize] = face
		}
		dc.SetFontFace(face)
		for _, l := range e.Lines {
			dc.DrawStringAnchored(l.Text, e.X, e.Y+l.DY, 0.5, 0)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", domain.FormatPNG)
	}
	return nil
}
