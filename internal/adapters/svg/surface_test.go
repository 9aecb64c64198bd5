package svg_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bubbles/internal/adapters/svg"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/ui/palette"
)

func twoDiscs() domain.Frame {
	return domain.Frame{
		Size: 200,
		Elements: []domain.Element{
			{ID: domain.RootID, R: 85},
			{
				ID:       "a&b",
				Depth:    1,
				Leaf:     true,
				Selected: true,
				X:        -20,
				Y:        10,
				R:        30,
				FontSize: 8.5,
				Lines: []domain.Line{
					{Text: "first", DY: -2.55},
					{Text: "group", DY: 7.65},
				},
			},
		},
	}
}

func TestSurface_Render_Golden(t *testing.T) {
	var buf bytes.Buffer

	err := svg.NewSurface().Render(t.Context(), &buf, twoDiscs())

	require.NoError(t, err)
	goldie.New(t).Assert(t, "two_discs", buf.Bytes())
}

func TestSurface_Render_LabelsAfterDiscs(t *testing.T) {
	group := domain.Element{ID: "g", Depth: 1, Members: 2, R: 40, FontSize: 11, Lines: []domain.Line{{Text: "g"}}}
	leaf := domain.Element{ID: "l", Depth: 2, Leaf: true, R: 10, FontSize: 11, Lines: []domain.Line{{Text: "l"}}}
	var buf bytes.Buffer

	err := svg.NewSurface().Render(t.Context(), &buf, domain.Frame{Size: 100, Elements: []domain.Element{group, leaf}})

	require.NoError(t, err)
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "<circle"))
	assert.Equal(t, 2, strings.Count(out, "<text"))
	assert.Less(t, strings.LastIndex(out, "<circle"), strings.Index(out, "<text"))
	assert.Contains(t, out, "fill:"+palette.Hex(group))
}

func TestSurface_Render_EmptyFrame(t *testing.T) {
	var buf bytes.Buffer

	err := svg.NewSurface().Render(t.Context(), &buf, domain.Frame{Size: 100})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
	assert.NotContains(t, buf.String(), "<circle")
	assert.True(t, strings.HasSuffix(buf.String(), "</svg>\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSurface_Render_WriteError(t *testing.T) {
	err := svg.NewSurface().Render(t.Context(), failingWriter{}, twoDiscs())

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to render frame")
	assert.ErrorContains(t, err, "disk full")
}

func TestSurface_Render_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	var buf bytes.Buffer

	err := svg.NewSurface().Render(ctx, &buf, twoDiscs())

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestSurface_Format(t *testing.T) {
	assert.Equal(t, "svg", svg.NewSurface().Format())
}
