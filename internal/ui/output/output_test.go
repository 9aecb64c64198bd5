package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bubbles/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv(output.NoColorEnv, "1")

	assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}))
	assert.Equal(t, termenv.Ascii, output.ColorProfile(os.Stderr))
}

func TestColorProfile_RegularFile(t *testing.T) {
	t.Setenv(output.NoColorEnv, "")
	f, err := os.Create(filepath.Join(t.TempDir(), "log.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, termenv.Ascii, output.ColorProfile(f), "files are not terminals")
}

func TestColorProfile_Buffer(t *testing.T) {
	t.Setenv(output.NoColorEnv, "")
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("COLORTERM", "")

	assert.Equal(t, termenv.EnvColorProfile(), output.ColorProfile(&bytes.Buffer{}))
}

func TestNew(t *testing.T) {
	t.Setenv(output.NoColorEnv, "1")
	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString(out.String("plain").Bold().String())

	assert.Equal(t, "plain", buf.String())
}

func TestNew_Nil(t *testing.T) {
	// Defaults to stderr.
	assert.NotNil(t, output.New(nil))
}
