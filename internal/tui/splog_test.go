package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Run("console output", func(t *testing.T) {
		out := &bytes.Buffer{}
		splog, err := NewSplogWithOptions(LogOptions{Writer: out})
		require.NoError(t, err)

		splog.Info("pressed %d buttons", 3)
		splog.Warn("careful")
		splog.Error("broken")
		splog.Debug("hidden")
		splog.Page("7")
		splog.Newline()

		require.Equal(t, "pressed 3 buttons\n⚠️  careful\n❌ broken\n7\n", out.String())
	})

	t.Run("quiet keeps pages only", func(t *testing.T) {
		out := &bytes.Buffer{}
		splog, err := NewSplogWithOptions(LogOptions{Writer: out})
		require.NoError(t, err)

		splog.SetQuiet(true)
		require.True(t, splog.IsQuiet())
		splog.Info("suppressed")
		splog.Page("shown")
		splog.SetQuiet(false)
		splog.Info("back")

		require.Equal(t, "shownback\n", out.String())
	})

	t.Run("debug goes to the file log", func(t *testing.T) {
		out := &bytes.Buffer{}
		path := filepath.Join(t.TempDir(), "logs", "calcit.log")
		splog, err := NewSplogWithOptions(LogOptions{Writer: out, FilePath: path, MaxSize: 1})
		require.NoError(t, err)

		splog.SetQuiet(true)
		splog.Debug("state changed")
		splog.Info("done")
		require.NoError(t, splog.Close())

		require.Empty(t, out.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `level=DEBUG msg="state changed"`)
		require.Contains(t, string(data), "level=INFO msg=done")
	})

	t.Run("debug mode echoes debug lines", func(t *testing.T) {
		out := &bytes.Buffer{}
		splog, err := NewSplogWithOptions(LogOptions{Writer: out, Debug: true})
		require.NoError(t, err)

		splog.Debug("visible")
		require.Equal(t, "visible\n", out.String())
		require.NoError(t, splog.Close())
	})
}
