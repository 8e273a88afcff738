package actions

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"calcit.dev/calcit/internal/config"
	"calcit.dev/calcit/internal/runtime"
)

// newTestContext creates a session whose output, log file and preferences
// all live in a temporary directory
func newTestContext(t *testing.T, vars map[string]string) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()

	all := map[string]string{
		"CALCIT_CONFIG":   filepath.Join(dir, "config.json"),
		"CALCIT_LOG_FILE": filepath.Join(dir, "logs", "calcit.log"),
	}
	for k, v := range vars {
		all[k] = v
	}

	e, err := config.LoadEnvFrom(all)
	require.NoError(t, err)
	user, err := config.LoadUserConfig(e.UserConfigPath())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	ctx, err := runtime.NewSessionContext(&config.Config{Env: e, User: user}, out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })

	return ctx, out
}
