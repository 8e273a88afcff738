package runtime

import (
	"fmt"
	"io"

	"calcit.dev/calcit/internal/config"
	"calcit.dev/calcit/internal/engine"
	"calcit.dev/calcit/internal/tui"
)

// Context provides access to the engine, output and configuration for commands
type Context struct {
	Engine engine.Engine
	Splog  *tui.Splog
	Config *config.Config
}

// NewSessionContext starts a new calculator session: a fresh engine, and a
// splog writing to out plus the configured rotating log file
func NewSessionContext(cfg *config.Config, out io.Writer) (*Context, error) {
	splog, err := tui.NewSplogWithOptions(tui.LogOptions{
		Writer:     out,
		Debug:      cfg.Env.DebugEnabled(),
		FilePath:   cfg.Env.LogFilePath(),
		MaxSize:    cfg.Env.LogMaxSize,
		MaxBackups: cfg.Env.LogMaxBackups,
		MaxAge:     cfg.Env.LogMaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &Context{
		Engine: engine.NewCalculator(),
		Splog:  splog,
		Config: cfg,
	}, nil
}

// Close releases the session's log file
func (c *Context) Close() error {
	return c.Splog.Close()
}
