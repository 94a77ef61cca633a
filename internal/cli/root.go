package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tada/internal/config"
	"tada/internal/todo"
	"tada/internal/ui"
)

type App struct {
	ConfigPath string
	LogFile    string
	LogLevel   string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "A to-do list for the current terminal session",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the to-do list
  tada

  # Write debug logs while the TUI runs
  tada --log-file /tmp/tada.log --log-level debug
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", config.ResolveConfigPath(), "Path to config.toml (created with defaults if missing)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write logs to this file (overrides log_file)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides log_level)")

	cmd.AddCommand(newConfigCmd(app))
	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func (a *App) loadConfig() (config.Config, error) {
	cfg, err := config.LoadOrCreate(a.ConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if a.LogFile != "" {
		cfg.LogFile = a.LogFile
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	return cfg, nil
}

func runTUI(app *App) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("config loaded", "path", app.ConfigPath)
	return ui.Run(todo.NewStore(), cfg, logger)
}
