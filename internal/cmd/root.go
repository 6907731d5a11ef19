package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-local/internal"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play Tic-Tac-Toe in the terminal",
		Long: heredoc.Doc(`
			Two players share one terminal and take turns, X first.
			Type a cell number 1-9 to place a mark, r to play again, q to quit.

			Settings are read from config.yml in the working directory
			and can be overridden with TICTACTOE_* environment variables.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: run,
	}

	root.Flags().StringP("config", "c", "config.yml", "path to the config file")
	root.Flags().String("log-level", "", "log level: debug, info, warn, error")
	root.Flags().Bool("no-color", false, "disable colored output")

	return root
}

func run(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	conf := config.MustLoad(path)

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	if cmd.Flags().Changed("no-color") {
		conf.NoColor, _ = cmd.Flags().GetBool("no-color")
	}

	logger, closeLog, err := initLogger(conf)
	if err != nil {
		return err
	}
	defer closeLog()

	if err = app.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize logger. Logs never go to stdout, the board is drawn there.
func initLogger(conf *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		w = file
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), closeLog, nil
}
