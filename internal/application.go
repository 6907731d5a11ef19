package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/transport/terminal"
)

// RunApp - runs the game in the terminal until the player quits, input ends or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	view := terminal.New(logger, out, terminal.Glyphs{X: conf.Glyphs.X, O: conf.Glyphs.O}, !conf.NoColor)
	session := usecase.NewGameSession(logger, usecase.NewPresenter(view))
	server := terminal.NewServer(view, session)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}

		return nil
	})

	group.Go(func() error {
		defer cancel()

		log.Info("Starting game", "round_id", session.RoundID())
		if err := server.Start(ctx, in); err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	score := session.Score()
	log.Info("Game closed", "rounds", score.Rounds(), "x_wins", score.XWins, "o_wins", score.OWins, "draws", score.Draws)

	return nil
}
