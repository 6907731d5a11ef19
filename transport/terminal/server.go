package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

const helpText = `commands:
  1-9   place your mark (cells are numbered left to right, top to bottom)
  r     play again
  h     show this help
  q     quit`

type gameSession interface {
	Select(index int) error
	Reset()
}

// Server feeds player input to a game session and redraws the view.
type Server struct {
	view    *View
	session gameSession
}

func NewServer(view *View, session gameSession) *Server {
	return &Server{
		view:    view,
		session: session,
	}
}

// Start reads commands from in until quit, EOF or ctx is canceled.
// All session calls happen on the calling goroutine.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	log := that.view.logger.With("method", "Start")

	lines := make(chan string)
	readErr := make(chan error, 1)

	// readErr is always written before lines is closed.
	go func() {
		var err error
		defer func() {
			readErr <- err
			close(lines)
		}()

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		err = scanner.Err()
	}()

	that.view.Render()

	for {
		select {
		case <-ctx.Done():
			log.Info("input loop stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				if ctx.Err() != nil {
					log.Info("input loop stopped", "reason", ctx.Err())
					return nil
				}

				log.Info("input closed")
				return nil
			}

			if quit := that.handleLine(line); quit {
				log.Info("player quit")
				return nil
			}
		}
	}
}

func (that *Server) handleLine(line string) bool {
	command := strings.ToLower(strings.TrimSpace(line))

	switch command {
	case "q", "quit", "exit":
		return true
	case "r", "reset":
		that.session.Reset()
		that.view.Render()
	case "h", "help", "?":
		that.view.Printf("%s", helpText)
	case "":
		that.view.Render()
	default:
		that.handleSelect(command)
	}

	return false
}

func (that *Server) handleSelect(command string) {
	number, err := strconv.Atoi(command)
	if err != nil {
		that.view.Printf("unknown command %q, type h for help", command)
		return
	}

	if !that.view.Enabled() {
		that.view.Printf("the round is over, type r to play again")
		return
	}

	if err = that.session.Select(number - 1); err != nil {
		that.view.logger.Debug("selection failed", "cell", number, "error", err)

		switch {
		case errors.Is(err, apperror.ErrInvalidCell):
			that.view.Printf("cell %d does not exist, choose 1-9", number)
		case errors.Is(err, apperror.ErrCellOccupied):
			that.view.Printf("cell %d is already taken", number)
		default:
			that.view.Printf("%v", err)
		}

		return
	}

	that.view.Render()
}
