package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Listener receives the engine's state changes. Every callback runs
// synchronously inside SelectCell or Reset.
type Listener interface {
	OnCellFilled(index int, mark entity.Mark)
	OnWinner(mark entity.Mark, line entity.Line)
	OnDraw()
	OnReset()
}

// Engine owns the turn state and move history of one round.
// It is not safe for concurrent use.
type Engine struct {
	listener Listener

	nextMark entity.Mark
	history  []entity.Move
	outcome  entity.Outcome
}

func NewEngine(listener Listener) *Engine {
	return &Engine{
		listener: listener,
		nextMark: entity.MarkX,
		history:  make([]entity.Move, 0, entity.BoardSize),
		outcome:  entity.Ongoing,
	}
}

// SelectCell places the current mark at index and evaluates the round.
func (that *Engine) SelectCell(index int) error {
	if err := that.validateSelection(index); err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}

	mark := that.nextMark
	that.history = append(that.history, entity.Move{Cell: index, Mark: mark})

	that.listener.OnCellFilled(index, mark)
	that.nextMark = mark.Other()

	that.evaluate()

	return nil
}

// Reset clears the round and gives the first move back to X.
func (that *Engine) Reset() {
	that.history = that.history[:0]
	that.nextMark = entity.MarkX
	that.outcome = entity.Ongoing

	that.listener.OnReset()
}

func (that *Engine) NextMark() entity.Mark {
	return that.nextMark
}

func (that *Engine) Outcome() entity.Outcome {
	return that.outcome
}

// History returns a copy of the accepted moves in play order.
func (that *Engine) History() []entity.Move {
	history := make([]entity.Move, len(that.history))
	copy(history, that.history)
	return history
}

func (that *Engine) validateSelection(index int) error {
	if !entity.ValidCell(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if that.outcome != entity.Ongoing {
		return apperror.ErrGameFinished
	}

	for _, move := range that.history {
		if move.Cell == index {
			return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
		}
	}

	return nil
}

// evaluate reports the first completed line, or a draw on a full board.
func (that *Engine) evaluate() {
	board := entity.NewBoard(that.history)
	xCells := board.Owned(entity.MarkX)
	oCells := board.Owned(entity.MarkO)

	for _, line := range entity.WinningLines() {
		if containsLine(xCells, line) {
			that.outcome = entity.Won
			that.listener.OnWinner(entity.MarkX, line)
			return
		}

		if containsLine(oCells, line) {
			that.outcome = entity.Won
			that.listener.OnWinner(entity.MarkO, line)
			return
		}
	}

	if len(that.history) == entity.BoardSize {
		that.outcome = entity.Draw
		that.listener.OnDraw()
	}
}

func containsLine(cells map[int]struct{}, line entity.Line) bool {
	for _, index := range line {
		if _, ok := cells[index]; !ok {
			return false
		}
	}
	return true
}
