package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	drawMessage = "IT'S A DRAW!"
	welcome     = "Welcome to TicTacToe"
)

// Display is the view driven by the Presenter.
type Display interface {
	UpdateCell(index int, mark entity.Mark, title string)
	DisplayWinner(line entity.Line, message string)
	DisplayDraw(message string)
	DisplayReset(title string)
	DisplayScore(summary string)
}

// Presenter turns engine callbacks into view updates and labels.
type Presenter struct {
	view Display
}

func NewPresenter(view Display) *Presenter {
	return &Presenter{view: view}
}

// TurnTitle is the status line shown while mark is to move.
func TurnTitle(mark entity.Mark) string {
	return "Your turn " + mark.String()
}

// WelcomeTitle is the heading shown above the board.
func WelcomeTitle() string {
	return welcome
}

func (that *Presenter) OnCellFilled(index int, mark entity.Mark) {
	that.view.UpdateCell(index, mark, TurnTitle(mark.Other()))
}

func (that *Presenter) OnWinner(mark entity.Mark, line entity.Line) {
	that.view.DisplayWinner(line, mark.String()+" wins!")
}

func (that *Presenter) OnDraw() {
	that.view.DisplayDraw(drawMessage)
}

func (that *Presenter) OnReset() {
	that.view.DisplayReset(TurnTitle(entity.MarkX))
}

func (that *Presenter) PresentScore(score entity.Score) {
	that.view.DisplayScore(fmt.Sprintf("X %d - O %d - draws %d", score.XWins, score.OWins, score.Draws))
}
