package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type presenter interface {
	tictactoe.Listener
	PresentScore(score entity.Score)
}

// GameSession is what the view talks to. It owns the engine, sits between
// the engine and the presenter and keeps the score across rounds.
type GameSession struct {
	logger    *slog.Logger
	presenter presenter
	engine    *tictactoe.Engine

	roundID string
	score   entity.Score
}

func NewGameSession(logger *slog.Logger, presenter presenter) *GameSession {
	session := &GameSession{
		logger:    logger.With("component", "game_session"),
		presenter: presenter,
		roundID:   uuid.NewString(),
	}
	session.engine = tictactoe.NewEngine(session)

	return session
}

// Select plays the current mark at cell index.
func (that *GameSession) Select(index int) error {
	if err := that.engine.SelectCell(index); err != nil {
		that.logger.Debug("selection rejected", "round_id", that.roundID, "cell", index, "error", err)
		return fmt.Errorf("failed to select cell: %w", err)
	}

	return nil
}

// Reset starts a new round.
func (that *GameSession) Reset() {
	that.engine.Reset()
}

func (that *GameSession) NextMark() entity.Mark {
	return that.engine.NextMark()
}

func (that *GameSession) Outcome() entity.Outcome {
	return that.engine.Outcome()
}

func (that *GameSession) Score() entity.Score {
	return that.score
}

func (that *GameSession) RoundID() string {
	return that.roundID
}

func (that *GameSession) OnCellFilled(index int, mark entity.Mark) {
	that.logger.Debug("cell filled", "round_id", that.roundID, "cell", index, "mark", mark.String())

	that.presenter.OnCellFilled(index, mark)
}

func (that *GameSession) OnWinner(mark entity.Mark, line entity.Line) {
	that.score.RecordWin(mark)
	that.logger.Info("round finished", "round_id", that.roundID, "outcome", that.engine.Outcome().String(), "mark", mark.String(), "line", line[:], "moves", len(that.engine.History()))

	that.presenter.OnWinner(mark, line)
	that.presenter.PresentScore(that.score)
}

func (that *GameSession) OnDraw() {
	that.score.RecordDraw()
	that.logger.Info("round finished", "round_id", that.roundID, "outcome", that.engine.Outcome().String())

	that.presenter.OnDraw()
	that.presenter.PresentScore(that.score)
}

func (that *GameSession) OnReset() {
	previous := that.roundID
	that.roundID = uuid.NewString()
	that.logger.Info("round reset", "previous_round_id", previous, "round_id", that.roundID)

	that.presenter.OnReset()
}
