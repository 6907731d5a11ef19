package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const maxWaitDuration = 10 * time.Second

const (
	EventCellFilled = "cell_filled"
	EventWinner     = "winner"
	EventDraw       = "draw"
	EventReset      = "reset"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Recorder *Recorder
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Recorder: &Recorder{},
	}
}

// Event is one listener callback as seen by the Recorder.
type Event struct {
	Kind string
	Cell int
	Mark entity.Mark
	Line entity.Line
}

// Recorder is a listener that keeps every callback in order.
type Recorder struct {
	Events []Event
}

func (that *Recorder) OnCellFilled(index int, mark entity.Mark) {
	that.Events = append(that.Events, Event{Kind: EventCellFilled, Cell: index, Mark: mark})
}

func (that *Recorder) OnWinner(mark entity.Mark, line entity.Line) {
	that.Events = append(that.Events, Event{Kind: EventWinner, Mark: mark, Line: line})
}

func (that *Recorder) OnDraw() {
	that.Events = append(that.Events, Event{Kind: EventDraw})
}

func (that *Recorder) OnReset() {
	that.Events = append(that.Events, Event{Kind: EventReset})
}

// Count returns how many events of kind were recorded.
func (that *Recorder) Count(kind string) int {
	n := 0
	for _, event := range that.Events {
		if event.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event, or the zero Event.
func (that *Recorder) Last() Event {
	if len(that.Events) == 0 {
		return Event{}
	}
	return that.Events[len(that.Events)-1]
}

func (that *Recorder) Clear() {
	that.Events = nil
}
