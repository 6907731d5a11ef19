package terminal

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const (
	highlightColor = "2"
	rowSeparator   = "---+---+---"
)

// Glyphs are the symbols drawn for each mark.
type Glyphs struct {
	X string
	O string
}

func (that Glyphs) of(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return that.X
	case entity.MarkO:
		return that.O
	default:
		return ""
	}
}

// View renders the board to a terminal and implements usecase.Display.
type View struct {
	logger *slog.Logger
	out    *termenv.Output
	glyphs Glyphs

	board     entity.Board
	highlight map[int]struct{}
	title     string
	message   string
	score     string
	enabled   bool
}

var _ usecase.Display = (*View)(nil)

func New(logger *slog.Logger, w io.Writer, glyphs Glyphs, color bool) *View {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}

	return &View{
		logger:    logger.With("component", "terminal"),
		out:       termenv.NewOutput(w, termenv.WithProfile(profile)),
		glyphs:    glyphs,
		highlight: make(map[int]struct{}),
		title:     usecase.TurnTitle(entity.MarkX),
		enabled:   true,
	}
}

func (that *View) UpdateCell(index int, mark entity.Mark, title string) {
	that.board[index] = mark
	that.title = title
}

func (that *View) DisplayWinner(line entity.Line, message string) {
	for _, index := range line {
		that.highlight[index] = struct{}{}
	}

	that.title = ""
	that.message = message
	that.enabled = false
}

func (that *View) DisplayDraw(message string) {
	that.title = ""
	that.message = message
	that.enabled = false
}

func (that *View) DisplayReset(title string) {
	that.board = entity.Board{}
	that.highlight = make(map[int]struct{})
	that.title = title
	that.message = ""
	that.enabled = true
}

func (that *View) DisplayScore(summary string) {
	that.score = summary
}

// Enabled reports whether the board accepts selections.
func (that *View) Enabled() bool {
	return that.enabled
}

// Render writes the whole screen.
func (that *View) Render() {
	var sb strings.Builder

	sb.WriteString(that.out.String(usecase.WelcomeTitle()).Bold().String())
	sb.WriteString("\n")

	if that.title != "" {
		sb.WriteString(that.title)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, that.cell(row*3+col))
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")

		if row < 2 {
			sb.WriteString(rowSeparator)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")

	if that.message != "" {
		sb.WriteString(that.out.String(that.message).Bold().String())
		sb.WriteString("\n")
		sb.WriteString("Play again! (r)\n")
	}

	if that.score != "" {
		sb.WriteString(that.score)
		sb.WriteString("\n")
	}

	that.write(sb.String())
}

// Printf writes a status line below the board.
func (that *View) Printf(format string, args ...any) {
	that.write(fmt.Sprintf(format, args...) + "\n")
}

func (that *View) cell(index int) string {
	if that.board.IsEmpty(index) {
		return fmt.Sprintf(" %d ", index+1)
	}

	glyph := that.glyphs.of(that.board[index])
	if _, ok := that.highlight[index]; !ok {
		return " " + glyph + " "
	}

	return that.out.String("[" + glyph + "]").Bold().Foreground(that.out.Color(highlightColor)).String()
}

func (that *View) write(s string) {
	if _, err := io.WriteString(that.out, s); err != nil {
		that.logger.Error("failed to write to terminal", "error", err)
	}
}
