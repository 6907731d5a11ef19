package entity

// BoardSize is the number of cells on the fixed 3x3 board.
const BoardSize = 9

// Mark is one of the two players' symbols.
type Mark int

const (
	MarkX Mark = iota + 1
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Other returns the mark of the opponent.
func (that Mark) Other() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

// Move records one placed mark. Moves are never removed except by a reset.
type Move struct {
	Cell int
	Mark Mark
}

// Line is a triple of cell indices that ends the round when owned by one mark.
type Line [3]int

// winCombos is ordered rows, columns, then main and anti diagonals.
var winCombos = [...]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinningLines returns the eight winning lines in evaluation order.
func WinningLines() []Line {
	lines := make([]Line, len(winCombos))
	copy(lines, winCombos[:])
	return lines
}

// ValidCell reports whether index addresses a board cell.
func ValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}
