package entity

// Outcome is the state of a round.
type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Board is a row-major snapshot of the cells; zero Mark means empty.
type Board [BoardSize]Mark

// NewBoard replays history onto an empty board.
func NewBoard(history []Move) Board {
	var board Board
	for _, move := range history {
		if ValidCell(move.Cell) {
			board[move.Cell] = move.Mark
		}
	}
	return board
}

func (that Board) IsEmpty(index int) bool {
	return !that[index].IsValid()
}

// Owned returns the set of cells occupied by mark.
func (that Board) Owned(mark Mark) map[int]struct{} {
	cells := make(map[int]struct{})
	for i, m := range that {
		if m == mark {
			cells[i] = struct{}{}
		}
	}
	return cells
}
