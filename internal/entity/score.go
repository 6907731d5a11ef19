package entity

// Score tallies finished rounds within one session.
type Score struct {
	XWins int
	OWins int
	Draws int
}

func (that *Score) RecordWin(mark Mark) {
	switch mark {
	case MarkX:
		that.XWins++
	case MarkO:
		that.OWins++
	}
}

func (that *Score) RecordDraw() {
	that.Draws++
}

func (that Score) Rounds() int {
	return that.XWins + that.OWins + that.Draws
}
