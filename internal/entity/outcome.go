package entity

const (
	StatusInProgress = "in-progress"
	StatusWin        = "win"
	StatusDraw       = "draw"

	LabelDraw = "Draw!"
)

// Outcome is the terminal status of a board. It is derived from the cells on every query.
type Outcome struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// Label - returns the winner mark, "Draw!" or an empty string while the game goes on.
func (that Outcome) Label() string {
	switch that.Status {
	case StatusWin:
		return string(that.Winner)
	case StatusDraw:
		return LabelDraw
	default:
		return ""
	}
}

// Message - returns the notice printed when the game ends.
func (that Outcome) Message() string {
	switch that.Status {
	case StatusWin:
		return string(that.Winner) + " wins!"
	case StatusDraw:
		return LabelDraw
	default:
		return ""
	}
}
