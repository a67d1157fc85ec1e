package entity

// Mark is the symbol a player puts on the board.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	Empty Mark = ""
)

// IsValid - reports whether the mark may be placed on the board.
func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

func (that Mark) String() string {
	if that == Empty {
		return "_"
	}
	return string(that)
}
