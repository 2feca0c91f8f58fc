package entity

// Status is the outcome of a board position.
type Status uint8

const (
	InProgress Status = iota
	WonByX
	WonByO
	Draw
)

func (that Status) String() string {
	switch that {
	case InProgress:
		return "ongoing"
	case WonByX:
		return "won by X"
	case WonByO:
		return "won by O"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

func (that Status) IsTerminal() bool {
	return that != InProgress
}

// Winner - the winning mark, Empty for a draw or an unfinished game.
func (that Status) Winner() Mark {
	switch that {
	case WonByX:
		return X
	case WonByO:
		return O
	default:
		return Empty
	}
}
