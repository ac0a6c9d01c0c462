package eograph

import "strings"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Turns lists the three turn amounts in the order a generator produces them.
var Turns = [3]Turn{CW, Double, CCW}

// Quarters returns how many quarter turns the turn is made of.
// CW is one, Double two, CCW three.
func (t Turn) Quarters() int {
	switch t {
	case CW:
		return 1
	case Double:
		return 2
	case CCW:
		return 3
	default:
		return 0
	}
}

// Move represents a single face turn.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// parseFace maps a face letter to a Face.
func parseFace(c byte) (Face, bool) {
	switch c {
	case 'U', 'u':
		return FaceU, true
	case 'D', 'd':
		return FaceD, true
	case 'R', 'r':
		return FaceR, true
	case 'L', 'l':
		return FaceL, true
	case 'F', 'f':
		return FaceF, true
	case 'B', 'b':
		return FaceB, true
	default:
		return "", false
	}
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns ErrInvalidNotation if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	face, ok := parseFace(s[0])
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Unlike ParseSequence, any invalid token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// ParseSequence parses move labels concatenated without separators,
// the form solutions are reported in. Example: "FR2UB'"
// Whitespace between labels is tolerated.
func ParseSequence(s string) ([]Move, error) {
	var moves []Move
	for i := 0; i < len(s); {
		if s[i] == ' ' || s[i] == '\t' {
			i++
			continue
		}

		face, ok := parseFace(s[i])
		if !ok {
			return nil, ErrInvalidNotation
		}
		i++

		turn := CW
		if i < len(s) {
			switch s[i] {
			case '\'', '`':
				turn = CCW
				i++
			case '2':
				turn = Double
				i++
				// "X2'" is the same half turn, as in ParseMove
				if i < len(s) && (s[i] == '\'' || s[i] == '`') {
					i++
				}
			}
		}
		moves = append(moves, Move{Face: face, Turn: turn})
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// ConcatMoves joins move labels with no separator, e.g. "FR2U'".
func ConcatMoves(moves []Move) string {
	var b strings.Builder
	for _, m := range moves {
		b.WriteString(m.Notation())
	}
	return b.String()
}
