package domain

import "fmt"

// Color is a card color. ColorWild marks a card whose color is chosen
// at play time.
type Color uint8

const (
	ColorRed Color = iota
	ColorYellow
	ColorGreen
	ColorBlue
	ColorWild
)

// PlayableColors lists the four concrete colors in the fixed precedence
// order used when color counts tie.
var PlayableColors = [4]Color{ColorRed, ColorYellow, ColorGreen, ColorBlue}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	default:
		return "wild"
	}
}

// ParseColor converts a wire string into a Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "red":
		return ColorRed, nil
	case "yellow":
		return ColorYellow, nil
	case "green":
		return ColorGreen, nil
	case "blue":
		return ColorBlue, nil
	case "wild":
		return ColorWild, nil
	default:
		return ColorRed, fmt.Errorf("unknown color %q", s)
	}
}

// Kind is a card class.
type Kind uint8

const (
	KindNumber Kind = iota
	KindSkip
	KindReverse
	KindDrawTwo
	KindWild
	KindWildDrawFour
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSkip:
		return "skip"
	case KindReverse:
		return "reverse"
	case KindDrawTwo:
		return "draw_two"
	case KindWild:
		return "wild"
	default:
		return "wild_draw_four"
	}
}

// ParseKind converts a wire string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "number":
		return KindNumber, nil
	case "skip":
		return KindSkip, nil
	case "reverse":
		return KindReverse, nil
	case "draw_two":
		return KindDrawTwo, nil
	case "wild":
		return KindWild, nil
	case "wild_draw_four":
		return KindWildDrawFour, nil
	default:
		return KindNumber, fmt.Errorf("unknown card kind %q", s)
	}
}

// Card is a single card in the matching game. Value is meaningful only
// for KindNumber cards (0..9).
type Card struct {
	Color Color
	Kind  Kind
	Value int
}

// IsWild reports whether the card's color is chosen at play time.
func (c Card) IsWild() bool {
	return c.Kind == KindWild || c.Kind == KindWildDrawFour
}

// IsAction reports whether the card forces the opponent to skip or draw.
func (c Card) IsAction() bool {
	switch c.Kind {
	case KindSkip, KindReverse, KindDrawTwo, KindWildDrawFour:
		return true
	}
	return false
}

// Matches reports whether the card may be played on the given discard
// top under the active color: color match, class/value match, or wild.
func (c Card) Matches(top Card, active Color) bool {
	if c.IsWild() {
		return true
	}
	if c.Color == active {
		return true
	}
	if c.Kind != top.Kind {
		return false
	}
	if c.Kind == KindNumber {
		return c.Value == top.Value
	}
	return true
}

// HandState is a snapshot of the matching game from the engine side's
// point of view. The opponent's cards are not revealed; only their
// count is known.
type HandState struct {
	Hand          []Card
	Top           Card
	ActiveColor   Color
	OpponentCards int
}

// LegalIndexes returns the hand indexes of every playable card, in
// hand order.
func (s HandState) LegalIndexes() []int {
	var legal []int
	for i, c := range s.Hand {
		if c.Matches(s.Top, s.ActiveColor) {
			legal = append(legal, i)
		}
	}
	return legal
}

func (HandState) isGameState() {}
