package domain

import "fmt"

// Point is a grid coordinate. X grows rightward, Y grows downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is one of the four cardinal movement directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in the fixed enumeration order used
// for deterministic tie-breaking.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the direct reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// ParseDirection converts a wire string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirUp, fmt.Errorf("unknown direction %q", s)
	}
}

// Move returns the neighboring point one step in the given direction.
func (p Point) Move(d Direction) Point {
	switch d {
	case DirUp:
		return Point{p.X, p.Y - 1}
	case DirDown:
		return Point{p.X, p.Y + 1}
	case DirLeft:
		return Point{p.X - 1, p.Y}
	default:
		return Point{p.X + 1, p.Y}
	}
}

// Manhattan returns the Manhattan distance between two points.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// NavState is a snapshot of the survival game from the engine side's
// point of view. Both paths are ordered head-first. The caller keeps
// the snapshot consistent between turns; the engine only reads it.
type NavState struct {
	Width  int
	Height int

	// Me is the engine-controlled path, head first.
	Me []Point
	// Opponent is the other player's path, head first. May be empty.
	Opponent []Point

	// Goal is the cell both players race toward.
	Goal Point

	// Heading is the engine side's current direction of travel.
	Heading Direction
}

// Head returns the engine side's head cell.
func (s NavState) Head() Point {
	return s.Me[0]
}

// OpponentHead returns the opponent's head cell, if the opponent has one.
func (s NavState) OpponentHead() (Point, bool) {
	if len(s.Opponent) == 0 {
		return Point{}, false
	}
	return s.Opponent[0], true
}

// Inside reports whether the point lies within the grid extent.
func (s NavState) Inside(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Occupied reports whether the point coincides with any occupied cell
// of either path.
func (s NavState) Occupied(p Point) bool {
	for _, q := range s.Me {
		if q == p {
			return true
		}
	}
	for _, q := range s.Opponent {
		if q == p {
			return true
		}
	}
	return false
}

func (NavState) isGameState() {}
