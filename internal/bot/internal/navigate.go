package internal

import "gamestation/internal/domain"

// NavWeights tune the navigation scoring for one decision.
type NavWeights struct {
	// BaseScore anchors the goal-distance term: score starts at
	// BaseScore minus the Manhattan distance from the new head to the goal.
	BaseScore int
	// MobilityBonus is added once per escape route that stays open one
	// ply after the candidate move.
	MobilityBonus int
	// RaceBonus is added when the candidate move puts the engine side
	// strictly closer to the goal than the opponent's head. Zero
	// disables the race term.
	RaceBonus int
}

// LegalDirections returns every direction the engine side can take
// this turn: not the direct reverse of current, inside the grid, and
// free of both paths' occupied cells. Enumeration order is fixed
// (up, down, left, right) so callers get deterministic tie-breaks.
func LegalDirections(s domain.NavState, current domain.Direction) []domain.Direction {
	var legal []domain.Direction
	head := s.Head()
	for _, d := range domain.Directions {
		if d == current.Opposite() {
			continue
		}
		next := head.Move(d)
		if !s.Inside(next) || s.Occupied(next) {
			continue
		}
		legal = append(legal, d)
	}
	return legal
}

// ScoreDirection rates one candidate direction with the weighted
// combination of goal distance, one-ply mobility, and, when RaceBonus
// is set, opponent-relative positioning.
func ScoreDirection(s domain.NavState, d domain.Direction, w NavWeights) int {
	newHead := s.Head().Move(d)
	score := w.BaseScore - domain.Manhattan(newHead, s.Goal)
	score += w.MobilityBonus * openExits(s, newHead, d)

	if w.RaceBonus != 0 {
		if oppHead, ok := s.OpponentHead(); ok {
			if domain.Manhattan(newHead, s.Goal) < domain.Manhattan(oppHead, s.Goal) {
				score += w.RaceBonus
			}
		}
	}
	return score
}

// openExits counts the directions that would remain legal from the new
// head one ply further, the immediate reverse of the candidate
// excluded. More exits means fewer ways to get boxed in next turn.
func openExits(s domain.NavState, newHead domain.Point, candidate domain.Direction) int {
	exits := 0
	for _, d := range domain.Directions {
		if d == candidate.Opposite() {
			continue
		}
		next := newHead.Move(d)
		if !s.Inside(next) || s.Occupied(next) {
			continue
		}
		exits++
	}
	return exits
}
