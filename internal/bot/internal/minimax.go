package internal

import (
	"math"

	"gamestation/internal/domain"
)

// Terminal scores are depth-weighted so the search prefers faster wins
// and later losses. A draw is worth 0.
const (
	winScore = 10
)

// BestCell runs a full minimax search with alpha-beta pruning over the
// remaining game tree and returns the best cell for the engine side.
// Ties are broken by root enumeration order (lowest index wins).
// Returns -1 if the board has no empty cell.
func BestCell(b domain.Board) int {
	best := -1
	bestScore := math.MinInt
	for i := 0; i < len(b); i++ {
		if b[i] != domain.CellEmpty {
			continue
		}
		b[i] = domain.CellMine
		score := minimax(&b, 1, false, math.MinInt, math.MaxInt)
		b[i] = domain.CellEmpty
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// minimax searches the scratch board in place. Every placement is
// undone before returning, on pruned branches included, so the board
// is restored to its pre-call state on every return path.
func minimax(b *domain.Board, depth int, maximizing bool, alpha, beta int) int {
	if winner, ok := b.Winner(); ok {
		if winner == domain.CellMine {
			return winScore - depth
		}
		return depth - winScore
	}
	if b.Full() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for i := 0; i < len(b); i++ {
			if b[i] != domain.CellEmpty {
				continue
			}
			b[i] = domain.CellMine
			score := minimax(b, depth+1, false, alpha, beta)
			b[i] = domain.CellEmpty
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for i := 0; i < len(b); i++ {
		if b[i] != domain.CellEmpty {
			continue
		}
		b[i] = domain.CellTheirs
		score := minimax(b, depth+1, true, alpha, beta)
		b[i] = domain.CellEmpty
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
