package internal

import "gamestation/internal/domain"

// CardWeights tune the hand-evaluation scoring.
type CardWeights struct {
	NumberBase        float64
	ActionBase        float64 // flat bonus shared by all action-class cards
	SkipReverseBonus  float64
	DrawTwoBonus      float64
	WildBase          float64
	WildDrawFourBonus float64

	// UrgencyBonus is added to action and forced-draw cards when the
	// opponent holds UrgencyThreshold cards or fewer. Blocking an
	// imminent win outweighs normal card-value ordering.
	UrgencyBonus     float64
	UrgencyThreshold int
}

// ScoreCard rates a single legal card by class value and opponent
// urgency. Higher is better.
func ScoreCard(c domain.Card, opponentCards int, w CardWeights) float64 {
	var score float64
	switch c.Kind {
	case domain.KindSkip, domain.KindReverse:
		score = w.ActionBase + w.SkipReverseBonus
	case domain.KindDrawTwo:
		score = w.ActionBase + w.DrawTwoBonus
	case domain.KindWild:
		score = w.WildBase
	case domain.KindWildDrawFour:
		score = w.WildBase + w.WildDrawFourBonus
	default:
		score = w.NumberBase
	}

	if c.IsAction() && opponentCards > 0 && opponentCards <= w.UrgencyThreshold {
		score += w.UrgencyBonus
	}
	return score
}

// BestColor returns the concrete color appearing most often in the
// hand once the card at the skip index is removed. Ties resolve by the
// fixed precedence order of PlayableColors. When the remaining hand
// holds no concrete color the first color in precedence order is used.
func BestColor(hand []domain.Card, skip int) domain.Color {
	var counts [4]int
	for i, c := range hand {
		if i == skip || c.Color == domain.ColorWild {
			continue
		}
		counts[c.Color]++
	}

	best := domain.PlayableColors[0]
	bestCount := counts[best]
	for _, color := range domain.PlayableColors[1:] {
		if counts[color] > bestCount {
			best = color
			bestCount = counts[color]
		}
	}
	return best
}
