package bot

import botinternal "gamestation/internal/bot/internal"

// Tuning groups every numeric knob the three solvers consult.
type Tuning struct {
	// GridEasyRandomChance is how often the Easy grid solver plays a
	// uniformly random legal cell instead of falling through to the
	// Medium ladder.
	GridEasyRandomChance float64
	// GridHardBlunderChance is how often the Hard grid solver discards
	// the minimax result and plays a random legal cell instead.
	GridHardBlunderChance float64

	// NavEasyRandomChance is how often the Easy navigator picks a
	// uniformly random legal direction instead of falling through to
	// the Medium greedy chase.
	NavEasyRandomChance float64
	Nav                 botinternal.NavWeights

	Cards botinternal.CardWeights
	// HandMediumJitter is the half-width of the uniform noise Medium
	// adds to each card score.
	HandMediumJitter float64
	// HandMediumWindow is how many of the top-scored cards Medium
	// picks among.
	HandMediumWindow int
}

// DefaultTuning is the shipped balance. The blended Easy fallthrough
// (random, else Medium) and the Hard blunder rate are part of the
// difficulty contract, not noise to be cleaned up.
var DefaultTuning = Tuning{
	GridEasyRandomChance:  0.70,
	GridHardBlunderChance: 0.10,

	NavEasyRandomChance: 0.60,
	Nav: botinternal.NavWeights{
		BaseScore:     100,
		MobilityBonus: 10,
		RaceBonus:     20,
	},

	Cards: botinternal.CardWeights{
		NumberBase:        1,
		ActionBase:        2,
		SkipReverseBonus:  3,
		DrawTwoBonus:      5,
		WildBase:          9,
		WildDrawFourBonus: 2,
		UrgencyBonus:      15,
		UrgencyThreshold:  2,
	},
	HandMediumJitter: 3.0,
	HandMediumWindow: 3,
}
