package bot

import "math/rand/v2"

// Personality is the cosmetic face of an AI opponent: a display name,
// an avatar index, and a tagline. It has no effect on move selection.
// One is drawn when a session against the AI begins and lives only for
// that session.
type Personality struct {
	Name        string `json:"name"`
	AvatarIndex int    `json:"avatar_index"`
	Tagline     string `json:"tagline"`
	Difficulty  string `json:"difficulty"`
}

// personalityPools holds the fixed per-difficulty pools. The data is
// immutable; callers only ever receive copies.
var personalityPools = [4][]Personality{
	DifficultyEasy: {
		{Name: "Rusty", AvatarIndex: 0, Tagline: "Still reading the rules.", Difficulty: "easy"},
		{Name: "Boots", AvatarIndex: 1, Tagline: "Here for a good time.", Difficulty: "easy"},
		{Name: "Pip", AvatarIndex: 2, Tagline: "Beginner's luck, mostly.", Difficulty: "easy"},
		{Name: "Waffles", AvatarIndex: 3, Tagline: "Wait, it was my turn?", Difficulty: "easy"},
	},
	DifficultyMedium: {
		{Name: "Juno", AvatarIndex: 4, Tagline: "I know a trick or two.", Difficulty: "medium"},
		{Name: "Moss", AvatarIndex: 5, Tagline: "Slow and steady.", Difficulty: "medium"},
		{Name: "Tilda", AvatarIndex: 6, Tagline: "Watch the center.", Difficulty: "medium"},
		{Name: "Quill", AvatarIndex: 7, Tagline: "Respectable, I'm told.", Difficulty: "medium"},
	},
	DifficultyHard: {
		{Name: "Vex", AvatarIndex: 8, Tagline: "I rarely miss.", Difficulty: "hard"},
		{Name: "Mantis", AvatarIndex: 9, Tagline: "Every move has a reason.", Difficulty: "hard"},
		{Name: "Sable", AvatarIndex: 10, Tagline: "You'll want that move back.", Difficulty: "hard"},
		{Name: "Drift", AvatarIndex: 11, Tagline: "Three steps ahead.", Difficulty: "hard"},
	},
	DifficultyExpert: {
		{Name: "Minerva", AvatarIndex: 12, Tagline: "I have already won.", Difficulty: "expert"},
		{Name: "Koda", AvatarIndex: 13, Tagline: "Perfection is a habit.", Difficulty: "expert"},
		{Name: "Null", AvatarIndex: 14, Tagline: "Resistance is statistical.", Difficulty: "expert"},
		{Name: "Empress", AvatarIndex: 15, Tagline: "Your best is noted.", Difficulty: "expert"},
	},
}

// PersonalityPool returns a copy of the pool for the given difficulty.
func PersonalityPool(d Difficulty) []Personality {
	if d < DifficultyEasy || d > DifficultyExpert {
		d = DifficultyMedium
	}
	pool := personalityPools[d]
	out := make([]Personality, len(pool))
	copy(out, pool)
	return out
}

// RandomPersonality draws a personality from the difficulty's pool.
func RandomPersonality(d Difficulty) Personality {
	if d < DifficultyEasy || d > DifficultyExpert {
		d = DifficultyMedium
	}
	pool := personalityPools[d]
	return pool[rand.IntN(len(pool))]
}

func randomPersonality(rng *rand.Rand, d Difficulty) Personality {
	if d < DifficultyEasy || d > DifficultyExpert {
		d = DifficultyMedium
	}
	pool := personalityPools[d]
	return pool[rng.IntN(len(pool))]
}
