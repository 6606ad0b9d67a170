package nakama

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"gamestation/internal/bot"
)

// AccountProvisioner is the slice of runtime.NakamaModule the bot
// account setup needs.
type AccountProvisioner interface {
	AuthenticateDevice(ctx context.Context, id, username string, create bool) (string, string, bool, error)
	AccountUpdateId(ctx context.Context, userID, username string, metadata map[string]interface{}, displayName, timezone, location, langTag, avatarURL string) error
}

var (
	provisionOnce    sync.Once
	botPersonalities map[string]bot.Personality
)

// deviceIDNamespace isolates the derived bot device IDs from any other
// SHA1-based UUIDs in the cluster.
const deviceIDNamespace = "gamestation/bot/"

// ProvisionPersonalities ensures every personality in the engine's
// pools exists as a Nakama bot account with is_bot metadata, so AI
// opponents show up as real profiles in listings. Device IDs derive
// deterministically from the personality name, which makes the
// operation idempotent across restarts.
func ProvisionPersonalities(ctx context.Context, nk AccountProvisioner, logger runtime.Logger) error {
	provisionOnce.Do(func() {
		botPersonalities = make(map[string]bot.Personality)

		for level := bot.DifficultyEasy; level <= bot.DifficultyExpert; level++ {
			for _, p := range bot.PersonalityPool(level) {
				deviceID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(deviceIDNamespace+p.Name)).String()

				userID, username, _, err := nk.AuthenticateDevice(ctx, deviceID, p.Name, true)
				if err != nil {
					logger.Error("ProvisionPersonalities: failed to authenticate %s: %v", p.Name, err)
					continue
				}

				metadata := map[string]interface{}{
					"is_bot":       true,
					"difficulty":   p.Difficulty,
					"avatar_index": p.AvatarIndex,
					"tagline":      p.Tagline,
				}
				if err := nk.AccountUpdateId(ctx, userID, username, metadata, p.Name, "", "", "", ""); err != nil {
					logger.Warn("ProvisionPersonalities: failed to update account %s: %v", userID, err)
				}

				botPersonalities[userID] = p
				logger.Info("ProvisionPersonalities: %s (%s) ready at difficulty %s", p.Name, userID, p.Difficulty)
			}
		}
	})
	return nil
}

// IsBot reports whether the given user ID belongs to a provisioned
// AI opponent.
func IsBot(userID string) bool {
	if botPersonalities == nil {
		return false
	}
	_, ok := botPersonalities[userID]
	return ok
}

// BotPersonality returns the personality provisioned under the given
// user ID.
func BotPersonality(userID string) (bot.Personality, bool) {
	p, ok := botPersonalities[userID]
	return p, ok
}
