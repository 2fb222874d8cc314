package scenes

import (
	"math/rand"

	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/game"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Deps bundles the shared services every scene needs.
// The App owns them for the whole process; scenes only borrow them.
type Deps struct {
	Resources *game.ResourceManager
	Scenes    *game.SceneManager
	Audio     *game.AudioManager // nil disables sound
	Config    *config.GameConfig
	Rand      *rand.Rand
}

// soundPlayer returns the audio manager as a SoundPlayer, or a silent one.
func (d *Deps) soundPlayer() game.SoundPlayer {
	if d.Audio == nil {
		return game.NopSoundPlayer{}
	}
	return d.Audio
}
