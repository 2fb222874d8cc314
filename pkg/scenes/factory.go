package scenes

import (
	"log"

	"github.com/decker502/shmup/pkg/game"
)

// NewSceneFactory returns the factory the SceneManager uses to build scenes by
// name. Each call creates a fresh scene, so every playthrough starts clean.
func NewSceneFactory(deps *Deps) game.SceneFactory {
	return func(name string) game.Scene {
		switch name {
		case game.SceneTitle:
			return NewTitleScene(deps)
		case game.SceneGame:
			scene, err := NewGameScene(deps)
			if err != nil {
				log.Printf("[SceneFactory] Failed to create game scene: %v", err)
				return nil
			}
			return scene
		default:
			log.Printf("[SceneFactory] Unknown scene: %s", name)
			return nil
		}
	}
}
