package game

import (
	"fmt"
	"path/filepath"
)

// ImageBackground 背景图资源 ID，标题和游戏场景共用
const ImageBackground = "IMAGE_BACKGROUND"

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
//	    music: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that are loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // PNG sprites
	Sounds []SoundResource `yaml:"sounds"` // One-shot effects
	Music  []SoundResource `yaml:"music"`  // Looping tracks
}

// ImageResource represents a single image resource definition.
//
// Example:
//
//	- id: IMAGE_PLAYER
//	  path: images/playerShip1_orange.png
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path; ".png" is assumed when missing
}

// SoundResource represents a single sound or music resource definition.
// The decoder is picked from the extension: .wav, .ogg or .mp3.
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Validate checks that every ID is unique and every path is set.
func (c *ResourceConfig) Validate() error {
	seen := make(map[string]string)
	check := func(group, id, path string) error {
		if id == "" || path == "" {
			return fmt.Errorf("group %s: resource with empty id or path (id=%q path=%q)", group, id, path)
		}
		if other, dup := seen[id]; dup {
			return fmt.Errorf("duplicate resource ID %s (groups %s and %s)", id, other, group)
		}
		seen[id] = group
		return nil
	}

	for name, group := range c.Groups {
		for _, img := range group.Images {
			if err := check(name, img.ID, img.Path); err != nil {
				return err
			}
		}
		for _, snd := range group.Sounds {
			if err := check(name, snd.ID, snd.Path); err != nil {
				return err
			}
		}
		for _, mus := range group.Music {
			if err := check(name, mus.ID, mus.Path); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildFullPath constructs the full file path for a resource.
//
// Parameters:
//   - basePath: The base path (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/starfield.png")
//
// Returns:
//   - The full file path (e.g., "assets/images/starfield.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	return filepath.Join(basePath, relativePath)
}
