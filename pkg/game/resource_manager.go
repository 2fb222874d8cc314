package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/shmup/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// It loads every asset listed in the manifest once at startup and serves
// cached copies by resource ID afterwards.
//
// Features:
//   - PNG image loading and caching
//   - Sound effects decoded to PCM so the same effect can overlap itself
//   - Looping music players (WAV, OGG Vorbis or MP3, by extension)
//   - Text faces built on the bundled Go Regular font
//
// This implementation is NOT thread-safe; all loading happens on the main goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil { ... }
//	if err := rm.LoadAll(); err != nil { ... }
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // path -> Image
	soundCache    map[string][]byte            // path -> decoded PCM (16-bit stereo)
	musicCache    map[string]*audio.Player     // path -> looping player
	audioContext  *audio.Context               // may be nil when audio is unavailable
	fontSource    *text.GoTextFaceSource       // lazily parsed Go Regular
	fontFaceCache map[float64]*text.GoTextFace // size -> face

	// YAML resource configuration
	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path
	assetRoot   string            // overrides config.BasePath when set
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding and playing audio files.
//     A nil context skips every sound and music entry.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		soundCache:    make(map[string][]byte),
		musicCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// SetAssetRoot overrides the manifest's base_path (the -assets flag).
// Must be called before LoadResourceConfig.
func (rm *ResourceManager) SetAssetRoot(root string) {
	rm.assetRoot = root
}

// LoadResourceConfig loads and parses the YAML resource manifest.
//
// Parameters:
//   - configPath: Path to the manifest (e.g., "data/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read, parsed or validated
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_PLAYER -> assets/images/playerShip1_orange.png
//	SOUND_SHOOT  -> assets/sounds/pew.wav
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)

	basePath := rm.config.BasePath
	if rm.assetRoot != "" {
		basePath = rm.assetRoot
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(basePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}
		for _, snd := range group.Sounds {
			rm.resourceMap[snd.ID] = buildFullPath(basePath, snd.Path)
		}
		for _, mus := range group.Music {
			rm.resourceMap[mus.ID] = buildFullPath(basePath, mus.Path)
		}
	}
}

// ResolvePath returns the file path behind a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadImage loads an image file from the specified path and caches it.
//
// Returns:
//   - The loaded ebiten.Image
//   - An error if the file does not exist or cannot be decoded
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadImageByID loads an image resource using its manifest ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// Returns nil if the ID is unknown or the image has not been loaded.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// decodeAudio reads an audio file and returns a stream resampled to the context rate.
// The decoder is chosen by extension.
func (rm *ResourceManager) decodeAudio(path string) (io.ReadSeeker, int64, error) {
	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
}

// LoadSoundEffect decodes a one-shot sound effect into memory.
// Each playback creates its own player from the cached PCM (see NewSoundPlayer).
func (rm *ResourceManager) LoadSoundEffect(path string) ([]byte, error) {
	if pcm, exists := rm.soundCache[path]; exists {
		return pcm, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available for %s", path)
	}

	stream, _, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded sound %s: %w", path, err)
	}

	rm.soundCache[path] = pcm
	return pcm, nil
}

// NewSoundPlayer creates a fresh player for a loaded sound effect.
// Returns nil if the sound has not been loaded.
func (rm *ResourceManager) NewSoundPlayer(resourceID string) *audio.Player {
	if rm.audioContext == nil {
		return nil
	}
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil
	}
	pcm, ok := rm.soundCache[path]
	if !ok {
		return nil
	}
	return rm.audioContext.NewPlayerFromBytes(pcm)
}

// LoadMusic loads an audio file wrapped in an infinite loop.
//
// Returns:
//   - A player ready to play, but not started
//   - An error if the file cannot be opened or decoded
func (rm *ResourceManager) LoadMusic(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.musicCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available for %s", path)
	}

	stream, length, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.musicCache[path] = player
	return player, nil
}

// GetMusicPlayer returns the cached looping player for a music ID, or nil.
func (rm *ResourceManager) GetMusicPlayer(resourceID string) *audio.Player {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil
	}
	return rm.musicCache[path]
}

// LoadResourceGroup loads all resources in a specified group.
// Audio entries are skipped when no audio context is available.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	if rm.audioContext == nil {
		return nil
	}

	for _, snd := range group.Sounds {
		if _, err := rm.LoadSoundEffect(rm.resourceMap[snd.ID]); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", snd.ID, groupName, err)
		}
	}
	for _, mus := range group.Music {
		if _, err := rm.LoadMusic(rm.resourceMap[mus.ID]); err != nil {
			return fmt.Errorf("failed to load music %s in group %s: %w", mus.ID, groupName, err)
		}
	}
	return nil
}

// LoadAll loads every group in the manifest, in name order.
func (rm *ResourceManager) LoadAll() error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	names := make([]string, 0, len(rm.config.Groups))
	for name := range rm.config.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := rm.LoadResourceGroup(name); err != nil {
			return err
		}
	}
	return nil
}

// Font returns a Go Regular text face of the given size, cached per size.
func (rm *ResourceManager) Font(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
