package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/decker502/pigfarm/pkg/embedded"
	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// Images and sound effects are loaded once through the embedded file system
// and reused for the rest of the session.
//
// Thread Safety Note:
// The caches are plain maps. All loading happens on the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	sheet := rm.LoadImageOrPlaceholder(ImagePlayerSpritesheet, 192, 192, color.White)
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // path -> Image
	audioCache   map[string]*audio.Player // path -> Player
	audioContext *audio.Context           // nil in headless runs

	config      *ResourceConfig
	resourceMap map[string]string // resource ID -> file path
}

// NewResourceManager creates a ResourceManager with empty caches.
// audioContext may be nil; sound loading then fails with an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
	}
}

// LoadImage loads a PNG image and caches it by path.
// Returns an error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
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

// GetImage returns a cached image, or nil if it was never loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a one-shot sound effect and caches its player.
// Supported formats: WAV (.wav), OGG Vorbis (.ogg) and MP3 (.mp3).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context available for %s", path)
	}

	audioData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}

	stream, err := decodeSound(path, bytes.NewReader(audioData))
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// decodeSound picks a decoder by file extension.
func decodeSound(path string, reader io.ReadSeeker) (io.ReadSeeker, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
}

// GetAudioPlayer returns a cached player, or nil if it was never loaded.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadResourceConfig parses the YAML resource manifest and builds the ID lookup table.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap maps every resource ID to its full path.
// Images without an extension default to .png, sounds to .wav.
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}
		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav"
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadImageByID loads an image using its manifest ID.
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

// GetImageByID returns a cached image by manifest ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadSoundByID loads a sound effect using its manifest ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadSoundEffect(filePath)
}

// LoadResourceGroup loads every image and sound of one manifest group.
// Sounds are skipped when there is no audio context.
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
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}
	return nil
}

// LoadImageOrPlaceholder loads an image by ID and falls back to a solid
// placeholder of the given size when the asset is missing or broken.
func (rm *ResourceManager) LoadImageOrPlaceholder(resourceID string, width, height int, clr color.Color) *ebiten.Image {
	img, err := rm.LoadImageByID(resourceID)
	if err == nil {
		return img
	}
	logger.Warnf("[ResourceManager] %v, using placeholder %dx%d", err, width, height)
	return PlaceholderImage(width, height, clr)
}

// PlaceholderImage creates a solid image with a one-pixel darker border.
func PlaceholderImage(width, height int, clr color.Color) *ebiten.Image {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	img := ebiten.NewImage(width, height)
	img.Fill(color.RGBA{R: 40, G: 40, B: 40, A: 255})
	if width > 2 && height > 2 {
		inner := img.SubImage(image.Rect(1, 1, width-1, height-1)).(*ebiten.Image)
		inner.Fill(clr)
	}
	return img
}
