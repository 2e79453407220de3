package game

// ResourceConfig is the top-level resource manifest loaded from YAML.
// It mirrors assets/config/resources.yaml:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  farm:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup is a set of resources loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource describes one image. Cols/Rows are set for sprite sheets.
//
//	- id: IMAGE_PLAYER_SPRITESHEET
//	  path: images/player_spritesheet.png
//	  cols: 4
//	  rows: 4
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
	Cols int    `yaml:"cols,omitempty"`
	Rows int    `yaml:"rows,omitempty"`
}

// SoundResource describes one sound effect.
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Resource IDs used by the farm scene.
const (
	ImagePlayerSpritesheet = "IMAGE_PLAYER_SPRITESHEET"
	ImagePig               = "IMAGE_PIG"
	SoundMoney             = "SOUND_MONEY"
)

// buildFullPath joins the manifest base path and a resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
