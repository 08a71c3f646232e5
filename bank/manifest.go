package bank

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/soundscape/audio"
)

// SoundSpec names one sound to preload.
type SoundSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// Manifest declares a bank's track routing and preloaded sounds. Tracks
// listed here are the only implicit-looking creation in the plugin, and
// they still happen in user startup code, via Register.
type Manifest struct {
	Tracks []audio.TrackConfig `yaml:"tracks"`
	Sounds []SoundSpec         `yaml:"sounds"`
}

func LoadManifest(fsys fs.FS, filename string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, fmt.Errorf("bank: load %s: %w", filename, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("bank: unmarshal %s: %w", filename, err)
	}
	return &m, nil
}
