package profile

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/stackapp/common/lifo"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// MaxCapacity bounds the stack buffer a profile may ask for.
const MaxCapacity = 1024

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoggerProfile represents logger configuration
type LoggerProfile struct {
	Development bool `yaml:"development"`
}

// Profile represents the configuration of a stack session.
type Profile struct {
	Capacity int               `yaml:"capacity"`
	Prompt   string            `yaml:"prompt"`
	Format   string            `yaml:"format"`
	Colors   map[string]string `yaml:"colors"` // digit -> hex color override
	Logger   LoggerProfile     `yaml:"logger"`
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{
		Capacity: lifo.DefaultCapacity,
		Prompt:   "> ",
		Format:   FormatText,
	}
}

// LoadProfile loads a profile from a YAML file. Unset fields keep their defaults.
func LoadProfile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	prof := Default()
	if err := yaml.Unmarshal(data, prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return prof, nil
}

// Validate checks the profile for values a session cannot run with.
func (p *Profile) Validate() error {
	if p.Capacity <= 0 || p.Capacity > MaxCapacity {
		return fmt.Errorf("capacity must be between 1 and %d, got %d", MaxCapacity, p.Capacity)
	}
	switch p.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", p.Format)
	}
	for digit, color := range p.Colors {
		if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
			return fmt.Errorf("color key %q is not a digit", digit)
		}
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("color %q for digit %s is not a #rrggbb value", color, digit)
		}
	}
	return nil
}
