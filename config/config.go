package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Organize Organize `json:"organize" yaml:"organize" mapstructure:"organize"`
	Password Password `json:"password" yaml:"password" mapstructure:"password"`
}

// Organize configures how episode files are sorted into show directories
type Organize struct {
	Ignore           string   `json:"ignore" yaml:"ignore" mapstructure:"ignore" validate:"excludes=/"`
	Cleanup          bool     `json:"cleanup" yaml:"cleanup" mapstructure:"cleanup"`
	CleanupPolicy    string   `json:"cleanupPolicy" yaml:"cleanupPolicy" mapstructure:"cleanupPolicy" validate:"omitempty,oneof=video empty"`
	RemoveDuplicates bool     `json:"removeDuplicates" yaml:"removeDuplicates" mapstructure:"removeDuplicates"`
	NonInteractive   bool     `json:"nonInteractive" yaml:"nonInteractive" mapstructure:"nonInteractive"`
	Extensions       []string `json:"extensions" yaml:"extensions" mapstructure:"extensions" validate:"dive,startswith=.,excludes=/"`
}

type Password struct {
	Length  int      `json:"length" yaml:"length" mapstructure:"length" validate:"gte=0"`
	Classes []string `json:"classes" yaml:"classes" mapstructure:"classes" validate:"dive,oneof=lowercase uppercase numbers special"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("organize.ignore", "")
	v.SetDefault("organize.cleanup", false)
	v.SetDefault("organize.cleanupPolicy", "video")
	v.SetDefault("organize.removeDuplicates", false)
	v.SetDefault("organize.nonInteractive", false)
	v.SetDefault("organize.extensions", []string{".mp4", ".mkv", ".avi", ".mov"})

	v.SetDefault("password.length", 12)
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the values a config file, the environment or flags may have set
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
