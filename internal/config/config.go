package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tocmd/tocmd/internal/parser"
)

// Config holds the application configuration
type Config struct {
	AnchorStyle  string `mapstructure:"anchor_style"`
	OutputSuffix string `mapstructure:"output_suffix"`
	AssumeYes    bool   `mapstructure:"assume_yes"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("anchor_style", "anchor") // "anchor" or "keyword"
	viper.SetDefault("output_suffix", "_toc")
	viper.SetDefault("assume_yes", false)

	viper.SetConfigName("tocmd")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "tocmd"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("TOCMD")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetAnchorStyle resolves the configured anchor syntax
func GetAnchorStyle() (parser.AnchorStyle, error) {
	switch viper.GetString("anchor_style") {
	case "", "anchor":
		return parser.StyleAnchorTag, nil
	case "keyword":
		return parser.StyleKeyword, nil
	default:
		return parser.StyleAnchorTag,
			fmt.Errorf("unknown anchor style %q (supported: anchor, keyword)", viper.GetString("anchor_style"))
	}
}

// GetOutputSuffix returns the suffix inserted into derived output names
func GetOutputSuffix() string {
	return viper.GetString("output_suffix")
}

// GetAssumeYes returns whether overwrite prompts are skipped
func GetAssumeYes() bool {
	return viper.GetBool("assume_yes")
}

// SetAssumeYes sets prompt skipping at runtime
func SetAssumeYes(v bool) {
	viper.Set("assume_yes", v)
	C.AssumeYes = v
}
