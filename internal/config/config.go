package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	ContentPath   string        `mapstructure:"content_path"`
	Topic         string        `mapstructure:"topic"`
	LogFile       string        `mapstructure:"log_file"`
	LogLevel      string        `mapstructure:"log_level"`
	SidebarWidth  int           `mapstructure:"sidebar_width"`
	WrapWidth     int           `mapstructure:"wrap_width"`
	CopyReset     time.Duration `mapstructure:"copy_reset"`
	CodeLanguage  string        `mapstructure:"code_language"`
	ColorAccent   string        `mapstructure:"color_accent"`
	ColorHeading  string        `mapstructure:"color_heading"`
	ColorCode     string        `mapstructure:"color_code"`
	ColorDim      string        `mapstructure:"color_dim"`
	ColorBorder   string        `mapstructure:"color_border"`
	ColorSelected string        `mapstructure:"color_selected"`
}

// C is the global config instance
var C Config

// SetDefaults registers the default value of every key
func SetDefaults() {
	viper.SetDefault("content_path", "") // Empty means the embedded catalog
	viper.SetDefault("topic", "")        // Empty means the first topic
	viper.SetDefault("log_file", "")     // Empty disables logging
	viper.SetDefault("log_level", "info")
	viper.SetDefault("sidebar_width", 32)
	viper.SetDefault("wrap_width", 100)           // Max lesson text width
	viper.SetDefault("copy_reset", 2*time.Second) // How long "Copied!" stays
	viper.SetDefault("code_language", "javascript")
	viper.SetDefault("color_accent", "#F7DF1E")  // JavaScript yellow
	viper.SetDefault("color_heading", "#61DAFB") // React cyan
	viper.SetDefault("color_code", "#E06C75")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_border", "238")
	viper.SetDefault("color_selected", "#F7DF1E")
}

// Init initializes configuration with viper
func Init() error {
	SetDefaults()

	viper.SetConfigName("lessonmd")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "lessonmd"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("LESSONMD")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetContentPath returns the content directory with tilde expansion
func GetContentPath() string {
	return expandTilde(viper.GetString("content_path"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetTopic returns the ID of the topic shown at startup
func GetTopic() string {
	return viper.GetString("topic")
}

// GetLogFile returns the log file path with tilde expansion
func GetLogFile() string {
	return expandTilde(viper.GetString("log_file"))
}

// GetLogLevel returns the minimum log level
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetSidebarWidth returns the sidebar width in cells
func GetSidebarWidth() int {
	return viper.GetInt("sidebar_width")
}

// GetWrapWidth returns the maximum width of lesson text
func GetWrapWidth() int {
	return viper.GetInt("wrap_width")
}

// GetCopyReset returns how long the copy confirmation is shown
func GetCopyReset() time.Duration {
	return viper.GetDuration("copy_reset")
}

// GetCodeLanguage returns the label shown on code blocks
func GetCodeLanguage() string {
	return viper.GetString("code_language")
}

// GetColorAccent returns the accent color
func GetColorAccent() string {
	return viper.GetString("color_accent")
}

// GetColorHeading returns the heading color
func GetColorHeading() string {
	return viper.GetString("color_heading")
}

// GetColorCode returns the inline code color
func GetColorCode() string {
	return viper.GetString("color_code")
}

// GetColorDim returns the color for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns the border color
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorSelected returns the color of the selected sidebar row and topic
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// SetContentPath sets the content directory at runtime
func SetContentPath(path string) {
	viper.Set("content_path", path)
	C.ContentPath = path
}

// SetTopic sets the startup topic at runtime
func SetTopic(id string) {
	viper.Set("topic", id)
	C.Topic = id
}
