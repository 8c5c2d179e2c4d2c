// Package config loads link settings from TOML with a defaults overlay.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/danmuck/framectl/internal/frame"
)

// LinkConfig tunes one serial channel.
type LinkConfig struct {
	// MaxFrameBytes caps the receiver accumulator for the channel.
	MaxFrameBytes int `toml:"max_frame_bytes"`
	// MessageID is the default frame id for outgoing packets.
	MessageID int `toml:"message_id"`
	// LogLevel overrides the runtime logging level.
	LogLevel string `toml:"log_level"`
}

func DefaultLinkConfig() LinkConfig {
	return LinkConfig{
		MaxFrameBytes: frame.DefaultMaxFrameBytes,
		MessageID:     0x01,
		LogLevel:      "info",
	}
}

func LoadLinkConfig(path string) (LinkConfig, error) {
	cfg := DefaultLinkConfig()
	if err := loadToml(path, &cfg); err != nil {
		return LinkConfig{}, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err := ValidateLinkConfig(cfg); err != nil {
		return LinkConfig{}, err
	}
	return cfg, nil
}

func ValidateLinkConfig(cfg LinkConfig) error {
	if cfg.MaxFrameBytes < frame.Overhead {
		return errors.Errorf("max_frame_bytes %d below minimum frame size %d", cfg.MaxFrameBytes, frame.Overhead)
	}
	if cfg.MaxFrameBytes > 1<<20 {
		return errors.Errorf("max_frame_bytes %d unreasonably large", cfg.MaxFrameBytes)
	}
	if cfg.MessageID < 0 || cfg.MessageID > 0xFF {
		return errors.Errorf("message_id %d outside byte range", cfg.MessageID)
	}
	switch cfg.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
		return nil
	default:
		return errors.Errorf("unknown log_level %q", cfg.LogLevel)
	}
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "config load failed (%s)", path)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "config parse failed (%s)", path)
	}
	return nil
}
