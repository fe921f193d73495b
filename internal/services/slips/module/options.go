package module

import "tallybook/internal/platform/config"

// Options holds configuration settings for the slips module
type Options struct {
	MaxLines int
	PageSize int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("CORE_SLIPS_")
	return Options{
		MaxLines: sf.MayInt("MAX_LINES", 1000),
		PageSize: sf.MayInt("PAGE_SIZE", 50),
	}
}
