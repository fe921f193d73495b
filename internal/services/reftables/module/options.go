package module

import "tallybook/internal/platform/config"

// Options holds configuration settings for the reftables module
type Options struct {
	Source string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_REFTABLES_")
	return Options{
		Source: rf.MayString("SOURCE", "auto"),
	}
}
