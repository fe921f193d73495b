package module

import "tallybook/internal/platform/config"

// Options holds configuration settings for the ledger module
type Options struct {
	HardLimit int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	lf := cfg.Prefix("CORE_LEDGER_")
	return Options{
		HardLimit: lf.MayInt("HARD_LIMIT", 50),
	}
}
