package config

// DefaultTemplateConfig returns a runnable default configuration
// template for "streamseg init-config": block-level segmentation,
// JSON output, stats off, no debug roster override.
func DefaultTemplateConfig() Config {
	cfg := Defaults()
	cfg.Logging.Level = "info"
	return cfg
}
