package config

// GetDefaults returns the default configuration values applied before any
// config file or environment variable is read.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"content_dir":   "./content",
		"min_score":     70,
		"output":        "text",
		"show_progress": true,
	}
}
