package config

import "testing"

func TestGetDefaults(t *testing.T) {
	cfg := GetDefaults()

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Detection.MinConfidence != 0.5 {
		t.Errorf("default min confidence = %v, want 0.5", cfg.Detection.MinConfidence)
	}
	if len(cfg.Detection.Detectors) != 1 || cfg.Detection.Detectors[0] != "all" {
		t.Errorf("default detectors = %v, want [all]", cfg.Detection.Detectors)
	}

	if err := validateConfig(cfg); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"zero confidence", func(c *Config) { c.Detection.MinConfidence = 0 }},
		{"confidence above one", func(c *Config) { c.Detection.MinConfidence = 1.5 }},
		{"unknown detector", func(c *Config) { c.Detection.Detectors = []string{"sentiment"} }},
		{"bad ner backend", func(c *Config) { c.NER.Enabled = true; c.NER.Backend = "grpc" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := GetDefaults()
			tc.mutate(cfg)
			if err := validateConfig(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateConfigSubsetDetectors(t *testing.T) {
	cfg := GetDefaults()
	cfg.Detection.Detectors = []string{"national_id", "phone", "email"}
	if err := validateConfig(cfg); err != nil {
		t.Errorf("valid detector subset rejected: %v", err)
	}
}
