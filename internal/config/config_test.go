package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg := Load()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"OutDir", cfg.OutDir, "_build"},
		{"Strict", cfg.Strict, false},
		{"Verbose", cfg.Verbose, false},
		{"LogFormat", cfg.LogFormat, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	os.Setenv("SCRIBE_OUT_DIR", "public")
	os.Setenv("SCRIBE_STRICT", "true")
	defer os.Unsetenv("SCRIBE_OUT_DIR")
	defer os.Unsetenv("SCRIBE_STRICT")

	viper.SetEnvPrefix("SCRIBE")
	viper.AutomaticEnv()

	cfg := Load()
	if cfg.OutDir != "public" {
		t.Errorf("OutDir = %q, want env override %q", cfg.OutDir, "public")
	}
	if !cfg.Strict {
		t.Error("Strict = false, want env override true")
	}
}
