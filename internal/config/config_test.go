package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGeneratorConfig(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		env       map[string]string
		wantLevel string
		wantSeed  int64
	}{
		{
			name:      "defaults",
			args:      nil,
			wantLevel: "info",
			wantSeed:  0,
		},
		{
			name:      "short flags",
			args:      []string{"-g", "debug", "-s", "42"},
			wantLevel: "debug",
			wantSeed:  42,
		},
		{
			name:      "long flags",
			args:      []string{"--loglevel=warn", "--seed=7"},
			wantLevel: "warn",
			wantSeed:  7,
		},
		{
			name:      "env overrides flags",
			args:      []string{"--seed=7"},
			env:       map[string]string{"CLASSGEN_SEED": "99", "CLASSGEN_LOGLEVEL": "error"},
			wantLevel: "error",
			wantSeed:  99,
		},
		{
			name:      "unknown flag keeps defaults",
			args:      []string{"--template=/tmp/x.txt"},
			wantLevel: "info",
			wantSeed:  0,
		},
		{
			name:      "unknown flag before known flag",
			args:      []string{"--template=/tmp/x.txt", "--seed=7", "-g", "debug"},
			wantLevel: "debug",
			wantSeed:  7,
		},
		{
			name:      "generic env names are not read",
			args:      nil,
			env:       map[string]string{"SEED": "5", "LOGLEVEL": "trace"},
			wantLevel: "info",
			wantSeed:  0,
		},
		{
			name:      "positional args ignored",
			args:      []string{"extra"},
			wantLevel: "info",
			wantSeed:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := ParseGeneratorConfig(tt.args)

			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
			assert.Equal(t, tt.wantSeed, cfg.Seed)
		})
	}
}

func TestParseGeneratorConfig_BadEnvKeepsFlag(t *testing.T) {
	t.Setenv("CLASSGEN_SEED", "not-a-number")

	cfg := ParseGeneratorConfig([]string{"-s", "5"})

	assert.Equal(t, int64(5), cfg.Seed)
}
