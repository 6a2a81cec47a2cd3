package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with separate value",
			args:    []string{"-d", "data", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "data"},
		},
		{
			name:    "keeps allowed flag with equals form",
			args:    []string{"--config=conf.json", "-d", "data"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "drops unknown flags entirely",
			args:    []string{"-x", "1", "-y=2"},
			allowed: []string{"-d"},
			want:    []string{},
		},
		{
			name:    "flag without value stays alone",
			args:    []string{"-d", "-l", "debug"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-d"},
			want:    []string{},
		},
		{
			name:    "multiple allowed flags keep order",
			args:    []string{"-l", "debug", "-c", "conf.json", "-d", "data"},
			allowed: []string{"-c", "-d"},
			want:    []string{"-c", "conf.json", "-d", "data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
