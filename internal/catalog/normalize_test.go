// internal/catalog/normalize_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases and trims",
			in:   "  Inception  ",
			want: "inception",
		},
		{
			name: "punctuation replaced",
			in:   "Mad Max: Fury Road",
			want: "mad max fury road",
		},
		{
			name: "apostrophes removed",
			in:   "Ocean's Eleven",
			want: "ocean s eleven",
		},
		{
			name: "whitespace runs collapsed",
			in:   "The   Dark\tKnight",
			want: "the dark knight",
		},
		{
			name: "digits kept",
			in:   "Blade Runner 2049",
			want: "blade runner 2049",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only punctuation",
			in:   "?!...",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Se7en",
		"  WALL-E!  ",
		"A Quiet Place",
		"spider-man: into the spider-verse",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}
