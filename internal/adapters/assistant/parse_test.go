package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n[1]\n```", "[1]"},
		{"```JSON\n{}\n```", "{}"},
		{"```\nplain\n```", "plain"},
		{"  no fence  ", "no fence"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stripCodeFence(tt.in), tt.in)
	}
}

func TestFirstSentences(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"One. Two. Three.", 2, "One. Two."},
		{"One! Two? Three.", 1, "One!"},
		{"Version 2.5 is out. Try it.", 1, "Version 2.5 is out."},
		{"No terminator", 2, "No terminator"},
		{"", 2, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, firstSentences(tt.in, tt.n), tt.in)
	}
}
