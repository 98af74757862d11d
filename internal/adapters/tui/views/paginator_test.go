package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFor(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		total  int
		size   int
		want   Page
	}{
		{name: "empty list", cursor: 0, total: 0, size: 5, want: Page{Number: 1, Count: 1}},
		{name: "first page", cursor: 2, total: 12, size: 5, want: Page{Start: 0, End: 5, Number: 1, Count: 3}},
		{name: "middle page", cursor: 5, total: 12, size: 5, want: Page{Start: 5, End: 10, Number: 2, Count: 3}},
		{name: "short last page", cursor: 11, total: 12, size: 5, want: Page{Start: 10, End: 12, Number: 3, Count: 3}},
		{name: "cursor past end clamps", cursor: 40, total: 12, size: 5, want: Page{Start: 10, End: 12, Number: 3, Count: 3}},
		{name: "negative cursor clamps", cursor: -3, total: 12, size: 5, want: Page{Start: 0, End: 5, Number: 1, Count: 3}},
		{name: "default size", cursor: 0, total: 25, size: 0, want: Page{Start: 0, End: 10, Number: 1, Count: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageFor(tt.cursor, tt.total, tt.size))
		})
	}
}
