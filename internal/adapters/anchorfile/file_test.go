package anchorfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roommind/internal/application"
	"roommind/internal/domain"
)

const roomYAML = `anchors:
  - id: w1
    type: Wall
    position: {x: 100, y: 50, z: 0}
    dimensions: {width: 200, height: 10}
    label: Main Wall
  - id: t1
    type: Table
    position: {x: 100, y: 150}
    dimensions: {width: 120, height: 60}
    label: Desk
`

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "anchors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), roomYAML)

	anchors, err := Load(path)
	require.NoError(t, err)
	require.Len(t, anchors, 2)

	assert.Equal(t, domain.SpatialAnchor{
		ID:         "w1",
		Type:       domain.AnchorWall,
		Position:   domain.Vec3{X: 100, Y: 50},
		Dimensions: domain.Size{Width: 200, Height: 10},
		Label:      "Main Wall",
	}, anchors[0])
	assert.Equal(t, domain.AnchorTable, anchors[1].Type)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLen   int
		wantErr   bool
		wantField string
	}{
		{name: "empty document", content: "", wantLen: 0},
		{name: "empty list", content: "anchors: []", wantLen: 0},
		{name: "not yaml", content: "anchors: [", wantErr: true},
		{
			name:      "unknown type",
			content:   "anchors:\n  - {id: x, type: Ceiling, dimensions: {width: 1, height: 1}}",
			wantErr:   true,
			wantField: "type",
		},
		{
			name:      "missing id",
			content:   "anchors:\n  - {type: Wall, dimensions: {width: 1, height: 1}}",
			wantErr:   true,
			wantField: "id",
		},
		{
			name:      "zero width",
			content:   "anchors:\n  - {id: w, type: Wall, dimensions: {width: 0, height: 1}}",
			wantErr:   true,
			wantField: "width",
		},
		{
			name:      "duplicate ids",
			content:   "anchors:\n  - {id: w, type: Wall, dimensions: {width: 1, height: 1}}\n  - {id: w, type: Table, dimensions: {width: 1, height: 1}}",
			wantErr:   true,
			wantField: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchors, err := Parse([]byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantField != "" {
					var ve *application.ValidationError
					require.ErrorAs(t, err, &ve)
					assert.Equal(t, tt.wantField, ve.Field)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, anchors)
			assert.Len(t, anchors, tt.wantLen)
		})
	}
}

func TestMarshalRoundTripsMockRoom(t *testing.T) {
	data, err := Marshal(domain.MockAnchors())
	require.NoError(t, err)

	anchors, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, domain.MockAnchors(), anchors)
}
