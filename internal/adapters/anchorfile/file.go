// Package anchorfile loads room anchors from a YAML file and watches it for
// changes.
package anchorfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"roommind/internal/application"
	"roommind/internal/domain"
)

// document is the on-disk layout of an anchors file
type document struct {
	Anchors []domain.SpatialAnchor `yaml:"anchors"`
}

// Load reads and validates an anchors file
func Load(path string) ([]domain.SpatialAnchor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read anchors file: %w", err)
	}

	anchors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return anchors, nil
}

// Parse decodes and validates YAML anchors. Any invalid entry rejects the
// whole document.
func Parse(data []byte) ([]domain.SpatialAnchor, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse anchors: %w", err)
	}

	if doc.Anchors == nil {
		doc.Anchors = []domain.SpatialAnchor{}
	}

	if err := application.ValidateAnchors(doc.Anchors); err != nil {
		return nil, err
	}
	return doc.Anchors, nil
}

// Marshal encodes anchors in the anchors file layout
func Marshal(anchors []domain.SpatialAnchor) ([]byte, error) {
	return yaml.Marshal(document{Anchors: anchors})
}
