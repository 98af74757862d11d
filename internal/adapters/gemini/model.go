package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"roommind/internal/application"
	"roommind/internal/domain"
	"roommind/internal/ports"
)

// DefaultModel is the Gemini model used when none is configured
const DefaultModel = "gemini-2.5-flash"

// Ensure Model implements the port.
var _ ports.TextModel = (*Model)(nil)

// Config holds what is needed to reach the Gemini API
type Config struct {
	APIKey string
	Model  string
}

// Model implements ports.TextModel using Google's Gemini API
type Model struct {
	client *genai.Client
	model  string
}

// NewModel creates a Gemini-backed TextModel. It returns
// application.ErrModelUnavailable when no API key is configured.
func NewModel(ctx context.Context, cfg Config) (*Model, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, application.ErrModelUnavailable
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Model{client: client, model: cfg.Model}, nil
}

// Name returns the configured model name
func (m *Model) Name() string {
	return m.model
}

// Generate sends one prompt and returns the raw response text
func (m *Model) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(req.Prompt), generateConfig(req.Shape))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", m.model, err)
	}
	return resp.Text(), nil
}

// generateConfig asks for JSON output with a schema for structured shapes
func generateConfig(shape ports.ResponseShape) *genai.GenerateContentConfig {
	schema := schemaFor(shape)
	if schema == nil {
		return nil
	}
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
}

func schemaFor(shape ports.ResponseShape) *genai.Schema {
	switch shape {
	case ports.ShapeStringList:
		return &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		}
	case ports.ShapePlacements:
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"placements": {
					Type:  genai.TypeArray,
					Items: placementSchema(),
				},
			},
			Required: []string{"placements"},
		}
	default:
		return nil
	}
}

func placementSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":           {Type: genai.TypeString},
			"type":           {Type: genai.TypeString, Enum: hologramTypeNames()},
			"parentAnchorId": {Type: genai.TypeString},
			"reason":         {Type: genai.TypeString},
		},
		Required:         []string{"name", "type", "parentAnchorId", "reason"},
		PropertyOrdering: []string{"name", "type", "parentAnchorId", "reason"},
	}
}

func hologramTypeNames() []string {
	names := make([]string, len(domain.HologramTypes))
	for i, t := range domain.HologramTypes {
		names[i] = string(t)
	}
	return names
}
