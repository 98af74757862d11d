package claudecli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"roommind/internal/application"
	"roommind/internal/ports"
)

// DefaultModel is used when no model is configured
const DefaultModel = "haiku"

// Ensure Model implements the port.
var _ ports.TextModel = (*Model)(nil)

// Model implements ports.TextModel by running the claude CLI in print mode
type Model struct {
	model string
	run   func(ctx context.Context, args ...string) ([]byte, error)
}

// Option configures the Model
type Option func(*Model)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(m *Model) {
		if model != "" {
			m.model = model
		}
	}
}

// NewModel creates a claude CLI backed model. It returns
// application.ErrModelUnavailable when the CLI is not installed.
func NewModel(opts ...Option) (*Model, error) {
	if _, err := exec.LookPath("claude"); err != nil {
		return nil, application.ErrModelUnavailable
	}
	return newModel(runClaude, opts...), nil
}

func newModel(run func(ctx context.Context, args ...string) ([]byte, error), opts ...Option) *Model {
	m := &Model{
		model: DefaultModel, // Default to haiku for speed
		run:   run,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the configured model name
func (m *Model) Name() string {
	return "claude-" + m.model
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type       string  `json:"type"`
	Subtype    string  `json:"subtype"`
	DurationMS int     `json:"duration_ms"`
	IsError    bool    `json:"is_error"`
	Result     string  `json:"result"`
	SessionID  string  `json:"session_id"`
	CostUSD    float64 `json:"total_cost_usd"`
}

// Generate runs one prompt. The CLI has no structured output mode, so the
// shape is only expressed through the prompt itself.
func (m *Model) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	output, err := m.run(ctx,
		"-p", req.Prompt,
		"--output-format", "json",
		"--model", m.model,
	)
	if err != nil {
		return "", err
	}

	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return "", fmt.Errorf("failed to parse claude response: %w", err)
	}
	if response.IsError {
		return "", fmt.Errorf("claude returned an error: %s", response.Result)
	}
	return response.Result, nil
}

func runClaude(ctx context.Context, args ...string) ([]byte, error) {
	output, err := exec.CommandContext(ctx, "claude", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("claude CLI error: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("claude CLI error: %w", err)
	}
	return output, nil
}
