package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roommind/internal/adapters/assistant"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("ROOMMIND_ANCHORS", "")

	renderFormat, renderPlan, renderCols, renderRows = "text", false, 80, 24
	anchorsPath = ""
	summarizeAll = false
	configForce = false

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnchorsCommand(t *testing.T) {
	out, err := run(t, "anchors")
	require.NoError(t, err)
	assert.Contains(t, out, "a1 | Main Wall (Wall) at 100,50 size 200x10")
}

func TestAnchorsCommand_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`anchors:
  - id: s1
    type: OpenSpace
    position: {x: 300, y: 200}
    dimensions: {width: 80, height: 80}
    label: Corner
`), 0o644))

	out, err := run(t, "--anchors", path, "anchors")
	require.NoError(t, err)
	assert.Equal(t, "s1 | Corner (OpenSpace) at 300,200 size 80x80\n", out)
}

func TestNotesCommand(t *testing.T) {
	out, err := run(t, "notes")
	require.NoError(t, err)
	assert.Contains(t, out, "1 Project Alpha Brainstorm [Architecture, Urgent]\n")
	assert.Contains(t, out, "2 Design System Audit [Design, UI/UX]\n")
}

func TestSummarizeCommand_Offline(t *testing.T) {
	out, err := run(t, "summarize", "1")
	require.NoError(t, err)
	assert.Equal(t, assistant.SummaryUnavailable+"\n", out)
}

func TestSummarizeCommand_UnknownNote(t *testing.T) {
	_, err := run(t, "summarize", "42")
	assert.ErrorContains(t, err, "note 42: not found")
}

func TestSummarizeCommand_All(t *testing.T) {
	out, err := run(t, "summarize", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "1 Project Alpha Brainstorm\n"+assistant.SummaryUnavailable)
	assert.Contains(t, out, "2 Design System Audit\n"+assistant.SummaryUnavailable)
}

func TestSummarizeCommand_MissingID(t *testing.T) {
	_, err := run(t, "summarize")
	assert.ErrorContains(t, err, "note id is required")
}

func TestTasksCommand_Offline(t *testing.T) {
	out, err := run(t, "tasks", "2")
	require.NoError(t, err)
	assert.Equal(t, "No tasks found\n", out)
}

func TestPlanCommand_Offline(t *testing.T) {
	out, err := run(t, "plan")
	require.NoError(t, err)
	assert.Equal(t, "No placements suggested\n", out)
}

func TestRenderCommand(t *testing.T) {
	out, err := run(t, "render", "--format", "svg")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Work Desk")

	out, err = run(t, "render", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"primitives"`)

	_, err = run(t, "render", "--format", "png")
	assert.ErrorContains(t, err, "unknown format")
}

func TestCoachCommand_Offline(t *testing.T) {
	out, err := run(t, "coach")
	require.NoError(t, err)
	assert.Equal(t, assistant.CoachFallback+"\n", out)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Contains(t, out, "Wrote "+path)
}

func TestConfigInit_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_key = "secret-key"`+"\n"), 0o600))

	_, err := run(t, "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists (use --force)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "secret-key")

	_, err = run(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-key")
}

func TestConfigInit_BrokenConfigCanBeRegenerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("model = \n"), 0o600))

	_, err := run(t, "--config", path, "anchors")
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = run(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	_, err = run(t, "--config", path, "anchors")
	assert.NoError(t, err)
}
