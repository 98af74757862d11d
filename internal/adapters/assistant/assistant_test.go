package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roommind/internal/application"
	"roommind/internal/domain"
	"roommind/internal/ports"
)

// fakeModel returns a canned response and records requests
type fakeModel struct {
	mu       sync.Mutex
	response string
	err      error
	block    bool
	requests []ports.GenerateRequest
}

func (f *fakeModel) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

func (f *fakeModel) Name() string { return "fake" }

func (f *fakeModel) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		model        *fakeModel
		input        string
		want         string
		wantFallback bool
	}{
		{
			name:  "model output is trimmed",
			model: &fakeModel{response: "  - Fix latency\n- Meet at 2 PM \n"},
			input: "note body",
			want:  "- Fix latency\n- Meet at 2 PM",
		},
		{
			name:         "transport error",
			model:        &fakeModel{err: errors.New("503")},
			input:        "note body",
			want:         SummaryError,
			wantFallback: true,
		},
		{
			name:         "empty response",
			model:        &fakeModel{response: "   "},
			input:        "note body",
			want:         SummaryEmpty,
			wantFallback: true,
		},
		{
			name:         "empty input skips the model",
			model:        &fakeModel{response: "unused"},
			input:        " ",
			want:         SummaryEmpty,
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssistant(tt.model)
			got := a.Summarize(context.Background(), tt.input)

			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.wantFallback, got.Fallback)
		})
	}
}

func TestSummarize_NoModel(t *testing.T) {
	a := NewAssistant(nil)
	require.False(t, a.IsAvailable())

	got := a.Summarize(context.Background(), "body")
	assert.True(t, got.Fallback)
	assert.Equal(t, SummaryUnavailable, got.Value)
	assert.ErrorIs(t, got.Cause, application.ErrModelUnavailable)
}

func TestSummarize_TransportErrorType(t *testing.T) {
	a := NewAssistant(&fakeModel{err: errors.New("dial tcp: refused")})
	got := a.Summarize(context.Background(), "body")

	var te *application.TransportError
	require.ErrorAs(t, got.Cause, &te)
	assert.Equal(t, "summarize", te.Op)
}

func TestExtractTasks(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		want         []string
		wantFallback bool
	}{
		{
			name:     "plain array",
			response: `["Review contrast", "Book meeting"]`,
			want:     []string{"Review contrast", "Book meeting"},
		},
		{
			name:     "code fenced array",
			response: "```json\n[\"A\",\"B\"]\n```",
			want:     []string{"A", "B"},
		},
		{
			name:     "fence without language",
			response: "```\n[\"A\"]\n```",
			want:     []string{"A"},
		},
		{
			name:     "surrounding prose",
			response: "Here you go:\n[\"Ship it\"]\nGood luck!",
			want:     []string{"Ship it"},
		},
		{
			name:     "blank entries dropped",
			response: `["  ", "Call Sam ", ""]`,
			want:     []string{"Call Sam"},
		},
		{
			name:     "empty array",
			response: `[]`,
			want:     []string{},
		},
		{
			name:         "not json",
			response:     "not json",
			want:         []string{},
			wantFallback: true,
		},
		{
			name:         "wrong element type",
			response:     `[1, 2]`,
			want:         []string{},
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeModel{response: tt.response}
			got := NewAssistant(model).ExtractTasks(context.Background(), "note body")

			require.NotNil(t, got.Value)
			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.wantFallback, got.Fallback)
			require.Len(t, model.requests, 1)
			assert.Equal(t, ports.ShapeStringList, model.requests[0].Shape)
		})
	}
}

func TestExtractTasks_MalformedCause(t *testing.T) {
	got := NewAssistant(&fakeModel{response: "not json"}).ExtractTasks(context.Background(), "x")

	var me *application.MalformedResponseError
	require.ErrorAs(t, got.Cause, &me)
	assert.Equal(t, "not json", me.Payload)
}

func scenarioAnchors() []domain.SpatialAnchor {
	return []domain.SpatialAnchor{
		{ID: "w1", Type: domain.AnchorWall, Position: domain.Vec3{X: 100, Y: 50}, Dimensions: domain.Size{Width: 200, Height: 10}, Label: "Wall"},
		{ID: "t1", Type: domain.AnchorTable, Position: domain.Vec3{X: 100, Y: 150}, Dimensions: domain.Size{Width: 120, Height: 60}, Label: "Desk"},
	}
}

func TestAnalyzeRoomLayout(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		err          error
		wantNames    []string
		wantFallback bool
	}{
		{
			name:      "single board kept",
			response:  `{"placements":[{"name":"Main Board","type":"Board","parentAnchorId":"w1","reason":"fits wall"}]}`,
			wantNames: []string{"Main Board"},
		},
		{
			name:      "unknown anchor dropped",
			response:  `{"placements":[{"name":"Ghost","type":"Board","parentAnchorId":"unknown","reason":"?"}]}`,
			wantNames: []string{},
		},
		{
			name: "invalid entries dropped",
			response: `{"placements":[
				{"name":"","type":"Board","parentAnchorId":"w1"},
				{"name":"Lamp","type":"Lamp","parentAnchorId":"w1"},
				{"name":"Plan","type":"Timeline","parentAnchorId":"t1","reason":"desk"}
			]}`,
			wantNames: []string{"Plan"},
		},
		{
			name:      "fenced object with prose",
			response:  "Sure!\n```json\n{\"placements\":[{\"name\":\"B\",\"type\":\"Board\",\"parentAnchorId\":\"w1\"}]}\n```",
			wantNames: []string{"B"},
		},
		{
			name:      "bare array accepted",
			response:  `[{"name":"B","type":"Board","parentAnchorId":"w1"}]`,
			wantNames: []string{"B"},
		},
		{
			name:         "malformed",
			response:     `{"placements": oops}`,
			wantNames:    []string{},
			wantFallback: true,
		},
		{
			name:         "transport failure",
			err:          errors.New("timeout"),
			wantNames:    []string{},
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeModel{response: tt.response, err: tt.err}
			got := NewAssistant(model).AnalyzeRoomLayout(context.Background(), scenarioAnchors())

			require.NotNil(t, got.Value)
			names := make([]string, 0, len(got.Value))
			for _, p := range got.Value {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantFallback, got.Fallback)
		})
	}
}

func TestAnalyzeRoomLayout_PromptAndShape(t *testing.T) {
	model := &fakeModel{response: `{"placements":[]}`}
	NewAssistant(model).AnalyzeRoomLayout(context.Background(), scenarioAnchors())

	require.Len(t, model.requests, 1)
	req := model.requests[0]
	assert.Equal(t, ports.ShapePlacements, req.Shape)
	assert.Contains(t, req.Prompt, "w1 | Wall (Wall) at 100,50 size 200x10")
	assert.Contains(t, req.Prompt, "t1 | Desk (Table)")
}

func TestAnalyzeRoomLayout_NoAnchors(t *testing.T) {
	model := &fakeModel{response: "unused"}
	got := NewAssistant(model).AnalyzeRoomLayout(context.Background(), nil)

	assert.Empty(t, got.Value)
	assert.NotNil(t, got.Value)
	assert.Zero(t, model.calls())
}

func TestCoachInsight(t *testing.T) {
	model := &fakeModel{response: "Great streak. Keep mornings meeting-free. Also drink water."}
	got := NewAssistant(model).CoachInsight(context.Background(), domain.MockStats())

	assert.False(t, got.Fallback)
	assert.Equal(t, "Great streak. Keep mornings meeting-free.", got.Value)
	assert.Contains(t, model.requests[0].Prompt, "focus score 85/100")
}

func TestCoachInsight_Fallback(t *testing.T) {
	got := NewAssistant(nil).CoachInsight(context.Background(), domain.MockStats())
	assert.True(t, got.Fallback)
	assert.Equal(t, CoachFallback, got.Value)
}

func TestTimeoutBecomesFallback(t *testing.T) {
	model := &fakeModel{block: true}
	a := NewAssistant(model, WithTimeout(20*time.Millisecond))

	got := a.Summarize(context.Background(), "body")

	assert.True(t, got.Fallback)
	assert.Equal(t, SummaryError, got.Value)
	assert.ErrorIs(t, got.Cause, context.DeadlineExceeded)
}

func TestRateLimitWaitFailure(t *testing.T) {
	model := &fakeModel{response: `["a"]`}
	a := NewAssistant(model, WithRateLimit(0.001, 1))

	first := a.ExtractTasks(context.Background(), "x")
	require.False(t, first.Fallback)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	second := a.ExtractTasks(ctx, "x")

	assert.True(t, second.Fallback)
	assert.Equal(t, 1, model.calls(), "rate-limited call must not reach the model")
}

func TestConcurrentCalls(t *testing.T) {
	model := &fakeModel{response: "ok"}
	a := NewAssistant(model)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "ok", a.Summarize(context.Background(), "body").Value)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, model.calls())
}
