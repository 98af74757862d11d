package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"roommind/internal/application"
	"roommind/internal/domain"
	"roommind/internal/ports"
)

// Fallback values returned when the model cannot be used
const (
	SummaryUnavailable = "This is a simulated summary. Please configure a valid Gemini API Key to get real-time summarization logic."
	SummaryError       = "Error generating summary. Please try again."
	SummaryEmpty       = "Could not generate summary."
	CoachFallback      = "Consistency beats intensity. Protect your next focus block and the streak will take care of itself."
)

const defaultTimeout = 30 * time.Second

// Ensure Assistant implements the port.
var _ ports.AIAssistant = (*Assistant)(nil)

// Assistant implements ports.AIAssistant on top of a ports.TextModel.
// It never returns errors: every failure becomes a fallback Result.
type Assistant struct {
	model   ports.TextModel
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// Option configures the Assistant
type Option func(*Assistant)

// WithTimeout bounds each model call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(a *Assistant) {
		a.timeout = d
	}
}

// WithRateLimit limits outbound calls to rps requests per second
func WithRateLimit(rps float64, burst int) Option {
	return func(a *Assistant) {
		if rps <= 0 {
			a.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger used to report fallbacks
func WithLogger(l *zap.Logger) Option {
	return func(a *Assistant) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAssistant creates an assistant. A nil model puts the assistant in
// fallback-only mode.
func NewAssistant(model ports.TextModel, opts ...Option) *Assistant {
	a := &Assistant{
		model:   model,
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IsAvailable reports whether a model is configured
func (a *Assistant) IsAvailable() bool {
	return a.model != nil
}

// Summarize condenses a note body into a short bullet list
func (a *Assistant) Summarize(ctx context.Context, text string) ports.Result[string] {
	const op = "summarize"
	if strings.TrimSpace(text) == "" {
		return fallback(a, op, SummaryEmpty, application.ErrEmptyInput)
	}

	out, err := a.call(ctx, op, ports.GenerateRequest{Prompt: buildSummaryPrompt(text), Shape: ports.ShapeText})
	switch {
	case errors.Is(err, application.ErrModelUnavailable):
		return fallback(a, op, SummaryUnavailable, err)
	case err != nil:
		return fallback(a, op, SummaryError, err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return fallback(a, op, SummaryEmpty, application.ErrEmptyResponse)
	}
	a.logger.Debug("summary generated", zap.Int("chars", len(out)))
	return ports.OK(out)
}

// ExtractTasks asks for a JSON array of tasks. Failures yield an empty list.
func (a *Assistant) ExtractTasks(ctx context.Context, text string) ports.Result[[]string] {
	const op = "extractTasks"
	if strings.TrimSpace(text) == "" {
		return fallback(a, op, []string{}, application.ErrEmptyInput)
	}

	out, err := a.call(ctx, op, ports.GenerateRequest{Prompt: buildTasksPrompt(text), Shape: ports.ShapeStringList})
	if err != nil {
		return fallback(a, op, []string{}, err)
	}

	tasks, err := parseTaskList(out)
	if err != nil {
		return fallback(a, op, []string{}, application.NewMalformed(op, out, err))
	}
	a.logger.Debug("tasks extracted", zap.Int("count", len(tasks)))
	return ports.OK(tasks)
}

// AnalyzeRoomLayout asks for hologram placements over the given anchors.
// Entries with an invalid shape or an unknown parent anchor are dropped.
func (a *Assistant) AnalyzeRoomLayout(ctx context.Context, anchors []domain.SpatialAnchor) ports.Result[[]domain.PlacementSuggestion] {
	const op = "analyzeRoomLayout"
	empty := []domain.PlacementSuggestion{}
	if len(anchors) == 0 {
		return ports.OK(empty)
	}

	out, err := a.call(ctx, op, ports.GenerateRequest{Prompt: buildRoomPrompt(anchors), Shape: ports.ShapePlacements})
	if err != nil {
		return fallback(a, op, empty, err)
	}

	raw, err := parsePlacements(out)
	if err != nil {
		return fallback(a, op, empty, application.NewMalformed(op, out, err))
	}

	placements := make([]domain.PlacementSuggestion, 0, len(raw))
	for _, r := range raw {
		if err := application.ValidateStruct(r); err != nil {
			a.logger.Debug("dropping invalid placement", zap.String("name", r.Name), zap.Error(err))
			continue
		}
		placements = append(placements, r.toDomain())
	}

	kept, dropped := domain.KeepKnownParents(domain.IndexAnchors(anchors), placements)
	for _, e := range application.ReferentialErrors(dropped) {
		a.logger.Info("dropping placement", zap.Error(e))
	}
	a.logger.Debug("room analyzed", zap.Int("placements", len(kept)), zap.Int("dropped", len(raw)-len(kept)))
	return ports.OK(kept)
}

// CoachInsight returns a short motivational tip for the given stats
func (a *Assistant) CoachInsight(ctx context.Context, stats domain.UserStats) ports.Result[string] {
	const op = "coachInsight"
	out, err := a.call(ctx, op, ports.GenerateRequest{Prompt: buildCoachPrompt(stats), Shape: ports.ShapeText})
	if err != nil {
		return fallback(a, op, CoachFallback, err)
	}

	out = firstSentences(strings.TrimSpace(out), 2)
	if out == "" {
		return fallback(a, op, CoachFallback, application.ErrEmptyResponse)
	}
	return ports.OK(out)
}

// call issues exactly one model request. No retries.
func (a *Assistant) call(ctx context.Context, op string, req ports.GenerateRequest) (string, error) {
	if a.model == nil {
		return "", application.ErrModelUnavailable
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", &application.TransportError{Op: op, Err: err}
		}
	}

	out, err := a.model.Generate(ctx, req)
	if err != nil {
		return "", &application.TransportError{Op: op, Err: err}
	}
	return out, nil
}

func fallback[T any](a *Assistant, op string, v T, cause error) ports.Result[T] {
	a.logger.Warn("AI call fell back", zap.String("op", op), zap.Error(cause))
	return ports.FallbackOf(v, cause)
}
