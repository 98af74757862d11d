package commands

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"roommind/internal/domain"
	"roommind/internal/ports"
)

var errTransport = errors.New("transport failure")

// fakeAI is a scripted ports.AIAssistant
type fakeAI struct {
	placements []domain.PlacementSuggestion
	fail       bool
	release    chan struct{} // when set, AnalyzeRoomLayout blocks until closed
	started    chan struct{}

	mu           sync.Mutex
	summarized   []string
	analyzeCalls atomic.Int32
	inFlight     atomic.Int32
	maxInFlight  atomic.Int32
}

var _ ports.AIAssistant = (*fakeAI)(nil)

func (f *fakeAI) Summarize(ctx context.Context, text string) ports.Result[string] {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		prev := f.maxInFlight.Load()
		if cur <= prev || f.maxInFlight.CompareAndSwap(prev, cur) {
			break
		}
	}

	f.mu.Lock()
	f.summarized = append(f.summarized, text)
	f.mu.Unlock()

	if f.fail {
		return ports.FallbackOf("Error generating summary. Please try again.", errTransport)
	}
	return ports.OK("summary of " + text)
}

func (f *fakeAI) ExtractTasks(ctx context.Context, text string) ports.Result[[]string] {
	if f.fail {
		return ports.FallbackOf([]string{}, errTransport)
	}
	return ports.OK([]string{"task from " + text})
}

func (f *fakeAI) AnalyzeRoomLayout(ctx context.Context, anchors []domain.SpatialAnchor) ports.Result[[]domain.PlacementSuggestion] {
	f.analyzeCalls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.fail {
		return ports.FallbackOf([]domain.PlacementSuggestion{}, errTransport)
	}
	return ports.OK(f.placements)
}

func (f *fakeAI) CoachInsight(ctx context.Context, stats domain.UserStats) ports.Result[string] {
	if f.fail {
		return ports.FallbackOf("fallback tip", errTransport)
	}
	return ports.OK("Keep going.")
}

func (f *fakeAI) IsAvailable() bool { return !f.fail }

func (f *fakeAI) summarizeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.summarized)
}
