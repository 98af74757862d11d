package assistant

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"roommind/internal/domain"
)

var codeBlockRe = regexp.MustCompile("```(?:json|JSON)?\\s*\\n?([\\s\\S]*?)\\n?```")

// placementJSON is the expected shape of one entry in the model's response
type placementJSON struct {
	Name           string `json:"name" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=Board Timeline Sphere"`
	ParentAnchorID string `json:"parentAnchorId" validate:"required"`
	Reason         string `json:"reason"`
}

func (p placementJSON) toDomain() domain.PlacementSuggestion {
	return domain.PlacementSuggestion{
		Name:           strings.TrimSpace(p.Name),
		Type:           domain.HologramType(p.Type),
		ParentAnchorID: p.ParentAnchorID,
		Reason:         strings.TrimSpace(p.Reason),
	}
}

type placementsEnvelope struct {
	Placements *[]placementJSON `json:"placements"`
}

// stripCodeFence removes markdown code-fence markup around a payload
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if matches := codeBlockRe.FindStringSubmatch(s); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return s
}

// sliceJSON returns the text between the first open and the last close
// delimiter, which tolerates prose around the payload
func sliceJSON(s string, openCh, closeCh byte) (string, bool) {
	start := strings.IndexByte(s, openCh)
	end := strings.LastIndexByte(s, closeCh)
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// parseTaskList extracts a JSON array of task strings from a response
func parseTaskList(result string) ([]string, error) {
	result = stripCodeFence(result)

	jsonStr, ok := sliceJSON(result, '[', ']')
	if !ok {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var raw []string
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tasks JSON: %w", err)
	}

	tasks := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// parsePlacements extracts the placements array from a {"placements": [...]}
// response. A bare array is accepted too.
func parsePlacements(result string) ([]placementJSON, error) {
	result = stripCodeFence(result)

	if jsonStr, ok := sliceJSON(result, '{', '}'); ok {
		var env placementsEnvelope
		if err := json.Unmarshal([]byte(jsonStr), &env); err == nil && env.Placements != nil {
			return *env.Placements, nil
		}
	}

	jsonStr, ok := sliceJSON(result, '[', ']')
	if !ok {
		return nil, fmt.Errorf("no placements JSON found in response")
	}

	var raw []placementJSON
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse placements JSON: %w", err)
	}
	return raw, nil
}

// firstSentences keeps at most n sentences of s
func firstSentences(s string, n int) string {
	count := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '!', '?':
			if i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\n' {
				count++
				if count == n {
					return strings.TrimSpace(s[:i+1])
				}
			}
		}
	}
	return s
}
