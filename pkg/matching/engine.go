package matching

import (
	"strings"

	"github.com/artem13815/smartresume/pkg/catalog"
)

// Result is the outcome of scoring a text against one catalog entry.
type Result struct {
	Job           catalog.JobProfile `json:"job"`
	MatchedSkills []string           `json:"matchedSkills"`
	MatchCount    int                `json:"matchCount"`
}

// Engine scores extracted resume text against a fixed job catalog.
// It is pure: no I/O, deterministic for identical text and catalog.
type Engine struct {
	jobs []catalog.JobProfile
}

func NewEngine(jobs []catalog.JobProfile) *Engine {
	return &Engine{jobs: jobs}
}

// Match returns the best-scoring profile, or nil when no skill of any
// profile occurs in the text. Skills are matched as raw substrings of the
// case-folded text, intentionally without token boundaries ("ui" matches
// inside "build"). Ties are resolved in catalog order: only a strictly
// higher score displaces an earlier profile.
func (e *Engine) Match(text string) *Result {
	lower := strings.ToLower(text)

	var best *Result
	for _, job := range e.jobs {
		var matched []string
		for _, skill := range job.Skills {
			if strings.Contains(lower, skill) {
				matched = append(matched, skill)
			}
		}
		if best == nil || len(matched) > best.MatchCount {
			best = &Result{Job: job, MatchedSkills: matched, MatchCount: len(matched)}
		}
	}
	if best == nil || best.MatchCount == 0 {
		return nil
	}
	return best
}
