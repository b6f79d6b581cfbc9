package interview

import (
	"fmt"
	"strings"
)

const (
	// DefaultTechnicalCount and DefaultBehavioralCount form the reference
	// five-question session: four technical plus one behavioral.
	DefaultTechnicalCount  = 4
	DefaultBehavioralCount = 1

	maxPersonalizationKeywords = 3
)

// randSource is the subset of math/rand used by the core. It is injected
// so tests can pin every draw.
type randSource interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// technologies is scanned against the resume (case-insensitive) to
// personalize the first question.
var technologies = []string{
	"react", "angular", "vue", "javascript", "typescript", "node.js", "python",
	"java", "spring", "docker", "kubernetes", "aws", "azure", "mongodb",
	"postgresql", "redis", "elasticsearch", "jenkins", "git",
}

// Selector draws a fixed-size question set from a bank.
type Selector struct {
	bank       *Bank
	technical  int
	behavioral int
	rng        randSource
}

// NewSelector creates a selector over the given bank. Non-positive counts
// fall back to the reference configuration.
func NewSelector(bank *Bank, technical, behavioral int, rng randSource) *Selector {
	if technical <= 0 {
		technical = DefaultTechnicalCount
	}
	if behavioral <= 0 {
		behavioral = DefaultBehavioralCount
	}

	return &Selector{
		bank:       bank,
		technical:  technical,
		behavioral: behavioral,
		rng:        rng,
	}
}

// SelectQuestions produces the ordered question set for a candidate:
// shuffled technical questions first, then behavioral ones, ids assigned
// sequentially from 1. Unknown roles use the default pool, so the result
// always has exactly technical+behavioral questions. When the resume
// mentions known technologies, the first question is prefixed with a
// personalization clause naming up to three of them.
func (s *Selector) SelectQuestions(candidate *Candidate) []*Question {
	pool := s.bank.RolePool(candidate.JobRole)

	technical := s.draw(pool.Technical, s.bank.Default.Technical, s.technical)
	behavioral := s.draw(pool.Behavioral, s.bank.Default.Behavioral, s.behavioral)

	questions := make([]*Question, 0, len(technical)+len(behavioral))
	for _, text := range technical {
		questions = append(questions, &Question{ID: len(questions) + 1, Text: text, Category: Technical})
	}
	for _, text := range behavioral {
		questions = append(questions, &Question{ID: len(questions) + 1, Text: text, Category: Behavioral})
	}

	if found := matchTechnologies(candidate.ResumeText); len(found) > 0 && len(questions) > 0 {
		if len(found) > maxPersonalizationKeywords {
			found = found[:maxPersonalizationKeywords]
		}
		first := questions[0]
		first.Text = fmt.Sprintf("I see you have experience with %s. %s", strings.Join(found, ", "), first.Text)
	}

	return questions
}

// draw shuffles a copy of the pool and takes the first count entries,
// topping up from the default pool when the role pool is too small.
func (s *Selector) draw(pool, fallback []string, count int) []string {
	entries := append([]string(nil), pool...)
	if len(entries) < count {
		for _, text := range fallback {
			if len(entries) >= count {
				break
			}
			if !contains(entries, text) {
				entries = append(entries, text)
			}
		}
	}

	s.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	if len(entries) > count {
		entries = entries[:count]
	}
	return entries
}

// matchTechnologies returns the known technologies mentioned in the
// resume, deduplicated, in keyword-list order.
func matchTechnologies(resume string) []string {
	lower := strings.ToLower(resume)

	var found []string
	for _, tech := range technologies {
		if strings.Contains(lower, tech) {
			found = append(found, tech)
		}
	}
	return found
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
