package interview

import (
	"errors"
	"math"
	"strings"

	"github.com/spigell/interview-sim/internal/logger"
	"go.uber.org/zap"
)

// ErrEmptyTranscript is returned when a transcript is empty after trimming.
// Empty answers are rejected by the session before evaluation; seeing this
// error from Evaluate directly means a caller skipped that check.
var ErrEmptyTranscript = errors.New("transcript is empty")

const (
	feedbackTooBrief      = "Answer too brief. Needs more detail and examples."
	feedbackBasic         = "Basic answer provided. Could elaborate with more specific examples."
	feedbackDetailed      = "Good detailed response. Shows understanding of the topic."
	feedbackComprehensive = "Comprehensive answer with excellent detail and examples."
	feedbackNoTechDepth   = "Answer lacks technical depth. Include specific technical concepts and examples."
	feedbackStructured    = "Good use of specific examples and structured response."
	feedbackNeedsSTAR     = "Consider using specific examples with situation, action, and results."
)

var (
	technicalKeywords = []string{
		"react", "javascript", "component", "function", "api",
		"database", "algorithm", "performance", "optimization", "testing",
		"debug", "framework", "library", "async", "promise",
	}

	behavioralKeywords = []string{
		"team", "challenge", "conflict", "leadership", "communication",
		"problem", "solution", "collaboration", "responsibility", "goal",
	}

	starIndicators = []string{
		"situation", "task", "action", "result",
		"when", "what i did", "outcome", "learned",
	}

	exampleMarkers = []string{"example", "for instance", "like when"}
)

// Answer is the scored record of one submitted transcript. Answers are
// created exactly once per question, in question order, and never mutated.
type Answer struct {
	QuestionID int     `json:"questionId"`
	Transcript string  `json:"transcript"`
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
}

// Evaluator converts a transcript into a bounded score and feedback text.
// The noise source models evaluator variability; it is injected so tests
// can pin the draws and assert exact scores.
type Evaluator struct {
	noise randSource
	log   *zap.Logger
}

// NewEvaluator creates an evaluator with the given noise source.
func NewEvaluator(noise randSource, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{noise: noise, log: log}
}

// Evaluate scores a single answer. The base score is drawn uniformly from
// a range picked by transcript length, adjusted by category-specific
// keyword signals, jittered by up to ±0.4, clamped into [1,10] and
// rounded to one decimal.
func (e *Evaluator) Evaluate(question *Question, transcript string) (*Answer, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, ErrEmptyTranscript
	}

	wordCount := len(strings.Fields(transcript))

	var score float64
	var feedback string
	switch {
	case wordCount < 20:
		score = 1 + e.noise.Float64()*3
		feedback = feedbackTooBrief
	case wordCount < 50:
		score = 3 + e.noise.Float64()*3
		feedback = feedbackBasic
	case wordCount < 100:
		score = 5 + e.noise.Float64()*3
		feedback = feedbackDetailed
	default:
		score = 7 + e.noise.Float64()*2
		feedback = feedbackComprehensive
	}

	lower := strings.ToLower(transcript)

	switch question.Category {
	case Technical:
		switch matched := countMatches(lower, technicalKeywords); {
		case matched >= 3:
			score++
		case matched == 0:
			score -= 2
			if score < 1 {
				score = 1
			}
			feedback = feedbackNoTechDepth
		}
		if countMatches(lower, exampleMarkers) > 0 {
			score += 0.5
		}
	case Behavioral:
		if countMatches(lower, behavioralKeywords) >= 2 {
			score++
		}
		if countMatches(lower, starIndicators) >= 2 {
			score++
			feedback = feedbackStructured
		} else {
			feedback = feedbackNeedsSTAR
		}
	}

	// Jitter in [-0.4, +0.4].
	score += e.noise.Float64()*0.8 - 0.4
	score = clampScore(score)

	e.log.Debug("answer evaluated",
		zap.Int("question_id", question.ID),
		zap.String("category", string(question.Category)),
		zap.Int("word_count", wordCount),
		zap.Float64("score", score),
		zap.String("transcript_preview", logger.TruncateForLog(transcript, 80)),
	)

	return &Answer{
		QuestionID: question.ID,
		Transcript: transcript,
		Score:      score,
		Feedback:   feedback,
	}, nil
}

// countMatches counts how many keywords appear as substrings in the
// lowercased transcript.
func countMatches(lower string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}

// clampScore bounds the score into [1,10] and rounds it to one decimal.
func clampScore(score float64) float64 {
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return math.Round(score*10) / 10
}
