package interview

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Recommendation is the categorical hiring suggestion.
type Recommendation string

const (
	RecommendHire  Recommendation = "Hire"
	RecommendMaybe Recommendation = "Maybe"
	RecommendNo    Recommendation = "No"
)

var (
	// ErrNoAnswers is returned when there is nothing to summarize.
	ErrNoAnswers = errors.New("no answers to summarize")

	// ErrLengthMismatch is returned when questions and answers disagree.
	ErrLengthMismatch = errors.New("questions and answers length mismatch")
)

const (
	fallbackStrengths    = "Shows potential and basic understanding of role requirements"
	fallbackImprovements = "Continue developing skills and gaining practical experience"

	hireThreshold  = 7.5
	maybeThreshold = 5.5
)

// summaryTechKeywords is the narrower list scanned when naming technical
// strengths in the narrative.
var summaryTechKeywords = []string{
	"react", "javascript", "component", "api", "algorithm",
	"performance", "testing", "database", "framework",
}

// Summary is the candidate-level result derived from a completed session.
// It is recomputed fresh from the answer sequence and carries no state of
// its own; summarizing the same answers twice yields identical output.
type Summary struct {
	Strengths        string         `json:"strengths"`
	ImprovementAreas string         `json:"improvementAreas"`
	FinalRating      float64        `json:"finalRating"`
	Recommendation   Recommendation `json:"recommendation"`
}

// Summarize aggregates per-question scores into a final rating, a
// recommendation and a strengths/improvements narrative derived from
// transcript keyword analysis. Answers must align ordinally with their
// questions.
func Summarize(questions []*Question, answers []*Answer) (*Summary, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	if len(questions) != len(answers) {
		return nil, fmt.Errorf("%w: %d questions, %d answers", ErrLengthMismatch, len(questions), len(answers))
	}

	stats := collectStats(questions, answers)

	strengths := buildStrengths(stats)
	if strengths == "" {
		strengths = fallbackStrengths
	}

	improvements := buildImprovements(stats)
	if improvements == "" {
		improvements = fallbackImprovements
	}

	recommendation := RecommendNo
	switch {
	case stats.average >= hireThreshold:
		recommendation = RecommendHire
	case stats.average >= maybeThreshold:
		recommendation = RecommendMaybe
	}

	return &Summary{
		Strengths:        strengths,
		ImprovementAreas: improvements,
		FinalRating:      math.Round(stats.average*10) / 10,
		Recommendation:   recommendation,
	}, nil
}

// sessionStats carries the derived signals the narrative is built from.
type sessionStats struct {
	average        float64
	technicalAvg   float64
	behavioralAvg  float64
	avgWordCount   float64
	scoreVariance  float64
	shortAnswers   int
	lowScores      int
	allTranscripts string
	questionTexts  []string
}

func collectStats(questions []*Question, answers []*Answer) *sessionStats {
	var total, techSum, behavSum float64
	var techCount, behavCount, totalWords int

	minScore, maxScore := answers[0].Score, answers[0].Score
	transcripts := make([]string, 0, len(answers))
	questionTexts := make([]string, 0, len(questions))
	shortAnswers, lowScores := 0, 0

	for i, answer := range answers {
		total += answer.Score

		switch questions[i].Category {
		case Technical:
			techSum += answer.Score
			techCount++
		case Behavioral:
			behavSum += answer.Score
			behavCount++
		}

		words := len(strings.Fields(answer.Transcript))
		totalWords += words
		if words < 30 {
			shortAnswers++
		}
		if answer.Score < 5 {
			lowScores++
		}
		if answer.Score < minScore {
			minScore = answer.Score
		}
		if answer.Score > maxScore {
			maxScore = answer.Score
		}

		transcripts = append(transcripts, answer.Transcript)
		questionTexts = append(questionTexts, strings.ToLower(questions[i].Text))
	}

	stats := &sessionStats{
		average:        total / float64(len(answers)),
		avgWordCount:   float64(totalWords) / float64(len(answers)),
		scoreVariance:  maxScore - minScore,
		shortAnswers:   shortAnswers,
		lowScores:      lowScores,
		allTranscripts: strings.ToLower(strings.Join(transcripts, " ")),
		questionTexts:  questionTexts,
	}
	if techCount > 0 {
		stats.technicalAvg = techSum / float64(techCount)
	}
	if behavCount > 0 {
		stats.behavioralAvg = behavSum / float64(behavCount)
	}
	return stats
}

func buildStrengths(stats *sessionStats) string {
	var clauses []string

	if stats.technicalAvg >= 7 {
		var mentioned []string
		for _, keyword := range summaryTechKeywords {
			if strings.Contains(stats.allTranscripts, keyword) {
				mentioned = append(mentioned, keyword)
			}
		}
		if len(mentioned) >= 3 {
			clauses = append(clauses, fmt.Sprintf("Demonstrated solid understanding of %s", strings.Join(mentioned[:3], ", ")))
		} else if len(mentioned) > 0 {
			clauses = append(clauses, fmt.Sprintf("Shows knowledge of %s concepts", strings.Join(mentioned, ", ")))
		}

		if strings.Contains(stats.allTranscripts, "example") || strings.Contains(stats.allTranscripts, "experience") {
			clauses = append(clauses, "Effectively uses real-world examples to explain concepts")
		}
	}

	if stats.behavioralAvg >= 7 {
		if strings.Contains(stats.allTranscripts, "team") && strings.Contains(stats.allTranscripts, "collaboration") {
			clauses = append(clauses, "Strong team collaboration and communication skills")
		}
		if strings.Contains(stats.allTranscripts, "challenge") || strings.Contains(stats.allTranscripts, "problem") {
			clauses = append(clauses, "Demonstrates problem-solving mindset and resilience")
		}
		if strings.Contains(stats.allTranscripts, "leadership") || strings.Contains(stats.allTranscripts, "led") {
			clauses = append(clauses, "Shows leadership potential and initiative")
		}
	}

	if stats.avgWordCount > 80 {
		clauses = append(clauses, "Provides comprehensive and detailed responses")
	}

	if stats.scoreVariance <= 2 && stats.average >= 7 {
		clauses = append(clauses, "Consistent performance across different question types")
	}

	return strings.Join(clauses, ". ")
}

func buildImprovements(stats *sessionStats) string {
	var clauses []string

	if stats.technicalAvg < 6 {
		var weak []string
		if questionsMention(stats.questionTexts, "react") && !strings.Contains(stats.allTranscripts, "react") {
			weak = append(weak, "React framework concepts")
		}
		if questionsMention(stats.questionTexts, "javascript") && !strings.Contains(stats.allTranscripts, "javascript") {
			weak = append(weak, "JavaScript fundamentals")
		}
		if len(weak) > 0 {
			clauses = append(clauses, fmt.Sprintf("Needs deeper understanding of %s", strings.Join(weak, " and ")))
		} else {
			clauses = append(clauses, "Technical knowledge requires strengthening with more hands-on practice")
		}
	}

	if stats.behavioralAvg < 6 {
		if !strings.Contains(stats.allTranscripts, "situation") && !strings.Contains(stats.allTranscripts, "result") {
			clauses = append(clauses, "Should structure answers using STAR method (Situation, Task, Action, Result)")
		}
		if stats.avgWordCount < 40 {
			clauses = append(clauses, "Responses need more detail and specific examples")
		}
	}

	if stats.shortAnswers >= 2 {
		clauses = append(clauses, "Many answers too brief - provide more comprehensive explanations")
	}

	if stats.lowScores >= 2 {
		clauses = append(clauses, "Several key areas need improvement before meeting role requirements")
	}

	return strings.Join(clauses, ". ")
}

func questionsMention(questionTexts []string, keyword string) bool {
	for _, text := range questionTexts {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
