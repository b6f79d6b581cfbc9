// Package report builds and persists the exportable interview report.
// The core hands it a finished session and summary; everything here is a
// downstream sink.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spigell/interview-sim/internal/interview"
)

const filePrefix = "interview-report-"

// Report is the structured document handed to downstream consumers.
type Report struct {
	Candidate CandidateInfo `json:"candidate"`
	Interview Details       `json:"interview"`
	Summary   Assessment    `json:"summary"`
	Answers   []AnswerEntry `json:"answers"`
}

// CandidateInfo identifies the interviewed candidate.
type CandidateInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Details describes the interview run itself.
type Details struct {
	SessionID      string                   `json:"sessionId"`
	Date           time.Time                `json:"date"`
	Questions      int                      `json:"questions"`
	TotalScore     string                   `json:"totalScore"`
	AverageScore   float64                  `json:"averageScore"`
	Recommendation interview.Recommendation `json:"recommendation"`
}

// Assessment carries the narrative part of the summary.
type Assessment struct {
	Strengths        string `json:"strengths"`
	ImprovementAreas string `json:"improvementAreas"`
}

// AnswerEntry is one question/answer pair with its evaluation.
type AnswerEntry struct {
	Question   string             `json:"question"`
	Type       interview.Category `json:"type"`
	Score      float64            `json:"score"`
	Feedback   string             `json:"feedback"`
	Transcript string             `json:"transcript"`
}

// Build assembles a report from a completed session and its summary.
func Build(session *interview.Session, summary *interview.Summary) *Report {
	var total float64
	for _, answer := range session.Answers {
		total += answer.Score
	}

	entries := make([]AnswerEntry, 0, len(session.Answers))
	for i, answer := range session.Answers {
		entries = append(entries, AnswerEntry{
			Question:   session.Questions[i].Text,
			Type:       session.Questions[i].Category,
			Score:      answer.Score,
			Feedback:   answer.Feedback,
			Transcript: answer.Transcript,
		})
	}

	return &Report{
		Candidate: CandidateInfo{
			Name:  session.Candidate.Name,
			Phone: session.Candidate.Phone,
			Role:  session.Candidate.JobRole,
		},
		Interview: Details{
			SessionID:      session.ID,
			Date:           time.Now().UTC(),
			Questions:      len(session.Questions),
			TotalScore:     fmt.Sprintf("%.1f/%d", total, len(session.Answers)*10),
			AverageScore:   summary.FinalRating,
			Recommendation: summary.Recommendation,
		},
		Summary: Assessment{
			Strengths:        summary.Strengths,
			ImprovementAreas: summary.ImprovementAreas,
		},
		Answers: entries,
	}
}

// ToFile writes the report as indented JSON under dir, creating the
// directory when needed. It returns the written file path.
func (r *Report) ToFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory %q: %w", dir, err)
	}

	slug := strings.ToLower(strings.Join(strings.Fields(r.Candidate.Name), "-"))
	path := filepath.Join(dir, fmt.Sprintf("%s%s-%d.json", filePrefix, slug, time.Now().Unix()))

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return path, nil
}

// FromFile reads a single exported report back.
func FromFile(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var report Report
	if err := json.NewDecoder(file).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding report %q: %w", path, err)
	}
	return &report, nil
}

// LoadDir reads every exported report under dir, newest last. A missing
// directory yields an empty list.
func LoadDir(dir string) ([]*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading reports directory %q: %w", dir, err)
	}

	var reports []*Report
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || filepath.Ext(name) != ".json" {
			continue
		}

		report, err := FromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// Stats aggregates a set of reports for the dashboard.
type Stats struct {
	Completed     int
	AverageRating float64
	Hire          int
	Maybe         int
	No            int
}

// Aggregate computes dashboard statistics over the given reports.
func Aggregate(reports []*Report) Stats {
	stats := Stats{Completed: len(reports)}
	if len(reports) == 0 {
		return stats
	}

	var total float64
	for _, report := range reports {
		total += report.Interview.AverageScore

		switch report.Interview.Recommendation {
		case interview.RecommendHire:
			stats.Hire++
		case interview.RecommendMaybe:
			stats.Maybe++
		case interview.RecommendNo:
			stats.No++
		}
	}
	stats.AverageRating = total / float64(len(reports))

	return stats
}
