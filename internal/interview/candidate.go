package interview

import (
	"errors"
	"strings"
)

// ErrIncompleteCandidate is returned when any candidate field is missing.
var ErrIncompleteCandidate = errors.New("all candidate fields are required")

// Candidate holds the form data collected before the interview starts.
// It is immutable for the lifetime of the session.
type Candidate struct {
	Name       string
	Phone      string
	JobRole    string
	ResumeText string
}

// Validate checks that every field is non-empty after trimming.
func (c *Candidate) Validate() error {
	fields := []string{c.Name, c.Phone, c.JobRole, c.ResumeText}
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return ErrIncompleteCandidate
		}
	}
	return nil
}
