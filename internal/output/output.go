// Package output provides colored terminal presentation for interview
// results. Logging goes through zap; this package only renders what the
// operator is meant to read.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/spigell/interview-sim/internal/interview"
)

// UI writes presentation output to a fixed pair of streams.
type UI struct {
	Out    io.Writer
	ErrOut io.Writer
}

// New creates a UI over stdout/stderr.
func New() *UI {
	return &UI{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

var (
	cyan   = color.New(color.FgHiCyan).SprintFunc()
	green  = color.New(color.FgHiGreen).SprintFunc()
	yellow = color.New(color.FgHiYellow).SprintFunc()
	red    = color.New(color.FgHiRed).SprintFunc()
)

// Cyan returns a cyan-colored string.
func Cyan(s string) string { return cyan(s) }

// Recommendation colors the hiring recommendation.
func Recommendation(rec interview.Recommendation) string {
	switch rec {
	case interview.RecommendHire:
		return green(string(rec))
	case interview.RecommendMaybe:
		return yellow(string(rec))
	case interview.RecommendNo:
		return red(string(rec))
	default:
		return string(rec)
	}
}

// Score colors a 1-10 score by band.
func Score(score float64) string {
	s := fmt.Sprintf("%.1f", score)
	switch {
	case score >= 8:
		return green(s)
	case score >= 6:
		return yellow(s)
	default:
		return red(s)
	}
}

// Printf writes formatted presentation text.
func (u *UI) Printf(format string, a ...any) {
	fmt.Fprintf(u.Out, format, a...)
}

// Section writes a highlighted section heading.
func (u *UI) Section(title string) {
	fmt.Fprintf(u.Out, "\n%s\n", cyan(title))
}

// Table creates a tablewriter configured with consistent styling.
func (u *UI) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}
