package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/interview-sim/internal/interview"
	"github.com/spigell/interview-sim/internal/logger"
	"github.com/spigell/interview-sim/internal/output"
	"github.com/spigell/interview-sim/internal/report"
	"github.com/spigell/interview-sim/internal/speech"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptSubmit    = "Submit answer"
	PromptRetake    = "Retake answer"
	PromptPlayAgain = "Play the question again"

	PromptExportReport  = "Export report to file"
	PromptCallCandidate = "Call candidate"
	PromptNewInterview  = "Start new interview"
	PromptExit          = "Exit"
)

var (
	errExit         = errors.New("exit requested")
	errNewInterview = errors.New("new interview requested")
)

var answerPrompt = promptui.Select{
	Label: "What to do with this answer?",
	Items: []string{PromptSubmit, PromptRetake, PromptPlayAgain},
}

var summaryPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptExportReport, PromptCallCandidate, PromptNewInterview, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interview session",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("questions-file", "q", "", "a yaml file overriding the built-in question bank. Default is unset.")

	viper.BindPFlag("questions-file", runCmd.Flags().Lookup("questions-file"))
}

// run is the main command for the cli.
func run() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview-sim", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	technical := config.Interview.Technical
	if technical <= 0 {
		technical = interview.DefaultTechnicalCount
	}
	behavioral := config.Interview.Behavioral
	if behavioral <= 0 {
		behavioral = interview.DefaultBehavioralCount
	}

	bank := interview.DefaultBank()
	if config.QuestionsFile != "" {
		bank, err = interview.LoadBank(config.QuestionsFile)
		if err != nil {
			logger.Fatal("loading question bank", zap.Error(err))
		}
		logger.Info("using question bank override", zap.String("filename", config.QuestionsFile))
	}

	if err := bank.Validate(technical, behavioral); err != nil {
		logger.Fatal("validating question bank", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := interview.NewSelector(bank, technical, behavioral, rng)
	evaluator := interview.NewEvaluator(rng, logger)
	console := speech.NewConsole(os.Stdin, os.Stdout)
	ui := output.New()

	for {
		candidate, err := collectCandidate(ctx, console, ui)
		if err != nil {
			logger.Fatal("collecting candidate data", zap.Error(err))
		}

		questions := selector.SelectQuestions(candidate)
		session := interview.NewSession(candidate, questions, evaluator)

		logger.Info("interview session started",
			zap.String("session_id", session.ID),
			zap.String("job_role", candidate.JobRole),
			zap.Int("questions", len(questions)),
		)

		if err := conduct(ctx, session, console, ui, logger); err != nil {
			logger.Fatal("conducting the interview", zap.Error(err))
		}

		summary, err := session.Summarize()
		if err != nil {
			logger.Fatal("summarizing the interview", zap.Error(err))
		}

		printSummary(ui, session, summary)

		again, err := afterInterview(session, summary, config, ui, logger)
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if !again {
			return
		}
	}
}

// collectCandidate gathers and validates the candidate form data.
func collectCandidate(ctx context.Context, console *speech.Console, ui *output.UI) (*interview.Candidate, error) {
	ui.Section("Candidate details")

	name, err := promptRequired("Full name")
	if err != nil {
		return nil, err
	}

	phone, err := promptRequired("Phone number")
	if err != nil {
		return nil, err
	}

	role, err := promptRequired("Job role")
	if err != nil {
		return nil, err
	}

	ui.Printf("Paste the resume text, then finish with a single '.' line:\n")
	resume, err := console.Transcribe(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading resume text: %w", err)
	}

	candidate := &interview.Candidate{
		Name:       name,
		Phone:      phone,
		JobRole:    role,
		ResumeText: resume,
	}

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return candidate, nil
}

func promptRequired(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("%s is required", strings.ToLower(label))
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// conduct walks the session through every question: speak it, record the
// answer, then let the interviewer submit, retake or replay.
func conduct(ctx context.Context, session *interview.Session, console *speech.Console, ui *output.UI, logger *zap.Logger) error {
	for !session.Done() {
		question := session.Current()
		answered, total := session.Progress()

		ui.Section(fmt.Sprintf("Question %d of %d (%s)", answered+1, total, question.Category))
		if err := console.Speak(ctx, question.Text); err != nil {
			return err
		}

		transcript, err := record(ctx, question, console, ui, logger)
		if err != nil {
			return err
		}
		if err := session.Record(transcript); err != nil {
			return err
		}

		for submitted := false; !submitted; {
			_, action, err := answerPrompt.Run()
			if err != nil {
				return err
			}

			switch action {
			case PromptSubmit:
				answer, err := session.Submit(session.Pending())
				if err != nil {
					return err
				}
				ui.Printf("Score: %s/10 - %s\n", output.Score(answer.Score), answer.Feedback)
				submitted = true
			case PromptRetake:
				if err := session.Retake(); err != nil {
					return err
				}
				transcript, err := record(ctx, question, console, ui, logger)
				if err != nil {
					return err
				}
				if err := session.Record(transcript); err != nil {
					return err
				}
			case PromptPlayAgain:
				if err := console.Speak(ctx, question.Text); err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid action: %s", action)
			}
		}
	}

	return nil
}

// record captures a transcript, re-prompting until it is non-empty.
func record(ctx context.Context, question *interview.Question, console *speech.Console, ui *output.UI, logger *zap.Logger) (string, error) {
	for {
		ui.Printf("Speak your answer, then finish with a single '.' line:\n")

		transcript, err := console.Transcribe(ctx)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(transcript) != "" {
			return transcript, nil
		}

		logger.Warn("no answer recorded, please record again", zap.Int("question_id", question.ID))
	}
}

func printSummary(ui *output.UI, session *interview.Session, summary *interview.Summary) {
	var total float64
	for _, answer := range session.Answers {
		total += answer.Score
	}

	ui.Section("Interview complete")
	ui.Printf("Candidate: %s / %s\n", session.Candidate.Name, session.Candidate.JobRole)
	ui.Printf("Final rating: %s/10 (total %.1f/%d)\n", output.Score(summary.FinalRating), total, len(session.Answers)*10)
	ui.Printf("Recommendation: %s\n", output.Recommendation(summary.Recommendation))

	ui.Section("Key strengths")
	ui.Printf("%s\n", summary.Strengths)

	ui.Section("Areas for improvement")
	ui.Printf("%s\n", summary.ImprovementAreas)

	ui.Section("Question breakdown")
	table := ui.Table([]string{"#", "Category", "Score", "Feedback"})
	for i, answer := range session.Answers {
		table.Append([]string{
			strconv.Itoa(session.Questions[i].ID),
			string(session.Questions[i].Category),
			output.Score(answer.Score),
			answer.Feedback,
		})
	}
	table.Render()
}

// afterInterview loops over post-interview actions until the interviewer
// exits or asks for a new interview.
func afterInterview(session *interview.Session, summary *interview.Summary, config *Config, ui *output.UI, logger *zap.Logger) (bool, error) {
	for {
		_, action, err := summaryPrompt.Run()
		if err != nil {
			return false, err
		}

		if err := handleAction(action, session, summary, config, ui, logger); err != nil {
			if errors.Is(err, errExit) {
				return false, nil
			}
			if errors.Is(err, errNewInterview) {
				return true, nil
			}
			return false, err
		}
	}
}

func handleAction(action string, session *interview.Session, summary *interview.Summary, config *Config, ui *output.UI, logger *zap.Logger) error {
	switch action {
	case PromptExportReport:
		rep := report.Build(session, summary)
		path, err := rep.ToFile(config.ReportsDir)
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		logger.Info("report exported", zap.String("filename", path))
		return nil
	case PromptCallCandidate:
		// Dialing itself happens outside this tool.
		ui.Printf("Reach %s at %s\n", session.Candidate.Name, output.Cyan(session.Candidate.Phone))
		return nil
	case PromptNewInterview:
		return errNewInterview
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
