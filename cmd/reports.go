package cmd

import (
	"log"
	"strconv"

	"github.com/spigell/interview-sim/internal/logger"
	"github.com/spigell/interview-sim/internal/output"
	"github.com/spigell/interview-sim/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show exported interview reports and aggregate statistics",
	Run: func(_ *cobra.Command, _ []string) {
		runReports()
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)

	reportsCmd.Flags().StringP("reports-dir", "r", "", "directory with exported reports. Default is 'reports'.")

	viper.BindPFlag("reports-dir", reportsCmd.Flags().Lookup("reports-dir"))
}

func runReports() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	reports, err := report.LoadDir(config.ReportsDir)
	if err != nil {
		logger.Fatal("loading reports", zap.Error(err))
	}

	if len(reports) == 0 {
		logger.Info("exiting", zap.String("reason", "no reports found"), zap.String("reports_dir", config.ReportsDir))
		return
	}

	ui := output.New()

	ui.Section("Completed interviews")
	table := ui.Table([]string{"Candidate", "Role", "Date", "Rating", "Recommendation"})
	for _, rep := range reports {
		table.Append([]string{
			rep.Candidate.Name,
			rep.Candidate.Role,
			rep.Interview.Date.Format("2006-01-02 15:04"),
			output.Score(rep.Interview.AverageScore),
			output.Recommendation(rep.Interview.Recommendation),
		})
	}
	table.Render()

	stats := report.Aggregate(reports)

	ui.Section("Statistics")
	statsTable := ui.Table([]string{"Completed", "Avg rating", "Hire", "Maybe", "No"})
	statsTable.Append([]string{
		strconv.Itoa(stats.Completed),
		output.Score(stats.AverageRating),
		strconv.Itoa(stats.Hire),
		strconv.Itoa(stats.Maybe),
		strconv.Itoa(stats.No),
	})
	statsTable.Render()
}
