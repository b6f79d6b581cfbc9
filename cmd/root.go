package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "interview-sim"

	defaultReportsDir = "reports"
)

type Config struct {
	// ReportsDir is where exported interview reports are written.
	ReportsDir string `mapstructure:"reports-dir"`
	// QuestionsFile optionally overrides the built-in question bank.
	QuestionsFile string           `mapstructure:"questions-file"`
	Interview     *InterviewConfig `mapstructure:"interview"`
}

type InterviewConfig struct {
	// Technical and Behavioral are question counts per session. Zero
	// values mean the reference configuration (4 + 1).
	Technical  int `mapstructure:"technical"`
	Behavioral int `mapstructure:"behavioral"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-sim is a cli for running simulated first-round job interviews with heuristic answer scoring",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-sim.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("reports-dir", defaultReportsDir)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional unless one was named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Interview == nil {
		config.Interview = &InterviewConfig{}
	}
	if config.ReportsDir == "" {
		config.ReportsDir = defaultReportsDir
	}

	return config, nil
}
