package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose bool
	logger  = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "diagoku",
	Short: "Solve diagonal Sudoku puzzles",
	Long: `diagoku solves 9×9 diagonal Sudoku puzzles: the standard row, column,
and box constraints plus the two main diagonals, each of which must also
contain every digit 1-9 exactly once.

Puzzles are 81-character strings, '1'-'9' for givens and '.' for blanks.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// initConfig wires flag defaults through viper: values can come from
// DIAGOKU_* environment variables or an optional ~/.diagoku.yaml.
func initConfig() {
	viper.SetEnvPrefix("diagoku")
	viper.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".diagoku")
		viper.SetConfigType("yaml")
		// A missing config file is fine; only report parse failures.
		if err := viper.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				logger.WithError(err).Warn("could not read config file")
			}
		}
	}

	if verbose || viper.GetBool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
}
