package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gamely/cubegames/games"
)

var (
	limitsFile string
	pageLength int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cubegames",
	Short: "Evaluate cube game record files",
	Long: `cubegames reads a text file of game records of the shape

  Game <id>: <count> <color>, <count> <color>; <count> <color>, ...

and aggregates them into a single integer.

Modes:
  validity - sum of the ids of the games that stay within the cube limits
  power    - sum of the per-game products of the per-color maximum counts`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&limitsFile, "limits", "", "TOML file overriding the per-color cube limits")
	rootCmd.PersistentFlags().IntVar(&pageLength, "page-length", 0, "diagnostic page size for line coordinates (default: whole file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit the evaluation trace")
}

func setup(cmd *cobra.Command, args []string) error {
	// a missing .env file is fine, the environment still applies
	_ = godotenv.Load()

	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		level = lvl
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	return nil
}

// newEvaluator builds the evaluator the subcommands share,
// applying the limits file and page length flags.
func newEvaluator() (*games.Evaluator, error) {
	e := games.NewEvaluator()
	e.PageLength = pageLength
	e.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if limitsFile != "" {
		limits, err := games.LoadLimits(limitsFile)
		if err != nil {
			return nil, err
		}
		e.Limits = limits
	}

	return e, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
