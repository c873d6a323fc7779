package main

import (
	"quizzable/internal/config"
	"quizzable/internal/logger"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "quizgen",
	Short: "Generate randomized quizzes from a terms file",
	Long: "quizgen builds multiple-choice, free-response, true/false and matching\n" +
		"questions from a mapping of terms to definitions and emits them as JSON\n" +
		"for a presentation layer to render.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		return logger.Initialize(cfg.Logger)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
}
