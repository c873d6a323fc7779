package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"quizzable/internal/domain"
	"quizzable/internal/logger"
	"quizzable/internal/quizgen"
	"quizzable/internal/termfile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz from a terms file and print it as JSON",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("terms", "", "Path to a YAML or JSON terms file (required)")
	generateCmd.Flags().Int("length", 0, "Number of questions (defaults from config)")
	generateCmd.Flags().StringSlice("types", nil, "Question types to draw from: mcq,frq,tf,match")
	generateCmd.Flags().String("answer-with", "", "Answer orientation: def, term or both")
	generateCmd.Flags().Int("n-options", 0, "Options per MCQ question")
	generateCmd.Flags().Int("n-terms", 0, "Terms per matching question")
	generateCmd.Flags().Int64("seed", 0, "Random seed for reproducible quizzes (defaults to the current time)")
	generateCmd.Flags().String("output", "", "Write the quiz JSON to a file instead of stdout")
	_ = generateCmd.MarkFlagRequired("terms")
}

// paramsFromFlags merges config defaults with any flags the user set.
func paramsFromFlags(cmd *cobra.Command) quizgen.Params {
	gen := cfg.Generation

	params := quizgen.Params{
		Length:     gen.Length,
		AnswerWith: domain.AnswerWith(gen.AnswerWith),
		NOptions:   gen.NOptions,
		NTerms:     gen.NTerms,
	}
	typeNames := gen.Types
	if cmd.Flags().Changed("types") {
		typeNames, _ = cmd.Flags().GetStringSlice("types")
	}
	for _, name := range typeNames {
		params.Types = append(params.Types, domain.QuestionType(name))
	}

	if cmd.Flags().Changed("length") {
		params.Length, _ = cmd.Flags().GetInt("length")
	}
	if cmd.Flags().Changed("answer-with") {
		answerWith, _ := cmd.Flags().GetString("answer-with")
		params.AnswerWith = domain.AnswerWith(answerWith)
	}
	if cmd.Flags().Changed("n-options") {
		params.NOptions, _ = cmd.Flags().GetInt("n-options")
	}
	if cmd.Flags().Changed("n-terms") {
		params.NTerms, _ = cmd.Flags().GetInt("n-terms")
	}
	return params
}

func runGenerate(cmd *cobra.Command, args []string) error {
	termsPath, _ := cmd.Flags().GetString("terms")
	terms, err := termfile.Load(termsPath)
	if err != nil {
		return err
	}

	generator := quizgen.New()
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		generator = quizgen.NewWithRand(rand.New(rand.NewSource(seed)))
	}

	params := paramsFromFlags(cmd)
	quiz, err := generator.GetQuiz(terms, params)
	if err != nil {
		return err
	}

	logger.Get().Info("Quiz generated",
		zap.String("quizID", quiz.ID),
		zap.Int("length", quiz.Len()),
		zap.String("terms", termsPath),
	)

	payload, err := json.MarshalIndent(quiz.ToList(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode quiz: %w", err)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		return os.WriteFile(output, payload, 0o644)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return err
}
