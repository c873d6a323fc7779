package main

import (
	"encoding/json"
	"fmt"
	"os"

	"quizzable/internal/domain"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a candidate answer against a serialized question",
	Long: "check reconstructs a question from its JSON form and compares the given\n" +
		"candidate against the stored answer. For matching questions the candidate\n" +
		"must be a JSON object pairing terms with definitions.",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("question", "", "Path to a JSON file holding one serialized question (required)")
	checkCmd.Flags().String("answer", "", "Candidate answer (required)")
	_ = checkCmd.MarkFlagRequired("question")
	_ = checkCmd.MarkFlagRequired("answer")
}

// checkResult is the JSON shape printed by the check command.
type checkResult struct {
	Matched bool `json:"matched"`
	Correct any  `json:"correct"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	questionPath, _ := cmd.Flags().GetString("question")
	raw, err := os.ReadFile(questionPath)
	if err != nil {
		return fmt.Errorf("failed to read question file: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("question file is not a valid JSON object: %w", err)
	}
	question, err := domain.QuestionFromDict(data)
	if err != nil {
		return err
	}

	answerFlag, _ := cmd.Flags().GetString("answer")
	var candidate any = answerFlag
	if question.Type() == domain.TypeMatch {
		pairing := map[string]string{}
		if err := json.Unmarshal([]byte(answerFlag), &pairing); err != nil {
			return fmt.Errorf("matching answers must be a JSON object: %w", err)
		}
		candidate = pairing
	}

	matched, correct := question.CheckAnswer(candidate)
	payload, err := json.MarshalIndent(checkResult{Matched: matched, Correct: correct}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return err
}
