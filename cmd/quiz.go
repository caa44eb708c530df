package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/scholar/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Inspect and author quiz items",
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored quiz items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := openDeps(ctx, cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		items, err := d.quizzes.FetchAll(ctx)
		if err != nil {
			return fmt.Errorf("fetch quizzes: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No quizzes found.")
			return nil
		}

		for i, it := range items {
			fmt.Printf("%d. %s\n", i+1, it.Question)
			for j, o := range it.Options {
				mark := " "
				if it.IsCorrect(o) {
					mark = "✓"
				}
				fmt.Printf("   %s %d) %s\n", mark, j+1, o)
			}
			if !it.HasAnswerOption() {
				fmt.Printf("   ! correct answer %q is not one of the options\n", it.CorrectAnswer)
			}
		}
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%d item(s)\n", len(items))
		return nil
	},
}

var quizAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one quiz item",
	RunE: func(cmd *cobra.Command, args []string) error {
		var it quiz.Item
		it.Question, _ = cmd.Flags().GetString("question")
		options, _ := cmd.Flags().GetStringArray("option")
		it.CorrectAnswer, _ = cmd.Flags().GetString("answer")

		if len(options) != quiz.OptionCount {
			return fmt.Errorf("exactly %d --option values are required, got %d", quiz.OptionCount, len(options))
		}
		copy(it.Options[:], options)

		ctx := cmd.Context()
		d, err := openDeps(ctx, cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.quizzes.Submit(ctx, it); err != nil {
			return fmt.Errorf("add quiz: %w", err)
		}
		fmt.Println("Quiz added successfully!")
		return nil
	},
}

var quizImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add quiz items from a YAML seed file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := quiz.LoadSeed(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		d, err := openDeps(ctx, cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		added := 0
		for i, it := range items {
			if err := d.quizzes.Submit(ctx, it); err != nil {
				return fmt.Errorf("item %d (%q): %w (%d added before failure)", i+1, it.Question, err, added)
			}
			added++
		}
		fmt.Printf("Imported %d quiz item(s).\n", added)
		return nil
	},
}

func init() {
	quizAddCmd.Flags().String("question", "", "Question text")
	quizAddCmd.Flags().StringArray("option", nil, "Answer option (repeat four times)")
	quizAddCmd.Flags().String("answer", "", "Correct answer")

	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizAddCmd)
	quizCmd.AddCommand(quizImportCmd)
}
