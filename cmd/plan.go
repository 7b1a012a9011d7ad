package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tara-vision/taraplan/internal/planner"
	"github.com/tara-vision/taraplan/internal/ui"
)

var clarifyFlag bool

var planCmd = &cobra.Command{
	Use:   "plan <task-file>",
	Short: "Generate an implementation plan for a task description",
	Long: `Reads a markdown task description, combines it with the memory bank and
the current project structure, and appends a generated implementation
plan to the file. With --clarify the model first asks up to three
clarifying questions and your answers are folded into the task.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlanner()
		if err != nil {
			return err
		}

		fmt.Print(renderer.MemoryBankMessage(p.Store.Exists()))

		taskPath := args[0]
		planText, err := p.Plan(cmd.Context(), taskPath, clarifyFlag)
		switch {
		case errors.Is(err, planner.ErrNeedsClarification):
			// Not a failure: the user chose (or needs) to refine first.
			fmt.Println(renderer.TipMessage("update your task description and run 'taraplan plan' again"))
			return nil
		case errors.Is(err, planner.ErrNoMemoryBank):
			fmt.Println(renderer.TipMessage("run 'taraplan init' to create the memory bank first"))
			return err
		case err != nil:
			return err
		}

		fmt.Println(renderer.SuccessMessage("plan appended to " + taskPath))
		fmt.Println()
		ui.PrintMarkdown(planText)
		return nil
	},
}

func init() {
	planCmd.Flags().BoolVar(&clarifyFlag, "clarify", false, "ask clarifying questions before planning")
	rootCmd.AddCommand(planCmd)
}
