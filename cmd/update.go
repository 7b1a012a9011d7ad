package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tara-vision/taraplan/internal/input"
	"github.com/tara-vision/taraplan/internal/memory"
	"github.com/tara-vision/taraplan/internal/planner"
)

var updateCmd = &cobra.Command{
	Use:   "update <file>",
	Short: "Merge new insights into one memory bank document",
	Long: `Collects free-form insights from you and has the model rewrite the named
memory bank document to incorporate them, preferring the new information
when it conflicts with the old.

Valid names: ` + strings.Join(memory.CanonicalNames, ", "),
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		if !memory.IsCanonical(args[0]) {
			return fmt.Errorf("unknown memory file %q, valid names: %s",
				args[0], strings.Join(memory.CanonicalNames, ", "))
		}
		return nil
	},
	ValidArgs: memory.CanonicalNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlanner()
		if err != nil {
			return err
		}

		name := args[0]
		if err := p.ValidateUpdate(name); err != nil {
			if errors.Is(err, planner.ErrNoMemoryBank) {
				fmt.Println(renderer.TipMessage("run 'taraplan init' to create the memory bank first"))
			}
			return err
		}

		fmt.Println(renderer.InfoMessage(fmt.Sprintf(
			"enter the new insights for '%s.md' (type '%s' on a new line when finished):", name, input.Sentinel)))

		insights, err := input.ReadMultiline()
		if err != nil {
			return err
		}
		if strings.TrimSpace(insights) == "" {
			fmt.Println(renderer.WarningMessage("no insights entered, nothing to update"))
			return nil
		}

		spin := startSpinner(fmt.Sprintf("updating %s.md...", name))
		err = p.Update(cmd.Context(), name, insights)
		stopSpinner(spin)

		if errors.Is(err, planner.ErrNoMemoryBank) {
			fmt.Println(renderer.TipMessage("run 'taraplan init' to create the memory bank first"))
			return err
		}
		if err != nil {
			return err
		}

		fmt.Println(renderer.SuccessMessage(fmt.Sprintf("%s.md updated", name)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
