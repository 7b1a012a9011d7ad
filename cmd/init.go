package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tara-vision/taraplan/internal/memory"
	"github.com/tara-vision/taraplan/internal/planner"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Analyze the project and create the memory bank",
	Long: `Scans the project structure, runs a hierarchical code analysis, and asks
the model to propose the memory bank documents. Files that already exist
in memory-bank/ are never overwritten, so init is safe to re-run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlanner()
		if err != nil {
			return err
		}

		fmt.Print(renderer.WelcomeMessage())

		spin := startSpinner("analyzing project...")
		if spin != nil {
			p.Report = func(format string, args ...any) {
				spin.UpdateMessage(fmt.Sprintf(format, args...))
			}
		}
		err = p.Initialize(cmd.Context())
		stopSpinner(spin)

		var respErr *planner.ResponseError
		if errors.As(err, &respErr) {
			fmt.Println(renderer.WarningMessage("the model response could not be parsed as memory bank files"))
			fmt.Println(renderer.RawResponse(respErr.Raw))
			return err
		}
		if err != nil {
			return err
		}

		fmt.Println(renderer.SuccessMessage("memory bank is ready in " + memory.DirName + "/"))
		fmt.Println(renderer.TipMessage("review the generated files and edit anything that looks off"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
