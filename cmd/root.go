package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tara-vision/taraplan/internal/config"
	"github.com/tara-vision/taraplan/internal/input"
	"github.com/tara-vision/taraplan/internal/llm"
	"github.com/tara-vision/taraplan/internal/memory"
	"github.com/tara-vision/taraplan/internal/planner"
	"github.com/tara-vision/taraplan/internal/ui"
)

var (
	projectDir string
	noSpinner  bool
	Version    = "dev"

	renderer = ui.NewRenderer()
)

var rootCmd = &cobra.Command{
	Use:     "taraplan",
	Version: Version,
	Short:   "Taraplan - LLM-powered implementation planner",
	Long: `Taraplan maintains a memory bank of markdown documents describing your
project and uses it to generate detailed implementation plans from task
descriptions.

Credentials are read from the environment (or a .env file in the working
directory), checking OpenAI, AWS, and Azure in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and maps failures to a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderer.ErrorMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", ".", "project root directory")
	rootCmd.PersistentFlags().BoolVar(&noSpinner, "no-spinner", false, "disable spinner animations")
}

// newPlanner resolves credentials, builds the text-generation client, and
// wires the workflow orchestrator for the selected project root.
func newPlanner() (*planner.Planner, error) {
	settings, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrNoCredentials) {
			fmt.Fprintln(os.Stderr, config.SetupInstructions)
		}
		return nil, err
	}

	client, err := llm.New(settings)
	if err != nil {
		return nil, err
	}
	fmt.Println(renderer.InfoMessage("using " + client.Name()))

	root, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, err
	}

	return &planner.Planner{
		Client: client,
		Store:  memory.NewStore(root),
		Root:   root,
		Report: func(format string, args ...any) {
			fmt.Println(renderer.Statusf(format, args...))
		},
		Confirm:     input.Confirm,
		ReadAnswers: input.ReadMultiline,
	}, nil
}

func startSpinner(message string) *ui.Spinner {
	if noSpinner {
		return nil
	}
	s := ui.NewSpinner()
	s.Start(message)
	return s
}

func stopSpinner(s *ui.Spinner) {
	if s != nil {
		s.Stop()
	}
}
