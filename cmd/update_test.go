package cmd

import (
	"strings"
	"testing"

	"github.com/tara-vision/taraplan/internal/memory"
)

func TestUpdateArgsValidation(t *testing.T) {
	for _, name := range memory.CanonicalNames {
		if err := updateCmd.Args(updateCmd, []string{name}); err != nil {
			t.Errorf("Expected %s to be accepted, got %v", name, err)
		}
	}

	err := updateCmd.Args(updateCmd, []string{"random-notes"})
	if err == nil {
		t.Fatal("Expected non-canonical name to be rejected")
	}
	if !strings.Contains(err.Error(), "brief") {
		t.Errorf("Error should list valid names, got: %v", err)
	}

	if err := updateCmd.Args(updateCmd, nil); err == nil {
		t.Error("Expected missing argument to be rejected")
	}
	if err := updateCmd.Args(updateCmd, []string{"brief", "progress"}); err == nil {
		t.Error("Expected extra arguments to be rejected")
	}
}
