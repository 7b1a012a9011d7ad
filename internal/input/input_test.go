package input

import (
	"strings"
	"testing"
)

func TestReadUntilSentinel(t *testing.T) {
	r := strings.NewReader("first line\nsecond line\nEXIT\nafter sentinel\n")

	text, err := ReadUntilSentinel(r, Sentinel)
	if err != nil {
		t.Fatalf("ReadUntilSentinel failed: %v", err)
	}
	if text != "first line\nsecond line\n" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestReadUntilSentinelTrimsWhitespace(t *testing.T) {
	r := strings.NewReader("answer\n  EXIT  \nignored\n")

	text, err := ReadUntilSentinel(r, Sentinel)
	if err != nil {
		t.Fatalf("ReadUntilSentinel failed: %v", err)
	}
	if text != "answer\n" {
		t.Errorf("Sentinel with surrounding whitespace not honored: %q", text)
	}
}

func TestReadUntilSentinelEOF(t *testing.T) {
	r := strings.NewReader("only line, no sentinel")

	text, err := ReadUntilSentinel(r, Sentinel)
	if err != nil {
		t.Fatalf("ReadUntilSentinel failed: %v", err)
	}
	if text != "only line, no sentinel\n" {
		t.Errorf("Unexpected text at EOF: %q", text)
	}
}

func TestReadUntilSentinelEmptyInput(t *testing.T) {
	text, err := ReadUntilSentinel(strings.NewReader(""), Sentinel)
	if err != nil {
		t.Fatalf("ReadUntilSentinel failed: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty result, got %q", text)
	}
}
