// Package input provides terminal input helpers that stay testable: the
// core readers take an io.Reader and a sentinel instead of assuming a tty.
package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/manifoldco/promptui"
)

// Sentinel terminates free-form multi-line input.
const Sentinel = "EXIT"

// ReadUntilSentinel reads lines from r until a line equals the sentinel
// (after trimming whitespace) or EOF, and returns the accumulated text.
func ReadUntilSentinel(r io.Reader, sentinel string) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == sentinel {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ReadMultiline collects free text from the user, terminated by the
// sentinel on its own line. On a terminal it uses readline for editing
// support; otherwise it falls back to plain reads from stdin, so piped
// input works the same way.
func ReadMultiline() (string, error) {
	if !readline.DefaultIsTerminal() {
		return ReadUntilSentinel(os.Stdin, Sentinel)
	}

	rl, err := readline.New("")
	if err != nil {
		return "", err
	}
	defer rl.Close()

	var sb strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		if strings.TrimSpace(line) == Sentinel {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Confirm asks a yes/no question and reports whether the user agreed.
// A declined or aborted prompt both count as "no".
func Confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}
