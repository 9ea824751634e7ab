// Package cli provides small interactive helpers for skillsync commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question with the given default, reading the
// answer from in. Returns true for yes, false for no.
func Confirm(out io.Writer, in io.Reader, prompt string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}

	fmt.Fprintf(out, "%s %s ", prompt, suffix)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}
