// Package cmd contains shared helpers for the git-editor binary.
package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
)

// OrPanic panics on error.
func OrPanic(err error) {
	if err != nil {
		log.Panic(err)
	}
}

// GetOrPanic returns the value or panics on error.
func GetOrPanic[T any](v T, err error) T {
	OrPanic(err)

	return v
}

// Prompt prints msg and reads one trimmed line from stdin.
func Prompt(msg string) (string, error) {
	fmt.Print(msg + " ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Confirm asks a y/n question and reports whether the answer is y.
func Confirm(msg string) bool {
	answer, err := Prompt(msg + " (y/n):")
	if err != nil {
		return false
	}

	return strings.EqualFold(answer, "y")
}
