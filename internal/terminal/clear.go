// Package terminal provides small helpers for terminal output control.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases previously printed text from the terminal.
// It computes how many rows the text occupied at the current terminal
// width, then moves up and clears each one with ANSI escapes. One extra
// row is cleared to account for the newline the user's Enter produced.
//
// Used to scrub credential prompts from the screen after input.
func ClearPreviousLines(textLength int) {
	termWidth := 80 // fallback when not a tty
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	rows := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if rows < 1 {
		rows = 1
	}
	rows++ // the empty line the cursor landed on after Enter

	for i := 0; i < rows; i++ {
		fmt.Print("\r\x1b[2K")
		if i < rows-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
