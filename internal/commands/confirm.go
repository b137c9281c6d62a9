package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm writes prompt to out and reads one line from in.
// Only "y" or "yes" (any case) confirm; EOF declines.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	if in == nil {
		fmt.Fprintln(out)
		return false
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
