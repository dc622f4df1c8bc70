// Command condeval evaluates condition expressions from the command line.
//
// Usage:
//
//	condeval eval 'defined(LINUX) && !defined(WINDOWS)' -D LINUX
//	condeval define LINUX --db ./syms.db
//	condeval eval 'defined(LINUX)' --db ./syms.db
//
// Exit status is 0 when every expression is true, 1 when any is false,
// and 2 on error.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}

// exitError carries a non-zero exit status without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
