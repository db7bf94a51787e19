// Package assert provides panicking invariant checks for conditions that can
// only fail through a programming error. Build with the assertions_disabled
// tag to compile every check down to a no-op.
package assert

import "fmt"

// message renders the optional args passed to an assertion:
//   - if the first arg is a string, it's used as a format string with the remaining args;
//   - otherwise, all args are included in the message.
func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
