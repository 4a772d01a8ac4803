// Package parser turns user command lines into stack operations.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Op identifies the operation a command performs
type Op string

const (
	OpPush Op = "push"
	OpPop  Op = "pop"
	OpQuit Op = "quit"
)

var (
	ErrEmptyCommand   = errors.New("please enter a command (push X, pop, or quit)")
	ErrUnknownCommand = errors.New("invalid command. Use: push X (0-9), pop, or quit")
	ErrPushFormat     = errors.New("invalid push format. Use: push X (where X is 0-9)")
	ErrMissingSpace   = errors.New("Format Error")
	ErrInvalidValue   = errors.New("Error: Value must be a single digit (0-9)")
)

// Command is a parsed command line. Value is only meaningful for OpPush.
type Command struct {
	Op    Op  `json:"op"`
	Value int `json:"value,omitempty"`
}

// Parse reads a single command line. Matching is case-insensitive, tokens may
// be separated by any run of whitespace, and trailing tokens after pop and quit
// are ignored. A glued "push8" gets its own hint instead of the generic
// unknown-command error.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	switch op := fields[0]; {
	case op == string(OpPush):
		return parsePush(fields)
	case op == string(OpPop):
		return Command{Op: OpPop}, nil
	case op == string(OpQuit):
		return Command{Op: OpQuit}, nil
	case len(fields) == 1 && strings.HasPrefix(op, string(OpPush)):
		// "push8"
		attempted := strings.TrimPrefix(op, string(OpPush))
		return Command{}, fmt.Errorf("%w: Missing space between 'push' and '%s'. Use: push %s",
			ErrMissingSpace, attempted, attempted)
	default:
		return Command{}, ErrUnknownCommand
	}
}

func parsePush(fields []string) (Command, error) {
	if len(fields) != 2 {
		return Command{}, ErrPushFormat
	}
	value := fields[1]
	if len(value) != 1 || value[0] < '0' || value[0] > '9' {
		return Command{}, ErrInvalidValue
	}
	return Command{Op: OpPush, Value: int(value[0] - '0')}, nil
}

// String renders the command back into its canonical form.
func (c Command) String() string {
	if c.Op == OpPush {
		return fmt.Sprintf("push %d", c.Value)
	}
	return string(c.Op)
}
