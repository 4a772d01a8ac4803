// Package session drives a bounded stack from parsed user commands.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ChainSafe/stackapp/common/lifo"
	"github.com/ChainSafe/stackapp/parser"
)

// Outcome represents what a command did to the stack.
type Outcome string

const (
	OutcomePushed  Outcome = "pushed"
	OutcomePopped  Outcome = "popped"
	OutcomeFull    Outcome = "full"
	OutcomeEmpty   Outcome = "empty"
	OutcomeInvalid Outcome = "invalid"
	OutcomeQuit    Outcome = "quit"
)

// Result describes a single executed command. Value holds the pushed or
// popped value, Message the line shown to the user.
type Result struct {
	Op       parser.Op `json:"op,omitempty"`
	Value    int       `json:"value"`
	Outcome  Outcome   `json:"outcome"`
	Message  string    `json:"message"`
	Contents string    `json:"contents"`
}

// Quit reports whether the session should end.
func (r Result) Quit() bool {
	return r.Outcome == OutcomeQuit
}

// Snapshot is the view of a session handed to renderers.
type Snapshot struct {
	Result   Result `json:"result"`
	Values   []int  `json:"values"` // bottom to top
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
}

// Session owns one stack for its whole lifetime. It is not safe for concurrent use.
type Session struct {
	stack *lifo.Stack
	last  Result
	log   *zap.SugaredLogger
}

// New creates a session over an empty stack of the given capacity.
func New(capacity int, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	stack := lifo.New(capacity)
	return &Session{
		stack: stack,
		log:   log,
		last: Result{
			Message:  "Ready. Enter a command.",
			Contents: stack.Contents(),
		},
	}
}

// Exec parses and applies a command line. Parse failures come back as an
// OutcomeInvalid result, never as an error.
func (s *Session) Exec(line string) Result {
	cmd, err := parser.Parse(line)
	if err != nil {
		s.log.Debugw("rejected command", "line", line, "error", err)
		return s.record(Result{
			Outcome:  OutcomeInvalid,
			Message:  capitalize(err.Error()),
			Contents: s.stack.Contents(),
		})
	}
	return s.Apply(cmd)
}

// Apply runs an already parsed command against the stack.
func (s *Session) Apply(cmd parser.Command) Result {
	res := Result{Op: cmd.Op}
	switch cmd.Op {
	case parser.OpPush:
		res.Value = cmd.Value
		if s.stack.Push(cmd.Value) {
			res.Outcome = OutcomePushed
			res.Message = fmt.Sprintf("%d is pushed. Stack %s", cmd.Value, s.stack.Contents())
		} else {
			res.Outcome = OutcomeFull
			res.Message = fmt.Sprintf("Stack is FULL. Stack %s", s.stack.Contents())
			s.log.Infow("push rejected, stack full", "value", cmd.Value, "capacity", s.stack.Cap())
		}
	case parser.OpPop:
		if val, ok := s.stack.Pop(); ok {
			res.Value = val
			res.Outcome = OutcomePopped
			res.Message = fmt.Sprintf("%d is popped. Stack %s", val, s.stack.Contents())
		} else {
			res.Outcome = OutcomeEmpty
			res.Message = fmt.Sprintf("Stack is EMPTY. Stack %s", s.stack.Contents())
			s.log.Infow("pop rejected, stack empty")
		}
	case parser.OpQuit:
		res.Outcome = OutcomeQuit
		res.Message = "Exiting application..."
	default:
		res.Outcome = OutcomeInvalid
		res.Message = fmt.Sprintf("Unsupported operation %q", cmd.Op)
	}
	res.Contents = s.stack.Contents()
	s.log.Debugw("applied command", "command", cmd.String(), "outcome", res.Outcome, "contents", res.Contents)
	return s.record(res)
}

// Snapshot returns the current stack state together with the last result.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Result:   s.last,
		Values:   s.stack.Values(),
		Size:     s.stack.Size(),
		Capacity: s.stack.Cap(),
	}
}

// Contents returns the rendered stack, e.g. "[2 4]".
func (s *Session) Contents() string {
	return s.stack.Contents()
}

func (s *Session) record(res Result) Result {
	s.last = res
	return res
}

func capitalize(msg string) string {
	if msg == "" || msg[0] < 'a' || msg[0] > 'z' {
		return msg
	}
	return string(msg[0]-'a'+'A') + msg[1:]
}
