// Package lifo implements a bounded lifo stack of integers
package lifo

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultCapacity is the number of slots a stack gets when no capacity is given.
const DefaultCapacity = 3

// Stack is a fixed-capacity LIFO stack backed by a preallocated buffer.
// It is not safe for concurrent use.
type Stack struct {
	data []int
	top  int // index of the top element, -1 when empty
}

// New creates an empty stack holding at most capacity items.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		data: make([]int, capacity),
		top:  -1,
	}
}

// Push adds a value on top of the stack. It returns false, leaving the
// stack untouched, when the stack is full.
func (s *Stack) Push(value int) bool {
	if s.IsFull() {
		return false
	}
	s.top++
	s.data[s.top] = value
	return true
}

// Pop removes and returns the top value. ok is false when the stack is empty.
func (s *Stack) Pop() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	val := s.data[s.top]
	s.top--
	return val, true
}

// Peek returns the top value without removing it
func (s *Stack) Peek() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.data[s.top], true
}

// Size returns the number of items in the stack
func (s *Stack) Size() int {
	return s.top + 1
}

// Cap returns the fixed capacity of the stack
func (s *Stack) Cap() int {
	return len(s.data)
}

// IsEmpty checks if the stack is empty
func (s *Stack) IsEmpty() bool {
	return s.top < 0
}

// IsFull checks if the stack holds Cap() items
func (s *Stack) IsFull() bool {
	return s.Size() == len(s.data)
}

// Clear drops every item, keeping the capacity.
func (s *Stack) Clear() {
	s.top = -1
}

// Values returns a copy of the items ordered from bottom to top.
func (s *Stack) Values() []int {
	return append([]int{}, s.data[:s.Size()]...)
}

// Contents renders the stack bottom to top, e.g. "[5 3 7]", or "[ ]" when empty.
func (s *Stack) Contents() string {
	if s.IsEmpty() {
		return "[ ]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i <= s.top; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(s.data[i]))
	}
	b.WriteByte(']')
	return b.String()
}

// String implements fmt.Stringer.
func (s *Stack) String() string {
	return s.Contents()
}

// ParseContents reads back the output of Contents. Both "[ ]" and "[]"
// denote an empty stack.
func ParseContents(contents string) ([]int, error) {
	trimmed := strings.TrimSpace(contents)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return nil, fmt.Errorf("malformed stack contents %q: missing brackets", contents)
	}
	fields := strings.Fields(trimmed[1 : len(trimmed)-1])
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("malformed stack contents %q: %w", contents, err)
		}
		values = append(values, v)
	}
	return values, nil
}
