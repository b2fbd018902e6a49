// Package listops implements the head and tail list operations.
package listops

import "strings"

// Operation is a list slicing operation selected by the request path
type Operation string

const (
	OpHead Operation = "head"
	OpTail Operation = "tail"
)

// FromPath selects the operation from the path suffix, ignoring case.
// It returns false when the path names neither operation.
func FromPath(path string) (Operation, bool) {
	path = strings.ToLower(path)
	switch {
	case strings.HasSuffix(path, "/head"):
		return OpHead, true
	case strings.HasSuffix(path, "/tail"):
		return OpTail, true
	default:
		return "", false
	}
}

// Apply runs the operation on list
func (op Operation) Apply(list []string, n int) []string {
	if op == OpTail {
		return Tail(list, n)
	}
	return Head(list, n)
}

// Head returns the first n items of list in order. The result shares the
// backing array of list and is never nil.
func Head(list []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	if list == nil {
		return []string{}
	}
	return list[:n]
}

// Tail returns the last n items of list in order. The result shares the
// backing array of list and is never nil.
func Tail(list []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	if list == nil {
		return []string{}
	}
	return list[len(list)-n:]
}
