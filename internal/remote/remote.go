// Package remote models a value that arrives asynchronously: every page
// slot that is filled by a network fetch is a remote.Resource.
package remote

type state int

const (
	loading state = iota
	loaded
	failed
)

// Resource wraps an asynchronously-loaded value of type T together with a
// human-readable description of what is being fetched. The description is
// preserved across every transition so that failure and success messages
// can name the thing that was requested.
//
// Resource values are immutable; Succeed and Fail return replacements and
// callers must overwrite their stored copy.
type Resource[T any] struct {
	state state
	label string
	value T
}

// Start returns a Resource in the loading state, described by label.
func Start[T any](label string) Resource[T] {
	return Resource[T]{state: loading, label: label}
}

// Succeed returns a loaded Resource carrying value, keeping the receiver's
// description.
func (r Resource[T]) Succeed(value T) Resource[T] {
	return Resource[T]{state: loaded, label: r.label, value: value}
}

// Fail returns a failed Resource, keeping the receiver's description.
func (r Resource[T]) Fail() Resource[T] {
	return Resource[T]{state: failed, label: r.label}
}

// Peek returns the loaded value. The second return value is true iff the
// Resource is in the loaded state.
func (r Resource[T]) Peek() (T, bool) {
	if r.state != loaded {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Loading reports whether the fetch is still in flight.
func (r Resource[T]) Loading() bool {
	return r.state == loading
}

// Failed reports whether the fetch failed.
func (r Resource[T]) Failed() bool {
	return r.state == failed
}

// Label returns the description given to Start.
func (r Resource[T]) Label() string {
	return r.label
}
