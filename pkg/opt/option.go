// Package opt declares a generic optional value, used where a Builder
// parameter is genuinely absent rather than zero (the pre-allocation
// capacity hint taken by NewBuilder).
package opt

import "fmt"

// Option represents an optional value of type T: every Option is either
// Some and holds a value, or None and holds nothing.
type Option[T any] struct {
	Value *T
}

// Some wraps value as a present option.
func Some[T any](value T) Option[T] { return Option[T]{&value} }

// None returns an absent option of type T.
func None[T any]() Option[T] { return Option[T]{nil} }

// Wrap adapts an existing pointer into an Option, sharing its storage
// rather than copying.
func Wrap[T any](value *T) Option[T] { return Option[T]{value} }

func (o Option[T]) String() string {
	if o.IsSome() {
		return fmt.Sprintf("Some(%v)", o.unwrap())
	}

	return "None"
}

// Returns true if the option is a Some value.
func (o Option[T]) IsSome() bool { return o.Value != nil }

// Returns true if the option is a Some and the value inside of it matches a predicate.
func (o Option[T]) IsSomeAnd(f func(T) bool) bool { return o.IsSome() && f(o.unwrap()) }

// Returns true if the option is a None value.
func (o Option[T]) IsNone() bool { return o.Value == nil }

// Returns true if the option is a None or the value inside of it matches a predicate.
func (o Option[T]) IsNoneOr(f func(T) bool) bool { return o.IsNone() || f(o.unwrap()) }

// Returns the contained Some value, orp panics if the value is a None with a custom panic message provided by msg.
func (o Option[T]) Expect(msg string) T {
	if o.IsNone() {
		panic(msg)
	}

	return o.unwrap()
}

// Returns the contained Some value.
func (o Option[T]) Unwrap() T {
	return o.Expect("called `Option.Unwrap()` on a `None` value")
}

// Returns the contained Some value or a provided default.
func (o Option[T]) UnwrapOr(def T) T {
	if o.Value == nil {
		return def
	}

	return o.unwrap()
}

// Returns the contained Some value or computes it from a closure.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.Value == nil {
		return f()
	}

	return o.unwrap()
}

// Returns the contained Some value or a default.
func (o Option[T]) UnwrapOrDefault() (v T) {
	if o.Value != nil {
		v = o.unwrap()
	}

	return
}

func (o Option[T]) unwrap() T { return *o.Value }
