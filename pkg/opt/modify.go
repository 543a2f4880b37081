package opt

// Insert stores value in the option, overwriting whatever was there, and
// returns a pointer to it.
func (o *Option[T]) Insert(value T) *T {
	o.Value = &value

	return o.Value
}

// GetOrInsert stores value in the option only if it is currently None, then
// returns a pointer to the contained value either way.
func (o *Option[T]) GetOrInsert(value T) *T {
	if o.IsNone() {
		o.Value = &value
	}

	return o.Value
}

// GetOrInsertDefault stores T's zero value in the option if it is
// currently None, then returns a pointer to the contained value.
func (o *Option[T]) GetOrInsertDefault() *T {
	if o.IsNone() {
		o.Value = new(T)
	}

	return o.Value
}

// GetOrInsertWith stores the result of f in the option if it is currently
// None, then returns a pointer to the contained value.
func (o *Option[T]) GetOrInsertWith(f func() T) *T {
	if o.IsNone() {
		v := f()

		o.Value = &v
	}

	return o.Value
}

// Take empties o, returning what it held beforehand.
func (o *Option[T]) Take() Option[T] {
	opt := Option[T]{o.Value}

	o.Value = nil

	return opt
}

// TakeIf empties o and returns what it held, but only if o is Some and the
// predicate accepts the contained value; otherwise it returns None and
// leaves o untouched.
func (o *Option[T]) TakeIf(f func(T) bool) Option[T] {
	if o.IsSome() && f(*o.Value) {
		return o.Take()
	}

	return None[T]()
}

// Replace swaps value into o, returning whatever o held beforehand.
func (o *Option[T]) Replace(value T) Option[T] {
	opt := Option[T]{o.Value}

	o.Value = &value

	return opt
}
