// Package field provides a reusable validated attribute cell: a named slot
// whose every write runs a predicate before the value is stored. Declaring a
// validated field means pairing a predicate with a name at construction;
// no per-field setter logic is needed.
package field

import (
	dErrors "profilekit/pkg/domain-errors"
)

// Value is a single validated field. The name and validator are bound once,
// when the owning type constructs the cell, and never change afterwards.
// The zero Value is not usable; construct with New.
type Value[T any] struct {
	name     string
	validate func(T) bool
	value    T
	present  bool
}

// New binds a field name to its validator. The name identifies the field in
// rejection errors, so it should match the caller-visible attribute name.
func New[T any](name string, validate func(T) bool) Value[T] {
	return Value[T]{name: name, validate: validate}
}

// Name returns the bound field name.
func (v *Value[T]) Name() string { return v.name }

// Get returns the stored value and whether the field has been set. An absent
// field yields the zero value and false; reads never fail.
func (v *Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// Set validates val and stores it. A rejected write returns a
// CodeInvalidValue error naming the field and the value, and leaves the
// previously stored value (including absence) untouched.
func (v *Value[T]) Set(val T) error {
	if !v.validate(val) {
		return dErrors.InvalidValue(v.name, val)
	}
	v.value = val
	v.present = true
	return nil
}

// MustSet stores val and panics if the validator rejects it. For wiring
// values whose validity is known statically.
func (v *Value[T]) MustSet(val T) {
	if err := v.Set(val); err != nil {
		panic(err)
	}
}

// Clear returns the field to the absent state.
func (v *Value[T]) Clear() {
	var zero T
	v.value = zero
	v.present = false
}
