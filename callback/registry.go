package callback

import (
	"reflect"
	"sort"
	"strconv"
)

// Key identifies a binding stored in a Registry.
//
// Keys are typically defined as package-level constants to avoid typos.
//
// Example:
//
//	const (
//	  KeyAddInt callback.Key = "addInt"
//	  KeyConcat callback.Key = "concat"
//	)
type Key string

// DuplicateKeyError is returned when Bind is called with a key that is already bound.
type DuplicateKeyError struct{ Key Key }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: callback: duplicate binding key "concat"
	return "callback: duplicate binding key " + strconv.Quote(string(e.Key))
}

// NilBindingError is returned when Bind is given a nil function value.
type NilBindingError struct{ Key Key }

// Error implements the error interface.
func (e NilBindingError) Error() string {
	return "callback: nil function bound to key " + strconv.Quote(string(e.Key))
}

// NotCallableError is returned when Bind is given a value that is not a function.
type NotCallableError struct {
	Key     Key
	GotType string
}

// Error implements the error interface.
func (e NotCallableError) Error() string {
	// Example: callback: value bound to "concat" is not a function (int)
	return "callback: value bound to " + strconv.Quote(string(e.Key)) + " is not a function (" + e.GotType + ")"
}

// MissingBindingError is returned by Lookup when no binding exists for a key.
type MissingBindingError struct{ Key Key }

// Error implements the error interface.
func (e MissingBindingError) Error() string {
	return "callback: binding " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeBindingError is returned by Lookup when the binding has a different type.
type WrongTypeBindingError struct {
	// Key is the binding key requested.
	Key Key

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeBindingError) Error() string {
	// Example: callback: binding "concat" has wrong type (callback.Combinator[int])
	return "callback: binding " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// Registry holds named function values.
//
// Values are stored loosely and retrieved with Lookup, which checks the
// exact type the caller asks for.
type Registry struct {
	items map[Key]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: map[Key]any{}}
}

// Bind stores fn under key.
//
// It fails if fn is not a function (NotCallableError), is a nil function
// (NilBindingError), or if key is already bound (DuplicateKeyError).
func Bind[F any](r *Registry, key Key, fn F) error {
	v := reflect.ValueOf(fn)
	if !v.IsValid() {
		return NotCallableError{Key: key, GotType: "nil"}
	}
	if v.Kind() != reflect.Func {
		return NotCallableError{Key: key, GotType: v.Type().String()}
	}
	if v.IsNil() {
		return NilBindingError{Key: key}
	}
	if r.items == nil {
		r.items = make(map[Key]any)
	}
	if _, exists := r.items[key]; exists {
		return DuplicateKeyError{Key: key}
	}
	r.items[key] = fn
	return nil
}

// Has reports whether a binding exists for key, regardless of type.
func (r *Registry) Has(key Key) bool {
	if r == nil || r.items == nil {
		return false
	}
	_, ok := r.items[key]
	return ok
}

// Keys returns the bound keys in sorted order.
func (r *Registry) Keys() []Key {
	if r == nil {
		return nil
	}
	keys := make([]Key, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Lookup returns the binding for key typed as F.
//
// It returns:
//   - MissingBindingError if the key is not bound
//   - WrongTypeBindingError if the stored value is not an F
func Lookup[F any](r *Registry, key Key) (F, error) {
	var zero F
	if r == nil || r.items == nil {
		return zero, MissingBindingError{Key: key}
	}
	raw, ok := r.items[key]
	if !ok {
		return zero, MissingBindingError{Key: key}
	}
	fn, ok := raw.(F)
	if !ok {
		return zero, WrongTypeBindingError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return fn, nil
}

// MustLookup returns the binding for key typed as F or panics with the
// error Lookup would have returned.
func MustLookup[F any](r *Registry, key Key) F {
	fn, err := Lookup[F](r, key)
	if err != nil {
		panic(err)
	}
	return fn
}
