package nina

import "encoding/json"

// Optional wraps a value that may be absent from an inbound payload, so
// keep-vs-override decisions are type checked instead of inferred from zero
// values. A JSON null decodes as present-but-zero, matching the partial
// update semantics where null leaves the attribute unchanged.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Present reports whether the field appeared in the payload.
func (o Optional[T]) Present() bool {
	return o.set
}

// OrZero returns the value, or the zero value when absent.
func (o Optional[T]) OrZero() T {
	return o.value
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		var zero T
		o.value = zero
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
