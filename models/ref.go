package models

import "encoding/json"

// Referenced is implemented by taxonomy records that can appear inside a Ref.
type Referenced interface {
	RefKey() string
}

// Ref is a reference field that the backend serves in two shapes: a bare
// identifier string, or the populated record itself. Key() is the single
// normalization point — every identifier comparison in the codebase goes
// through it.
type Ref[T Referenced] struct {
	ID    string
	Value *T
}

// Key returns the referenced identifier regardless of shape.
func (r Ref[T]) Key() string {
	if r.Value != nil {
		return (*r.Value).RefKey()
	}
	return r.ID
}

// Populated returns the embedded record when the backend sent one.
func (r Ref[T]) Populated() (T, bool) {
	if r.Value != nil {
		return *r.Value, true
	}
	var zero T
	return zero, false
}

// IsZero reports whether the field was absent or null.
func (r Ref[T]) IsZero() bool {
	return r.ID == "" && r.Value == nil
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref[T]{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.Value = &v
	r.ID = v.RefKey()
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Value != nil {
		return json.Marshal(r.Value)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
