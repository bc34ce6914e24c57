package domain

import (
	"encoding/json"
	"fmt"
)

// Ref is a relationship field that the data service serializes either as
// a bare document id or as the expanded document, depending on populate
// depth. Business logic checks Expanded instead of duck-typing the wire
// shape at each use site.
type Ref[T any] struct {
	id  string
	doc *T
}

// IDRef returns a reference holding only the document id.
func IDRef[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

// ExpandedRef returns a reference holding the full document.
func ExpandedRef[T any](id string, doc T) Ref[T] {
	return Ref[T]{id: id, doc: &doc}
}

// ID returns the referenced document id. Always available.
func (r Ref[T]) ID() string {
	return r.id
}

// Expanded returns the populated document and whether it is present.
func (r Ref[T]) Expanded() (T, bool) {
	if r.doc == nil {
		var zero T
		return zero, false
	}
	return *r.doc, true
}

// IsZero reports whether the reference points at nothing.
func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.doc == nil
}

// MarshalJSON writes the bare id, which is the shape the data service
// expects on create and update.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.id)
}

// UnmarshalJSON accepts either a bare id string or an expanded document
// object carrying an "id" field.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.id = id
		r.doc = nil
		return nil
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("reference is neither an id nor a document: %w", err)
	}

	var envelope struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	r.id = envelope.ID
	r.doc = &doc
	return nil
}
