package booking

import (
	"encoding/json"
	"fmt"
	"log"
)

// collection is the typed view over a RecordStore shared by the hotel,
// customer and reservation repositories. Every call loads fresh from the
// store; nothing is cached.
type collection[T any] struct {
	kind   Kind
	store  RecordStore
	logger *log.Logger
	decode func(json.RawMessage) (T, error)
	idOf   func(T) string
}

func (c collection[T]) lookup(records Records, id string) Lookup[T] {
	raw, ok := records[id]
	if !ok {
		return Lookup[T]{Status: Missing}
	}
	v, err := decodeAt(raw, id, c.decode, c.idOf)
	if err != nil {
		warnf(c.logger, "%s record %q malformed: %v", c.kind, id, err)
		return Lookup[T]{Status: Malformed, Cause: err}
	}
	return Lookup[T]{Value: v, Status: Found}
}

func (c collection[T]) get(id string) Lookup[T] {
	return c.lookup(c.store.Load(), id)
}

// insert adds a new record, refusing ids that are already taken.
func (c collection[T]) insert(id string, v T) error {
	if id == "" {
		return fail(c.logger, emptyID(c.kind))
	}
	records := c.store.Load()
	if _, ok := records[id]; ok {
		return fail(c.logger, duplicate(c.kind, id))
	}
	return c.put(records, id, v)
}

// put writes v under id into records and saves the whole collection.
func (c collection[T]) put(records Records, id string, v T) error {
	raw, err := encodeJSON(v, "")
	if err != nil {
		return fail(c.logger, fmt.Errorf("encode %s %q: %w", c.kind, id, err))
	}
	records[id] = raw
	if err := c.store.Save(records); err != nil {
		return fail(c.logger, err)
	}
	return nil
}

// modify decodes the stored record, lets fn change it, and writes it back.
func (c collection[T]) modify(id string, fn func(*T) error) error {
	records := c.store.Load()
	l := c.lookup(records, id)
	if err := l.Err(c.kind, id); err != nil {
		return fail(c.logger, err)
	}
	v := l.Value
	if err := fn(&v); err != nil {
		return fail(c.logger, err)
	}
	return c.put(records, id, v)
}

func (c collection[T]) remove(id string) error {
	records := c.store.Load()
	if _, ok := records[id]; !ok {
		return fail(c.logger, notFound(c.kind, id))
	}
	delete(records, id)
	if err := c.store.Save(records); err != nil {
		return fail(c.logger, err)
	}
	return nil
}

// all returns every well-formed record, ordered by id. Malformed records are
// skipped with a warning.
func (c collection[T]) all() []T {
	records := c.store.Load()
	out := make([]T, 0, len(records))
	for _, id := range records.IDs() {
		if l := c.lookup(records, id); l.Ok() {
			out = append(out, l.Value)
		}
	}
	return out
}
