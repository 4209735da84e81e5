package mdq

import "fmt"

// Item wraps one match handle from the backend. Attribute values are fetched
// lazily, one access at a time; nothing is materialized up front. Items are
// created by the executor and are only valid while their owning Results are
// open.
type Item struct {
	match Match
	owner *Results
}

// Attribute fetches the value for key from the backend. An attribute the
// index did not populate yields an absent Value and no error.
func (it *Item) Attribute(key Key) (Value, error) {
	if !it.owner.valid() {
		return Value{}, ErrItemInvalid
	}
	raw, ok, err := it.match.Attribute(string(key))
	if err != nil {
		return Value{}, fmt.Errorf("attribute %s: %w", key, err)
	}
	if !ok {
		return Absent(), nil
	}
	return valueFromRaw(raw), nil
}

// AttributeNames lists the keys the index actually populated for this item.
// The set varies per item; every returned key is resolvable via Attribute.
func (it *Item) AttributeNames() ([]Key, error) {
	if !it.owner.valid() {
		return nil, ErrItemInvalid
	}
	names, err := it.match.AttributeNames()
	if err != nil {
		return nil, err
	}
	keys := make([]Key, len(names))
	for i, n := range names {
		keys[i] = Key(n)
	}
	return keys, nil
}

// Path returns the item's resolved filesystem path, or ok=false if the
// index has no path for it (or the item is no longer valid).
func (it *Item) Path() (string, bool) {
	return it.stringAttr(KeyPath)
}

// DisplayName returns the item's display name, or ok=false when absent.
func (it *Item) DisplayName() (string, bool) {
	return it.stringAttr(KeyDisplayName)
}

func (it *Item) stringAttr(key Key) (string, bool) {
	v, err := it.Attribute(key)
	if err != nil || v.IsAbsent() {
		return "", false
	}
	s, err := v.String()
	if err != nil {
		return "", false
	}
	return s, true
}
