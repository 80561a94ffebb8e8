// Package jsonval implements a minimal recursive-descent JSON parser that
// produces a generic value tree. The GitHub events endpoint is parsed with
// this package instead of encoding/json so the pipeline owns every step
// from raw bytes to domain types.
package jsonval

// Value is one node of a parsed JSON document. The concrete types are
// Null, Bool, Number, String, Array and *Object; nothing else implements
// the interface.
type Value interface {
	isValue()
}

// Null is the JSON literal null.
type Null struct{}

// Bool is a JSON true/false literal.
type Bool bool

// Number is a JSON number. All numbers are held as float64, which is exact
// for the integer counts this application cares about.
type Number float64

// String is a JSON string with all escape sequences already decoded.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object. Insertion order of keys is preserved so that
// output derived from a document is deterministic; the order carries no
// meaning beyond that. Duplicate keys keep the position of the first
// occurrence and the value of the last.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or replaces the value for key.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Len returns the number of distinct keys.
func (o *Object) Len() int {
	return len(o.members)
}

// Members returns the key/value pairs in insertion order. The slice is
// shared with the object and must not be mutated.
func (o *Object) Members() []Member {
	return o.members
}

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (Array) isValue()   {}
func (*Object) isValue() {}
