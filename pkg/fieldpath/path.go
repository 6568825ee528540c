// Package fieldpath builds model-binding form-field name paths such as
// "Attendance[2].Name". Paths grow one segment at a time: named members are
// joined with dots, integer indices attach directly in bracket notation.
package fieldpath

import (
	"strconv"
)

// Builder accumulates a binding path. The zero value is the empty path.
// Builders have value semantics: every append returns a new Builder and
// never mutates its receiver, so intermediate values can be reused freely.
type Builder struct {
	path string
}

// New returns an empty Builder. Equivalent to the zero value.
func New() Builder {
	return Builder{}
}

// AppendMember returns a Builder whose path is the receiver's path followed
// by the named member. The first member in a path is rendered bare; every
// later member is prefixed with a dot. name is expected to be a non-empty
// identifier; the builder does not validate it.
func (b Builder) AppendMember(name string) Builder {
	if b.path == "" {
		return Builder{path: name}
	}
	return Builder{path: b.path + "." + name}
}

// AppendIndex returns a Builder whose path is the receiver's path followed
// by "[i]" with no separator. The index is not range-checked; the builder
// has no knowledge of the collection it refers to, and negative values are
// rendered as given.
func (b Builder) AppendIndex(i int) Builder {
	return Builder{path: b.path + "[" + strconv.Itoa(i) + "]"}
}

// String renders the accumulated path. It has no side effects and returns
// the same string however many times it is called.
func (b Builder) String() string {
	return b.path
}
