// Copyright (c) 2025 Visvasity LLC

package typecheck

import "strings"

// Kind categorizes why a type cannot carry the capability.
type Kind string

const (
	KindPadding     Kind = "padding"     // gaps between fields or at the tail
	KindPointer     Kind = "pointer"     // pointers, strings, slices, maps, ...
	KindNiche       Kind = "niche"       // some bit patterns are invalid, e.g. bool
	KindGeneric     Kind = "generic"     // layout depends on type arguments
	KindRecursive   Kind = "recursive"   // type refers to itself
	KindUnsupported Kind = "unsupported" // anything else
)

// Error reports a type rejected by the Checker. Path holds the field and
// element selectors leading from Type to the offending part.
type Error struct {
	Type   string
	Path   []string
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("typecheck: ")
	b.WriteString(e.Type)
	for _, p := range e.Path {
		if !strings.HasPrefix(p, "[") {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	b.WriteString(": ")
	b.WriteString(string(e.Kind))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}
