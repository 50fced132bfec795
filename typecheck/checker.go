// Copyright (c) 2025 Visvasity LLC

// Package typecheck decides whether a named Go type may be granted the
// plain-old-data capability: every bit pattern of its storage must be a valid
// value and the storage must hold no padding and no pointers.
package typecheck

import (
	"fmt"
	"go/types"

	"go.uber.org/zap"
	"golang.org/x/tools/go/types/typeutil"
)

type Field struct {
	Name   string
	Type   string
	Offset int64
	Size   int64
}

// Layout describes a type that passed the check.
type Layout struct {
	Name    string
	PkgPath string
	PkgName string

	Kind string // One of [basic|array|struct]

	Size  int64
	Align int64
	Len   int64 // Kind == "array"

	// Portable is false when the layout contains int, uint or uintptr, whose
	// size depends on the target architecture.
	Portable bool

	Fields []*Field // Kind == "struct"
}

type Checker struct {
	sizes types.Sizes

	checkedTypes  typeutil.Map // map[types.Type]bool, value is portability
	failedTypes   typeutil.Map // map[types.Type]error
	checkingTypes typeutil.Map // map[types.Type]bool

	layouts map[string]*Layout
}

// New returns a Checker computing sizes and offsets with sizes, typically
// types.SizesFor(runtime.Compiler, runtime.GOARCH).
func New(sizes types.Sizes) *Checker {
	return &Checker{
		sizes:   sizes,
		layouts: make(map[string]*Layout),
	}
}

// Layouts returns the layouts of all types that passed Check, keyed by
// package path and type name.
func (c *Checker) Layouts() map[string]*Layout {
	return c.layouts
}

func typenameKey(tn *types.TypeName) string {
	pkg := tn.Pkg()
	if pkg == nil {
		return tn.Name()
	}
	return pkg.Path() + "." + tn.Name()
}

type nameOrAlias interface {
	TypeParams() *types.TypeParamList
}

var basicKinds = map[types.BasicKind]bool{ // value is portability
	types.Int8:    true,
	types.Int16:   true,
	types.Int32:   true,
	types.Int64:   true,
	types.Uint8:   true,
	types.Uint16:  true,
	types.Uint32:  true,
	types.Uint64:  true,
	types.Float32: true,
	types.Float64: true,

	types.Int:     false,
	types.Uint:    false,
	types.Uintptr: false,
}

// Check verifies the named type and records its layout.
func (c *Checker) Check(tn *types.TypeName) (*Layout, error) {
	key := typenameKey(tn)
	if l, ok := c.layouts[key]; ok {
		return l, nil
	}

	typ := tn.Type()
	if x, ok := typ.(nameOrAlias); ok {
		if tps := x.TypeParams(); tps != nil && tps.Len() != 0 {
			return nil, &Error{Type: tn.Name(), Kind: KindGeneric, Detail: "generic types cannot be granted"}
		}
	}

	portable, err := c.check(typ)
	if err != nil {
		if e, ok := err.(*Error); ok {
			top := *e
			top.Type = tn.Name()
			err = &top
		}
		Logger().Debug("rejected", zap.String("type", key), zap.Error(err))
		return nil, err
	}

	layout := &Layout{
		Name:     tn.Name(),
		Size:     c.sizes.Sizeof(typ),
		Align:    c.sizes.Alignof(typ),
		Portable: portable,
	}
	if pkg := tn.Pkg(); pkg != nil {
		layout.PkgPath = pkg.Path()
		layout.PkgName = pkg.Name()
	}

	switch x := typ.Underlying().(type) {
	case *types.Basic:
		layout.Kind = "basic"
	case *types.Array:
		layout.Kind = "array"
		layout.Len = x.Len()
	case *types.Struct:
		layout.Kind = "struct"
		layout.Fields = c.fieldsOf(x, types.RelativeTo(tn.Pkg()))
	}

	c.layouts[key] = layout
	Logger().Debug("granted", zap.String("type", key), zap.String("kind", layout.Kind),
		zap.Int64("size", layout.Size), zap.Bool("portable", portable))
	return layout, nil
}

// check returns errors with paths relative to t.
func (c *Checker) check(t types.Type) (portable bool, status error) {
	if tp, ok := t.(*types.TypeParam); ok {
		return false, &Error{Kind: KindGeneric, Detail: fmt.Sprintf("type parameter %s", tp.Obj().Name())}
	}

	if v := c.checkedTypes.At(t); v != nil {
		return v.(bool), nil
	}
	if v := c.failedTypes.At(t); v != nil {
		return false, v.(error)
	}
	if v := c.checkingTypes.At(t); v != nil {
		return false, &Error{Kind: KindRecursive, Detail: fmt.Sprintf("type %v refers to itself", t)}
	}

	c.checkingTypes.Set(t, true)
	defer func() {
		if status == nil {
			c.checkedTypes.Set(t, portable)
		} else {
			c.failedTypes.Set(t, status)
		}
		c.checkingTypes.Delete(t)
	}()

	switch x := t.Underlying().(type) {
	case *types.Basic:
		return checkBasic(x)
	case *types.Array:
		p, err := c.check(x.Elem())
		if err != nil {
			return false, within(err, fmt.Sprintf("[%d]", x.Len()))
		}
		return p, nil
	case *types.Struct:
		return c.checkStruct(x)
	case *types.Pointer, *types.Slice, *types.Map, *types.Chan, *types.Signature, *types.Interface:
		return false, &Error{Kind: KindPointer, Detail: fmt.Sprintf("%v holds pointers", t)}
	}
	return false, &Error{Kind: KindUnsupported, Detail: fmt.Sprintf("type %v (underlying=%T) is not supported", t, t.Underlying())}
}

func checkBasic(b *types.Basic) (bool, error) {
	if portable, ok := basicKinds[b.Kind()]; ok {
		return portable, nil
	}
	switch b.Kind() {
	case types.Bool, types.UntypedBool:
		return false, &Error{Kind: KindNiche, Detail: "bool has only two valid bit patterns"}
	case types.String, types.UnsafePointer:
		return false, &Error{Kind: KindPointer, Detail: fmt.Sprintf("%s holds a pointer", b.Name())}
	}
	return false, &Error{Kind: KindUnsupported, Detail: fmt.Sprintf("basic type %s is not supported", b.Name())}
}

func (c *Checker) checkStruct(s *types.Struct) (bool, error) {
	portable := true
	fields := make([]*types.Var, s.NumFields())
	for i := range fields {
		f := s.Field(i)
		fields[i] = f
		p, err := c.check(f.Type())
		if err != nil {
			return false, within(err, f.Name())
		}
		portable = portable && p
	}

	offsets := c.sizes.Offsetsof(fields)
	var end int64
	for i, f := range fields {
		if offsets[i] != end {
			return false, &Error{Path: []string{f.Name()}, Kind: KindPadding,
				Detail: fmt.Sprintf("%d bytes of padding before field", offsets[i]-end)}
		}
		end = offsets[i] + c.sizes.Sizeof(f.Type())
	}
	if size := c.sizes.Sizeof(s); size != end {
		return false, &Error{Kind: KindPadding, Detail: fmt.Sprintf("%d bytes of tail padding", size-end)}
	}
	return portable, nil
}

func (c *Checker) fieldsOf(s *types.Struct, qf types.Qualifier) []*Field {
	vars := make([]*types.Var, s.NumFields())
	for i := range vars {
		vars[i] = s.Field(i)
	}
	offsets := c.sizes.Offsetsof(vars)

	fields := make([]*Field, len(vars))
	for i, v := range vars {
		fields[i] = &Field{
			Name:   v.Name(),
			Type:   types.TypeString(v.Type(), qf),
			Offset: offsets[i],
			Size:   c.sizes.Sizeof(v.Type()),
		}
	}
	return fields
}

// within prefixes the path of err with sel.
func within(err error, sel string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	return &Error{
		Type:   e.Type,
		Path:   append([]string{sel}, e.Path...),
		Kind:   e.Kind,
		Detail: e.Detail,
	}
}
