// Copyright (c) 2025 Visvasity LLC

// Command bytesagent grants the plain-old-data capability of package pod to
// named Go types after verifying their layout.
//
// For example, given this snippet,
//
//	package blocks
//
//	type DBA uint64
//
//	type LinkedList struct {
//		HeadDBA DBA
//
//		NumValues     int64
//		NumLinkBlocks int32
//		NumFreeItems  int32
//	}
//
// running this command in the blocks directory
//
//	bytesagent -outdir . LinkedList
//
// checks that LinkedList has no padding, no pointers and no fields with
// invalid bit patterns, and creates file blocks.podgen.go with the following
// interface:
//
//	var _ [24]byte = [unsafe.Sizeof(LinkedList{})]byte{}
//
//	func (v *LinkedList) AsBytes() []byte
//	func (v *LinkedList) AsBytesMut() []byte
//
//	func LinkedListFromBytes(b []byte) (*LinkedList, error)
//	func LinkedListFromBytesMut(b []byte) (*LinkedList, error)
//	func LinkedListFromBytesUnchecked(b []byte) *LinkedList
//	func LinkedListFromBytesMutUnchecked(b []byte) *LinkedList
//
//	func LinkedListSliceAsBytes(vs []LinkedList) []byte
//	func LinkedListSliceAsBytesMut(vs []LinkedList) []byte
//	func LinkedListSliceFromBytes(b []byte, n int) ([]LinkedList, error)
//	func LinkedListSliceFromBytesMut(b []byte, n int) ([]LinkedList, error)
//
// When the output directory is not the input package, methods cannot be
// added, so witnesses are generated instead:
//
//	bytesagent -inpkg github.com/go-gl/mathgl/mgl64 -outdir ./glmath -prefix D Vec3
//
//	var DVec3 = pod.Attest[mgl64.Vec3]()
//
// The size assertion makes a later layout change in the input package a
// compile error instead of a silently unsound cast.
//
// Several targets can be listed in a YAML manifest passed with -config.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/tools/go/packages"

	"github.com/morr0ne/bytesagent/internal/manifest"
	"github.com/morr0ne/bytesagent/typecheck"
)

const podPkgPath = "github.com/morr0ne/bytesagent/pod"

var (
	inPkg   = flag.String("inpkg", ".", "package path/name for the type definitions")
	outPkg  = flag.String("outpkg", "", "package name for the generated file")
	outDir  = flag.String("outdir", "", "output directory for the generated file")
	prefix  = flag.String("prefix", "", "prefix for generated witness names")
	config  = flag.String("config", "", "YAML manifest listing generation targets")
	verbose = flag.Bool("v", false, "log every type checking decision")
)

var logger = zap.NewNop()

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of bytesagent:\n")
	fmt.Fprintf(os.Stderr, "\tbytesagent -inpkg '...' -outpkg '...' -outdir '...' types... # Must be a single package\n")
	fmt.Fprintf(os.Stderr, "\tbytesagent -config podgen.yaml\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()
	if len(*config) == 0 && len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger = newLogger(*verbose)
	defer logger.Sync()
	typecheck.SetLogger(logger)

	m, err := loadTargets()
	if err != nil {
		logger.Fatal("invalid arguments", zap.Error(err))
	}

	for _, t := range m.Targets {
		if err := run(t); err != nil {
			logger.Fatal("generation failed", zap.String("package", t.Package), zap.Error(err))
		}
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bytesagent: could not create logger: %v\n", err)
		os.Exit(1)
	}
	return l.Named("bytesagent")
}

func loadTargets() (*manifest.Manifest, error) {
	if len(*config) != 0 {
		if len(flag.Args()) != 0 {
			return nil, errors.New("type names cannot be combined with -config")
		}
		return manifest.Load(*config)
	}

	if len(*outDir) == 0 {
		return nil, errors.New("output directory must be set with -outdir flag")
	}
	m := &manifest.Manifest{
		Targets: []*manifest.Target{{
			Package: *inPkg,
			OutDir:  *outDir,
			OutPkg:  *outPkg,
			Prefix:  *prefix,
			Types:   flag.Args(),
		}},
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func run(t *manifest.Target) error {
	pkg, err := loadPackage(t.Dir, t.Package)
	if err != nil {
		return err
	}

	dir := t.OutDir
	if !filepath.IsAbs(dir) && len(t.Dir) != 0 {
		dir = filepath.Join(t.Dir, dir)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return errors.Wrapf(err, "resolving output directory %q", t.OutDir)
	}

	local := isLocal(pkg, dir)
	name := t.OutPkg
	if len(name) == 0 {
		name = filepath.Base(dir)
		if local {
			name = pkg.Types.Name()
		}
	}

	sizes := types.SizesFor(runtime.Compiler, runtime.GOARCH)
	g := newGenerator(pkg.Types, name, local, t.Prefix, sizes)
	for _, typ := range t.Types {
		if err := g.generate(typ); err != nil {
			return err
		}
	}

	outputName := filepath.Join(dir, strings.ToLower(pkg.Types.Name())+".podgen.go")
	if err := os.WriteFile(outputName, g.GetSource(), 0644); err != nil {
		return errors.Wrap(err, "writing output")
	}
	logger.Info("generated", zap.String("file", outputName), zap.Int("types", len(t.Types)), zap.Bool("methods", local))
	return nil
}

func loadPackage(dir, pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, pkg)
	if err != nil {
		return nil, errors.Wrapf(err, "loading package %q", pkg)
	}
	if len(pkgs) != 1 {
		return nil, errors.Errorf("pattern %q must match a single package, got %d", pkg, len(pkgs))
	}
	if len(pkgs[0].Errors) != 0 {
		return nil, errors.Wrapf(pkgs[0].Errors[0], "loading package %q", pkg)
	}
	return pkgs[0], nil
}

// isLocal reports whether dir is the directory of pkg, in which case methods
// can be generated on the input types.
func isLocal(pkg *packages.Package, dir string) bool {
	if len(pkg.GoFiles) == 0 {
		return false
	}
	return filepath.Dir(pkg.GoFiles[0]) == dir
}

type Generator struct {
	pkg     *types.Package
	pkgName string
	local   bool
	prefix  string

	checker *typecheck.Checker

	body bytes.Buffer

	// importsMap holds import path to import name for the generated file.
	// An empty name imports the package under its own name.
	importsMap map[string]string

	generated map[string]bool
}

func newGenerator(pkg *types.Package, pkgName string, local bool, prefix string, sizes types.Sizes) *Generator {
	return &Generator{
		pkg:        pkg,
		pkgName:    pkgName,
		local:      local,
		prefix:     prefix,
		checker:    typecheck.New(sizes),
		importsMap: make(map[string]string),
		generated:  make(map[string]bool),
	}
}

func (g *Generator) P(v ...any) {
	for _, x := range v {
		fmt.Fprint(&g.body, x)
	}
	fmt.Fprintln(&g.body)
}

func (g *Generator) addImport(importName, packagePath string) error {
	if x, ok := g.importsMap[packagePath]; ok && x != importName {
		return errors.Errorf("multiple different import names for package %q", packagePath)
	}
	g.importsMap[packagePath] = importName
	return nil
}

func (g *Generator) GetSource() []byte {
	buf := g.getSourceWithImports()

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		logger.Warn("internal error: invalid Go generated", zap.Error(err))
		logger.Warn("compile the package to analyze the error")
		return buf.Bytes()
	}
	return src
}

func (g *Generator) getSourceWithImports() *bytes.Buffer {
	buf := new(bytes.Buffer)

	fmt.Fprintln(buf, "// Code generated by bytesagent. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package", g.pkgName)
	fmt.Fprintln(buf)

	paths := make([]string, 0, len(g.importsMap))
	for p := range g.importsMap {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	if len(paths) != 0 {
		fmt.Fprintln(buf, "import (")
		for _, p := range paths {
			if name := g.importsMap[p]; len(name) != 0 {
				fmt.Fprintf(buf, "%s %q\n", name, p)
			} else {
				fmt.Fprintf(buf, "%q\n", p)
			}
		}
		fmt.Fprintln(buf, ")")
	}
	fmt.Fprintln(buf)

	io.Copy(buf, &g.body)
	return buf
}

func (g *Generator) generate(typeName string) error {
	if g.generated[typeName] {
		return nil
	}

	object := g.pkg.Scope().Lookup(typeName)
	if object == nil {
		return errors.Errorf("typename %q doesn't exist", typeName)
	}
	tn, ok := object.(*types.TypeName)
	if !ok {
		return errors.Errorf("generator type %q is not a typename", typeName)
	}
	if !tn.Exported() && !g.local {
		return errors.Errorf("type %q is not exported", typeName)
	}
	if tn.IsAlias() && g.local {
		return errors.Errorf("methods cannot be declared on alias type %q", typeName)
	}

	layout, err := g.checker.Check(tn)
	if err != nil {
		return err
	}

	if err := g.addImport("", podPkgPath); err != nil {
		return err
	}
	ref := typeName
	if !g.local {
		if err := g.addImport(g.importName(), g.pkg.Path()); err != nil {
			return err
		}
		ref = g.pkg.Name() + "." + typeName
	}

	if err := g.generateSizeAssertion(layout, ref); err != nil {
		return err
	}
	if g.local {
		g.generateMethods(typeName)
	} else {
		g.generateWitness(typeName, ref)
	}
	g.generated[typeName] = true
	return nil
}

// importName returns the explicit import name for the input package, or ""
// when the package name matches the last element of its path.
func (g *Generator) importName() string {
	if filepath.Base(g.pkg.Path()) == g.pkg.Name() {
		return ""
	}
	return g.pkg.Name()
}

func zeroValue(layout *typecheck.Layout, ref string) string {
	if layout.Kind == "basic" {
		return ref + "(0)"
	}
	return ref + "{}"
}

func (g *Generator) generateSizeAssertion(layout *typecheck.Layout, ref string) error {
	g.P()
	if !layout.Portable {
		g.P("// ", ref, " has an architecture dependent size; no size assertion.")
		return nil
	}
	if err := g.addImport("", "unsafe"); err != nil {
		return err
	}
	g.P("// ", ref, " is ", layout.Size, " bytes with no padding.")
	g.P("var _ [", layout.Size, "]byte = [unsafe.Sizeof(", zeroValue(layout, ref), ")]byte{}")
	return nil
}

func (g *Generator) generateWitness(typeName, ref string) {
	name := g.prefix + typeName

	g.P()
	g.P("// ", name, " grants ", ref, " the plain-old-data capability.")
	g.P("var ", name, " = pod.Attest[", ref, "]()")
}

func (g *Generator) generateMethods(typeName string) {
	witness := "pod.Attest[" + typeName + "]()"

	g.P()
	g.P("var _ pod.Type = (*", typeName, ")(nil)")

	g.P()
	g.P("// AsBytes returns the memory of v as bytes without copying.")
	g.P("func (v *", typeName, ") AsBytes() []byte {")
	g.P("  return ", witness, ".AsBytes(v)")
	g.P("}")

	g.P()
	g.P("// AsBytesMut returns the memory of v as writable bytes without copying.")
	g.P("func (v *", typeName, ") AsBytesMut() []byte {")
	g.P("  return ", witness, ".AsBytesMut(v)")
	g.P("}")

	g.P()
	g.P("// ", typeName, "FromBytes reinterprets b as a ", typeName, ". It fails unless len(b) is the size of ", typeName, ".")
	g.P("func ", typeName, "FromBytes(b []byte) (*", typeName, ", error) {")
	g.P("  return ", witness, ".FromBytes(b)")
	g.P("}")

	g.P()
	g.P("func ", typeName, "FromBytesMut(b []byte) (*", typeName, ", error) {")
	g.P("  return ", witness, ".FromBytesMut(b)")
	g.P("}")

	g.P()
	g.P("func ", typeName, "FromBytesUnchecked(b []byte) *", typeName, " {")
	g.P("  return ", witness, ".FromBytesUnchecked(b)")
	g.P("}")

	g.P()
	g.P("func ", typeName, "FromBytesMutUnchecked(b []byte) *", typeName, " {")
	g.P("  return ", witness, ".FromBytesMutUnchecked(b)")
	g.P("}")

	g.P()
	g.P("func ", typeName, "SliceAsBytes(vs []", typeName, ") []byte {")
	g.P("  return ", witness, ".SliceAsBytes(vs)")
	g.P("}")

	g.P()
	g.P("func ", typeName, "SliceAsBytesMut(vs []", typeName, ") []byte {")
	g.P("  return ", witness, ".SliceAsBytesMut(vs)")
	g.P("}")

	g.P()
	g.P("func ", typeName, "SliceFromBytes(b []byte, n int) ([]", typeName, ", error) {")
	g.P("  return ", witness, ".SliceFromBytes(b, n)")
	g.P("}")

	g.P()
	g.P("func ", typeName, "SliceFromBytesMut(b []byte, n int) ([]", typeName, ", error) {")
	g.P("  return ", witness, ".SliceFromBytesMut(b, n)")
	g.P("}")
}
