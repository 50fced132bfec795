// Copyright (c) 2025 Visvasity LLC

// Package manifest reads podgen.yaml files: the reviewed list of types that
// are granted the plain-old-data capability, grouped by input package.
//
//	targets:
//	  - package: github.com/go-gl/mathgl/mgl64
//	    outdir: .
//	    outpkg: glmath
//	    prefix: D
//	    types: [Vec2, Vec3, Vec4]
package manifest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Target struct {
	// Package is a go/packages pattern naming exactly one package.
	Package string `yaml:"package"`

	// OutDir receives the generated file. Defaults to ".".
	OutDir string `yaml:"outdir"`

	// OutPkg is the package name of the generated file. Defaults to the base
	// name of OutDir, or the input package name when OutDir is the input
	// package.
	OutPkg string `yaml:"outpkg"`

	// Prefix is prepended to generated witness names.
	Prefix string `yaml:"prefix"`

	Types []string `yaml:"types"`

	// Dir is the directory that Package and OutDir are relative to. Load sets
	// it to the directory holding the manifest.
	Dir string `yaml:"-"`
}

type Manifest struct {
	Targets []*Target `yaml:"targets"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading manifest")
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	for _, t := range m.Targets {
		t.Dir = dir
	}
	return m, nil
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	m := new(Manifest)
	if err := dec.Decode(m); err != nil {
		if err == io.EOF {
			return nil, errors.New("manifest is empty")
		}
		return nil, errors.Wrap(err, "decoding manifest")
	}
	for _, t := range m.Targets {
		if t != nil && len(t.OutDir) == 0 {
			t.OutDir = "."
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) Validate() error {
	if len(m.Targets) == 0 {
		return errors.New("manifest has no targets")
	}
	for i, t := range m.Targets {
		if t == nil {
			return errors.Errorf("target %d is empty", i)
		}
		if len(t.Package) == 0 {
			return errors.Errorf("target %d: package is required", i)
		}
		if len(t.OutDir) == 0 {
			return errors.Errorf("target %d (%s): outdir is required", i, t.Package)
		}
		if len(t.Types) == 0 {
			return errors.Errorf("target %d (%s): at least one type is required", i, t.Package)
		}
		seen := make(map[string]bool, len(t.Types))
		for _, name := range t.Types {
			if len(name) == 0 {
				return errors.Errorf("target %d (%s): empty type name", i, t.Package)
			}
			if seen[name] {
				return errors.Errorf("target %d (%s): type %s is listed twice", i, t.Package, name)
			}
			seen[name] = true
		}
	}
	return nil
}
