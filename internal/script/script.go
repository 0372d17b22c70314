// Package script runs YAML scenarios against the stack and queue exercises
// and records what each operation returned.
package script

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Script is a sequence of operations applied to one freshly created data
// structure.
type Script struct {
	Name string `yaml:"name"`
	// Kind is one of multistack, queue or shelter.
	Kind string `yaml:"kind"`
	// Stacks and Size configure a multistack.
	Stacks uint64 `yaml:"stacks"`
	Size   uint64 `yaml:"size"`
	// Variant configures a queue or shelter, it defaults to cheap-enqueue.
	Variant string `yaml:"variant"`
	Ops     []Op   `yaml:"ops"`
}

type Op struct {
	Op     string  `yaml:"op"`
	Stack  uint64  `yaml:"stack"`
	Value  string  `yaml:"value"`
	Animal *Animal `yaml:"animal"`
}

type Animal struct {
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name"`
	Declawed bool   `yaml:"declawed"`
	Mass     uint64 `yaml:"mass"`
}

func (o Op) String() string {
	switch {
	case o.Animal != nil:
		return fmt.Sprintf("%s(%s %s)", o.Op, o.Animal.Kind, o.Animal.Name)
	case o.Value != "":
		if strings.HasPrefix(o.Op, "push") {
			return fmt.Sprintf("%s(%d, %s)", o.Op, o.Stack, o.Value)
		}
		return fmt.Sprintf("%s(%s)", o.Op, o.Value)
	}
	if stackOps[o.Op] {
		return fmt.Sprintf("%s(%d)", o.Op, o.Stack)
	}
	return o.Op + "()"
}

// Parse decodes a script, rejecting unknown fields, and validates it.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("script: decoding: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every problem with the script's configuration and
// operations.
func (s *Script) Validate() error {
	errs := &errors.M{}
	ops, ok := kindOps[s.Kind]
	if !ok {
		errs.Append(fmt.Errorf("script %q: unknown kind %q", s.Name, s.Kind))
		return errs.Err()
	}
	if s.Kind == "multistack" && (s.Stacks == 0 || s.Size == 0) {
		errs.Append(fmt.Errorf("script %q: multistack needs stacks and size", s.Name))
	}
	for i, op := range s.Ops {
		if !slices.Contains(ops, op.Op) {
			errs.Append(fmt.Errorf("script %q: op %d: %q is not a %s operation", s.Name, i, op.Op, s.Kind))
			continue
		}
		if op.Op == "push" && op.Value == "" {
			errs.Append(fmt.Errorf("script %q: op %d: push needs a value", s.Name, i))
		}
		if op.Op == "enqueue" && s.Kind == "shelter" && op.Animal == nil {
			errs.Append(fmt.Errorf("script %q: op %d: enqueue needs an animal", s.Name, i))
		}
	}
	return errs.Err()
}

var kindOps = map[string][]string{
	"multistack": {"push", "pop", "peek", "len", "state", "available", "print", "check"},
	"queue":      {"enqueue", "dequeue", "peek", "empty", "len"},
	"shelter":    {"enqueue", "dequeue-any", "dequeue-cat", "dequeue-dog", "count"},
}

var stackOps = map[string]bool{"pop": true, "peek": true, "len": true, "state": true}

//go:embed scenarios/*.yaml
var scenarios embed.FS

// BuiltinNames lists the embedded scenarios.
func BuiltinNames() []string {
	entries, _ := scenarios.ReadDir("scenarios")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

// Builtin returns the embedded scenario called name.
func Builtin(name string) (*Script, error) {
	buf, err := scenarios.ReadFile(path.Join("scenarios", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("script: no builtin scenario %q (have %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return Parse(bytes.NewReader(buf))
}
