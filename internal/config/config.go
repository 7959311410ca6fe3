// Package config loads problem files: one search problem per YAML, JSON or HCL document.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned for problem kinds with no domain behind them.
	ErrUnknownKind = errors.New("unknown problem kind")
	// ErrUnsupportedFormat is returned for file extensions other than yaml, yml, json and hcl.
	ErrUnsupportedFormat = errors.New("unsupported problem file format")
)

// Problem kinds.
const (
	KindPuzzle   = "puzzle"
	KindBlocks   = "blocks"
	KindWaterJug = "waterjug"
)

// Limits bounds a run.
type Limits struct {
	MaxExpansions int `json:"max_expansions" yaml:"max_expansions" mapstructure:"max_expansions" validate:"gte=0"`
}

// HillOptions tunes local search.
type HillOptions struct {
	Sideways int   `json:"sideways" yaml:"sideways" mapstructure:"sideways" validate:"gte=0"`
	Restarts int   `json:"restarts" yaml:"restarts" mapstructure:"restarts" validate:"gte=0"`
	Walk     int   `json:"walk" yaml:"walk" mapstructure:"walk" validate:"gte=0"`
	Seed     int64 `json:"seed" yaml:"seed" mapstructure:"seed"`
}

// ProblemSpec is the declarative form of a search problem.
//
// Initial, Goal and Params stay untyped until the problem kind is known; Decode turns them into
// domain values.
type ProblemSpec struct {
	Name        string         `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Kind        string         `json:"kind" yaml:"kind" mapstructure:"kind" validate:"required"`
	Algorithm   string         `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm" validate:"omitempty,oneof=bfs astar hill"`
	Heuristic   string         `json:"heuristic" yaml:"heuristic" mapstructure:"heuristic" validate:"omitempty,oneof=manhattan misplaced positional distance zero"`
	Initial     any            `json:"initial" yaml:"initial" mapstructure:"initial" validate:"required"`
	Goal        any            `json:"goal,omitempty" yaml:"goal,omitempty" mapstructure:"goal"`
	Params      map[string]any `json:"params,omitempty" yaml:"params,omitempty" mapstructure:"params"`
	Limits      Limits         `json:"limits" yaml:"limits" mapstructure:"limits"`
	Hill        HillOptions    `json:"hill" yaml:"hill" mapstructure:"hill"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

var validate = validator.New()

// Load reads and validates the problem file at path. The format follows the extension.
func Load(path string) (*ProblemSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	var spec *ProblemSpec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		spec, err = ParseYAML(data)
	case ".json":
		spec, err = ParseJSON(data)
	case ".hcl":
		spec, err = ParseHCL(data, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// ParseYAML decodes a YAML problem document without validating it.
func ParseYAML(data []byte) (*ProblemSpec, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return FromMap(raw)
}

// ParseJSON decodes a JSON problem document without validating it.
func ParseJSON(data []byte) (*ProblemSpec, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	return FromMap(raw)
}

// FromMap builds a spec from already parsed frontmatter or document data.
func FromMap(raw map[string]any) (*ProblemSpec, error) {
	var spec ProblemSpec
	if err := Decode(raw, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Decode copies loosely typed data (maps, slices, numbers of any width) into out.
func Decode(raw, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode problem: %w", err)
	}
	return nil
}

// Validate checks field constraints, fills defaults and rejects unknown kinds.
func (s *ProblemSpec) Validate() error {
	s.Kind = strings.ToLower(strings.TrimSpace(s.Kind))
	s.applyDefaults()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid problem %q: %w", s.Name, err)
	}
	switch s.Kind {
	case KindPuzzle, KindBlocks, KindWaterJug:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	return nil
}

func (s *ProblemSpec) applyDefaults() {
	if s.Algorithm == "" {
		s.Algorithm = "astar"
		if s.Kind == KindWaterJug || s.Kind == KindBlocks {
			s.Algorithm = "bfs"
		}
	}
	if s.Heuristic != "" || s.Algorithm == "bfs" {
		return
	}
	switch s.Kind {
	case KindPuzzle:
		s.Heuristic = "manhattan"
	case KindBlocks:
		// The positional heuristic can overestimate, so A* gets uniform cost instead.
		s.Heuristic = "zero"
		if s.Algorithm == "hill" {
			s.Heuristic = "positional"
		}
	case KindWaterJug:
		s.Heuristic = "distance"
	}
}
