package config

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// hclProblem mirrors ProblemSpec in HCL syntax. Free-form values stay expressions until they are
// converted to plain Go values.
type hclProblem struct {
	Name        string         `hcl:"name,optional"`
	Kind        string         `hcl:"kind"`
	Algorithm   string         `hcl:"algorithm,optional"`
	Heuristic   string         `hcl:"heuristic,optional"`
	Description string         `hcl:"description,optional"`
	Initial     hcl.Expression `hcl:"initial"`
	Goal        hcl.Expression `hcl:"goal,optional"`
	Params      hcl.Expression `hcl:"params,optional"`
	Limits      *hclLimits     `hcl:"limits,block"`
	Hill        *hclHill       `hcl:"hill,block"`
}

type hclLimits struct {
	MaxExpansions int `hcl:"max_expansions,optional"`
}

type hclHill struct {
	Sideways int   `hcl:"sideways,optional"`
	Restarts int   `hcl:"restarts,optional"`
	Walk     int   `hcl:"walk,optional"`
	Seed     int64 `hcl:"seed,optional"`
}

// ParseHCL decodes an HCL problem document without validating it.
func ParseHCL(data []byte, filename string) (*ProblemSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse hcl: %w", diags)
	}

	var doc hclProblem
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode hcl: %w", diags)
	}

	spec := &ProblemSpec{
		Name:        doc.Name,
		Kind:        doc.Kind,
		Algorithm:   doc.Algorithm,
		Heuristic:   doc.Heuristic,
		Description: doc.Description,
	}
	if doc.Limits != nil {
		spec.Limits = Limits{MaxExpansions: doc.Limits.MaxExpansions}
	}
	if doc.Hill != nil {
		spec.Hill = HillOptions{
			Sideways: doc.Hill.Sideways,
			Restarts: doc.Hill.Restarts,
			Walk:     doc.Hill.Walk,
			Seed:     doc.Hill.Seed,
		}
	}

	var err error
	if spec.Initial, err = exprValue(doc.Initial); err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	if spec.Goal, err = exprValue(doc.Goal); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	params, err := exprValue(doc.Params)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	if params != nil {
		m, ok := params.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("params: expected an object, got %T", params)
		}
		spec.Params = m
	}
	return spec, nil
}

// exprValue evaluates a constant expression and converts it to the shapes encoding/json
// produces. A missing optional attribute yields nil.
func exprValue(expr hcl.Expression) (any, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value must be a constant")
	}

	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
