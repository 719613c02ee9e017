package dataset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/pipeline"
	"github.com/katalvlaran/topsix/weights"
)

// Problem is the YAML representation of a full decision problem: data,
// directions, weighting and method in one self-contained document.
//
//	method: topsis
//	v: 0.5
//	weights:
//	  strategy: entropy
//	criteria:
//	  - name: Cost
//	    impact: "-"
//	  - name: Quality
//	    impact: "+"
//	alternatives:
//	  - label: A
//	    values: [250, 16]
type Problem struct {
	Method       string        `yaml:"method"`
	V            *float64      `yaml:"v,omitempty"`
	Weights      WeightSpec    `yaml:"weights"`
	Criteria     []Criterion   `yaml:"criteria"`
	Alternatives []Alternative `yaml:"alternatives"`
}

// Criterion names one column and its optimization direction.
type Criterion struct {
	Name   string `yaml:"name"`
	Impact string `yaml:"impact"`
}

// Alternative names one row and its raw values, column order.
type Alternative struct {
	Label  string    `yaml:"label"`
	Values []float64 `yaml:"values"`
}

// WeightSpec mirrors weights.Spec in YAML form.
type WeightSpec struct {
	Strategy string      `yaml:"strategy"`
	Values   []float64   `yaml:"values,omitempty"`
	Pairwise [][]float64 `yaml:"pairwise,omitempty"`
}

// LoadProblem decodes a YAML problem document.
func LoadProblem(r io.Reader) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("dataset: decode problem: %w", err)
	}

	return &p, nil
}

// SaveProblem encodes a problem document as YAML.
func SaveProblem(w io.Writer, p *Problem) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("dataset: encode problem: %w", err)
	}

	return nil
}

// Build converts the document into validated decision values plus the
// pipeline configuration. All structural errors surface as the decision
// and weights sentinels.
func (p *Problem) Build() (*decision.Matrix, decision.Impacts, pipeline.Config, error) {
	var cfg pipeline.Config

	method, err := pipeline.ParseMethod(p.Method)
	if err != nil {
		return nil, nil, cfg, err
	}

	wm, err := weights.ParseMethod(p.Weights.Strategy)
	if err != nil {
		return nil, nil, cfg, err
	}

	criteria := make([]string, len(p.Criteria))
	symbols := make([]string, len(p.Criteria))
	var i int
	for i = range p.Criteria {
		criteria[i] = p.Criteria[i].Name
		symbols[i] = p.Criteria[i].Impact
	}
	imp, err := decision.ParseImpacts(symbols)
	if err != nil {
		return nil, nil, cfg, err
	}

	labels := make([]string, len(p.Alternatives))
	rows := make([][]float64, len(p.Alternatives))
	for i = range p.Alternatives {
		labels[i] = p.Alternatives[i].Label
		rows[i] = p.Alternatives[i].Values
	}
	m, err := decision.NewMatrix(labels, criteria, rows)
	if err != nil {
		return nil, nil, cfg, err
	}

	cfg = pipeline.Config{
		Method: method,
		V:      p.V,
		Weights: weights.Spec{
			Method:   wm,
			Fixed:    p.Weights.Values,
			Pairwise: p.Weights.Pairwise,
		},
	}

	return m, imp, cfg, nil
}
