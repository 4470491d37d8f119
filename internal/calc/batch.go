// Package calc evaluates money operations for the moneycalc command.
package calc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Operation is a single money operation.
// Left and Right are money in text form, e.g. "EUR -1.20".
// Factor is a decimal multiplier or divisor.
type Operation struct {
	Op     string `yaml:"op"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right,omitempty"`
	Factor string `yaml:"factor,omitempty"`
}

func (o Operation) String() string {
	switch o.Op {
	case OpAdd, OpSub:
		return fmt.Sprintf("%s [%s] [%s]", o.Op, o.Left, o.Right)
	default:
		return fmt.Sprintf("%s [%s] %s", o.Op, o.Left, o.Factor)
	}
}

// Batch is a list of operations read from a YAML file.
type Batch struct {
	Operations []Operation `yaml:"operations"`
}

// LoadBatch loads a batch of operations from a YAML file.
func LoadBatch(filename string) (*Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ParseBatch(data)
}

// ParseBatch parses a YAML document holding a batch of operations.
func ParseBatch(data []byte) (*Batch, error) {
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(b.Operations) == 0 {
		return nil, fmt.Errorf("no operations provided")
	}
	for i, op := range b.Operations {
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
	}
	return &b, nil
}

// Validate checks that the operation names a known operator and carries
// the operands it needs.
func (o Operation) Validate() error {
	switch o.Op {
	case OpAdd, OpSub:
		if o.Left == "" || o.Right == "" {
			return fmt.Errorf("%s requires left and right", o.Op)
		}
	case OpMul, OpDiv:
		if o.Left == "" || o.Factor == "" {
			return fmt.Errorf("%s requires left and factor", o.Op)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, o.Op)
	}
	return nil
}
