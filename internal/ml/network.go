package ml

import (
	"fmt"
	"math"
)

// Layer is one dense layer: output[j] = activation(sum_i input[i]*Weights[i][j] + Biases[j])
type Layer struct {
	Weights    [][]float64 `json:"weights"`
	Biases     []float64   `json:"biases"`
	Activation string      `json:"activation"` // "relu" or "linear"
}

// Network is a feed-forward regression network with dense layers
type Network struct {
	Layers []Layer `json:"layers"`
}

// Validate checks layer shapes chain together and end in a single output
func (n *Network) Validate(numFeatures int) error {
	if len(n.Layers) == 0 {
		return fmt.Errorf("network has no layers")
	}

	inputs := numFeatures
	for i, layer := range n.Layers {
		if len(layer.Weights) != inputs {
			return fmt.Errorf("layer %d expects %d inputs, got weights for %d", i, inputs, len(layer.Weights))
		}
		outputs := len(layer.Biases)
		for j, row := range layer.Weights {
			if len(row) != outputs {
				return fmt.Errorf("layer %d weight row %d has %d outputs, want %d", i, j, len(row), outputs)
			}
		}
		switch layer.Activation {
		case "relu", "linear":
		default:
			return fmt.Errorf("layer %d has unsupported activation %q", i, layer.Activation)
		}
		inputs = outputs
	}

	if inputs != 1 {
		return fmt.Errorf("network output dimension is %d, want 1", inputs)
	}
	return nil
}

// Forward evaluates the network and returns the single regression output
func (n *Network) Forward(features []float64) float64 {
	current := features
	for _, layer := range n.Layers {
		next := make([]float64, len(layer.Biases))
		copy(next, layer.Biases)
		for i, v := range current {
			if v == 0 {
				continue
			}
			row := layer.Weights[i]
			for j := range next {
				next[j] += v * row[j]
			}
		}
		if layer.Activation == "relu" {
			for j := range next {
				next[j] = math.Max(0, next[j])
			}
		}
		current = next
	}
	return current[0]
}
