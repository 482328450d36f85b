package ml

import (
	"math"
	"testing"
)

func TestNetworkForwardLinear(t *testing.T) {
	// Single linear layer: out = 2*x0 + 3*x1 + 1
	network := Network{Layers: []Layer{{
		Weights:    [][]float64{{2}, {3}},
		Biases:     []float64{1},
		Activation: "linear",
	}}}

	got := network.Forward([]float64{4, -1})
	if math.Abs(got-6) > 1e-12 {
		t.Errorf("Forward = %v, want 6", got)
	}
}

func TestNetworkForwardRelu(t *testing.T) {
	// Hidden relu layer zeroes the negative unit before the output layer
	network := Network{Layers: []Layer{
		{
			Weights:    [][]float64{{1, -1}},
			Biases:     []float64{0, 0},
			Activation: "relu",
		},
		{
			Weights:    [][]float64{{1}, {1}},
			Biases:     []float64{0},
			Activation: "linear",
		},
	}}

	if got := network.Forward([]float64{5}); got != 5 {
		t.Errorf("Forward(5) = %v, want 5", got)
	}
	if got := network.Forward([]float64{-5}); got != 5 {
		t.Errorf("Forward(-5) = %v, want 5", got)
	}
}

func TestNetworkValidate(t *testing.T) {
	valid := Network{Layers: []Layer{{
		Weights:    [][]float64{{1}, {1}},
		Biases:     []float64{0},
		Activation: "linear",
	}}}
	if err := valid.Validate(2); err != nil {
		t.Errorf("Validate failed for well-formed network: %v", err)
	}

	wrongInputs := valid
	if err := wrongInputs.Validate(3); err == nil {
		t.Error("Validate succeeded with input mismatch, want error")
	}

	badActivation := Network{Layers: []Layer{{
		Weights:    [][]float64{{1}},
		Biases:     []float64{0},
		Activation: "tanh",
	}}}
	if err := badActivation.Validate(1); err == nil {
		t.Error("Validate succeeded with unsupported activation, want error")
	}

	wideOutput := Network{Layers: []Layer{{
		Weights:    [][]float64{{1, 1}},
		Biases:     []float64{0, 0},
		Activation: "linear",
	}}}
	if err := wideOutput.Validate(1); err == nil {
		t.Error("Validate succeeded with 2-wide output, want error")
	}
}
