package model

import "testing"

func fp(v float64) *float64 { return &v }

func TestScaleEmpty(t *testing.T) {
	if out := Scale(nil); len(out) != 0 {
		t.Errorf("expected empty output, got %v", out)
	}
}

func TestScaleAllMissing(t *testing.T) {
	out := Scale([]*float64{nil, nil, nil})
	if len(out) != 3 {
		t.Fatalf("expected length 3, got %d", len(out))
	}
	for i, v := range out {
		if v != 0 {
			t.Errorf("index %d: expected 0, got %f", i, v)
		}
	}
}

func TestScaleFlatSignal(t *testing.T) {
	out := Scale([]*float64{fp(42), fp(42), nil, fp(42)})
	want := []float64{0.5, 0.5, 0, 0.5}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("index %d: expected %f, got %f", i, want[i], out[i])
		}
	}
}

func TestScaleMinMax(t *testing.T) {
	// Growth signals from the strategy scenario: min/max over the present
	// values only, missing maps to 0.
	out := Scale([]*float64{fp(50), nil, fp(-10)})
	want := []float64{1.0, 0, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("index %d: expected %f, got %f", i, want[i], out[i])
		}
	}
}

func TestScaleMidpoint(t *testing.T) {
	out := Scale([]*float64{fp(0), fp(5), fp(10)})
	if out[0] != 0 || out[1] != 0.5 || out[2] != 1 {
		t.Errorf("expected [0 0.5 1], got %v", out)
	}
}
