package cli

import (
	"io"
	"testing"

	"github.com/dwrenn/ctlkit/logging"
	"github.com/dwrenn/ctlkit/slider"
)

func init() {
	// Commands normally get the logger from the root PersistentPreRunE.
	log, _ = logging.NewWithOutput(io.Discard, logging.Options{})
}

func TestSliderSubcommands(t *testing.T) {
	registered := map[string]bool{}
	for _, c := range sliderCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range []string{"value", "position", "proportion", "rescale", "sweep"} {
		if !registered[name] {
			t.Errorf("missing slider subcommand: %s", name)
		}
	}
}

func TestApplyRange(t *testing.T) {
	s := slider.New()

	res := applyRange(s, -50, 50)
	if res.Failed() {
		t.Fatalf("applyRange(-50, 50) failed: %s", res.Message)
	}
	if s.Min() != -50 || s.Max() != 50 {
		t.Errorf("range = [%v, %v], want [-50, 50]", s.Min(), s.Max())
	}

	res = applyRange(s, 7, 7)
	if res.OK() {
		t.Fatal("applyRange(7, 7) should fail on a degenerate range")
	}
	if res.Message == "" {
		t.Error("expected a diagnostic message on failure")
	}
	// Bounds unchanged after the rejected change.
	if s.Min() != -50 || s.Max() != 50 {
		t.Errorf("range = [%v, %v] after rejection, want [-50, 50]", s.Min(), s.Max())
	}
}

func TestSnapshot(t *testing.T) {
	s := slider.New()
	if err := s.SetValue(25); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	m := snapshot(s)
	if m.Resolution != slider.DefaultResolution {
		t.Errorf("Resolution = %d, want %d", m.Resolution, slider.DefaultResolution)
	}
	if m.Min != 0 || m.Max != 100 {
		t.Errorf("range = [%v, %v], want [0, 100]", m.Min, m.Max)
	}
	if m.Pos != s.Pos() {
		t.Errorf("Pos = %d, want %d", m.Pos, s.Pos())
	}
	if m.Value != s.Value() {
		t.Errorf("Value = %v, want %v", m.Value, s.Value())
	}
	if m.Proportion != s.Proportion() {
		t.Errorf("Proportion = %v, want %v", m.Proportion, s.Proportion())
	}
}
