package prompt

import (
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Mode
	}{
		{"general", "General", ModeGeneral},
		{"hr", "HR", ModeHR},
		{"support", "Support", ModeSupport},
		{"operations", "Operations", ModeOperations},
		{"unknown falls back", "Finance", ModeGeneral},
		{"empty falls back", "", ModeGeneral},
		{"case sensitive fallback", "hr", ModeGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMode(tt.input); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCompose_UnrecognizedEqualsGeneral(t *testing.T) {
	if Compose(Mode("Finance")) != Compose(ModeGeneral) {
		t.Error("Unrecognized mode must compose identically to General")
	}
}

func TestCompose_BasePlusOverlay(t *testing.T) {
	tests := []struct {
		mode    Mode
		overlay string
	}{
		{ModeGeneral, "answer any question"},
		{ModeHR, "HR assistant"},
		{ModeSupport, "support assistant"},
		{ModeOperations, "operations assistant"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := Compose(tt.mode)
			if !strings.Contains(got, "You are OrgBrain") {
				t.Error("Composed prompt missing base policy")
			}
			if !strings.Contains(got, "Mode:") {
				t.Error("Composed prompt missing mode label")
			}
			if !strings.Contains(got, tt.overlay) {
				t.Errorf("Composed prompt missing overlay marker %q", tt.overlay)
			}
			if !strings.Contains(got, "'Sources:' section") {
				t.Error("Base policy must require a Sources section")
			}
		})
	}
}

func TestCompose_Deterministic(t *testing.T) {
	if Compose(ModeHR) != Compose(ModeHR) {
		t.Error("Compose must be deterministic")
	}
}
