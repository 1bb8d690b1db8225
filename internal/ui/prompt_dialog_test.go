package ui

import (
	"testing"

	"github.com/ytget/yt-prodl/internal/model"
)

func TestProfileOptions(t *testing.T) {
	options := profileOptions(model.Profiles)

	if len(options) != len(model.Profiles) {
		t.Fatalf("Expected %d options, got %d", len(model.Profiles), len(options))
	}

	expected := "1) " + model.ProfileProResHQ.Label
	if options[0] != expected {
		t.Errorf("Expected first option %q, got %q", expected, options[0])
	}
}

func TestChoiceForOption(t *testing.T) {
	for _, profile := range model.Profiles {
		option := formatProfileOption(profile)
		if got := choiceForOption(option, model.Profiles); got != profile.Choice {
			t.Errorf("choiceForOption(%q) = %q, expected %q", option, got, profile.Choice)
		}
	}

	if got := choiceForOption("", model.Profiles); got != "" {
		t.Errorf("Expected empty choice for empty option, got %q", got)
	}
	if got := choiceForOption("9) Something", model.Profiles); got != "" {
		t.Errorf("Expected empty choice for unknown option, got %q", got)
	}
}
