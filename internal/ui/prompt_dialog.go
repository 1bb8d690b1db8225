package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-prodl/internal/model"
)

// ProfilePrompter asks for a conversion profile with a modal form. The
// pipeline goroutine blocks until the user answers.
type ProfilePrompter struct {
	window       fyne.Window
	localization *Localization
}

// NewProfilePrompter creates a prompter showing its dialog on window
func NewProfilePrompter(window fyne.Window, localization *Localization) *ProfilePrompter {
	return &ProfilePrompter{window: window, localization: localization}
}

// ChooseProfile implements download.Prompter
func (p *ProfilePrompter) ChooseProfile(ctx context.Context, profiles []model.ConversionProfile) (string, bool) {
	answers := make(chan string, 1)
	options := profileOptions(profiles)

	fyne.Do(func() {
		selector := widget.NewSelect(options, nil)
		selector.SetSelectedIndex(0)

		text := p.localization.GetText
		items := []*widget.FormItem{
			widget.NewFormItem("", widget.NewLabel(text(KeyVP9Message))),
			widget.NewFormItem(text(KeyProfile), selector),
		}

		form := dialog.NewForm(text(KeyVP9Title), text(KeyConvert), text(KeyCancel), items, func(confirmed bool) {
			if !confirmed {
				answers <- ""
				return
			}
			answers <- choiceForOption(selector.Selected, profiles)
		}, p.window)
		form.Show()
	})

	select {
	case <-ctx.Done():
		return "", false
	case choice := <-answers:
		return choice, choice != ""
	}
}

// profileOptions renders profiles as "1) ProRes 422 HQ (very large file)"
func profileOptions(profiles []model.ConversionProfile) []string {
	options := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		options = append(options, formatProfileOption(profile))
	}
	return options
}

func formatProfileOption(profile model.ConversionProfile) string {
	return fmt.Sprintf("%s) %s", profile.Choice, profile.Label)
}

// choiceForOption maps a rendered option back to its profile choice
func choiceForOption(option string, profiles []model.ConversionProfile) string {
	for _, profile := range profiles {
		if formatProfileOption(profile) == option {
			return profile.Choice
		}
	}
	return ""
}
