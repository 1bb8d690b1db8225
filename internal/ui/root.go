package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-prodl/internal/config"
	"github.com/ytget/yt-prodl/internal/download"
	"github.com/ytget/yt-prodl/internal/logging"
	"github.com/ytget/yt-prodl/internal/model"
	"github.com/ytget/yt-prodl/internal/platform"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization
	prompter     *ProfilePrompter
	log          *logrus.Entry

	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	formatLabel   *widget.Label
	formatRadio   *widget.RadioGroup
	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	dirLabel      *widget.Label
	dirEntry      *widget.Entry
	browseBtn     *widget.Button
	downloadBtn   *widget.Button
	openDirBtn    *widget.Button
	logLabel      *widget.Label
	logView       *LogView
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, downloadSvc download.Downloader, settings *config.Settings, logger logrus.FieldLogger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
		prompter:     NewProfilePrompter(window, localization),
		log:          logging.Component(logger, "ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	text := ui.localization.GetText

	// URL row
	ui.urlLabel = widget.NewLabel(text(KeyURL))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(text(KeyEnterURL))
	ui.urlEntry.Validator = validateURL
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	// Format and quality
	ui.formatLabel = widget.NewLabel(text(KeyFormat))
	ui.formatRadio = widget.NewRadioGroup(containerOptions(), nil)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.Required = true
	ui.formatRadio.SetSelected(string(ui.settings.GetContainer()))

	ui.qualityLabel = widget.NewLabel(text(KeyQuality))
	ui.qualitySelect = widget.NewSelect(qualityOptions(ui.localization), nil)
	ui.qualitySelect.SetSelected(qualityOption(ui.settings.GetQuality(), ui.localization))

	formatRow := container.NewGridWithColumns(2,
		container.NewVBox(ui.formatLabel, ui.formatRadio),
		container.NewVBox(ui.qualityLabel, container.NewGridWrap(fyne.NewSize(QualitySelectWidth, ui.qualitySelect.MinSize().Height), ui.qualitySelect)),
	)

	// Download folder
	ui.dirLabel = widget.NewLabel(text(KeyDownloadDirectory))
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(text(KeyBrowse), ui.onBrowseDirectory)
	dirRow := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.dirEntry)

	// Buttons
	ui.downloadBtn = widget.NewButton(IconDownload+" "+text(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.openDirBtn = widget.NewButton(IconFolder+" "+text(KeyOpenFolder), ui.onOpenDirectory)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	buttons := container.NewHBox(ui.downloadBtn, ui.openDirBtn, settingsBtn)

	// Log
	ui.logLabel = widget.NewLabel(text(KeyLog))
	ui.logView = NewLogView()

	top := container.NewVBox(
		ui.urlLabel,
		ui.urlEntry,
		formatRow,
		ui.dirLabel,
		dirRow,
		buttons,
		ui.logLabel,
	)

	content := container.NewBorder(top, nil, nil, nil, ui.logView.Container())
	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText
	ui.window.SetTitle(text(KeyAppTitle))

	ui.urlLabel.SetText(text(KeyURL))
	ui.urlEntry.SetPlaceHolder(text(KeyEnterURL))
	ui.formatLabel.SetText(text(KeyFormat))
	ui.qualityLabel.SetText(text(KeyQuality))
	ui.dirLabel.SetText(text(KeyDownloadDirectory))
	ui.browseBtn.SetText(text(KeyBrowse))
	ui.downloadBtn.SetText(IconDownload + " " + text(KeyDownload))
	ui.openDirBtn.SetText(IconFolder + " " + text(KeyOpenFolder))
	ui.logLabel.SetText(text(KeyLog))

	// Quality labels are localized, keep the selected quality
	selected := qualityFromOption(ui.qualitySelect.Selected)
	ui.qualitySelect.Options = qualityOptions(ui.localization)
	ui.qualitySelect.SetSelected(qualityOption(selected, ui.localization))
}

// validateURL validates the entered URL
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// buildRequest reads the form into a download request
func (ui *RootUI) buildRequest() model.DownloadRequest {
	return model.DownloadRequest{
		URL:            strings.TrimSpace(ui.urlEntry.Text),
		Container:      model.ParseContainer(ui.formatRadio.Selected),
		Quality:        qualityFromOption(ui.qualitySelect.Selected),
		DestinationDir: strings.TrimSpace(ui.dirEntry.Text),
	}
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	text := ui.localization.GetText

	if ui.downloadSvc.Busy() {
		dialog.ShowInformation(text(KeyBusyTitle), text(KeyBusyMessage), ui.window)
		return
	}

	req := ui.buildRequest()
	if req.URL == "" {
		dialog.ShowInformation(text(KeyError), text(KeyPleaseEnterURL), ui.window)
		return
	}
	if err := validateURL(req.URL); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", text(KeyInvalidURL), err), ui.window)
		return
	}

	// Remember the choices for the next session
	ui.settings.SetContainer(req.Container)
	ui.settings.SetQuality(req.Quality)
	if req.DestinationDir != "" {
		ui.settings.SetDownloadDirectory(req.DestinationDir)
	}

	ui.logView.Clear()
	ui.downloadBtn.Disable()

	runID, err := ui.downloadSvc.Submit(context.Background(), req, download.Hooks{
		Log:    ui.logView.Append,
		Prompt: ui.prompter,
		Done:   ui.onRunDone,
	})
	if err != nil {
		ui.downloadBtn.Enable()
		if errors.Is(err, model.ErrBusy) {
			dialog.ShowInformation(text(KeyBusyTitle), text(KeyBusyMessage), ui.window)
			return
		}
		dialog.ShowError(err, ui.window)
		return
	}

	ui.log.WithField("run_id", runID).Info("download submitted")
}

// onRunDone is called on the pipeline goroutine when a run reaches Done
func (ui *RootUI) onRunDone(run *model.PipelineRun) {
	ui.logView.Append(MsgAllDone)

	fyne.Do(func() {
		ui.downloadBtn.Enable()

		if run.Status == model.RunStatusCompleted && ui.settings.GetAutoRevealOnComplete() {
			ui.openDirectory(run.Request.DestinationDir)
		}
	})
}

// onBrowseDirectory lets the user pick the download folder
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		dir := uri.Path()
		ui.dirEntry.SetText(dir)
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			dialog.ShowError(err, ui.window)
		}
	}, ui.window)
}

// onOpenDirectory opens the download folder in the OS file manager
func (ui *RootUI) onOpenDirectory() {
	dir := strings.TrimSpace(ui.dirEntry.Text)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.GetText(KeyFolderMissing), ui.window)
		return
	}
	ui.openDirectory(dir)
}

func (ui *RootUI) openDirectory(dir string) {
	if err := platform.OpenDirectory(dir); err != nil {
		ui.log.WithError(err).Warnf("failed to open %s", dir)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// containerOptions lists the format radio options
func containerOptions() []string {
	options := make([]string, 0, len(model.Containers))
	for _, c := range model.Containers {
		options = append(options, string(c))
	}
	return options
}

// qualityOptions lists the quality select options; Max is localized
func qualityOptions(l *Localization) []string {
	options := make([]string, 0, len(model.Qualities))
	for _, q := range model.Qualities {
		options = append(options, qualityOption(q, l))
	}
	return options
}

func qualityOption(q model.Quality, l *Localization) string {
	if q == model.QualityMax {
		return l.GetText(KeyQualityMax)
	}
	return string(q)
}

// qualityFromOption maps a displayed option back to a Quality in any language
func qualityFromOption(option string) model.Quality {
	for _, q := range model.Qualities {
		if string(q) == option {
			return q
		}
	}
	// anything else is a localized "Max" label
	return model.QualityMax
}
