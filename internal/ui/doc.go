// Package ui contains the Fyne-based desktop shell for the download pipeline.
// It collects the request, shows the pipeline log, asks for the conversion
// profile and keeps the Download button disabled while a run is in flight.
// All UI strings are localized via Localization.
package ui
