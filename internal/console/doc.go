// Package console adapts the download pipeline to a terminal: progress lines
// go to a writer and the conversion prompt is a numbered menu read from an
// input stream.
package console
