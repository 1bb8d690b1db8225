package model

import "strings"

// Container is the user-selected output wrapper format
type Container string

const (
	ContainerMP4   Container = "MP4"
	ContainerWEBM  Container = "WEBM"
	ContainerAudio Container = "AUDIO"
)

// Quality is the user-selected resolution cap
type Quality string

const (
	QualityMax   Quality = "Max"
	Quality1080p Quality = "1080p"
	Quality720p  Quality = "720p"
)

// Containers lists the container choices in display order
var Containers = []Container{ContainerMP4, ContainerWEBM, ContainerAudio}

// Qualities lists the quality choices in display order
var Qualities = []Quality{QualityMax, Quality1080p, Quality720p}

// ParseContainer maps user input to a Container, case-insensitively.
// Unknown input is returned as-is so the orchestrator can reject it.
func ParseContainer(s string) Container {
	s = strings.TrimSpace(s)
	for _, c := range Containers {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return Container(s)
}

// ParseQuality maps user input to a Quality, case-insensitively.
func ParseQuality(s string) Quality {
	s = strings.TrimSpace(s)
	for _, q := range Qualities {
		if strings.EqualFold(s, string(q)) {
			return q
		}
	}
	return Quality(s)
}

// DownloadRequest is one user action: fetch URL into DestinationDir
type DownloadRequest struct {
	URL            string
	Container      Container
	Quality        Quality
	DestinationDir string
}
