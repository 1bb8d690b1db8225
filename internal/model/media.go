package model

import "time"

// DiscoveredFile is a media file found in the destination directory
type DiscoveredFile struct {
	Path    string
	ModTime time.Time
	Size    int64
}
