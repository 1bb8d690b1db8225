package convert

import (
	"context"
)

// CodecProber reports the primary video codec of a media file.
type CodecProber interface {
	ProbeVideoCodec(ctx context.Context, path string) string
}

// Converter re-encodes a media file into one of the conversion profiles.
type Converter interface {
	Convert(ctx context.Context, sourcePath, choice string, logf func(string)) (string, bool)
}
