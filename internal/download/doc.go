package download

// Package download implements the download pipeline: it picks a yt-dlp format
// selector, runs the fetch tool, locates the produced file, probes its codec and
// offers a conversion when the codec is VP9. One run at a time per Service.
