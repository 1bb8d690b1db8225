package platform

// Package platform contains OS and filesystem glue: locating the newest media
// file in the download folder, creating and resolving that folder, and
// revealing it in the system file manager.
