// Package store implements a filesystem-backed image service for running
// nodes outside a full graph host.
//
// A Store is rooted at one directory. Any PNG, JPEG, GIF or BMP file placed
// there can be fetched by its file name; images created by nodes are written
// as <uuid>.png next to a <uuid>.json record of their origin, category and
// execution ids.
//
// Store is safe for concurrent use.
package store
