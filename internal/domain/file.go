package domain

// EntryKind distinguishes files from directories in a listing
type EntryKind string

const (
	EntryFile EntryKind = "file"
	EntryDir  EntryKind = "dir"
)

// FileEntry is a path produced by a directory traversal
type FileEntry struct {
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
}
