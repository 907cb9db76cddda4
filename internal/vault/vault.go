// Package vault defines the Markdown vault file-system abstraction.
package vault

import "time"

// FileMeta is lightweight metadata for one vault file.
type FileMeta struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provider is the interface for vault file operations. All paths are
// relative to the vault root.
type Provider interface {
	// List returns metadata for every .md file under dir.
	List(dir string) ([]FileMeta, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path, creating directories as needed.
	Write(path string, content []byte) error
	// Exists reports whether a file exists at path.
	Exists(path string) bool
}
