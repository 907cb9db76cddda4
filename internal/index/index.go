package index

// NoteIndex defines the interface for vault index operations. Consumers
// should depend on this interface rather than the concrete *DB type to
// facilitate testing with mocks.
type NoteIndex interface {
	UpsertNote(n NoteRow, body string) error
	DeleteNote(path string) error
	GetChecksum(path string) (string, error)
	Resolve(component string) (string, error)
	Search(query string, limit int) ([]SearchResult, error)
	AllPaths() (map[string]struct{}, error)
	AllChecksums() (map[string]string, error)
	Close() error
}

// Verify *DB satisfies NoteIndex at compile time.
var _ NoteIndex = (*DB)(nil)
