package domain

import "errors"

// Sentinel errors crossing the snapshot and template boundaries.
var (
	// ErrNotFound is returned when a requested relative path does not
	// exist in the snapshot.
	ErrNotFound = errors.New("file not found in snapshot")

	// ErrNotReadable is returned when a file exists but cannot be read
	// as text (binary content or filesystem error).
	ErrNotReadable = errors.New("file not readable as text")

	// ErrTemplateNotFound is returned when neither the override directory
	// nor the built-in defaults hold the requested template.
	ErrTemplateNotFound = errors.New("template not found")
)

// Snapshot is an immutable view over a repository file tree at one checkout.
type Snapshot interface {
	// Root returns the absolute root path of the snapshot.
	Root() string
	// Files returns the sorted relative paths of all regular files.
	Files() []string
	// Exists reports whether the relative path is present.
	Exists(rel string) bool
	// ReadText returns file content, or ErrNotFound / ErrNotReadable.
	ReadText(rel string) (string, error)
}

// SnapshotLoader materializes a Snapshot from a filesystem root.
type SnapshotLoader interface {
	Load(root string, excludes []string) (Snapshot, error)
}

// ConfigLoader loads run configuration for a repository root.
type ConfigLoader interface {
	Load(rootPath string) (Config, error)
}

// TemplateStore resolves template keys against an override directory,
// falling back to a built-in default set.
type TemplateStore interface {
	// Lookup returns the raw template text for a key such as
	// "ci/go.yml.tmpl", or ErrTemplateNotFound.
	Lookup(key string) (string, error)
}

// RepoSource materializes a repository for analysis.
type RepoSource interface {
	// Fetch returns a local checkout path for url (cloning when remote)
	// and a cleanup function. Local paths are returned as-is.
	Fetch(url, branch string) (path string, cleanup func(), err error)
	// CommitHash returns the HEAD commit of a local checkout, or an
	// error when the path is not a git repository.
	CommitHash(path string) (string, error)
}
