package domain

// DiffStats holds the size of a change between two revisions
type DiffStats struct {
	Deletions    int // Lines deleted
	FilesChanged int // Number of files touched
	Insertions   int // Lines added
}

// NullSHA is the all-zero object name git passes for "no commit"
const NullSHA = "0000000000000000000000000000000000000000"
