package domain

// Move relocates a single file
type Move struct {
	Source      string // Path relative to the project root
	Destination string // Target path relative to the project root
}

// MoveResult is the outcome of a single move
type MoveResult struct {
	Move   Move
	Moved  bool  // Whether the file now lives at Destination
	Copied bool  // Whether the copy+remove fallback was used
	Error  error // Error if the move failed
}
