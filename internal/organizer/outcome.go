package organizer

// Outcome records what happened to a single discovered file. Exactly one of
// the success fields or ErrorMessage is meaningful, gated by Success.
type Outcome struct {
	OriginalName string
	OriginalPath string
	Success      bool

	// Set on success.
	Category    string
	NewFilename string
	FinalPath   string

	// Set on failure.
	ErrorMessage string

	// err carries the tagged failure for triage bucketing. Kept unexported
	// so reports only see the message.
	err error
}
