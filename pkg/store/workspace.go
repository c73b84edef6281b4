package store

// WorkspaceSession is the in-memory sticky state for one user's work on
// one document. It smooths the request surface: a user who activated a
// lens or picked a tone keeps it on subsequent evolve calls without
// resending it.
type WorkspaceSession struct {
	DocumentID   string `json:"document_id"`
	UserID       string `json:"user_id"`
	ActiveLensID string `json:"active_lens_id"`
	Tone         string `json:"tone"`
	TargetLength string `json:"target_length"` // "shorter" | "same" | "longer"
	LastQuery    string `json:"last_query"`
}

const (
	LengthShorter = "shorter"
	LengthSame    = "same"
	LengthLonger  = "longer"
)
