package wizard

import "github.com/gapbbong/survey-1cl/model"

// Session holds the process-scoped mutable state the original kept in page
// globals: the verified identity and the password found on file. Created
// empty at startup, populated by verification, never persisted: restarting
// the process (the reload analogue) drops it and forces re-verification.
// Only the student number survives, through the draft store.
type Session struct {
	Identity       *model.Identity
	StoredPassword string

	// StudentNumber may be restored from a draft without a full Identity;
	// submission still requires re-verification then.
	StudentNumber string
}
