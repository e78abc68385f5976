package activity

import "github.com/specialistvlad/casegrid/internal/controlrule"

// SentryDeclaration is a compiled sentry owned by a stage.
type SentryDeclaration struct {
	ID string
	// IfPart is nil when the sentry has no if part.
	IfPart  *controlrule.Rule
	OnParts []OnPartDeclaration
}

// OnPartDeclaration waits for StandardEvent on the activity SourceID.
type OnPartDeclaration struct {
	SourceID      string
	StandardEvent string
}
