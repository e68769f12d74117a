package pipeline

import "context"

// CandidateAnalyzer produces a free-form text assessment of a lead.
// It is an external text-generation collaborator: read-only display,
// never a source of state mutation. Failures are downgraded to a
// user-visible notice by the caller.
type CandidateAnalyzer interface {
	Analyze(ctx context.Context, lead *Lead) (string, error)
}
