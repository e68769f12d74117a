package pipeline

// Stage represents a position in the franchisee acquisition funnel
type Stage string

// Funnel stages
const (
	StageInitialInterest Stage = "initial_interest"
	StageInAnalysis      Stage = "in_analysis"
	StageProposalSent    Stage = "proposal_sent"
	StagePendingContract Stage = "pending_contract"
	StageDealClosed      Stage = "deal_closed"
	StageOpportunityLost Stage = "opportunity_lost"
)

// AllStages returns every funnel stage in funnel order
func AllStages() []Stage {
	return []Stage{
		StageInitialInterest,
		StageInAnalysis,
		StageProposalSent,
		StagePendingContract,
		StageDealClosed,
		StageOpportunityLost,
	}
}

// IsValid checks if the stage is one of the defined funnel stages
func (s Stage) IsValid() bool {
	switch s {
	case StageInitialInterest, StageInAnalysis, StageProposalSent,
		StagePendingContract, StageDealClosed, StageOpportunityLost:
		return true
	}
	return false
}

// IsTerminal reports whether the stage ends the funnel.
// DealClosed is soft-terminal (the lead stays on the board and becomes
// convertible); OpportunityLost is hard-terminal.
func (s Stage) IsTerminal() bool {
	return s == StageDealClosed || s == StageOpportunityLost
}

// TransitionPolicy decides which stage moves are permitted. The
// permission table is data so a guarded workflow can be introduced
// later without touching callers.
type TransitionPolicy struct {
	allowed map[Stage]map[Stage]bool
}

// DefaultTransitionPolicy permits every stage pair, including moves out
// of DealClosed. Stage transitions are unguarded: callers are
// responsible for only offering sensible moves via UI affordances.
func DefaultTransitionPolicy() *TransitionPolicy {
	p := &TransitionPolicy{allowed: make(map[Stage]map[Stage]bool)}
	for _, from := range AllStages() {
		for _, to := range AllStages() {
			p.Permit(from, to)
		}
	}
	return p
}

// Permit allows moves from one stage to another
func (p *TransitionPolicy) Permit(from, to Stage) {
	if p.allowed[from] == nil {
		p.allowed[from] = make(map[Stage]bool)
	}
	p.allowed[from][to] = true
}

// Forbid disallows moves from one stage to another
func (p *TransitionPolicy) Forbid(from, to Stage) {
	if p.allowed[from] == nil {
		return
	}
	delete(p.allowed[from], to)
}

// Allows reports whether a move from one stage to another is permitted
func (p *TransitionPolicy) Allows(from, to Stage) bool {
	return p.allowed[from][to]
}
