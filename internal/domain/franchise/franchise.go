package franchise

import (
	"strings"

	"github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents the operational status of a franchise unit
type Status string

// Franchise statuses
const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusClosed    Status = "closed"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusClosed:
		return true
	}
	return false
}

// Franchise is a live franchise unit. It is created once by converting
// a closed-deal lead and has an independent lifecycle thereafter.
type Franchise struct {
	shared.BaseAggregateRoot
	Name       string
	OwnerName  string
	OwnerEmail string
	OwnerPhone string
	City       string
	Status     Status
	Team       []TeamMember
	// SourceLeadID links back to the lead this unit was converted from
	SourceLeadID uuid.UUID
}

// NewFranchiseFromLead builds a franchise from a closed-deal lead,
// copying candidate fields into the owner fields. The operational
// record set starts empty: no team, no transactions.
func NewFranchiseFromLead(lead *pipeline.Lead) *Franchise {
	f := &Franchise{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              franchiseName(lead),
		OwnerName:         lead.Name,
		OwnerEmail:        lead.Email,
		OwnerPhone:        lead.Phone,
		City:              lead.City,
		Status:            StatusActive,
		Team:              make([]TeamMember, 0),
		SourceLeadID:      lead.ID,
	}
	f.AddDomainEvent(NewFranchiseCreatedEvent(f, lead.ID))
	return f
}

// SetStatus updates the operational status
func (f *Franchise) SetStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "unknown franchise status: "+string(status))
	}
	f.Status = status
	f.IncrementVersion()
	return nil
}

// AddTeamMember registers a new member of the unit's team
func (f *Franchise) AddTeamMember(name, role, email string) (*TeamMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "team member name is required")
	}

	member := newTeamMember(name, strings.TrimSpace(role), strings.TrimSpace(email))
	f.Team = append(f.Team, member)
	return &f.Team[len(f.Team)-1], nil
}

func franchiseName(lead *pipeline.Lead) string {
	if lead.City != "" {
		return "Franquia " + lead.City
	}
	return "Franquia " + lead.Name
}
