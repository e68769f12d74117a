package pipeline

import (
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AggregateTypeLead is the aggregate type for lead events
const AggregateTypeLead = "Lead"

// Lead event types
const (
	EventTypeLeadCreated         = "lead.created"
	EventTypeLeadStageMoved      = "lead.stage_moved"
	EventTypeLeadDocumentUpdated = "lead.document_updated"
	EventTypeLeadNoteAdded       = "lead.note_added"
	EventTypeLeadConverted       = "lead.converted"
)

// LeadCreatedEvent is raised when a new lead enters the funnel
type LeadCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
	City  string `json:"city"`
	Stage Stage  `json:"stage"`
}

// NewLeadCreatedEvent creates a new LeadCreatedEvent
func NewLeadCreatedEvent(lead *Lead) *LeadCreatedEvent {
	return &LeadCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeadCreated, AggregateTypeLead, lead.ID),
		Name:            lead.Name,
		Email:           lead.Email,
		City:            lead.City,
		Stage:           lead.Status,
	}
}

// LeadStageMovedEvent is raised when a lead changes funnel stage
type LeadStageMovedEvent struct {
	shared.BaseDomainEvent
	From Stage `json:"from"`
	To   Stage `json:"to"`
}

// NewLeadStageMovedEvent creates a new LeadStageMovedEvent
func NewLeadStageMovedEvent(lead *Lead, from, to Stage) *LeadStageMovedEvent {
	return &LeadStageMovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeadStageMoved, AggregateTypeLead, lead.ID),
		From:            from,
		To:              to,
	}
}

// LeadDocumentUpdatedEvent is raised when a checklist document status changes
type LeadDocumentUpdatedEvent struct {
	shared.BaseDomainEvent
	DocumentID uuid.UUID      `json:"document_id"`
	Status     DocumentStatus `json:"status"`
}

// NewLeadDocumentUpdatedEvent creates a new LeadDocumentUpdatedEvent
func NewLeadDocumentUpdatedEvent(lead *Lead, documentID uuid.UUID, status DocumentStatus) *LeadDocumentUpdatedEvent {
	return &LeadDocumentUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeadDocumentUpdated, AggregateTypeLead, lead.ID),
		DocumentID:      documentID,
		Status:          status,
	}
}

// LeadNoteAddedEvent is raised when a note is appended to a lead
type LeadNoteAddedEvent struct {
	shared.BaseDomainEvent
	NoteID uuid.UUID `json:"note_id"`
}

// NewLeadNoteAddedEvent creates a new LeadNoteAddedEvent
func NewLeadNoteAddedEvent(lead *Lead, noteID uuid.UUID) *LeadNoteAddedEvent {
	return &LeadNoteAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeadNoteAdded, AggregateTypeLead, lead.ID),
		NoteID:          noteID,
	}
}

// LeadConvertedEvent is raised when a closed-deal lead is converted
// into a franchise
type LeadConvertedEvent struct {
	shared.BaseDomainEvent
	FranchiseID uuid.UUID `json:"franchise_id"`
}

// NewLeadConvertedEvent creates a new LeadConvertedEvent
func NewLeadConvertedEvent(lead *Lead, franchiseID uuid.UUID) *LeadConvertedEvent {
	return &LeadConvertedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeadConverted, AggregateTypeLead, lead.ID),
		FranchiseID:     franchiseID,
	}
}
