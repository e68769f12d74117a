package pipeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Lead is a franchise-candidate record moving through the sales funnel.
// It exclusively owns its document checklist and notes log.
type Lead struct {
	shared.BaseAggregateRoot
	Name              string
	Email             string
	Phone             string
	City              string
	InvestmentCapital decimal.Decimal
	Status            Stage
	Documents         []Document
	Notes             []Note
	// ConvertedFranchiseID records the most recent conversion target.
	// Conversion is additive: the lead is kept as historical record.
	ConvertedFranchiseID *uuid.UUID
}

// NewLead creates a new lead at the first funnel stage with the fixed
// document checklist seeded as pending.
func NewLead(name, email, phone, city string, capital decimal.Decimal) (*Lead, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateCapital(capital); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(RequiredDocuments()))
	for _, docName := range RequiredDocuments() {
		docs = append(docs, NewDocument(docName))
	}

	lead := &Lead{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             strings.TrimSpace(email),
		Phone:             strings.TrimSpace(phone),
		City:              strings.TrimSpace(city),
		InvestmentCapital: capital,
		Status:            StageInitialInterest,
		Documents:         docs,
		Notes:             make([]Note, 0),
	}

	lead.AddDomainEvent(NewLeadCreatedEvent(lead))
	return lead, nil
}

// MoveTo sets the lead's funnel stage. Any permitted pair is accepted
// unconditionally; there is no adjacency constraint and no cascade to
// documents or notes.
func (l *Lead) MoveTo(target Stage, policy *TransitionPolicy) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "unknown funnel stage: "+string(target))
	}
	if !policy.Allows(l.Status, target) {
		return shared.NewDomainError("INVALID_STATE",
			"stage move from "+string(l.Status)+" to "+string(target)+" is not permitted")
	}

	from := l.Status
	l.Status = target
	l.touch()
	l.AddDomainEvent(NewLeadStageMovedEvent(l, from, target))
	return nil
}

// SetDocumentStatus overwrites the status of a checklist document. No
// workflow ordering is enforced between statuses.
func (l *Lead) SetDocumentStatus(documentID uuid.UUID, status DocumentStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "unknown document status: "+string(status))
	}

	for i := range l.Documents {
		if l.Documents[i].ID == documentID {
			l.Documents[i].Status = status
			l.touch()
			l.AddDomainEvent(NewLeadDocumentUpdatedEvent(l, l.Documents[i].ID, status))
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "document not found on lead")
}

// ChecklistCompletion returns the verified percentage of the checklist.
// Recomputed on every call; 0 when the checklist is empty.
func (l *Lead) ChecklistCompletion() float64 {
	if len(l.Documents) == 0 {
		return 0
	}
	verified := 0
	for _, doc := range l.Documents {
		if doc.Status == DocumentStatusVerified {
			verified++
		}
	}
	return float64(verified) / float64(len(l.Documents)) * 100
}

// AddNote appends an immutable note to the lead's log. Blank text is
// rejected after trimming.
func (l *Lead) AddNote(author, text string) (*Note, error) {
	body := strings.TrimSpace(text)
	if body == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "note text cannot be empty")
	}

	note := newNote(strings.TrimSpace(author), body)
	l.Notes = append(l.Notes, note)
	l.touch()
	l.AddDomainEvent(NewLeadNoteAddedEvent(l, note.ID))
	return &l.Notes[len(l.Notes)-1], nil
}

// CanConvert reports whether the lead is in the only stage that permits
// conversion into a franchise.
func (l *Lead) CanConvert() bool {
	return l.Status == StageDealClosed
}

// RecordConversion stores the backlink to the most recently created
// franchise. It does not block repeat conversions.
func (l *Lead) RecordConversion(franchiseID uuid.UUID) {
	l.ConvertedFranchiseID = &franchiseID
	l.touch()
	l.AddDomainEvent(NewLeadConvertedEvent(l, franchiseID))
}

// FindDocument returns the checklist document with the given id
func (l *Lead) FindDocument(documentID uuid.UUID) (*Document, error) {
	for i := range l.Documents {
		if l.Documents[i].ID == documentID {
			return &l.Documents[i], nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "document not found on lead")
}

func (l *Lead) touch() {
	l.UpdatedAt = time.Now()
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "candidate name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "candidate name must not exceed 200 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_INPUT", "candidate email is required")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_INPUT", "candidate email format is invalid")
	}
	return nil
}

func validateCapital(capital decimal.Decimal) error {
	if capital.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "investment capital must be positive")
	}
	return nil
}
