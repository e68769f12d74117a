package contract

import (
	"strings"

	"github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
)

// Template is a versioned contract text with {{placeholder}} tokens
// filled from candidate fields at render time.
type Template struct {
	shared.BaseAggregateRoot
	Title  string
	Body   string
	Active bool
}

// Placeholder tokens recognized by Render
const (
	PlaceholderName    = "{{candidate_name}}"
	PlaceholderEmail   = "{{candidate_email}}"
	PlaceholderPhone   = "{{candidate_phone}}"
	PlaceholderCity    = "{{city}}"
	PlaceholderCapital = "{{investment_capital}}"
)

// NewTemplate creates an active template at version 1
func NewTemplate(title, body string) (*Template, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "template title is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "template body is required")
	}

	return &Template{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Body:              body,
		Active:            true,
	}, nil
}

// UpdateBody replaces the template text and bumps the version
func (t *Template) UpdateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return shared.NewDomainError("INVALID_INPUT", "template body is required")
	}
	t.Body = body
	t.IncrementVersion()
	return nil
}

// Deactivate retires the template from selection
func (t *Template) Deactivate() {
	t.Active = false
	t.IncrementVersion()
}

// Render fills the template placeholders with a lead's candidate
// fields. Read-only projection: neither the template nor the lead is
// mutated.
func (t *Template) Render(lead *pipeline.Lead) string {
	replacer := strings.NewReplacer(
		PlaceholderName, lead.Name,
		PlaceholderEmail, lead.Email,
		PlaceholderPhone, lead.Phone,
		PlaceholderCity, lead.City,
		PlaceholderCapital, lead.InvestmentCapital.StringFixed(2),
	)
	return replacer.Replace(t.Body)
}
