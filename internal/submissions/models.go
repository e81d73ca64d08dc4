package submissions

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/karafilm/go-sitecms/domain"
)

// Registration is one festival submission. Records are append-only: there is
// no update or delete path once a submission lands.
type Registration struct {
	bun.BaseModel `bun:"table:registrations,alias:rg"`

	ID uuid.UUID `bun:",pk,type:uuid" json:"id"`

	// Reference is the short public code handed back to the registrant.
	Reference string `bun:"reference,notnull" json:"reference"`

	Data RegistrationData `bun:"data,type:jsonb,notnull" json:"data"`

	// SubmittedAt is assigned by the server at intake and orders listings
	// newest first.
	SubmittedAt time.Time `bun:"submitted_at,notnull" json:"submitted_at"`
}

// RegistrationData carries the submitted form. Fields that reach the CSV
// export are domain.Text so legacy records with bilingual objects (or worse)
// coerce instead of breaking the export.
type RegistrationData struct {
	// Identity.
	DirectorName   domain.Text `json:"directorName"`
	DirectorNameEn domain.Text `json:"directorNameEn"`
	Email          domain.Text `json:"email"`
	Phone          domain.Text `json:"phone"`
	City           string      `json:"city,omitempty"`
	BirthYear      string      `json:"birthYear,omitempty"`

	// Work metadata.
	FilmTitle      domain.Text `json:"filmTitle"`
	Section        domain.Text `json:"section"`
	Synopsis       string      `json:"synopsis,omitempty"`
	Duration       string      `json:"duration,omitempty"`
	ProductionYear string      `json:"productionYear,omitempty"`

	// Technical metadata.
	Format  string   `json:"format,omitempty"`
	AITools []string `json:"aiTools,omitempty"`

	// Crew: fixed roles plus a dynamic list.
	Writer        string       `json:"writer,omitempty"`
	Editor        string       `json:"editor,omitempty"`
	SoundDesigner string       `json:"soundDesigner,omitempty"`
	Crew          []CrewMember `json:"crew,omitempty"`

	// File links.
	FilmLink     domain.Text `json:"filmLink"`
	PosterLink   string      `json:"posterLink,omitempty"`
	SubtitleLink string      `json:"subtitleLink,omitempty"`

	// Consents.
	RulesAccepted        bool `json:"rulesAccepted"`
	OriginalityConfirmed bool `json:"originalityConfirmed"`
	BroadcastConsent     bool `json:"broadcastConsent"`
}

// CrewMember is one entry of the dynamic crew list.
type CrewMember struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// Message is one contact-form entry. Append-only, like registrations.
type Message struct {
	bun.BaseModel `bun:"table:contact_messages,alias:cm"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name        string    `bun:"name,notnull"  json:"name"`
	Email       string    `bun:"email,notnull" json:"email"`
	Body        string    `bun:"body,notnull"  json:"message"`
	Date        string    `bun:"date"          json:"date"`
	SubmittedAt time.Time `bun:"submitted_at,notnull" json:"submitted_at"`
}
