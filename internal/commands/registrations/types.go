// Package registrationscmd hosts the command messages and handlers that
// operate on festival registrations outside the HTTP surface.
package registrationscmd

import (
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const exportMessageType = "site.registrations.export"

// ExportCommand writes the registration sheet as CSV. When Output is set the
// sheet is written to that path; otherwise Writer receives it directly.
type ExportCommand struct {
	Output string    `json:"output,omitempty"`
	Limit  int       `json:"limit,omitempty"`
	Writer io.Writer `json:"-"`
}

// Type implements command.Message.
func (ExportCommand) Type() string { return exportMessageType }

// Validate ensures the command names exactly one destination and a sane limit.
func (m ExportCommand) Validate() error {
	errs := validation.Errors{}
	if m.Output == "" && m.Writer == nil {
		errs["output"] = validation.NewError("site.registrations.export.output_missing", "output path or writer is required")
	}
	if m.Limit < 0 {
		errs["limit"] = validation.NewError("site.registrations.export.limit_invalid", "limit must not be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
