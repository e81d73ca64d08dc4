package registrationscmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/karafilm/go-sitecms/internal/commands"
	"github.com/karafilm/go-sitecms/internal/submissions"
	"github.com/karafilm/go-sitecms/pkg/interfaces"
)

// ExportHandler streams the registration sheet using the shared command
// handler foundation.
type ExportHandler struct {
	inner *commands.Handler[ExportCommand]
}

// NewExportHandler constructs a handler wired to the submissions service.
func NewExportHandler(service *submissions.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ExportCommand]) *ExportHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExportCommand) error {
		if service == nil {
			return fmt.Errorf("registrations export: submissions service not configured")
		}

		records := service.ListRegistrations(ctx)
		if msg.Limit > 0 && len(records) > msg.Limit {
			records = records[:msg.Limit]
		}

		destination := msg.Writer
		if msg.Output != "" {
			file, err := os.Create(msg.Output)
			if err != nil {
				return fmt.Errorf("registrations export: create %s: %w", msg.Output, err)
			}
			defer file.Close()
			destination = file
		}

		if err := writeSheet(destination, records); err != nil {
			return err
		}
		baseLogger.Info("registrations.export.written", "records", len(records), "output", msg.Output)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportCommand]{
		commands.WithLogger[ExportCommand](baseLogger),
		commands.WithOperation[ExportCommand]("registrations.export"),
		commands.WithMessageFields(func(msg ExportCommand) map[string]any {
			fields := map[string]any{}
			if msg.Output != "" {
				fields["output"] = msg.Output
			}
			if msg.Limit > 0 {
				fields["limit"] = msg.Limit
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ExportCommand].
func (h *ExportHandler) Execute(ctx context.Context, msg ExportCommand) error {
	return h.inner.Execute(ctx, msg)
}

func writeSheet(w io.Writer, records []*submissions.Registration) error {
	if err := submissions.ExportCSV(w, records); err != nil {
		return fmt.Errorf("registrations export: %w", err)
	}
	return nil
}
