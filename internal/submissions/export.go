package submissions

import (
	"encoding/csv"
	"io"
	"time"
)

// exportHeader is the fixed column order of the registrations export. The
// order is part of the offline-analysis contract and must not change.
var exportHeader = []string{
	"director_name_fa",
	"director_name_en",
	"film_title",
	"section",
	"phone",
	"email",
	"submitted_at",
	"film_link",
}

// ExportCSV writes all registrations in the fixed column order. Every field
// goes through domain.Text coercion (Persian variant, then English, then the
// raw string, then empty), so malformed or legacy records export as best
// they can instead of failing the whole file.
func ExportCSV(w io.Writer, records []*Registration) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return err
	}

	for _, reg := range records {
		if reg == nil {
			continue
		}
		submitted := ""
		if !reg.SubmittedAt.IsZero() {
			submitted = reg.SubmittedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			reg.Data.DirectorName.Resolve(),
			reg.Data.DirectorNameEn.ResolveLang("en"),
			reg.Data.FilmTitle.Resolve(),
			reg.Data.Section.Resolve(),
			reg.Data.Phone.Resolve(),
			reg.Data.Email.Resolve(),
			submitted,
			reg.Data.FilmLink.Resolve(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
