package content

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateDocument enforces the document invariants: every list item carries
// a non-empty id that is unique within its list. Deletion works by filtering
// on id, so a duplicate or missing id would make items unaddressable.
func ValidateDocument(doc *SiteContent) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrDocumentInvalid)
	}

	if err := validation.Validate(doc.MenuItems, uniqueIDs[MenuItem]("menuItems")); err != nil {
		return err
	}
	if err := validation.Validate(doc.Works, uniqueIDs[Work]("works")); err != nil {
		return err
	}
	if err := validation.Validate(doc.Articles, uniqueIDs[Article]("articles")); err != nil {
		return err
	}
	return validation.Validate(doc.EventsList, uniqueIDs[EventItem]("eventsList"))
}

// uniqueIDs builds the per-list rule. The rule returns the package's typed
// errors directly so callers keep errors.Is/errors.As over
// ErrDocumentInvalid and DuplicateIDError.
func uniqueIDs[T Identifiable](list string) validation.Rule {
	return validation.By(func(value any) error {
		items, ok := value.([]T)
		if !ok {
			return fmt.Errorf("%w: list=%s has unexpected shape", ErrDocumentInvalid, list)
		}
		seen := make(map[string]struct{}, len(items))
		for _, item := range items {
			id := item.ItemID()
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%w: list=%s item without id", ErrDocumentInvalid, list)
			}
			if _, dup := seen[id]; dup {
				return &DuplicateIDError{List: list, ID: id}
			}
			seen[id] = struct{}{}
		}
		return nil
	})
}
