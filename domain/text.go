package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Bilingual holds the Persian and English variants of a display string.
type Bilingual struct {
	Fa string `json:"fa"`
	En string `json:"en"`
}

// IsZero reports whether both variants are empty.
func (b Bilingual) IsZero() bool {
	return b.Fa == "" && b.En == ""
}

// Resolve returns the Persian variant when present, the English variant
// otherwise.
func (b Bilingual) Resolve() string {
	if strings.TrimSpace(b.Fa) != "" {
		return b.Fa
	}
	return b.En
}

// ResolveLang returns the variant for the requested language code, falling
// back to the other variant when the requested one is empty.
func (b Bilingual) ResolveLang(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en":
		if strings.TrimSpace(b.En) != "" {
			return b.En
		}
		return b.Fa
	default:
		return b.Resolve()
	}
}

// Text is a display value that is either a plain string or a bilingual
// object. Stored documents contain both shapes: older records carry plain
// strings while newer ones carry {fa,en} objects. Text round-trips either
// form through JSON without loss.
type Text struct {
	Raw       string
	Localized *Bilingual
}

// NewText wraps a plain string.
func NewText(value string) Text {
	return Text{Raw: value}
}

// NewBilingualText wraps a bilingual pair.
func NewBilingualText(fa, en string) Text {
	return Text{Localized: &Bilingual{Fa: fa, En: en}}
}

// IsZero reports whether the value carries no text in any shape.
func (t Text) IsZero() bool {
	if t.Localized != nil {
		return t.Localized.IsZero()
	}
	return t.Raw == ""
}

// Resolve coerces the value to a single display string: the Persian variant
// first, then the English variant, then the raw string, then empty. This is
// the accessor every read boundary (rendering, export) must go through so
// legacy records never break the caller.
func (t Text) Resolve() string {
	if t.Localized != nil {
		return t.Localized.Resolve()
	}
	return t.Raw
}

// ResolveLang resolves with an explicit language preference.
func (t Text) ResolveLang(lang string) string {
	if t.Localized != nil {
		return t.Localized.ResolveLang(lang)
	}
	return t.Raw
}

// MarshalJSON emits the original shape: an object when the value is
// bilingual, a plain string otherwise.
func (t Text) MarshalJSON() ([]byte, error) {
	if t.Localized != nil {
		return json.Marshal(t.Localized)
	}
	return json.Marshal(t.Raw)
}

// UnmarshalJSON accepts a string, a {fa,en} object, or any scalar. Scalars
// that are neither are coerced to their textual representation so malformed
// legacy records load instead of failing the whole document.
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = Text{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*t = Text{Raw: value}
		return nil
	case '{':
		var value Bilingual
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*t = Text{Localized: &value}
		return nil
	default:
		var value any
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*t = Text{Raw: fmt.Sprintf("%v", value)}
		return nil
	}
}

// String implements fmt.Stringer via Resolve.
func (t Text) String() string {
	return t.Resolve()
}
