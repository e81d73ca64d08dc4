package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/karafilm/go-sitecms/domain"
)

func TestTextUnmarshalString(t *testing.T) {
	var value domain.Text
	if err := json.Unmarshal([]byte(`"سینما"`), &value); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if value.Localized != nil {
		t.Fatalf("expected raw shape, got localized %+v", value.Localized)
	}
	if got := value.Resolve(); got != "سینما" {
		t.Fatalf("resolve = %q", got)
	}
}

func TestTextUnmarshalObject(t *testing.T) {
	var value domain.Text
	if err := json.Unmarshal([]byte(`{"fa":"درباره ما","en":"About"}`), &value); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}
	if value.Localized == nil {
		t.Fatal("expected localized shape")
	}
	if got := value.Resolve(); got != "درباره ما" {
		t.Fatalf("resolve preferred fa, got %q", got)
	}
	if got := value.ResolveLang("en"); got != "About" {
		t.Fatalf("resolve en = %q", got)
	}
}

func TestTextUnmarshalScalarCoerces(t *testing.T) {
	var value domain.Text
	if err := json.Unmarshal([]byte(`1402`), &value); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if got := value.Resolve(); got != "1402" {
		t.Fatalf("coerced number = %q", got)
	}

	if err := json.Unmarshal([]byte(`null`), &value); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !value.IsZero() {
		t.Fatalf("null should yield zero value, got %+v", value)
	}
}

func TestTextMarshalPreservesShape(t *testing.T) {
	raw, err := json.Marshal(domain.NewText("plain"))
	if err != nil {
		t.Fatalf("marshal raw: %v", err)
	}
	if string(raw) != `"plain"` {
		t.Fatalf("raw shape = %s", raw)
	}

	localized, err := json.Marshal(domain.NewBilingualText("فیلم", "film"))
	if err != nil {
		t.Fatalf("marshal localized: %v", err)
	}
	if string(localized) != `{"fa":"فیلم","en":"film"}` {
		t.Fatalf("localized shape = %s", localized)
	}
}

func TestTextResolveFallbacks(t *testing.T) {
	cases := []struct {
		name string
		text domain.Text
		lang string
		want string
	}{
		{"fa missing falls back to en", domain.NewBilingualText("", "Archive"), "", "Archive"},
		{"en missing falls back to fa", domain.NewBilingualText("آرشیو", ""), "en", "آرشیو"},
		{"raw ignores language", domain.NewText("legacy"), "en", "legacy"},
		{"empty resolves empty", domain.Text{}, "", ""},
	}
	for _, tc := range cases {
		if got := tc.text.ResolveLang(tc.lang); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestBilingualIsZero(t *testing.T) {
	if !(domain.Bilingual{}).IsZero() {
		t.Fatal("empty bilingual should be zero")
	}
	if (domain.Bilingual{En: "x"}).IsZero() {
		t.Fatal("bilingual with en should not be zero")
	}
}
