package content_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/karafilm/go-sitecms/domain"
	"github.com/karafilm/go-sitecms/internal/content"
)

func sampleDocument() *content.SiteContent {
	return &content.SiteContent{
		CompanyName: domain.Bilingual{Fa: "کارا فیلم", En: "Kara Film"},
		MenuItems: []content.MenuItem{
			{ID: "1", Title: domain.Bilingual{Fa: "آرشیو", En: "Archive"}, Link: "#works"},
			{ID: "2", Title: domain.Bilingual{Fa: "درباره", En: "About"}, Link: "#about"},
		},
		Works:      []content.Work{{ID: "w1", Title: domain.Bilingual{Fa: "اثر", En: "Work"}, Year: "2024"}},
		Articles:   []content.Article{},
		EventsList: []content.EventItem{},
	}
}

func TestServiceSaveFetchRoundTrip(t *testing.T) {
	repo := content.NewMemoryDocumentRepository()
	cache := content.NewFileCache(filepath.Join(t.TempDir(), "content.json"))
	svc := content.NewService(repo, cache)

	doc := sampleDocument()
	result, err := svc.Save(context.Background(), doc)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !result.Local || !result.Remote {
		t.Fatalf("expected both layers saved, got %+v", result)
	}

	fetched, source := svc.Fetch(context.Background())
	if source != content.SourceRemote {
		t.Fatalf("source = %s, want remote", source)
	}
	if len(fetched.MenuItems) != 2 || fetched.MenuItems[0].Title.En != "Archive" {
		t.Fatalf("fetched document mismatch: %+v", fetched.MenuItems)
	}
}

func TestServiceFetchFallsBackToCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	cache := content.NewFileCache(path)
	if err := cache.Store(sampleDocument()); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	svc := content.NewService(nil, cache)
	doc, source := svc.Fetch(context.Background())
	if source != content.SourceCache {
		t.Fatalf("source = %s, want cache", source)
	}
	if doc.CompanyName.En != "Kara Film" {
		t.Fatalf("cache document mismatch: %+v", doc.CompanyName)
	}
}

func TestServiceFetchFallsBackToDefaults(t *testing.T) {
	svc := content.NewService(nil, nil)
	doc, source := svc.Fetch(context.Background())
	if source != content.SourceDefault {
		t.Fatalf("source = %s, want default", source)
	}
	if doc.CompanyName.Fa == "" {
		t.Fatal("default document should carry the company name")
	}
	if doc.MenuItems == nil || doc.Works == nil {
		t.Fatal("default lists must be non-nil")
	}
	if svc.RemoteConfigured() {
		t.Fatal("service without repo must not report a remote store")
	}
}

func TestServiceSaveRejectsDuplicateIDs(t *testing.T) {
	svc := content.NewService(content.NewMemoryDocumentRepository(), nil)

	doc := sampleDocument()
	doc.Works = append(doc.Works, content.Work{ID: "w1"})

	_, err := svc.Save(context.Background(), doc)
	var dup *content.DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if dup.List != "works" || dup.ID != "w1" {
		t.Fatalf("unexpected duplicate detail: %+v", dup)
	}
	if !errors.Is(err, content.ErrDocumentInvalid) {
		t.Fatal("duplicate id must unwrap to ErrDocumentInvalid")
	}
}

func TestServiceSaveRejectsMissingID(t *testing.T) {
	svc := content.NewService(content.NewMemoryDocumentRepository(), nil)

	doc := sampleDocument()
	doc.MenuItems = append(doc.MenuItems, content.MenuItem{Link: "#contact"})

	if _, err := svc.Save(context.Background(), doc); !errors.Is(err, content.ErrDocumentInvalid) {
		t.Fatalf("expected ErrDocumentInvalid, got %v", err)
	}
}

func TestServiceSaveRemoteFailureKeepsLocal(t *testing.T) {
	cache := content.NewFileCache(filepath.Join(t.TempDir(), "content.json"))
	svc := content.NewService(failingRepo{}, cache)

	result, err := svc.Save(context.Background(), sampleDocument())
	if !errors.Is(err, content.ErrRemoteUnavailable) {
		t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
	}
	if !result.Local {
		t.Fatal("local mirror must survive a remote failure")
	}
	if result.Remote {
		t.Fatal("remote must not be reported on failure")
	}

	if _, err := cache.Load(); err != nil {
		t.Fatalf("mirror should hold the document: %v", err)
	}
}

func TestServiceNewItemIDMonotonic(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	svc := content.NewService(nil, nil, content.WithClock(func() time.Time { return now }))

	first := svc.NewItemID()
	second := svc.NewItemID()
	if first == second {
		t.Fatalf("ids must be unique within a process, both %q", first)
	}
	if first != "1700000000000" {
		t.Fatalf("first id = %q", first)
	}
	if second != "1700000000001" {
		t.Fatalf("collision must bump, got %q", second)
	}
}

func TestRemoveByID(t *testing.T) {
	items := []content.MenuItem{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	out, removed := content.RemoveByID(items, "2")
	if !removed {
		t.Fatal("expected removal")
	}
	if len(out) != 2 || out[0].ID != "1" || out[1].ID != "3" {
		t.Fatalf("order not preserved: %+v", out)
	}

	out, removed = content.RemoveByID(items, "missing")
	if removed || len(out) != 3 {
		t.Fatalf("missing id must remove nothing, got %v %d", removed, len(out))
	}
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (*content.Document, error) {
	return nil, errors.New("store down")
}

func (failingRepo) Put(context.Context, *content.Document) error {
	return errors.New("store down")
}
