package sitecms_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sitecms "github.com/karafilm/go-sitecms"
)

func TestModuleServesAPI(t *testing.T) {
	module, err := sitecms.New(sitecms.DefaultConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	handler := module.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "{}" {
		t.Fatalf("fresh module must serve an empty document, got %q", body)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages",
		strings.NewReader(`{"name":"A","email":"a@a.com","message":"سلام"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("message intake status = %d body = %s", rec.Code, rec.Body.String())
	}
}

func TestModuleAccessors(t *testing.T) {
	module, err := sitecms.New(sitecms.DefaultConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	if module.Content() == nil || module.Submissions() == nil || module.Chat() == nil {
		t.Fatal("core services must be non-nil")
	}
	if module.Uploads() == nil || module.AdminGate() == nil {
		t.Fatal("auxiliary services must be non-nil")
	}
	if module.Container() == nil {
		t.Fatal("container must be exposed")
	}
}
