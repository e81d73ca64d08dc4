package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/karafilm/go-sitecms/internal/admin"
	"github.com/karafilm/go-sitecms/internal/chat"
	"github.com/karafilm/go-sitecms/internal/content"
	sitehttp "github.com/karafilm/go-sitecms/internal/http"
	"github.com/karafilm/go-sitecms/internal/runtimeconfig"
	"github.com/karafilm/go-sitecms/internal/submissions"
	"github.com/karafilm/go-sitecms/internal/uploads"
)

func newTestAPI(t *testing.T, opts ...sitehttp.Option) http.Handler {
	t.Helper()
	return sitehttp.NewAPI(opts...).Handler()
}

func withServices(t *testing.T) http.Handler {
	t.Helper()

	contentSvc := content.NewService(content.NewMemoryDocumentRepository(), nil)
	submissionsSvc := submissions.NewService(
		submissions.NewMemoryRegistrationRepository(),
		submissions.NewMemoryMessageRepository(),
	)
	uploadsSvc, err := uploads.NewService(runtimeconfig.UploadsConfig{})
	if err != nil {
		t.Fatalf("uploads: %v", err)
	}

	handler := newTestAPI(t,
		sitehttp.WithContentService(contentSvc),
		sitehttp.WithSubmissionsService(submissionsSvc),
		sitehttp.WithChatRelay(chat.NewRelay(nil, nil)),
		sitehttp.WithUploadsService(uploadsSvc),
		sitehttp.WithGate(admin.NewGate("panel-secret", "dark-secret")),
	)
	return handler
}

func TestContentGetEmptyWhenUnconfigured(t *testing.T) {
	handler := newTestAPI(t, sitehttp.WithContentService(content.NewService(nil, nil)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "{}" {
		t.Fatalf("unconfigured store must serve an empty object, got %q", body)
	}
}

func TestContentSaveThenGet(t *testing.T) {
	handler := withServices(t)

	payload := `{
		"companyName": {"fa": "کارا فیلم", "en": "Kara Film"},
		"menuItems": [{"id": "1", "title": {"fa": "آرشیو", "en": "Archive"}, "link": "#works"}],
		"works": [], "articles": [], "eventsList": []
	}`

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/content", strings.NewReader(payload)))
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d body = %s", rec.Code, rec.Body.String())
	}
	var saved struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil || !saved.Success {
		t.Fatalf("save response = %s err = %v", rec.Body.String(), err)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var doc content.SiteContent
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.MenuItems) != 1 || doc.MenuItems[0].Title.En != "Archive" {
		t.Fatalf("round trip mismatch: %+v", doc.MenuItems)
	}
}

func TestContentSaveSchemaViolation(t *testing.T) {
	handler := withServices(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/content",
		strings.NewReader(`{"works": [{"title": "missing id"}]}`)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Error != "validation_failed" {
		t.Fatalf("error body = %s", rec.Body.String())
	}
}

func TestRegistrationSubmitAndList(t *testing.T) {
	handler := withServices(t)

	body := `{"directorName": "سارا", "filmTitle": {"fa": "رویا", "en": "Dream"}, "aiTools": ["runway"]}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/registrations", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d body = %s", rec.Code, rec.Body.String())
	}
	var submitted struct {
		Success   bool   `json:"success"`
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !submitted.Success || !strings.HasPrefix(submitted.Reference, "REG-") {
		t.Fatalf("submit response = %+v", submitted)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/registrations", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var records []*submissions.Registration
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(records) != 1 || records[0].Data.FilmTitle.ResolveLang("en") != "Dream" {
		t.Fatalf("list = %+v", records)
	}
}

func TestRegistrationExportCSV(t *testing.T) {
	handler := withServices(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/registrations/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "registrations.csv") {
		t.Fatalf("disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "director_name_fa,") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestMessageSubmitAndList(t *testing.T) {
	handler := withServices(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages",
		strings.NewReader(`{"name":"A","email":"a@a.com","message":"hi","date":"2024-01-01"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d body = %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages", nil))
	var records []*submissions.Message
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].Body != "hi" || records[0].Date != "2024-01-01" {
		t.Fatalf("messages = %+v", records)
	}
}

func TestChatUnconfiguredAnswersManual(t *testing.T) {
	handler := withServices(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message":"سلام"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("chat must always answer 200, got %d", rec.Code)
	}

	var resp chat.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != chat.StatusManual {
		t.Fatalf("status = %s", resp.Status)
	}
	found := false
	for _, candidate := range chat.Placeholders {
		if candidate == resp.Text {
			found = true
		}
	}
	if !found {
		t.Fatalf("text %q not in placeholder set", resp.Text)
	}
}

type recordingClient struct {
	prompts []string
}

func (c *recordingClient) Complete(_ context.Context, _, systemPrompt, _ string) (string, error) {
	c.prompts = append(c.prompts, systemPrompt)
	return "باشه", nil
}

func TestChatCustomPromptOverridesDocumentPrompt(t *testing.T) {
	client := &recordingClient{}
	contentSvc := content.NewService(content.NewMemoryDocumentRepository(), nil)

	doc := content.DefaultContent()
	doc.AIPrompt = "پرامپت پنل"
	doc.SpecialEvent.EnableChat = true
	if _, err := contentSvc.Save(context.Background(), doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}

	handler := newTestAPI(t,
		sitehttp.WithContentService(contentSvc),
		sitehttp.WithChatRelay(chat.NewRelay(client, []string{"a"})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message":"سلام","customPrompt":"پرامپت سفارشی"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if len(client.prompts) != 1 || client.prompts[0] != "پرامپت سفارشی" {
		t.Fatalf("backend prompt = %q, request prompt must win", client.prompts)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message":"سلام"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if got := client.prompts[len(client.prompts)-1]; got != "پرامپت پنل" {
		t.Fatalf("backend prompt = %q, document prompt must apply when the request has none", got)
	}
}

func TestChatRequiresMessage(t *testing.T) {
	handler := withServices(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"  "}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestUploadDisabledAnswers503(t *testing.T) {
	handler := withServices(t)

	var body bytes.Buffer
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
}

func TestAdminUnlock(t *testing.T) {
	handler := withServices(t)

	cases := []struct {
		payload string
		want    bool
	}{
		{`{"key":"panel-secret"}`, true},
		{`{"key":"wrong"}`, false},
		{`{"key":"dark-secret","scope":"darkroom"}`, true},
		{`{"key":"panel-secret","scope":"darkroom"}`, false},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/unlock", strings.NewReader(tc.payload)))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.OK != tc.want {
			t.Fatalf("payload %s: ok = %v want %v", tc.payload, resp.OK, tc.want)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := withServices(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/content", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}
