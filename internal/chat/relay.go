package chat

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/karafilm/go-sitecms/internal/logging"
	"github.com/karafilm/go-sitecms/pkg/interfaces"
)

// Status tags every relay answer so the widget can render it appropriately.
type Status string

const (
	// StatusSuccess marks a real completion from one of the backends.
	StatusSuccess Status = "success"
	// StatusManual marks a placeholder served because AI assistance is off.
	StatusManual Status = "manual"
	// StatusError marks a placeholder served because every backend failed.
	StatusError Status = "error"
)

// Request is one relay invocation. Disabled reflects the admin's
// per-context switch; CustomPrompt, when set, overrides the built-in system
// prompt; Model, when set, is tried before the configured fallback list.
type Request struct {
	Message      string
	CustomPrompt string
	Model        string
	Disabled     bool
}

// Response is always displayable: the relay never surfaces an error.
type Response struct {
	Text   string `json:"text"`
	Status Status `json:"status"`
	Model  string `json:"model,omitempty"`
}

// Placeholders is the fixed set of offline answers. Exported so tests and
// the panel preview can assert membership.
var Placeholders = []string{
	"دستیار هوشمند جشنواره در حال حاضر در دسترس نیست. لطفاً کمی بعد دوباره تلاش کنید.",
	"پاسخگوی هوشمند موقتاً غیرفعال است. برای پرسش‌های فوری از فرم تماس استفاده کنید.",
	"در حال حاضر امکان پاسخ خودکار وجود ندارد. تیم جشنواره پیام شما را از طریق فرم تماس دریافت می‌کند.",
	"سرویس گفت‌وگو فعلاً خاموش است. اطلاعات ثبت‌نام و مقررات در صفحه رویداد در دسترس است.",
}

// defaultSystemPrompt embeds the static festival facts plus the persona
// directive used when the admin supplies no custom prompt.
const defaultSystemPrompt = `تو دستیار رسمی جشنواره فیلم کوتاه هوش مصنوعی کارا فیلم هستی.
همیشه مودب و کوتاه به فارسی پاسخ بده، مگر اینکه کاربر انگلیسی بنویسد.

واقعیت‌های جشنواره:
- مهلت ارسال آثار: ۱۵ آذر.
- آثار باید کوتاه‌تر از ۱۵ دقیقه باشند و با ابزارهای هوش مصنوعی ساخته شده باشند.
- ارسال اثر رایگان است و هر فیلمساز حداکثر سه اثر می‌تواند بفرستد.
- جوایز: تندیس جشنواره و جایزه نقدی برای سه اثر برگزیده.
- نتیجه داوری از طریق ایمیل اعلام می‌شود.

اگر پاسخ پرسشی را نمی‌دانی، کاربر را به فرم تماس سایت راهنمایی کن.`

// thinkBlock matches the inline reasoning delimiters one upstream model
// embeds in its answers.
var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// CompletionClient performs one completion attempt against one backend model.
type CompletionClient interface {
	Complete(ctx context.Context, model, systemPrompt, userMessage string) (string, error)
}

// Relay forwards user messages to a prioritized list of completion backends
// and falls back to canned placeholder answers. It never returns an error:
// every code path yields a displayable Response.
type Relay struct {
	client         CompletionClient
	models         []string
	attemptTimeout time.Duration
	logger         interfaces.Logger

	mu   sync.Mutex
	rand *rand.Rand
}

// RelayOption mutates the relay during construction.
type RelayOption func(*Relay)

// WithLogger attaches a logger to the relay.
func WithLogger(logger interfaces.Logger) RelayOption {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithAttemptTimeout bounds each backend attempt.
func WithAttemptTimeout(timeout time.Duration) RelayOption {
	return func(r *Relay) {
		if timeout > 0 {
			r.attemptTimeout = timeout
		}
	}
}

// WithRandSource overrides the placeholder picker, used by tests.
func WithRandSource(src rand.Source) RelayOption {
	return func(r *Relay) {
		if src != nil {
			r.rand = rand.New(src)
		}
	}
}

// NewRelay constructs a relay over the given client and model fallback list.
// A nil client behaves like a relay whose backends always fail.
func NewRelay(client CompletionClient, models []string, opts ...RelayOption) *Relay {
	relay := &Relay{
		client:         client,
		models:         append([]string(nil), models...),
		attemptTimeout: 20 * time.Second,
		logger:         logging.NoOp(),
		rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(relay)
		}
	}
	return relay
}

// Configured reports whether the relay has a completion backend at all.
// An unconfigured relay is equivalent to one with AI assistance switched off.
func (r *Relay) Configured() bool {
	return r.client != nil
}

// Ask runs the relay state machine: disabled short-circuits to a manual
// placeholder; otherwise each backend model is tried in order with an
// independent timeout, stopping at the first non-empty answer; when every
// attempt fails the placeholder mechanism answers with an error tag.
func (r *Relay) Ask(ctx context.Context, req Request) Response {
	if req.Disabled {
		return Response{Text: r.placeholder(), Status: StatusManual}
	}

	prompt := strings.TrimSpace(req.CustomPrompt)
	if prompt == "" {
		prompt = defaultSystemPrompt
	}

	for _, model := range r.attemptOrder(req.Model) {
		text, ok := r.attempt(ctx, model, prompt, req.Message)
		if ok {
			return Response{Text: text, Status: StatusSuccess, Model: model}
		}
	}

	return Response{Text: r.placeholder(), Status: StatusError}
}

// attempt performs one bounded completion call. Failures (transport error,
// empty body) are logged and reported as a miss, never as an error.
func (r *Relay) attempt(ctx context.Context, model, prompt, message string) (string, bool) {
	if r.client == nil {
		return "", false
	}

	attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout)
	defer cancel()

	text, err := r.client.Complete(attemptCtx, model, prompt, message)
	if err != nil {
		r.logger.Warn("chat.attempt.failed", "model", model, "error", err)
		return "", false
	}

	cleaned := StripReasoning(text)
	if cleaned == "" {
		r.logger.Warn("chat.attempt.empty", "model", model)
		return "", false
	}
	return cleaned, true
}

// attemptOrder puts an explicitly requested model ahead of the configured
// fallback list, deduplicated.
func (r *Relay) attemptOrder(requested string) []string {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return r.models
	}
	order := make([]string, 0, len(r.models)+1)
	order = append(order, requested)
	for _, model := range r.models {
		if model != requested {
			order = append(order, model)
		}
	}
	return order
}

func (r *Relay) placeholder() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Placeholders[r.rand.Intn(len(Placeholders))]
}

// StripReasoning removes the in-band <think>...</think> reasoning blocks
// some backends embed in their answers, then trims the remainder.
func StripReasoning(text string) string {
	return strings.TrimSpace(thinkBlock.ReplaceAllString(text, ""))
}
