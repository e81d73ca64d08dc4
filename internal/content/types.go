package content

import (
	"time"

	"github.com/karafilm/go-sitecms/domain"
	"github.com/uptrace/bun"
)

// DocumentKey is the fixed key of the singleton content document. The whole
// editable site lives in one record that is replaced wholesale on save.
const DocumentKey = "main"

// SiteContent is the singleton document holding every editable piece of the
// public site. The admin panel writes it, the public site and the panel read
// it. JSON field names follow the stored document shape.
type SiteContent struct {
	VideoURL    string           `json:"videoUrl,omitempty"`
	LogoURL     string           `json:"logoUrl,omitempty"`
	LogoSize    int              `json:"logoSize,omitempty"`
	LoaderImage string           `json:"loaderImage,omitempty"`
	PosterImage string           `json:"posterImage,omitempty"`
	CompanyName domain.Bilingual `json:"companyName"`

	// AIPrompt overrides the chat relay's built-in system prompt when set.
	AIPrompt string `json:"aiPrompt,omitempty"`

	MenuItems  []MenuItem  `json:"menuItems"`
	Works      []Work      `json:"works"`
	Articles   []Article   `json:"articles"`
	EventsList []EventItem `json:"eventsList"`

	SpecialEvent SpecialEvent `json:"specialEvent"`
	About        About        `json:"about"`

	// EnableDarkRoom gates the hidden menu entry and the matching admin tab.
	EnableDarkRoom bool `json:"enableDarkRoom"`
}

// MenuItem is one entry of the ordered public navigation.
type MenuItem struct {
	ID          string           `json:"id"`
	Title       domain.Bilingual `json:"title"`
	Link        string           `json:"link"`
	Description string           `json:"description,omitempty"`
}

// ItemID implements Identifiable.
func (m MenuItem) ItemID() string { return m.ID }

// Work is one produced film in the archive list.
type Work struct {
	ID          string           `json:"id"`
	Title       domain.Bilingual `json:"title"`
	Year        string           `json:"year"`
	ImageURL    string           `json:"imageUrl"`
	Link        string           `json:"link,omitempty"`
	Description string           `json:"description,omitempty"`
}

// ItemID implements Identifiable.
func (w Work) ItemID() string { return w.ID }

// Article is a published text piece. Title, summary, body, and author are
// domain.Text because older records store plain strings where newer ones
// store bilingual objects.
type Article struct {
	ID       string      `json:"id"`
	Title    domain.Text `json:"title"`
	Summary  domain.Text `json:"summary"`
	Content  domain.Text `json:"content"`
	Author   domain.Text `json:"author"`
	Date     string      `json:"date"`
	CoverURL string      `json:"coverUrl,omitempty"`
}

// ItemID implements Identifiable.
func (a Article) ItemID() string { return a.ID }

// EventItem is a screening or festival calendar entry. These are flat
// strings, not bilingual.
type EventItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Location    string `json:"location,omitempty"`
	Link        string `json:"link,omitempty"`
}

// ItemID implements Identifiable.
func (e EventItem) ItemID() string { return e.ID }

// SpecialEvent is the singleton festival banner configuration.
type SpecialEvent struct {
	IsActive       bool             `json:"isActive"`
	Title          domain.Bilingual `json:"title"`
	Description    domain.Bilingual `json:"description"`
	Date           string           `json:"date"`
	Position       string           `json:"position"`
	PosterURL      string           `json:"posterUrl,omitempty"`
	EnableChat     bool             `json:"enableChat"`
	EnableRegister bool             `json:"enableRegister"`
}

// SocialLink is one entry of the about section's social list.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IsActive bool   `json:"isActive"`
}

// About is the singleton company profile block.
type About struct {
	Manifesto domain.Bilingual `json:"manifesto"`
	Address   domain.Bilingual `json:"address"`
	Socials   []SocialLink     `json:"socials"`
}

// Document is the persisted envelope for the content payload.
type Document struct {
	bun.BaseModel `bun:"table:site_documents,alias:sd"`

	Key       string      `bun:"key,pk"                json:"key"`
	Payload   SiteContent `bun:"payload,type:jsonb"    json:"payload"`
	UpdatedAt time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Identifiable is satisfied by every list item carrying a stable unique id.
type Identifiable interface {
	ItemID() string
}

// RemoveByID filters exactly the item with the given id out of the list,
// preserving the relative order of the remainder. The second return reports
// whether an item was removed.
func RemoveByID[T Identifiable](items []T, id string) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, item := range items {
		if !removed && item.ItemID() == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}
