package content

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	slug "github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/karafilm/go-sitecms/domain"
)

var articleMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ArticleHTML renders the article body for the requested language. Bodies
// are stored as Markdown; legacy records with plain HTML or text pass
// through goldmark unchanged enough to stay displayable.
func ArticleHTML(article Article, lang string) (string, error) {
	body := article.Content.ResolveLang(lang)
	var buf bytes.Buffer
	if err := articleMarkdown.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("article render: %w", err)
	}
	return buf.String(), nil
}

type articleFrontMatter struct {
	Title     string    `yaml:"title"`
	TitleEn   string    `yaml:"title_en"`
	Summary   string    `yaml:"summary"`
	SummaryEn string    `yaml:"summary_en"`
	Author    string    `yaml:"author"`
	Date      time.Time `yaml:"date"`
	Cover     string    `yaml:"cover"`
}

// ImportArticle builds an Article from a Markdown file with YAML
// frontmatter (title, title_en, summary, summary_en, author, date, cover).
// The body below the frontmatter becomes the article content. The id is
// derived from the slugged title plus the import timestamp so repeated
// imports never collide.
func ImportArticle(source []byte, now time.Time) (Article, error) {
	if len(bytes.TrimSpace(source)) == 0 {
		return Article{}, ErrArticleSourceEmpty
	}

	var meta articleFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Article{}, fmt.Errorf("article frontmatter: %w", err)
	}

	article := Article{
		ID:       articleID(meta.Title, meta.TitleEn, now),
		Content:  domain.NewText(string(bytes.TrimSpace(body))),
		CoverURL: meta.Cover,
	}

	if meta.TitleEn != "" {
		article.Title = domain.NewBilingualText(meta.Title, meta.TitleEn)
	} else {
		article.Title = domain.NewText(meta.Title)
	}
	if meta.SummaryEn != "" {
		article.Summary = domain.NewBilingualText(meta.Summary, meta.SummaryEn)
	} else if meta.Summary != "" {
		article.Summary = domain.NewText(meta.Summary)
	}
	if meta.Author != "" {
		article.Author = domain.NewText(meta.Author)
	}

	date := meta.Date
	if date.IsZero() {
		date = now
	}
	article.Date = date.Format("2006-01-02")

	return article, nil
}

func articleID(title, titleEn string, now time.Time) string {
	stamp := strconv.FormatInt(now.UnixMilli(), 10)

	base := strings.TrimSpace(titleEn)
	if base == "" {
		base = strings.TrimSpace(title)
	}
	if base == "" {
		return stamp
	}
	normalized, err := slug.Normalize(base)
	if err != nil || normalized == "" {
		return stamp
	}
	return normalized + "-" + stamp
}
