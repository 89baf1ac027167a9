package config

import (
	"gopkg.in/yaml.v3"
	"implantsite/internal/domain/content"
	domainerr "implantsite/internal/domain/errors"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Source SourceConfig `yaml:"source"`
	Blog   BlogConfig   `yaml:"blog"`
	Build  BuildConfig  `yaml:"build"`
	Serve  ServeConfig  `yaml:"serve"`
	Log    LogConfig    `yaml:"log"`
}

type SiteConfig struct {
	Title       string `yaml:"title"`
	Tagline     string `yaml:"tagline"`
	SiteURL     string `yaml:"site_url"`
	Language    string `yaml:"language"`
	TimeZone    string `yaml:"time_zone"`
	Description string `yaml:"description"`
}

// SourceConfig describes the articles sheet and how publish dates are spread.
type SourceConfig struct {
	Path      string  `yaml:"path"`
	Columns   Columns `yaml:"columns"`
	StartDate string  `yaml:"start_date"`
	PerDay    int     `yaml:"per_day"`
}

// Columns maps record fields to sheet header names.
type Columns struct {
	Title           string `yaml:"title"`
	Body            string `yaml:"body"`
	Category        string `yaml:"category"`
	Slug            string `yaml:"slug"`
	Status          string `yaml:"status"`
	MetaTitle       string `yaml:"meta_title"`
	MetaDescription string `yaml:"meta_description"`
	SchemaMarkup    string `yaml:"schema_markup"`
}

type BlogConfig struct {
	RelatedLimit        int                   `yaml:"related_limit"`
	FurtherReadingCount int                   `yaml:"further_reading_count"`
	LatestCount         int                   `yaml:"latest_count"`
	HideScheduled       bool                  `yaml:"hide_scheduled"`
	IncludeDraft        bool                  `yaml:"include_draft"`
	IntroMarkdown       string                `yaml:"intro"`
	CTA                 CTAConfig             `yaml:"cta"`
	FurtherReading      []content.ReadingLink `yaml:"further_reading"`
}

type CTAConfig struct {
	Eyebrow      string `yaml:"eyebrow"`
	Heading      string `yaml:"heading"`
	BodyMarkdown string `yaml:"body"`
	ButtonLabel  string `yaml:"button_label"`
	ButtonURL    string `yaml:"button_url"`
}

type BuildConfig struct {
	PublicDir string    `yaml:"public_dir"`
	IndexPath string    `yaml:"index_path"`
	ThemeDir  string    `yaml:"theme_dir"`
	BasePath  string    `yaml:"base_path"`
	Now       time.Time `yaml:"-"`
}

type ServeConfig struct {
	Addr     string        `yaml:"addr"`
	Debounce time.Duration `yaml:"debounce"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			Title:    "Essex Dental Implants",
			Tagline:  "Independent referral network for verified implant specialists",
			SiteURL:  "https://www.example.com",
			Language: "en-GB",
		},
		Source: SourceConfig{
			Path: "public/articles.csv",
			Columns: Columns{
				Title:           "Article Title",
				Body:            "Article Content",
				Category:        "wp_category",
				Slug:            "Slug",
				Status:          "Status",
				MetaTitle:       "Meta Title",
				MetaDescription: "Meta Description",
				SchemaMarkup:    "Schema Markup",
			},
			StartDate: "2026-02-10",
			PerDay:    3,
		},
		Blog: BlogConfig{
			RelatedLimit:        3,
			FurtherReadingCount: 3,
			LatestCount:         3,
			CTA: CTAConfig{
				Eyebrow:      "Free Consultation",
				Heading:      "Ready to Transform Your Smile?",
				BodyMarkdown: "Book your free consultation with our Essex dental experts today. No obligation, just honest advice tailored to you.",
				ButtonLabel:  "Book Free Consultation",
				ButtonURL:    "/#consultation",
			},
			FurtherReading: DefaultFurtherReading(),
		},
		Build: BuildConfig{
			PublicDir: "dist",
			IndexPath: ".implantsite/index.db",
			Now:       time.Now(),
		},
		Serve: ServeConfig{
			Addr:     ":8080",
			Debounce: 200 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func DefaultFurtherReading() []content.ReadingLink {
	return []content.ReadingLink{
		{URL: "https://www.dentalimplants.com", Label: "Dental Implants (official site)"},
		{URL: "https://pubmed.ncbi.nlm.nih.gov/?term=dental+implants", Label: "PubMed: Dental Implants research"},
		{URL: "https://pubmed.ncbi.nlm.nih.gov/?term=clear+implants", Label: "PubMed: Clear implants research"},
		{URL: "https://www.mouthhealthy.org/all-topics-a-z/orthodontics", Label: "MouthHealthy (ADA): Orthodontics"},
		{URL: "https://www.nhs.uk/conditions/orthodontics/", Label: "NHS: Orthodontics"},
		{URL: "https://www.mayoclinic.org/tests-procedures/braces/about/pac-20384670", Label: "Mayo Clinic: Braces overview"},
		{URL: "https://www.cdc.gov/oralhealth", Label: "CDC: Oral health"},
		{URL: "https://www.ajodo.org", Label: "AJODO (orthodontic journal)"},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.Title) == "" {
		ve.Add("site.title", "must not be empty")
	}
	if strings.TrimSpace(c.Site.SiteURL) == "" {
		ve.Add("site.site_url", "must not be empty")
	} else if !isValidAbsURL(c.Site.SiteURL) {
		ve.Add("site.site_url", "must be a valid absolute URL")
	}
	if tz := strings.TrimSpace(c.Site.TimeZone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			ve.Addf("site.time_zone", "unknown time zone %q", tz)
		}
	}

	if strings.TrimSpace(c.Source.Path) == "" {
		ve.Add("source.path", "must not be empty")
	}
	if strings.TrimSpace(c.Source.Columns.Title) == "" {
		ve.Add("source.columns.title", "must not be empty")
	}
	if strings.TrimSpace(c.Source.Columns.Body) == "" {
		ve.Add("source.columns.body", "must not be empty")
	}
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(c.Source.StartDate)); err != nil {
		ve.Add("source.start_date", "must be a YYYY-MM-DD date")
	}
	if c.Source.PerDay < 1 {
		ve.Add("source.per_day", "must be at least 1")
	}

	if c.Blog.RelatedLimit < 0 {
		ve.Add("blog.related_limit", "must not be negative")
	}
	if c.Blog.FurtherReadingCount < 0 {
		ve.Add("blog.further_reading_count", "must not be negative")
	}
	if c.Blog.LatestCount < 0 {
		ve.Add("blog.latest_count", "must not be negative")
	}
	for i, l := range c.Blog.FurtherReading {
		if !isValidAbsURL(l.URL) {
			ve.Addf("blog.further_reading", "entry %d: url must be a valid absolute URL", i)
		}
		if strings.TrimSpace(l.Label) == "" {
			ve.Addf("blog.further_reading", "entry %d: label must not be empty", i)
		}
	}

	if strings.TrimSpace(c.Build.PublicDir) == "" {
		ve.Add("build.public_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.IndexPath) == "" {
		ve.Add("build.index_path", "must not be empty")
	}
	if bp := strings.TrimSpace(c.Build.BasePath); bp != "" {
		if !strings.HasPrefix(bp, "/") {
			ve.Add("build.base_path", "must start with '/'")
		}
		if strings.HasSuffix(bp, "/") && bp != "/" {
			ve.Add("build.base_path", "must not end with '/'")
		}
	}

	if c.Serve.Debounce < 0 {
		ve.Add("serve.debounce", "must not be negative")
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		ve.Add("log.level", "must be one of: debug, info, warn, error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		ve.Add("log.format", "must be 'text' or 'json'")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

// Location resolves site.time_zone; an empty zone means the process local zone.
func (c Config) Location() *time.Location {
	tz := strings.TrimSpace(c.Site.TimeZone)
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}

// StartDate is midnight of source.start_date in the site time zone.
func (c Config) StartDate() time.Time {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(c.Source.StartDate), c.Location())
	if err != nil {
		return time.Time{}
	}
	return t
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return decode(cfg, data)
}

// LoadOrDefault is Load, except a missing file yields the validated defaults.
func LoadOrDefault(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return cfg, err
	}
	return decode(cfg, data)
}

func decode(cfg Config, data []byte) (Config, error) {
	// fields present in the file override Default, the rest are kept
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Build.Now.IsZero() {
		cfg.Build.Now = time.Now()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
