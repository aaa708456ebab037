package extract

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/logger"
	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/search"
)

// Builder orchestrates the four field extractors over a result batch.
type Builder struct {
	name     *NameExtractor
	title    *TitleExtractor
	company  *CompanyExtractor
	location *LocationExtractor
	logger   *zap.Logger
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	pick func(n int) int
}

// WithSurnamePicker pins the fallback surname choice, for deterministic
// tests.
func WithSurnamePicker(pick func(n int) int) Option {
	return func(o *options) { o.pick = pick }
}

// NewBuilder wires the extractors over a shared dictionary bundle.
func NewBuilder(dict *dictionary.Bundle, log *zap.Logger, opts ...Option) *Builder {
	o := &options{pick: rand.IntN}
	for _, opt := range opts {
		opt(o)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Builder{
		name:     NewNameExtractor(dict, o.pick),
		title:    NewTitleExtractor(dict),
		company:  NewCompanyExtractor(dict),
		location: NewLocationExtractor(dict),
		logger:   log,
	}
}

// BuildProfiles produces exactly one profile per input item, in input
// order. Items are never dropped: downstream counts must reconcile with
// the result count shown to the user.
func (b *Builder) BuildProfiles(items []*search.Result) *profile.Profiles {
	profiles := &profile.Profiles{Items: make([]*profile.Profile, 0, len(items))}

	for i, item := range items {
		profiles.Items = append(profiles.Items, b.buildOne(i, item))
	}

	return profiles
}

func (b *Builder) buildOne(index int, item *search.Result) *profile.Profile {
	normalized := NormalizeURL(item.URL)

	name, nameStrategy := b.name.Extract(item)
	title, titleStrategy := b.title.Extract(item)
	company, companyStrategy := b.company.Extract(item)
	location, locationStrategy := b.location.Extract(item)

	p := &profile.Profile{
		ID:       profileID(index, normalized),
		URL:      normalized,
		Name:     name,
		Title:    title,
		Company:  company,
		Location: location,
		Snippet:  item.Snippet,
	}

	b.logField(p.ID, profile.NameField, name, nameStrategy)
	b.logField(p.ID, profile.TitleField, title, titleStrategy)
	b.logField(p.ID, profile.CompanyField, company, companyStrategy)
	b.logField(p.ID, profile.LocationField, location, locationStrategy)

	return p
}

func (b *Builder) logField(id, field, value, strategy string) {
	fields := append(
		logger.ExtractionFields(field, strategy),
		zap.String("profile_id", id),
		zap.String("value", logger.TruncateForLog(value, 60)),
	)
	b.logger.Debug("extracted field", fields...)
}

// profileID is stable within a batch: the normalized URL when present,
// a positional id otherwise.
func profileID(index int, normalizedURL string) string {
	if normalizedURL != "" {
		return normalizedURL
	}
	return fmt.Sprintf("profile-%d", index+1)
}
