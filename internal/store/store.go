// Package store persists named pipeline records as JSON files in a state
// directory. Reads are tolerant: an absent or malformed record yields the
// zero value instead of an error, so stale state never blocks a run.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
)

const (
	requirementsRecord = "requirements"
	titlesRecord       = "titles"
	industriesRecord   = "industries"
	profilesRecord     = "profiles"
	maxScoreRecord     = "max_score"
)

// Store reads and writes records under a single directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

func New(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// save writes the record as indented JSON, creating the directory on first
// use.
func (s *Store) save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(s.path(name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// load decodes the named record into out. It reports whether a usable
// record was found; on any failure out is left untouched and the reason is
// logged at debug level.
func (s *Store) load(name string, out any) bool {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		s.logger.Debug("stored record unavailable",
			zap.String("record", name),
			zap.Error(err),
		)
		return false
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Debug("stored record is not valid json, ignoring",
			zap.String("record", name),
			zap.Error(err),
		)
		return false
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		s.logger.Debug("record decoder setup failed",
			zap.String("record", name),
			zap.Error(err),
		)
		return false
	}

	if err := decoder.Decode(raw); err != nil {
		s.logger.Debug("stored record has unexpected shape, ignoring",
			zap.String("record", name),
			zap.Error(err),
		)
		return false
	}

	return true
}

// Requirements returns the stored requirement set, or an empty list.
func (s *Store) Requirements() []requirements.Requirement {
	var reqs []requirements.Requirement
	if !s.load(requirementsRecord, &reqs) {
		return []requirements.Requirement{}
	}
	return reqs
}

func (s *Store) SaveRequirements(reqs []requirements.Requirement) error {
	return s.save(requirementsRecord, reqs)
}

// CustomTitles returns user-added job title terms, or an empty list.
func (s *Store) CustomTitles() []string {
	var titles []string
	if !s.load(titlesRecord, &titles) {
		return []string{}
	}
	return titles
}

func (s *Store) SaveCustomTitles(titles []string) error {
	return s.save(titlesRecord, titles)
}

// CustomIndustries returns user-added industry terms, or an empty list.
func (s *Store) CustomIndustries() []string {
	var industries []string
	if !s.load(industriesRecord, &industries) {
		return []string{}
	}
	return industries
}

func (s *Store) SaveCustomIndustries(industries []string) error {
	return s.save(industriesRecord, industries)
}

// Profiles returns the stored candidate batch, or an empty batch.
func (s *Store) Profiles() *profile.Profiles {
	var p profile.Profiles
	if !s.load(profilesRecord, &p) {
		return &profile.Profiles{}
	}
	return &p
}

func (s *Store) SaveProfiles(p *profile.Profiles) error {
	return s.save(profilesRecord, p)
}

type maxScoreOverride struct {
	MaxScore int `json:"max_score" mapstructure:"max_score"`
}

// MaxScoreOverride returns the stored score ceiling override, or -1 when
// the record is absent or unusable.
func (s *Store) MaxScoreOverride() int {
	record := maxScoreOverride{MaxScore: -1}
	if !s.load(maxScoreRecord, &record) {
		return -1
	}
	return record.MaxScore
}

func (s *Store) SaveMaxScoreOverride(n int) error {
	return s.save(maxScoreRecord, maxScoreOverride{MaxScore: n})
}
