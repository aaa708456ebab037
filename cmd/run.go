package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jonjonssons/sacore-ai/internal/ai"
	"github.com/jonjonssons/sacore-ai/internal/ai/gemini"
	"github.com/jonjonssons/sacore-ai/internal/dictionary"
	"github.com/jonjonssons/sacore-ai/internal/extract"
	"github.com/jonjonssons/sacore-ai/internal/filtering"
	"github.com/jonjonssons/sacore-ai/internal/logger"
	"github.com/jonjonssons/sacore-ai/internal/profile"
	"github.com/jonjonssons/sacore-ai/internal/requirements"
	"github.com/jonjonssons/sacore-ai/internal/scoring"
	"github.com/jonjonssons/sacore-ai/internal/search"
	"github.com/jonjonssons/sacore-ai/internal/secrets"
	"github.com/jonjonssons/sacore-ai/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExit                = "Exit"
	PromptBack                = "back"
	PromptReportByCompany     = "Report by companies"
	PromptProfilesToFile      = "Dump profiles to file"
	PromptExportCSV           = "Export profiles to CSV"
	PromptFilterByCategory    = "Filter by requirement category"
	PromptFilterByTerm        = "Filter by matched term"
	PromptFilterByField       = "Filter by profile field"
	PromptAppendToExcludeFile = "Append all profiles to exclude file"
	PromptSaveState           = "Save profiles and requirements"

	defaultStateDir = ".sacore"
	defaultCSVFile  = "profiles.csv"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{
		PromptReportByCompany,
		PromptProfilesToFile,
		PromptExportCSV,
		PromptFilterByCategory,
		PromptFilterByTerm,
		PromptFilterByField,
		PromptAppendToExcludeFile,
		PromptSaveState,
		PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sacore main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for actions, export CSV and exit")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with profiles to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
}

// pipeline bundles the long-lived collaborators of one run.
type pipeline struct {
	config      *Config
	store       *store.Store
	dict        *dictionary.Bundle
	categorizer *requirements.Categorizer
	engine      *scoring.Engine
	reqs        []requirements.Requirement
	logger      *zap.Logger
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting sacore", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Search == nil {
		logger.Fatal("search section is required")
	}

	if strings.TrimSpace(config.EngineID) == "" {
		logger.Fatal("search engine id is required under engine-id")
	}

	apiKey, err := resolveAPIKey(config)
	if err != nil {
		logger.Fatal(
			"loading search api key",
			zap.Error(err),
			zap.String("hint", "set SACORE_API_KEY_FILE environment variable or the 'api-key-file' key in the configuration file"),
		)
	}

	stateDir := strings.TrimSpace(config.StateDir)
	if stateDir == "" {
		stateDir = defaultStateDir
	}
	st := store.New(stateDir, logger)

	reqs := resolveRequirements(config, st)
	if len(requirements.Active(reqs)) == 0 {
		logger.Fatal("at least one active requirement is required",
			zap.String("hint", "add a 'requirements' section to the configuration file"),
		)
	}

	dict := buildDictionary(st)
	categorizer := requirements.NewCategorizer(dict)

	logger.Info("starting the search", zap.Strings("terms", config.Search.Terms))

	results, err := getResults(ctx, config, apiKey, logger)
	if err != nil {
		logger.Fatal("getting search results", zap.Error(err))
	}

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no search results found"))
		return
	}

	builder := extract.NewBuilder(dict, logger)
	profiles := builder.BuildProfiles(results.Items)

	engine := scoring.NewEngine(dict, categorizer, logger)
	engine.SetMaxScoreOverride(st.MaxScoreOverride())
	engine.ScoreAll(profiles, reqs)
	profiles.SortByScore()

	logger.Info("profiles scored",
		zap.Int("count", profiles.Len()),
		zap.Int("max_score", engine.MaxScore(reqs)),
	)

	p := &pipeline{
		config:      config,
		store:       st,
		dict:        dict,
		categorizer: categorizer,
		engine:      engine,
		reqs:        reqs,
		logger:      logger,
	}

	filters := prepareFilters(ctx, config, reqs, logger)

	for _, status := range filters.Describe() {
		logger.Debug("filter configured",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	filtered, err := filters.RunFilters(ctx, profiles)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	profiles = filtered

	if profiles.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no profiles left after filters"))
		return
	}

	if cmd.Flag("auto-aprove").Value.String() == "true" {
		if err := p.exportCSV(profiles); err != nil {
			logger.Fatal("exporting csv", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of profiles", zap.Int("count", profiles.Len()))

		if err := p.handleAction(ctx, action, profiles); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func (p *pipeline) handleAction(ctx context.Context, action string, profiles *profile.Profiles) error {
	switch action {
	case PromptExit:
		p.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(profiles.ReportByCompany(), "", "  ")
		p.logger.Info(string(pretty), zap.Int("profiles count", profiles.Len()))
		return nil
	case PromptProfilesToFile:
		filename, err := profiles.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		p.logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExportCSV:
		return p.exportCSV(profiles)
	case PromptFilterByCategory:
		return p.filterByCategory(ctx, profiles)
	case PromptFilterByTerm:
		return p.filterByTerm(ctx, profiles)
	case PromptFilterByField:
		return p.filterByField(ctx, profiles)
	case PromptAppendToExcludeFile:
		return p.appendToExcludeFile(profiles)
	case PromptSaveState:
		return p.saveState(profiles)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (p *pipeline) exportCSV(profiles *profile.Profiles) error {
	path := defaultCSVFile
	if p.config.Output != nil && strings.TrimSpace(p.config.Output.CSVFile) != "" {
		path = p.config.Output.CSVFile
	}

	if err := profiles.WriteCSV(path); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	p.logger.Info("exported profiles to csv",
		zap.String("filename", path),
		zap.Int("count", profiles.Len()),
	)
	return nil
}

func (p *pipeline) filterByCategory(ctx context.Context, profiles *profile.Profiles) error {
	categoryPrompt := promptui.Select{
		Label: "Choose a category and press ENTER",
		Items: []string{
			string(requirements.CategoryLocation),
			string(requirements.CategoryTitles),
			string(requirements.CategoryIndustries),
			PromptBack,
		},
	}

	_, selected, err := categoryPrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	step := filtering.NewCategory(requirements.Category(selected), p.categorizer)
	return p.applyStep(ctx, step, profiles)
}

func (p *pipeline) filterByTerm(ctx context.Context, profiles *profile.Profiles) error {
	termPrompt := promptui.Prompt{Label: "Matched term to require"}

	term, err := termPrompt.Run()
	if err != nil {
		return err
	}
	if strings.TrimSpace(term) == "" {
		return nil
	}

	step := filtering.NewTerm([]string{term})
	return p.applyStep(ctx, step, profiles)
}

func (p *pipeline) filterByField(ctx context.Context, profiles *profile.Profiles) error {
	fieldPrompt := promptui.Select{
		Label: "Choose a field and press ENTER",
		Items: []string{
			profile.TitleField,
			profile.CompanyField,
			profile.LocationField,
			PromptBack,
		},
	}

	_, field, err := fieldPrompt.Run()
	if err != nil {
		return err
	}
	if field == PromptBack {
		return nil
	}

	queryPrompt := promptui.Prompt{Label: fmt.Sprintf("Substring to require in %s", field)}
	query, err := queryPrompt.Run()
	if err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return nil
	}

	step := filtering.NewField(field, query)
	return p.applyStep(ctx, step, profiles)
}

func (p *pipeline) applyStep(ctx context.Context, step filtering.Filter, profiles *profile.Profiles) error {
	if err := step.Validate(); err != nil {
		return err
	}

	_, info, err := step.Apply(ctx, profiles)
	if err != nil {
		return err
	}

	p.logger.Info("filter step",
		zap.String("name", step.Name()),
		zap.Int("initial", info.Initial),
		zap.Int("dropped", info.Dropped),
		zap.Int("left", info.Left),
	)
	return nil
}

func (p *pipeline) appendToExcludeFile(profiles *profile.Profiles) error {
	excludeFile := viper.GetString("exclude-file")
	if excludeFile == "" {
		excludeFile = p.config.ExcludeFile
	}
	if excludeFile == "" {
		return errors.New("exclude file is not configured")
	}

	dismissed, err := profile.GetDismissedFromFile(excludeFile)
	if err != nil {
		dismissed = &profile.DismissedProfiles{}
	}

	dismissed.Append(profiles.ToDismissed())

	if err := dismissed.ToFile(excludeFile); err != nil {
		return err
	}

	p.logger.Info("appended to exclude file", zap.String("filename", excludeFile))

	profiles.Exclude(profile.URLField, dismissed.URLs())
	return nil
}

func (p *pipeline) saveState(profiles *profile.Profiles) error {
	if err := p.store.SaveProfiles(profiles); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	if err := p.store.SaveRequirements(p.reqs); err != nil {
		return fmt.Errorf("save requirements: %w", err)
	}

	p.logger.Info("saved state", zap.Int("profiles", profiles.Len()))
	return nil
}

func resolveAPIKey(config *Config) (string, error) {
	if config == nil {
		return "", errors.New("config is required")
	}

	keyFile := strings.TrimSpace(config.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("api-key-file"))
	}

	if keyFile == "" {
		return "", errors.New("search api key file is not configured")
	}

	return secrets.Load(secrets.Source{
		Name: "search api key",
		File: keyFile,
	})
}

// resolveRequirements prefers the configured requirement set, falling back
// to the stored one. Requirements without ids get positional ones.
func resolveRequirements(config *Config, st *store.Store) []requirements.Requirement {
	reqs := config.Requirements
	if len(reqs) == 0 {
		reqs = st.Requirements()
	}

	for i := range reqs {
		if strings.TrimSpace(reqs[i].ID) == "" {
			reqs[i].ID = fmt.Sprintf("req-%d", i+1)
		}
	}
	return reqs
}

// buildDictionary extends the built-in tables with the user's stored
// custom titles and industries.
func buildDictionary(st *store.Store) *dictionary.Bundle {
	cfg := dictionary.DefaultConfig()

	for _, title := range st.CustomTitles() {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		cfg.JobTitlePatterns = append(cfg.JobTitlePatterns, regexp.QuoteMeta(title))
	}

	cfg.IndustryTerms = append(cfg.IndustryTerms, st.CustomIndustries()...)

	return dictionary.New(cfg)
}

// getResults runs the search and dedupes the batch by URL.
func getResults(ctx context.Context, config *Config, apiKey string, logger *zap.Logger) (*search.Results, error) {
	client := search.New(ctx, logger, apiKey, config.EngineID)

	results, err := client.Search(config.Search)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	dropped := results.Dedupe()

	logger.Info("getting search results",
		zap.Int("count", results.Len()),
		zap.Int("duplicates_dropped", dropped),
	)
	return results, nil
}

func prepareFilters(ctx context.Context, config *Config, reqs []requirements.Requirement, logger *zap.Logger) *filtering.Filtering {
	minScore := 0
	if config.Output != nil {
		minScore = config.Output.MinScore
	}

	aiFilter, err := prepareAIFilter(ctx, config.AI, reqs, logger, config.ExcludeFile)
	if err != nil {
		logger.Warn("skipping AI filter", zap.Error(err))
		aiFilter = filtering.NewAIFit(&filtering.AIFitFilterConfig{Enabled: false}, &filtering.AIFitFilterDeps{})
	}

	steps := []filtering.Filter{
		filtering.NewExcludeFile(config.ExcludeFile),
		filtering.NewMinScore(minScore),
		aiFilter,
	}

	return filtering.New(steps, logger)
}

func newAIMatcher(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Matcher, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	minScore := cfg.MinimumFitScore
	if minScore < 0 {
		minScore = 0
	}

	matcherLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
		zap.Float64("minimum_fit_score", minScore),
	)

	matcher := gemini.NewMatcher(generator, matcherLogger, minScore, cfg.Gemini.MaxLogLength)

	return matcher, nil
}

func prepareAIFilter(ctx context.Context, config *AIConfig, reqs []requirements.Requirement, logger *zap.Logger, excludeFile string) (filtering.Filter, error) {
	if config == nil || !config.Enabled {
		return filtering.NewAIFit(&filtering.AIFitFilterConfig{
			Enabled: false,
		}, &filtering.AIFitFilterDeps{}), nil
	}

	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai filter is enabled")
	}

	aiConfig := &filtering.AIFitFilterConfig{
		Enabled:         config.Enabled,
		Provider:        config.Provider,
		MinimumFitScore: config.MinimumFitScore,
		Gemini: &filtering.AIGeminiConfig{
			Model:        config.Gemini.Model,
			MaxRetries:   config.Gemini.MaxRetries,
			MaxLogLength: config.Gemini.MaxLogLength,
		},
	}

	matcher, err := newAIMatcher(ctx, config, logger)
	if err != nil {
		return nil, fmt.Errorf("building ai matcher: %w", err)
	}

	return filtering.NewAIFit(aiConfig, &filtering.AIFitFilterDeps{
		Logger:       logger,
		Matcher:      matcher,
		Requirements: reqs,
		ExcludeFile:  excludeFile,
	}), nil
}
