package cmd

import (
	"log"

	"github.com/jonjonssons/sacore-ai/internal/requirements"
	"github.com/jonjonssons/sacore-ai/internal/search"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "sacore"
)

type Config struct {
	Search       *search.Params             `mapstructure:"search"`
	Requirements []requirements.Requirement `mapstructure:"requirements"`
	StateDir     string                     `mapstructure:"state-dir"`
	ExcludeFile  string                     `mapstructure:"exclude-file"`
	APIKeyFile   string                     `mapstructure:"api-key-file"`
	EngineID     string                     `mapstructure:"engine-id"`
	Output       *OutputConfig              `mapstructure:"output"`
	AI           *AIConfig                  `mapstructure:"ai"`
}

type OutputConfig struct {
	CSVFile  string `mapstructure:"csv-file"`
	MinScore int    `mapstructure:"min-score"`
}

type AIConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Provider        string        `mapstructure:"provider"`
	MinimumFitScore float64       `mapstructure:"minimum-fit-score"`
	Gemini          *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "sacore is a cli for finding candidate profiles via web search and scoring them against hiring requirements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-key-file", "SACORE_API_KEY_FILE"); err != nil {
		log.Fatalf("binding SACORE_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is sacore.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
