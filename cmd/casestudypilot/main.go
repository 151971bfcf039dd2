// Package main provides the casestudypilot CLI for turning CNCF
// conference talks into validated case-study documents.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"casestudypilot/internal/config"
)

var rootCmd = &cobra.Command{
	Use:               "casestudypilot",
	Short:             "CNCF case study generation and validation pipeline",
	Long:              "casestudypilot fetches YouTube conference talks, verifies CNCF end-user membership, and generates and quality-gates case-study markdown.",
	PersistentPreRunE: loadGlobalConfig,
}

var (
	configPath string
	cliConfig  *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file providing flag defaults")
}

// loadGlobalConfig reads the config file named by --config and fills in
// any flags the user did not set explicitly. Explicit flags always win.
func loadGlobalConfig(cmd *cobra.Command, _ []string) error {
	if configPath == "" {
		return nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cliConfig = cfg
	applyConfigDefaults(cmd, cfg)
	return nil
}

func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name, value string) {
		if value == "" || flags.Lookup(name) == nil || flags.Changed(name) {
			return
		}
		_ = flags.Set(name, value)
	}
	set("rubric", cfg.RubricPath)
	set("template", cfg.TemplatePath)
	set("out-dir", cfg.OutputDir)
	if cfg.MaxConcurrent > 0 {
		set("max-concurrent", strconv.Itoa(cfg.MaxConcurrent))
	}
	if cfg.Verbose {
		set("verbose", "true")
	}
}

// geminiAPIKey resolves the Gemini key from the environment first, then
// the config file.
func geminiAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	if cliConfig != nil {
		return cliConfig.APIKey
	}
	return ""
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
