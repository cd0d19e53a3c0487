// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nutriguide CLI: food photo
// analysis, nutrition lookup, and recipe suggestions from the command
// line.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbolem/nutriguide/internal/secrets"
	"github.com/pbolem/nutriguide/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the nutriguide CLI.
var rootCmd = &cobra.Command{
	Use:   "nutriguide",
	Short: "Identify food photos and suggest nutrition facts and recipes",
	Long: `nutriguide analyzes a food photo through a layered identification
pipeline: a remote classifier when configured, a local pattern matcher,
and color heuristics as the safety net. The resolved food maps to a
canonical nutrition record and a set of recipe suggestions.

Each surface is a subcommand: analyze runs the full pipeline on an image,
nutrition queries the canonical food table directly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nutriguide.yaml or ~/.config/nutriguide/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nutriguide")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nutriguide"))
		}
	}

	viper.SetEnvPrefix("NUTRIGUIDE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the pipeline configuration from defaults,
// the config file/environment, and loaded secrets.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if v := viper.GetString("remote.endpoint"); v != "" {
		cfg.Remote.Endpoint = v
	}
	cfg.Remote.APIKey = secretDefault(secrets.ClassifierAPIKey, viper.GetString("remote.api_key"))
	if v := viper.GetInt("remote.max_retries"); v > 0 {
		cfg.Remote.MaxRetries = v
	}
	if v := viper.GetDuration("remote.total_budget"); v > 0 {
		cfg.Remote.TotalBudget = v
	}
	if v := viper.GetDuration("remote.timeout"); v > 0 {
		cfg.Remote.Timeout = v
	}

	if v := viper.GetFloat64("thresholds.high"); v > 0 {
		cfg.Thresholds.High = v
	}
	if v := viper.GetFloat64("thresholds.medium"); v > 0 {
		cfg.Thresholds.Medium = v
	}
	if v := viper.GetFloat64("thresholds.floor"); v > 0 {
		cfg.Thresholds.Floor = v
	}

	cfg.PatternFile = viper.GetString("pattern_file")
	cfg.RecipeFile = viper.GetString("recipe_file")
	cfg.NutritionDB = viper.GetString("nutrition_db")
	if cfg.NutritionDB == "" {
		cfg.NutritionDB = filepath.Join("data", "nutriguide.db")
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
