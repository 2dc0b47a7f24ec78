// Package main provides the preset inspection and validation CLI.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yourusername/gridiron-edge/internal/predictor"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var registry = predictor.NewRegistry()

var rootCmd = &cobra.Command{
	Use:   "presets",
	Short: "Inspect and validate weight presets",
	Long:  `Lists the canonical weight presets, shows their dials, and validates custom preset files.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered presets",
	Run: func(cmd *cobra.Command, args []string) {
		names := registry.Names()
		sort.Strings(names)
		for _, name := range names {
			marker := "  "
			if name == predictor.DefaultPresetName {
				marker = "* "
			}
			fmt.Printf("%s%s\n", marker, name)
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a preset's weights as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := registry.GetStrict(args[0])
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(preset)
	},
}

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Show the valid range of each weight",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range predictor.Ranges() {
			fmt.Printf("%-22s [%g, %g]\n", r.Field, r.Min, r.Max)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a custom preset YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := loadPresetFile(args[0])
		if err != nil {
			return err
		}
		if violations := predictor.Validate(preset); len(violations) > 0 {
			for _, v := range violations {
				fmt.Fprintf(os.Stderr, "  %s\n", v)
			}
			return fmt.Errorf("preset %q has %d violation(s)", preset.Name, len(violations))
		}
		fmt.Printf("Preset %q is valid\n", preset.Name)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("presets %s (%s, built %s, model %s)\n", Version, GitCommit, BuildDate, predictor.ModelVersion)
	},
}

func init() {
	rootCmd.AddCommand(listCmd, showCmd, rangesCmd, validateCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadPresetFile(path string) (predictor.WeightPreset, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return predictor.WeightPreset{}, fmt.Errorf("failed to read preset file: %w", err)
	}

	preset := predictor.WeightPreset{}
	if err := v.Unmarshal(&preset); err != nil {
		return predictor.WeightPreset{}, fmt.Errorf("failed to unmarshal preset: %w", err)
	}
	if preset.Name == "" {
		return predictor.WeightPreset{}, fmt.Errorf("preset file must set a name")
	}
	return preset, nil
}
