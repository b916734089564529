// Package main implements the cvgen CLI for structured CV generation.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/config"
	"github.com/jonathan/cv-generator/internal/locale"
	"github.com/jonathan/cv-generator/internal/observability"
	"github.com/jonathan/cv-generator/internal/profile"
	"github.com/jonathan/cv-generator/internal/rendering"
)

// Conventional defaults, applied after config file merging.
const (
	defaultInput  = "cv_data.json"
	defaultOutput = "CV_Optimized_ATS.docx"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an ATS-optimized .docx CV from JSON data",
	Long:  "Reads a JSON profile record and writes a styled Word document following the fixed CV template. Missing optional fields omit their document sections.",
	RunE:  runGenerate,
}

var (
	generateInput   string
	generateOutput  string
	generateLang    string
	generatePhoto   string
	generateConfig  string
	generateVerbose bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Path to the JSON file containing CV data (default: cv_data.json)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output path for the generated Word document (default: CV_Optimized_ATS.docx)")
	generateCmd.Flags().StringVarP(&generateLang, "lang", "l", "", "Language for section headers: en or es (default: en)")
	generateCmd.Flags().StringVarP(&generatePhoto, "photo", "p", "", "Path to a profile photo (jpg/png) to include in the header (optional)")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Path to a JSON config file (optional)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Input:   generateInput,
		Output:  generateOutput,
		Lang:    generateLang,
		Photo:   generatePhoto,
		Verbose: generateVerbose,
	}

	// Config file values fill flags the user did not set; hardcoded defaults
	// fill whatever remains.
	if generateConfig != "" {
		fileCfg, err := config.LoadConfig(generateConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		Input:  defaultInput,
		Output: defaultOutput,
		Lang:   locale.Default,
	})

	if !locale.Supported(cfg.Lang) {
		return fmt.Errorf("unsupported language %q (supported: %s)", cfg.Lang, strings.Join(locale.Codes(), ", "))
	}

	rec, err := profile.Load(cfg.Input)
	if err != nil {
		var notFound *profile.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w\ncreate a cv_data.json file with your CV data or specify --input", err)
		}
		return err
	}

	labels := locale.ForCode(cfg.Lang)
	plan := rendering.BuildPlan(rec, labels, cfg.Photo)

	if cfg.Verbose {
		fmt.Fprintf(os.Stdout, "Run ID: %s\n", uuid.New())
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(rec)
		printer.PrintPlan(plan)
	}

	photoMsg := ""
	if plan.Header.PhotoPath != "" {
		photoMsg = " with photo"
	}
	fmt.Fprintf(os.Stdout, "Generating ATS-optimized CV in %s%s...\n", languageName(cfg.Lang), photoMsg)

	if err := rendering.Generate(plan, cfg.Output); err != nil {
		return fmt.Errorf("failed to generate CV: %w", err)
	}

	fmt.Fprintf(os.Stdout, "CV successfully generated: %s\n", cfg.Output)
	return nil
}

func languageName(code string) string {
	if code == "es" {
		return "Spanish"
	}
	return "English"
}
