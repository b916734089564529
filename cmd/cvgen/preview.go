// Package main implements the cvgen CLI for structured CV generation.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/locale"
	"github.com/jonathan/cv-generator/internal/observability"
	"github.com/jonathan/cv-generator/internal/profile"
	"github.com/jonathan/cv-generator/internal/rendering"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a text summary of a profile without generating a document",
	Long:  "Loads a profile JSON file and prints the record summary and the section layout the generator would produce.",
	RunE:  runPreview,
}

var (
	previewInput string
	previewLang  string
	previewPhoto string
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", defaultInput, "Path to the JSON file containing CV data")
	previewCmd.Flags().StringVarP(&previewLang, "lang", "l", locale.Default, "Language for section headers: en or es")
	previewCmd.Flags().StringVarP(&previewPhoto, "photo", "p", "", "Path to a profile photo (optional)")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	if !locale.Supported(previewLang) {
		return fmt.Errorf("unsupported language %q (supported: %s)", previewLang, strings.Join(locale.Codes(), ", "))
	}

	rec, err := profile.Load(previewInput)
	if err != nil {
		return err
	}

	plan := rendering.BuildPlan(rec, locale.ForCode(previewLang), previewPhoto)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(rec)
	printer.PrintPlan(plan)
	return nil
}
