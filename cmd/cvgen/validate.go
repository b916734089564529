// Package main implements the cvgen CLI for structured CV generation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-generator/internal/profile"
	"github.com/jonathan/cv-generator/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a profile JSON file",
	Long:  "Validates a profile JSON file against the profile schema, then lints field formats (e.g. email) on the decoded record.",
	RunE:  runValidate,
}

var (
	validateInput  string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", defaultInput, "Path to the JSON file containing CV data")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to the profile JSON Schema (default: resolved "+schemas.ProfileSchemaRelPath+")")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	schemaPath := validateSchema
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.ProfileSchemaRelPath)
		if schemaPath == "" {
			return fmt.Errorf("profile schema not found: %s (run from the repo root or pass --schema)", schemas.ProfileSchemaRelPath)
		}
	}

	if err := schemas.ValidateProfileFile(schemaPath, validateInput); err != nil {
		return err
	}

	rec, err := profile.Load(validateInput)
	if err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("profile lint failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Profile is valid: %s\n", validateInput)
	return nil
}
