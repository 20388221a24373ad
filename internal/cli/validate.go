package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/a2agen-labs/a2agen/internal/agentdef"
	"github.com/spf13/cobra"
)

var validateFile string

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Definition file (default: agent.yaml)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an agent definition",
	Long: `Check an agent definition against the structural schema and the semantic
rules (required card fields, skill ids/names, server wiring), and print every
failure rather than stopping at the first. Lint warnings (non-semver versions,
duplicate skill ids, incomplete relationships) are reported but never fail
the command.

Example:
  a2agen validate -f echo-agent.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDefinitionPath(validateFile)
		slog.Debug("validating definition", "path", path)

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading definition %s: %w", path, err)
		}

		schemaResult, err := agentdef.ValidateSchema(raw)
		if err != nil {
			return err
		}
		if !schemaResult.Valid {
			fmt.Printf("%s is malformed:\n", path)
			for _, issue := range schemaResult.Issues {
				fmt.Printf("  - %s\n", issue)
			}
			return fmt.Errorf("definition failed schema validation")
		}

		def, err := agentdef.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing definition %s: %w", path, err)
		}

		result := agentdef.Validate(def)
		if !result.Valid() {
			fmt.Printf("%s is invalid:\n", path)
			for _, issue := range result.Issues {
				fmt.Printf("  - %s\n", issue)
			}
			return fmt.Errorf("definition failed validation")
		}

		if warnings := agentdef.Lint(def); len(warnings) > 0 {
			fmt.Println("Warnings:")
			for _, w := range warnings {
				fmt.Printf("  - %s\n", w)
			}
		}

		fmt.Printf("%s is valid\n", path)
		return nil
	},
}
