package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/a2agen-labs/a2agen/internal/agentdef"
	"github.com/a2agen-labs/a2agen/internal/codegen"
	"github.com/a2agen-labs/a2agen/internal/config"
	"github.com/spf13/cobra"
)

// defaultDefinitionFile is used when neither the -f flag nor the config
// 'definition' key names a file.
const defaultDefinitionFile = "agent.yaml"

var (
	generateFile   string
	generateOutput string
)

func init() {
	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Definition file (default: agent.yaml)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write generated source to a file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate A2A server bootstrap source from a definition",
	Long: `Load an agent definition, validate it, and emit the Python source that
wires up the agent card, request handler, and server application.

Generation aborts on the first validation failure; nothing is written unless
the whole definition is valid.

Examples:
  a2agen generate
  a2agen generate -f echo-agent.yaml -o echo_server.py`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDefinitionPath(generateFile)
		slog.Debug("loading definition", "path", path)

		def, err := loadChecked(path)
		if err != nil {
			return err
		}

		if result := agentdef.Validate(def); !result.Valid() {
			first := result.First()
			return fmt.Errorf("%s: %s", first.Location, first.Message)
		}

		source := codegen.Emit(def)
		out := generateOutput
		if out == "" {
			out = config.Get(config.KeyOutput)
		}
		if out == "" {
			fmt.Println(source)
			return nil
		}

		if err := os.WriteFile(out, []byte(source+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

// loadChecked reads a definition file, runs the structural schema check, and
// parses it. Schema failures abort with the first structural issue.
func loadChecked(path string) (*agentdef.Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition %s: %w", path, err)
	}

	schemaResult, err := agentdef.ValidateSchema(raw)
	if err != nil {
		return nil, err
	}
	if !schemaResult.Valid {
		return nil, fmt.Errorf("definition %s is malformed: %s", path, schemaResult.Issues[0])
	}

	def, err := agentdef.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing definition %s: %w", path, err)
	}
	return def, nil
}

// resolveDefinitionPath picks the definition file: flag, then the config
// 'definition' preference, then the default file name.
func resolveDefinitionPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	config.Load()
	if v := config.Get(config.KeyDefinition); v != "" {
		return v
	}
	return defaultDefinitionFile
}
