package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/a2agen-labs/a2agen/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	initURL       string
	initExecutor  string
	initOutputDir string
)

func init() {
	initCmd.Flags().StringVar(&initURL, "url", "", "Agent endpoint URL (default: http://localhost:9000/)")
	initCmd.Flags().StringVar(&initExecutor, "executor", "", "Agent executor class name (default: derived from name)")
	initCmd.Flags().StringVar(&initOutputDir, "output-dir", ".", "Directory to write the definition into")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a starter agent definition",
	Long: `Write a starter agent definition file (agent.yaml) pre-filled with one
skill, the in-memory task store, and an executor class name derived from the
agent name.

Examples:
  a2agen init echo-agent
  a2agen init weather-agent --url http://localhost:8001/ --executor WeatherExecutor`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !namePattern.MatchString(name) {
			return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
		}

		data := scaffold.NewData(name, initURL, initExecutor)
		result, err := scaffold.Generate(data, initOutputDir)
		if err != nil {
			return err
		}

		fmt.Printf("Created %s\n", filepath.Join(result.OutputDir, result.File))
		if len(result.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for _, w := range result.Warnings {
				fmt.Printf("  - %s\n", w)
			}
		}

		fmt.Println("\nNext steps:")
		fmt.Printf("  1. Edit %s to describe your agent's skills\n", result.File)
		fmt.Printf("  2. Run 'a2agen validate -f %s'\n", result.File)
		fmt.Printf("  3. Run 'a2agen generate -f %s -o server.py'\n", result.File)
		return nil
	},
}
