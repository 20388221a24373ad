package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/a2agen-labs/a2agen/internal/agentdef"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed scaffolds
var scaffoldFS embed.FS

const templateName = "agent.yaml.tmpl"

// Data holds the template variables for a starter definition.
type Data struct {
	Name     string // e.g., "echo-agent"
	URL      string // Agent endpoint URL
	Executor string // e.g., "EchoAgentExecutor"
	Version  string // Initial card version
	Year     int    // Current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	File      string
	Warnings  []string
}

// NewData creates scaffold Data with derived defaults: the endpoint URL falls
// back to localhost and the executor class name is derived from the agent
// name ("echo-agent" → "EchoAgentExecutor").
func NewData(name, url, executor string) *Data {
	d := &Data{
		Name:     name,
		URL:      url,
		Executor: executor,
		Version:  "0.1.0",
		Year:     time.Now().Year(),
	}
	if d.URL == "" {
		d.URL = "http://localhost:9000/"
	}
	if d.Executor == "" {
		d.Executor = executorName(name)
	}
	return d
}

// executorName turns a kebab-case agent name into a CamelCase executor class
// name with an "Executor" suffix.
func executorName(name string) string {
	title := cases.Title(language.English)
	parts := strings.Split(name, "-")
	for i, p := range parts {
		parts[i] = title.String(p)
	}
	return strings.Join(parts, "") + "Executor"
}

// Generate renders the starter definition into outputDir/agent.yaml. It
// refuses to overwrite an existing definition, and validates what it wrote,
// reporting validation problems as warnings rather than failing.
func Generate(data *Data, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(outputDir, "agent.yaml")
	if _, err := os.Stat(outPath); err == nil {
		return nil, fmt.Errorf("%s already exists; remove it first", outPath)
	}

	tmplBytes, err := scaffoldFS.ReadFile(filepath.Join("scaffolds", templateName))
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	tmpl, err := template.New(templateName).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	result := &Result{OutputDir: outputDir, File: "agent.yaml"}

	// Sanity-check the generated file the same way generate would.
	schemaResult, err := agentdef.ValidateSchemaFile(outPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate generated definition: %v", err))
		return result, nil
	}
	if !schemaResult.Valid {
		for _, issue := range schemaResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
		return result, nil
	}

	def, err := agentdef.Load(outPath)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return result, nil
	}
	for _, issue := range agentdef.Validate(def).Issues {
		result.Warnings = append(result.Warnings, issue.String())
	}

	return result, nil
}
