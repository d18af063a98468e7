// Package prompts loads .prompt files: YAML frontmatter describing the model
// configuration, followed by a Go text/template body.
package prompts

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Config holds metadata from the YAML frontmatter.
type Config struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// Prompt represents a loaded prompt with config and template.
type Prompt struct {
	Config   Config
	Template *template.Template
}

// Load reads a .prompt file from disk and parses it.
func Load(path string) (*Prompt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file: %w", err)
	}
	return Parse(string(data))
}

// Parse splits frontmatter from body and compiles the template.
func Parse(data string) (*Prompt, error) {
	parts := strings.SplitN(data, "---", 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid prompt format: missing frontmatter delimiters")
	}

	var config Config
	if err := yaml.Unmarshal([]byte(parts[1]), &config); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	tmpl, err := template.New("prompt").Parse(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template body: %w", err)
	}

	return &Prompt{
		Config:   config,
		Template: tmpl,
	}, nil
}

// Execute applies data to the template and returns the result string.
func (p *Prompt) Execute(data any) (string, error) {
	var buf bytes.Buffer
	if err := p.Template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
