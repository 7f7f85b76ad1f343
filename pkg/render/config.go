package render

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DEFAULT_FORMAT = "TEXT"

// PrintOptions controls how a report is displayed.
type PrintOptions struct {
	Format      string            `yaml:"format,omitempty"`
	Indent      int               `yaml:"indent,omitempty"`
	UseOrdinals bool              `yaml:"use-ordinals,omitempty"`
	Title       string            `yaml:"title,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"` // canonical label -> display label
}

// DefaultPrintOptions returns the options used when no config file is given.
func DefaultPrintOptions() *PrintOptions {
	return &PrintOptions{
		Format: DEFAULT_FORMAT,
		Indent: 2,
		Labels: map[string]string{},
	}
}

// LoadPrintOptions reads print options from a YAML file.
func LoadPrintOptions(filename string) (*PrintOptions, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read print options: %w", err)
	}
	return LoadPrintOptionsFromString(string(data))
}

// LoadPrintOptionsFromString parses print options from YAML text. Fields
// left out keep their defaults.
func LoadPrintOptionsFromString(data string) (*PrintOptions, error) {
	options := DefaultPrintOptions()
	if err := yaml.Unmarshal([]byte(data), options); err != nil {
		return nil, fmt.Errorf("failed to parse print options: %w", err)
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// Validate normalises Format and rejects values no writer understands.
func (o *PrintOptions) Validate() error {
	if o.Format == "" {
		o.Format = DEFAULT_FORMAT
	}
	o.Format = strings.ToUpper(o.Format)
	if _, err := PickPrintFunc(o.Format); err != nil {
		return err
	}
	if o.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", o.Indent)
	}
	if o.Labels == nil {
		o.Labels = map[string]string{}
	}
	return nil
}

// DisplayLabel returns the configured override for a canonical label, or
// the label itself.
func (o *PrintOptions) DisplayLabel(label string) string {
	if o != nil {
		if display, ok := o.Labels[label]; ok && display != "" {
			return display
		}
	}
	return label
}
