package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	asciitree "github.com/thediveo/go-asciitree"
	"gopkg.in/yaml.v3"
)

type PrintFunc func(report Report, output io.Writer, options *PrintOptions) error

// PickPrintFunc returns the writer for format, matched case-insensitively.
func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case "JSON":
		return PrintJSON, nil
	case "YAML":
		return PrintYAML, nil
	case "ASCIITREE":
		return PrintAsciiTree, nil
	case "TEXT":
		return PrintText, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func indentOf(options *PrintOptions) int {
	if options == nil || options.Indent <= 0 {
		return 2
	}
	return options.Indent
}

func PrintJSON(report Report, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", strings.Repeat(" ", indentOf(options)))
	return encoder.Encode(report)
}

func PrintYAML(report Report, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(indentOf(options))
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}

// PrintText writes one item per line followed by the last element.
func PrintText(report Report, output io.Writer, options *PrintOptions) error {
	useOrdinals := options != nil && options.UseOrdinals
	if report.Title != "" {
		if _, err := fmt.Fprintln(output, report.Title); err != nil {
			return err
		}
	}
	for _, item := range report.Items {
		if _, err := fmt.Fprintf(output, "%d. %s\n", item.Position, item.text(useOrdinals)); err != nil {
			return err
		}
	}
	last := "<empty>"
	if report.Last != nil {
		last = report.Last.text(useOrdinals)
	}
	_, err := fmt.Fprintf(output, "last: %s\n", last)
	return err
}

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree turns a report into a single-level tree: the list at the
// root, one child per item.
func convertToTree(report Report, options *PrintOptions) AsciiNode {
	useOrdinals := options != nil && options.UseOrdinals
	label := report.Title
	if label == "" {
		label = fmt.Sprintf("%s list", report.Kind)
	}
	props := []string{fmt.Sprintf("length: %d", report.Length)}
	if report.Last != nil {
		props = append(props, fmt.Sprintf("last: %s", report.Last.text(useOrdinals)))
	} else {
		props = append(props, "last: <empty>")
	}

	var children []AsciiNode
	for _, item := range report.Items {
		children = append(children, AsciiNode{
			Label: fmt.Sprintf("%d. %s", item.Position, item.Label),
			Props: []string{fmt.Sprintf("ordinal: %d", item.Ordinal)},
		})
	}
	return AsciiNode{
		Label:    label,
		Props:    props,
		Children: children,
	}
}

func PrintAsciiTree(report Report, output io.Writer, options *PrintOptions) error {
	_, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(report, options)))
	return err
}
