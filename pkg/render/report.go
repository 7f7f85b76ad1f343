package render

import (
	"strconv"

	"github.com/spicery/titles/pkg/catalogue"
	"github.com/spicery/titles/pkg/common"
)

// Item is one rendered list element.
type Item struct {
	Position int    `json:"position" yaml:"position"`
	Label    string `json:"label" yaml:"label"`
	Ordinal  int    `json:"ordinal" yaml:"ordinal"`
}

// Report is the display view of a list. Last is nil for an empty list.
type Report struct {
	Title  string         `json:"title,omitempty" yaml:"title,omitempty"`
	Kind   catalogue.Kind `json:"kind" yaml:"kind"`
	Length int            `json:"length" yaml:"length"`
	Last   *Item          `json:"last" yaml:"last"`
	Items  []Item         `json:"items" yaml:"items"`
}

// Snapshot builds the report for list without modifying it.
func Snapshot[T catalogue.Value](kind catalogue.Kind, list *common.List[T], options *PrintOptions) Report {
	report := Report{
		Kind:   kind,
		Length: list.Len(),
		Items:  make([]Item, 0, list.Len()),
	}
	if options != nil {
		report.Title = options.Title
	}
	for i, v := range list.All() {
		report.Items = append(report.Items, Item{
			Position: i + 1,
			Label:    options.DisplayLabel(Label(v)),
			Ordinal:  Ordinal(v),
		})
	}
	if last, err := list.Last(); err == nil {
		report.Last = &Item{
			Position: list.Len(),
			Label:    options.DisplayLabel(Label(last)),
			Ordinal:  Ordinal(last),
		}
	}
	return report
}

// text is how an item is shown in line-oriented output.
func (i Item) text(useOrdinals bool) string {
	if useOrdinals {
		return strconv.Itoa(i.Ordinal)
	}
	return i.Label
}
