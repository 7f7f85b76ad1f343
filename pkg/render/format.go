package render

import "github.com/spicery/titles/pkg/catalogue"

// Ordinal maps a value to its underlying integer.
func Ordinal[T catalogue.Value](v T) int {
	return v.Ordinal()
}

// Label maps a value to its canonical label.
func Label[T catalogue.Value](v T) string {
	return v.String()
}
