// Package holder reads title labels, appends them to a list of the
// requested catalogue and reports on the result.
package holder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spicery/titles/pkg/catalogue"
	"github.com/spicery/titles/pkg/common"
	"github.com/spicery/titles/pkg/render"
)

// ReadLabels returns the labels in input, one per line. Blank lines and
// lines starting with # are skipped; surrounding spaces are trimmed.
func ReadLabels(input io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		labels = append(labels, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	return labels, nil
}

// Build parses labels as values of kind, adds them to a new list in order
// and returns the report for that list. An empty list is reported with a
// warning, not an error.
func Build(kind catalogue.Kind, labels []string, options *render.PrintOptions, log *slog.Logger) (render.Report, error) {
	if log == nil {
		log = slog.Default()
	}
	switch kind {
	case catalogue.KindFilm:
		return collect(kind, labels, catalogue.ParseFilm, options, log)
	case catalogue.KindGame:
		return collect(kind, labels, catalogue.ParseGame, options, log)
	default:
		return render.Report{}, fmt.Errorf("%w: %q", catalogue.ErrUnknownKind, kind)
	}
}

func collect[T catalogue.Value](kind catalogue.Kind, labels []string, parse func(string) (T, error), options *render.PrintOptions, log *slog.Logger) (render.Report, error) {
	list := &common.List[T]{}
	for i, label := range labels {
		value, err := parse(label)
		if err != nil {
			return render.Report{}, fmt.Errorf("label %d: %w", i+1, err)
		}
		list.Add(value)
		log.Debug("added title",
			slog.String("kind", string(kind)),
			slog.String("label", render.Label(value)),
			slog.Int("ordinal", render.Ordinal(value)))
	}

	last, err := list.Last()
	switch {
	case errors.Is(err, common.ErrEmptyList):
		log.Warn("no titles were added", slog.String("kind", string(kind)))
	case err != nil:
		return render.Report{}, err
	default:
		log.Info("holder ready",
			slog.String("kind", string(kind)),
			slog.Int("length", list.Len()),
			slog.String("last", render.Label(last)))
	}
	return render.Snapshot(kind, list, options), nil
}
