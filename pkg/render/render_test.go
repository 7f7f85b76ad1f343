package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/spicery/titles/pkg/catalogue"
	"github.com/spicery/titles/pkg/common"
)

func filmList() *common.List[catalogue.Film] {
	return common.NewList(catalogue.HouseOfCards, catalogue.AmericanBeauty, catalogue.Se7en)
}

func TestOrdinalAndLabel(t *testing.T) {
	assert.Equal(t, 7, Ordinal(catalogue.Se7en))
	assert.Equal(t, "se7en", Label(catalogue.Se7en))
	assert.Equal(t, 2, Ordinal(catalogue.Starcraft2))
	assert.Equal(t, "starcraft_2", Label(catalogue.Starcraft2))
}

func TestSnapshot(t *testing.T) {
	list := filmList()
	report := Snapshot(catalogue.KindFilm, list, DefaultPrintOptions())

	assert.Equal(t, catalogue.KindFilm, report.Kind)
	assert.Equal(t, 3, report.Length)
	require.NotNil(t, report.Last)
	assert.Equal(t, Item{Position: 3, Label: "se7en", Ordinal: 7}, *report.Last)
	assert.Equal(t, []Item{
		{Position: 1, Label: "house_of_cards", Ordinal: 0},
		{Position: 2, Label: "american_beauty", Ordinal: 1},
		{Position: 3, Label: "se7en", Ordinal: 7},
	}, report.Items)
	assert.Equal(t, 3, list.Len())
}

func TestSnapshotOfEmptyList(t *testing.T) {
	report := Snapshot(catalogue.KindGame, &common.List[catalogue.Game]{}, nil)

	assert.Equal(t, 0, report.Length)
	assert.Nil(t, report.Last)
	assert.Empty(t, report.Items)
}

func TestSnapshotUsesDisplayLabels(t *testing.T) {
	options := DefaultPrintOptions()
	options.Labels["se7en"] = "Se7en"
	options.Title = "Watched"

	report := Snapshot(catalogue.KindFilm, filmList(), options)

	assert.Equal(t, "Watched", report.Title)
	assert.Equal(t, "Se7en", report.Last.Label)
	assert.Equal(t, "house_of_cards", report.Items[0].Label)
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	report := Snapshot(catalogue.KindFilm, filmList(), nil)

	require.NoError(t, PrintText(report, &buf, nil))
	assert.Equal(t, "1. house_of_cards\n2. american_beauty\n3. se7en\nlast: se7en\n", buf.String())

	buf.Reset()
	require.NoError(t, PrintText(report, &buf, &PrintOptions{UseOrdinals: true}))
	assert.Equal(t, "1. 0\n2. 1\n3. 7\nlast: 7\n", buf.String())
}

func TestPrintTextOfEmptyList(t *testing.T) {
	var buf bytes.Buffer
	report := Snapshot(catalogue.KindFilm, &common.List[catalogue.Film]{}, nil)

	require.NoError(t, PrintText(report, &buf, nil))
	assert.Equal(t, "last: <empty>\n", buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	report := Snapshot(catalogue.KindGame, common.NewList(catalogue.Gothic, catalogue.Starcraft2), nil)

	require.NoError(t, PrintJSON(report, &buf, nil))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "game", decoded["kind"])
	assert.Equal(t, float64(2), decoded["length"])
	last := decoded["last"].(map[string]any)
	assert.Equal(t, "starcraft_2", last["label"])
}

func TestPrintYAMLOfEmptyList(t *testing.T) {
	var buf bytes.Buffer
	report := Snapshot(catalogue.KindGame, &common.List[catalogue.Game]{}, nil)

	require.NoError(t, PrintYAML(report, &buf, nil))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "game", decoded["kind"])
	assert.Contains(t, decoded, "last")
	assert.Nil(t, decoded["last"])
}

func TestPrintAsciiTree(t *testing.T) {
	var buf bytes.Buffer
	report := Snapshot(catalogue.KindFilm, filmList(), nil)

	require.NoError(t, PrintAsciiTree(report, &buf, nil))
	out := buf.String()
	assert.Contains(t, out, "film list")
	assert.Contains(t, out, "length: 3")
	assert.Contains(t, out, "last: se7en")
	assert.Contains(t, out, "2. american_beauty")
	assert.Contains(t, out, "ordinal: 7")
}

func TestPickPrintFunc(t *testing.T) {
	for _, format := range []string{"json", "YAML", "AsciiTree", "text"} {
		f, err := PickPrintFunc(format)
		require.NoError(t, err, format)
		assert.NotNil(t, f)
	}

	_, err := PickPrintFunc("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadPrintOptionsFromString(t *testing.T) {
	options, err := LoadPrintOptionsFromString(`
format: yaml
indent: 4
use-ordinals: true
labels:
  se7en: Se7en
`)
	require.NoError(t, err)
	assert.Equal(t, "YAML", options.Format)
	assert.Equal(t, 4, options.Indent)
	assert.True(t, options.UseOrdinals)
	assert.Equal(t, "Se7en", options.DisplayLabel("se7en"))
	assert.Equal(t, "gothic", options.DisplayLabel("gothic"))
}

func TestLoadPrintOptionsDefaults(t *testing.T) {
	options, err := LoadPrintOptionsFromString("")
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_FORMAT, options.Format)
	assert.Equal(t, 2, options.Indent)
	assert.NotNil(t, options.Labels)
}

func TestLoadPrintOptionsRejectsBadValues(t *testing.T) {
	_, err := LoadPrintOptionsFromString("format: xml\n")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadPrintOptionsFromString("indent: -1\n")
	assert.Error(t, err)

	_, err = LoadPrintOptionsFromString("labels: [1, 2\n")
	assert.Error(t, err)
}

func TestLoadPrintOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: asciitree\ntitle: Games\n"), 0o644))

	options, err := LoadPrintOptions(path)
	require.NoError(t, err)
	assert.Equal(t, "ASCIITREE", options.Format)
	assert.Equal(t, "Games", options.Title)

	_, err = LoadPrintOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
