package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ayn2op/gridview"
	"github.com/ayn2op/gridview/viewport"
	"golang.org/x/text/language"
)

// defaultConfig is used when no config file exists.
const defaultConfig = `
locale = "en"
decimals = 2
min_column_width = 4
multi_sort = false
always_show_scrollbars = false

[help]
separator = " • "
gap = "    "

# Keys remaps bindings by name, for example:
#   sort = ["s", "ctrl+s"]
[keys]

[[columns]]
key = "seq"
name = "#"
width = "7"
frozen = true
format = "number"

[[columns]]
key = "name"
name = "Name"
width = "20%"
sortable = true
editable = true
resizable = true

[[columns]]
key = "qty"
name = "Qty"
width = "9"
sortable = true
editable = true
draggable = true
resizable = true
format = "number"

[[columns]]
key = "price"
name = "Price"
width = "12"
sortable = true
sort_descending_first = true
editable = true
draggable = true
resizable = true
format = "number"

[[columns]]
key = "active"
name = "Active"
width = "8"
editable = true
format = "checkbox"

[[columns]]
key = "id"
name = "ID"
width = "38"
resizable = true

[[columns]]
key = "note"
name = "Note"
editable = true
draggable = true
`

// Config describes the column layout and formatting of the demo grid.
type Config struct {
	Locale               string `toml:"locale"`
	Decimals             int    `toml:"decimals"`
	MinColumnWidth       int    `toml:"min_column_width"`
	MultiSort            bool   `toml:"multi_sort"`
	AlwaysShowScrollBars bool   `toml:"always_show_scrollbars"`

	Help HelpConfig `toml:"help"`
	// Keys maps binding names, such as "sort" or "page_down", to keys.
	Keys    map[string][]string `toml:"keys"`
	Columns []ColumnConfig      `toml:"columns"`
}

// HelpConfig sets the text between help entries.
type HelpConfig struct {
	Separator string `toml:"separator"`
	Gap       string `toml:"gap"`
}

// ColumnConfig is one authored column.
type ColumnConfig struct {
	Key   string `toml:"key"`
	Name  string `toml:"name"`
	Width string `toml:"width"`
	// Format is "number", "checkbox" or empty for plain text.
	Format string `toml:"format"`

	Frozen              bool `toml:"frozen"`
	Resizable           bool `toml:"resizable"`
	Sortable            bool `toml:"sortable"`
	SortDescendingFirst bool `toml:"sort_descending_first"`
	Editable            bool `toml:"editable"`
	Draggable           bool `toml:"draggable"`
	Hidden              bool `toml:"hidden"`
}

// Column converts the authored column to a grid column.
func (c ColumnConfig) Column() viewport.Column {
	return viewport.Column{
		Key:                 c.Key,
		Name:                c.Name,
		Width:               viewport.ParseWidth(c.Width),
		Frozen:              c.Frozen,
		Resizable:           c.Resizable,
		Sortable:            c.Sortable,
		SortDescendingFirst: c.SortDescendingFirst,
		Editable:            c.Editable,
		Draggable:           c.Draggable,
		Hidden:              c.Hidden,
	}
}

// GridColumns returns the grid columns in authored order.
func (c *Config) GridColumns() []viewport.Column {
	columns := make([]viewport.Column, len(c.Columns))
	for i, column := range c.Columns {
		columns[i] = column.Column()
	}
	return columns
}

// Formatters returns the formatter of every column that has a format.
func (c *Config) Formatters() (map[string]gridview.Formatter, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}

	formatters := make(map[string]gridview.Formatter)
	for _, column := range c.Columns {
		switch column.Format {
		case "":
		case "number":
			formatters[column.Key] = gridview.NewNumberFormatter(tag, c.Decimals)
		case "checkbox":
			formatters[column.Key] = gridview.CheckboxFormatter{}
		default:
			return nil, fmt.Errorf("column %q: unknown format %q", column.Key, column.Format)
		}
	}
	return formatters, nil
}

// LoadFromPath loads the config at path. A missing file yields the default
// config.
func LoadFromPath(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadFromReader(strings.NewReader(defaultConfig))
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader decodes and validates a config. Keys the config does not
// know are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	config := &Config{
		Locale:         "en",
		MinColumnWidth: 4,
		Help:           HelpConfig{Separator: " • ", Gap: "    "},
	}
	md, err := toml.NewDecoder(r).Decode(config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if len(c.Columns) == 0 {
		return errors.New("config has no columns")
	}
	if c.Decimals < 0 {
		return fmt.Errorf("negative decimals %d", c.Decimals)
	}
	if c.MinColumnWidth < 0 {
		return fmt.Errorf("negative minimum column width %d", c.MinColumnWidth)
	}

	seen := make(map[string]bool, len(c.Columns))
	for i, column := range c.Columns {
		if column.Key == "" {
			return fmt.Errorf("column %d has no key", i)
		}
		if seen[column.Key] {
			return fmt.Errorf("duplicate column key %q", column.Key)
		}
		seen[column.Key] = true
	}
	if _, err := c.Formatters(); err != nil {
		return err
	}
	keyMap := newDemoKeyMap(gridview.DefaultGridKeyMap())
	if err := keyMap.remap(c.Keys); err != nil {
		return err
	}
	return nil
}
