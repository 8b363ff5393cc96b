package checklist

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ItemDef is a checklist entry as defined by a template, without state.
type ItemDef struct {
	Category string  `json:"category" yaml:"category"`
	Text     string  `json:"text" yaml:"text"`
	Required bool    `json:"required" yaml:"required"`
	Weight   float64 `json:"weight" yaml:"weight"`
}

// Template is the checklist for one setup type, e.g. "breakout".
type Template struct {
	SetupType string    `json:"setup_type" yaml:"setup_type"`
	Name      string    `json:"name" yaml:"name"`
	Items     []ItemDef `json:"items" yaml:"items"`
}

// Instantiate returns a fresh, unchecked item list for the template.
func (t Template) Instantiate() []Item {
	items := make([]Item, 0, len(t.Items))
	for _, d := range t.Items {
		items = append(items, Item{
			Category: d.Category,
			Text:     d.Text,
			Required: d.Required,
			Weight:   d.Weight,
		})
	}
	return items
}

// Library is a set of templates keyed by setup type.
type Library struct {
	templates map[string]Template
}

func NewLibrary(templates ...Template) *Library {
	l := &Library{templates: make(map[string]Template, len(templates))}
	for _, t := range templates {
		l.Add(t)
	}
	return l
}

// Add registers t, replacing any template with the same setup type.
func (l *Library) Add(t Template) {
	l.templates[t.SetupType] = t
}

func (l *Library) Get(setupType string) (Template, bool) {
	t, ok := l.templates[setupType]
	return t, ok
}

// Instantiate builds a fresh item list for setupType. Unknown setup types
// yield an empty list.
func (l *Library) Instantiate(setupType string) []Item {
	t, ok := l.Get(setupType)
	if !ok {
		return []Item{}
	}
	return t.Instantiate()
}

// SetupTypes returns the registered keys in sorted order.
func (l *Library) SetupTypes() []string {
	keys := make([]string, 0, len(l.templates))
	for k := range l.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// LoadTemplates reads a YAML file with a top-level "templates" list.
func LoadTemplates(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes YAML template definitions and checks them.
func ParseTemplates(data []byte) ([]Template, error) {
	var f templateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for i, t := range f.Templates {
		if t.SetupType == "" {
			return nil, fmt.Errorf("template %d: setup_type is required", i)
		}
		for j, d := range t.Items {
			if d.Weight <= 0 {
				return nil, fmt.Errorf("template %q item %d: weight must be positive", t.SetupType, j)
			}
		}
	}
	return f.Templates, nil
}
