package catalog

import "strings"

// Topic is a top-level subject area (e.g. DSA, JavaScript, React).
type Topic struct {
	ID          string   `yaml:"id" validate:"required"`
	Title       string   `yaml:"title" validate:"required"`
	Icon        string   `yaml:"icon"`
	Description string   `yaml:"description"`
	Modules     []Module `yaml:"modules" validate:"unique=ID,dive"`
}

// Module groups related lessons within a topic (e.g. Arrays).
type Module struct {
	ID         string      `yaml:"id" validate:"required"`
	Title      string      `yaml:"title" validate:"required"`
	Icon       string      `yaml:"icon"`
	SubModules []SubModule `yaml:"subModules" validate:"unique=ID,dive"`
}

// SubModule is a single lesson page.
type SubModule struct {
	ID       string    `yaml:"id" validate:"required"`
	Title    string    `yaml:"title" validate:"required"`
	Sections []Section `yaml:"sections" validate:"min=1,dive"`
}

// Section is one prose block plus an optional code listing.
type Section struct {
	Heading     string `yaml:"heading,omitempty"`
	Content     string `yaml:"content" validate:"required"`
	CodeExample string `yaml:"codeExample,omitempty"`
}

// Text joins the content of every section, separated by a blank line
func (s *SubModule) Text() string {
	parts := make([]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		parts = append(parts, sec.Content)
	}
	return strings.Join(parts, "\n\n")
}

// CodeExamples returns the non-empty code examples in section order
func (s *SubModule) CodeExamples() []string {
	var out []string
	for _, sec := range s.Sections {
		if strings.TrimSpace(sec.CodeExample) != "" {
			out = append(out, sec.CodeExample)
		}
	}
	return out
}

// LessonCount returns the number of sub-modules across all modules
func (t *Topic) LessonCount() int {
	n := 0
	for _, m := range t.Modules {
		n += len(m.SubModules)
	}
	return n
}

// Module returns the module with the given ID
func (t *Topic) Module(id string) (*Module, bool) {
	for i := range t.Modules {
		if t.Modules[i].ID == id {
			return &t.Modules[i], true
		}
	}
	return nil, false
}

// SubModule returns the sub-module with the given ID
func (m *Module) SubModule(id string) (*SubModule, bool) {
	for i := range m.SubModules {
		if m.SubModules[i].ID == id {
			return &m.SubModules[i], true
		}
	}
	return nil, false
}

// Contains reports whether sub is owned by one of the topic's modules.
// Ownership is checked by identity, not by ID.
func (t *Topic) Contains(sub *SubModule) bool {
	_, ok := t.ModuleOf(sub)
	return ok
}

// ModuleOf returns the module that owns sub
func (t *Topic) ModuleOf(sub *SubModule) (*Module, bool) {
	if sub == nil {
		return nil, false
	}
	for i := range t.Modules {
		m := &t.Modules[i]
		for j := range m.SubModules {
			if &m.SubModules[j] == sub {
				return m, true
			}
		}
	}
	return nil, false
}
