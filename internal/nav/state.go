// Package nav owns the mutable selection state of the lesson browser: which
// topic is shown, which lesson is open, which modules are expanded in the
// sidebar and whether the sidebar is collapsed.
package nav

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gubarz/lessonmd/internal/catalog"
)

var (
	ErrUnknownTopic = errors.New("unknown topic")
	ErrNotInTopic   = errors.New("lesson does not belong to the selected topic")
)

// State is the navigation state. The zero value is not usable; use New.
type State struct {
	catalog   *catalog.Catalog
	topic     *catalog.Topic
	sub       *catalog.SubModule
	expanded  map[string]bool
	collapsed bool
}

// New selects the catalog's first topic and shows its welcome view
func New(c *catalog.Catalog) *State {
	s := &State{catalog: c}
	s.SelectTopic(c.First())
	return s
}

// Catalog returns the catalog the state navigates
func (s *State) Catalog() *catalog.Catalog {
	return s.catalog
}

// Topic returns the selected topic
func (s *State) Topic() *catalog.Topic {
	return s.topic
}

// SubModule returns the open lesson, or nil for the welcome view
func (s *State) SubModule() *catalog.SubModule {
	return s.sub
}

// SidebarCollapsed reports whether the sidebar is hidden
func (s *State) SidebarCollapsed() bool {
	return s.collapsed
}

// IsExpanded reports whether the module's lessons are shown in the sidebar
func (s *State) IsExpanded(moduleID string) bool {
	return s.expanded[moduleID]
}

// Expanded returns the expanded module IDs, sorted
func (s *State) Expanded() []string {
	ids := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectTopic switches topic, returns to the welcome view and expands only
// the topic's first module.
func (s *State) SelectTopic(t *catalog.Topic) {
	s.topic = t
	s.sub = nil
	s.expanded = make(map[string]bool)
	if len(t.Modules) > 0 {
		s.expanded[t.Modules[0].ID] = true
	}
}

// SelectTopicByID is SelectTopic with a catalog lookup
func (s *State) SelectTopicByID(id string) error {
	t, ok := s.catalog.Topic(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, id)
	}
	s.SelectTopic(t)
	return nil
}

// SelectSubModule opens a lesson; nil shows the welcome view. A lesson that
// is not part of the selected topic is rejected and the selection is reset
// to the welcome view.
func (s *State) SelectSubModule(sub *catalog.SubModule) error {
	if sub != nil && !s.topic.Contains(sub) {
		s.sub = nil
		return fmt.Errorf("%w: %s", ErrNotInTopic, sub.ID)
	}
	s.sub = sub
	return nil
}

// SelectLesson switches to the lesson's topic, expands its module and opens it
func (s *State) SelectLesson(topicID, moduleID, subID string) error {
	t, m, sub, err := s.catalog.Lookup(topicID, moduleID, subID)
	if err != nil {
		return err
	}
	if t != s.topic {
		s.SelectTopic(t)
	}
	s.expanded[m.ID] = true
	return s.SelectSubModule(sub)
}

// ToggleModuleExpansion flips whether a module is expanded. IDs are not
// checked against the topic.
func (s *State) ToggleModuleExpansion(moduleID string) {
	if s.expanded[moduleID] {
		delete(s.expanded, moduleID)
		return
	}
	s.expanded[moduleID] = true
}

// ToggleSidebarCollapse hides or shows the sidebar. It does not touch the
// selection.
func (s *State) ToggleSidebarCollapse() {
	s.collapsed = !s.collapsed
}
