// Package catalog holds the immutable lesson tree: topics own modules, modules
// own sub-modules (lessons), and sub-modules own sections.
//
// A Catalog is loaded once at startup, either from the content embedded in
// the binary or from a directory with the same layout, and is read-only
// afterwards. Lookups hand out pointers into the tree; callers must not
// modify what they point to.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ManifestFile lists the topic files of a content directory in display order.
const ManifestFile = "catalog.yaml"

var (
	ErrNoTopics       = errors.New("catalog has no topics")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateTopic = errors.New("duplicate topic id")
)

//go:embed content/*.yaml
var embedded embed.FS

// manifest is the decoded catalog.yaml
type manifest struct {
	Topics []string `yaml:"topics"`
}

// Catalog is the full, validated lesson tree
type Catalog struct {
	topics []Topic
}

// New builds a catalog from already-constructed topics and validates it
func New(topics []Topic) (*Catalog, error) {
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}
	v := newValidator()
	seen := make(map[string]bool, len(topics))
	for i := range topics {
		if err := v.Struct(&topics[i]); err != nil {
			return nil, fmt.Errorf("topic %q: %w", topics[i].ID, err)
		}
		if seen[topics[i].ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTopic, topics[i].ID)
		}
		seen[topics[i].ID] = true
	}
	return &Catalog{topics: topics}, nil
}

// Embedded loads the catalog compiled into the binary
func Embedded(log *zap.Logger) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return Load(sub, log)
}

// LoadDir loads a catalog from a content directory on disk
func LoadDir(dir string, log *zap.Logger) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), log)
}

// Load reads catalog.yaml from fsys and then every topic file it lists
func Load(fsys fs.FS, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}

	topics := make([]Topic, 0, len(m.Topics))
	for _, name := range m.Topics {
		topic, err := loadTopic(fsys, name)
		if err != nil {
			return nil, err
		}
		log.Debug("topic loaded",
			zap.String("file", name),
			zap.String("topic", topic.ID),
			zap.Int("modules", len(topic.Modules)),
			zap.Int("lessons", topic.LessonCount()))
		topics = append(topics, topic)
	}

	c, err := New(topics)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded", zap.Int("topics", len(c.topics)))
	return c, nil
}

func loadTopic(fsys fs.FS, name string) (Topic, error) {
	var t Topic
	data, err := fs.ReadFile(fsys, path.Clean(name))
	if err != nil {
		return t, fmt.Errorf("reading topic file %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parsing topic file %s: %w", name, err)
	}
	if err := newValidator().Struct(&t); err != nil {
		return t, fmt.Errorf("invalid topic file %s: %w", name, err)
	}
	return t, nil
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Topics returns all topics in display order
func (c *Catalog) Topics() []Topic {
	return c.topics
}

// First returns the first topic; a valid catalog always has one
func (c *Catalog) First() *Topic {
	return &c.topics[0]
}

// Topic returns the topic with the given ID
func (c *Catalog) Topic(id string) (*Topic, bool) {
	for i := range c.topics {
		if c.topics[i].ID == id {
			return &c.topics[i], true
		}
	}
	return nil, false
}

// TopicIndex returns the display position of the topic, or -1
func (c *Catalog) TopicIndex(t *Topic) int {
	for i := range c.topics {
		if &c.topics[i] == t {
			return i
		}
	}
	return -1
}

// Lookup resolves a topic/module/lesson ID triple
func (c *Catalog) Lookup(topicID, moduleID, subID string) (*Topic, *Module, *SubModule, error) {
	t, ok := c.Topic(topicID)
	if !ok {
		return nil, nil, nil, fmt.Errorf("topic %q: %w", topicID, ErrNotFound)
	}
	m, ok := t.Module(moduleID)
	if !ok {
		return nil, nil, nil, fmt.Errorf("module %q in topic %q: %w", moduleID, topicID, ErrNotFound)
	}
	s, ok := m.SubModule(subID)
	if !ok {
		return nil, nil, nil, fmt.Errorf("lesson %q in module %q: %w", subID, moduleID, ErrNotFound)
	}
	return t, m, s, nil
}

// Lesson is a sub-module together with its owners
type Lesson struct {
	Topic     *Topic
	Module    *Module
	SubModule *SubModule
}

// Path returns "topic/module/lesson"
func (l Lesson) Path() string {
	return l.Topic.ID + "/" + l.Module.ID + "/" + l.SubModule.ID
}

// Lessons walks the tree in display order
func (c *Catalog) Lessons() []Lesson {
	var out []Lesson
	for i := range c.topics {
		t := &c.topics[i]
		for j := range t.Modules {
			m := &t.Modules[j]
			for k := range m.SubModules {
				out = append(out, Lesson{Topic: t, Module: m, SubModule: &m.SubModules[k]})
			}
		}
	}
	return out
}
