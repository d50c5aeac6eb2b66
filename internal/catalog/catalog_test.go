package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arraysTopic = `
id: dsa
title: DSA
icon: "🧮"
description: Data Structures & Algorithms
modules:
  - id: arrays
    title: Arrays
    icon: "📊"
    subModules:
      - id: intro
        title: Intro
        sections:
          - content: |
              # Arrays

              Arrays are **fast**.
          - heading: Two Pointers
            content: Walk from both ends.
            codeExample: |
              let left = 0;
  - id: empty
    title: Empty Module
`

const reactTopic = `
id: react
title: React
modules: []
`

func testFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestLoad(t *testing.T) {
	fsys := testFS(map[string]string{
		ManifestFile: "topics:\n  - dsa.yaml\n  - react.yaml\n",
		"dsa.yaml":   arraysTopic,
		"react.yaml": reactTopic,
	})

	c, err := Load(fsys, nil)
	require.NoError(t, err)
	require.Len(t, c.Topics(), 2)

	assert.Equal(t, "dsa", c.First().ID)
	assert.Equal(t, "react", c.Topics()[1].ID)

	dsa, ok := c.Topic("dsa")
	require.True(t, ok)
	assert.Equal(t, "Data Structures & Algorithms", dsa.Description)
	require.Len(t, dsa.Modules, 2)
	assert.Equal(t, 1, dsa.LessonCount())

	sub := &dsa.Modules[0].SubModules[0]
	require.Len(t, sub.Sections, 2)
	assert.Equal(t, "Two Pointers", sub.Sections[1].Heading)
	assert.Equal(t, []string{"let left = 0;\n"}, sub.CodeExamples())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "missing manifest",
			files: map[string]string{"dsa.yaml": arraysTopic},
		},
		{
			name:  "missing topic file",
			files: map[string]string{ManifestFile: "topics: [nope.yaml]"},
		},
		{
			name:  "empty manifest",
			files: map[string]string{ManifestFile: "topics: []"},
		},
		{
			name: "malformed yaml",
			files: map[string]string{
				ManifestFile: "topics: [bad.yaml]",
				"bad.yaml":   "id: [unclosed",
			},
		},
		{
			name: "lesson without sections",
			files: map[string]string{
				ManifestFile: "topics: [t.yaml]",
				"t.yaml": `
id: t
title: T
modules:
  - id: m
    title: M
    subModules:
      - id: s
        title: S
`,
			},
		},
		{
			name: "section without content",
			files: map[string]string{
				ManifestFile: "topics: [t.yaml]",
				"t.yaml": `
id: t
title: T
modules:
  - id: m
    title: M
    subModules:
      - id: s
        title: S
        sections:
          - heading: only a heading
`,
			},
		},
		{
			name: "duplicate module id",
			files: map[string]string{
				ManifestFile: "topics: [t.yaml]",
				"t.yaml": `
id: t
title: T
modules:
  - id: m
    title: M1
  - id: m
    title: M2
`,
			},
		},
		{
			name: "duplicate topic id",
			files: map[string]string{
				ManifestFile: "topics: [a.yaml, b.yaml]",
				"a.yaml":     reactTopic,
				"b.yaml":     reactTopic,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(testFS(tt.files), nil)
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNoTopics))
}

func TestLookup(t *testing.T) {
	c, err := Load(testFS(map[string]string{
		ManifestFile: "topics: [dsa.yaml]",
		"dsa.yaml":   arraysTopic,
	}), nil)
	require.NoError(t, err)

	topic, module, sub, err := c.Lookup("dsa", "arrays", "intro")
	require.NoError(t, err)
	assert.Equal(t, "dsa", topic.ID)
	assert.Equal(t, "arrays", module.ID)
	assert.Equal(t, "Intro", sub.Title)
	assert.True(t, topic.Contains(sub))

	owner, ok := topic.ModuleOf(sub)
	require.True(t, ok)
	assert.Same(t, module, owner)

	for _, path := range [][3]string{
		{"nope", "arrays", "intro"},
		{"dsa", "nope", "intro"},
		{"dsa", "arrays", "nope"},
	} {
		_, _, _, err := c.Lookup(path[0], path[1], path[2])
		assert.ErrorIs(t, err, ErrNotFound, "lookup %v", path)
	}
}

func TestContainsUsesIdentity(t *testing.T) {
	c, err := Load(testFS(map[string]string{
		ManifestFile: "topics: [dsa.yaml]",
		"dsa.yaml":   arraysTopic,
	}), nil)
	require.NoError(t, err)

	topic := c.First()
	clone := topic.Modules[0].SubModules[0]
	assert.False(t, topic.Contains(&clone))
	assert.False(t, topic.Contains(nil))
}

func TestSubModuleText(t *testing.T) {
	sub := SubModule{Sections: []Section{{Content: "# A"}, {Content: "b"}}}
	assert.Equal(t, "# A\n\nb", sub.Text())
}

func TestLessonsAndTopicIndex(t *testing.T) {
	c, err := Load(testFS(map[string]string{
		ManifestFile: "topics: [dsa.yaml, react.yaml]",
		"dsa.yaml":   arraysTopic,
		"react.yaml": reactTopic,
	}), nil)
	require.NoError(t, err)

	lessons := c.Lessons()
	require.Len(t, lessons, 1)
	assert.Equal(t, "dsa/arrays/intro", lessons[0].Path())

	react, _ := c.Topic("react")
	assert.Equal(t, 1, c.TopicIndex(react))
	assert.Equal(t, -1, c.TopicIndex(&Topic{}))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte("topics: [react.yaml]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "react.yaml"), []byte(reactTopic), 0o644))

	c, err := LoadDir(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "react", c.First().ID)

	_, err = LoadDir(filepath.Join(dir, "missing"), nil)
	assert.Error(t, err)

	_, err = LoadDir(filepath.Join(dir, ManifestFile), nil)
	assert.Error(t, err)
}

func TestEmbedded(t *testing.T) {
	c, err := Embedded(nil)
	require.NoError(t, err)

	var ids []string
	for _, topic := range c.Topics() {
		ids = append(ids, topic.ID)
	}
	assert.Equal(t, []string{"dsa", "javascript", "react"}, ids)

	_, _, sub, err := c.Lookup("dsa", "arrays", "arrays-basics")
	require.NoError(t, err)
	assert.NotEmpty(t, sub.Sections)

	for _, l := range c.Lessons() {
		assert.NotEmpty(t, l.SubModule.Sections, l.Path())
	}
}
