package nav

import (
	"testing"

	"github.com/gubarz/lessonmd/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(text string) []catalog.Section {
	return []catalog.Section{{Content: text}}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Topic{
		{
			ID:    "dsa",
			Title: "DSA",
			Modules: []catalog.Module{
				{ID: "arrays", Title: "Arrays", SubModules: []catalog.SubModule{
					{ID: "intro", Title: "Intro", Sections: section("# Arrays")},
				}},
				{ID: "trees", Title: "Trees", SubModules: []catalog.SubModule{
					{ID: "bst", Title: "BST", Sections: section("# BST")},
				}},
			},
		},
		{
			ID:    "javascript",
			Title: "JavaScript",
			Modules: []catalog.Module{
				{ID: "js-basics", Title: "Basics", SubModules: []catalog.SubModule{
					{ID: "js-intro", Title: "Intro", Sections: section("# JS")},
				}},
			},
		},
		{ID: "empty", Title: "Empty"},
	})
	require.NoError(t, err)
	return c
}

func TestNewDefaults(t *testing.T) {
	c := testCatalog(t)
	s := New(c)

	assert.Same(t, c.First(), s.Topic())
	assert.Nil(t, s.SubModule())
	assert.Equal(t, []string{"arrays"}, s.Expanded())
	assert.False(t, s.SidebarCollapsed())
}

func TestSelectTopicResetsSubModule(t *testing.T) {
	c := testCatalog(t)
	s := New(c)

	dsa := c.First()
	require.NoError(t, s.SelectSubModule(&dsa.Modules[0].SubModules[0]))
	require.NotNil(t, s.SubModule())

	js, _ := c.Topic("javascript")
	s.SelectTopic(js)
	assert.Nil(t, s.SubModule())
	assert.Same(t, js, s.Topic())
}

func TestSelectTopicExpandsFirstModule(t *testing.T) {
	c := testCatalog(t)
	s := New(c)

	s.ToggleModuleExpansion("trees")
	assert.Equal(t, []string{"arrays", "trees"}, s.Expanded())

	js, _ := c.Topic("javascript")
	s.SelectTopic(js)
	assert.Equal(t, []string{"js-basics"}, s.Expanded())

	empty, _ := c.Topic("empty")
	s.SelectTopic(empty)
	assert.Empty(t, s.Expanded())
}

func TestSelectTopicByID(t *testing.T) {
	s := New(testCatalog(t))

	require.NoError(t, s.SelectTopicByID("javascript"))
	assert.Equal(t, "javascript", s.Topic().ID)

	err := s.SelectTopicByID("cobol")
	assert.ErrorIs(t, err, ErrUnknownTopic)
	assert.Equal(t, "javascript", s.Topic().ID)
}

func TestSelectSubModule(t *testing.T) {
	c := testCatalog(t)
	s := New(c)
	dsa := c.First()
	bst := &dsa.Modules[1].SubModules[0]

	require.NoError(t, s.SelectSubModule(bst))
	assert.Same(t, bst, s.SubModule())

	require.NoError(t, s.SelectSubModule(nil))
	assert.Nil(t, s.SubModule())
}

func TestSelectSubModuleFromOtherTopicIsRejected(t *testing.T) {
	c := testCatalog(t)
	s := New(c)
	require.NoError(t, s.SelectSubModule(&c.First().Modules[0].SubModules[0]))

	js, _ := c.Topic("javascript")
	err := s.SelectSubModule(&js.Modules[0].SubModules[0])
	assert.ErrorIs(t, err, ErrNotInTopic)
	assert.Nil(t, s.SubModule())
	assert.Equal(t, "dsa", s.Topic().ID)
}

func TestSelectLesson(t *testing.T) {
	s := New(testCatalog(t))

	require.NoError(t, s.SelectLesson("javascript", "js-basics", "js-intro"))
	assert.Equal(t, "javascript", s.Topic().ID)
	assert.Equal(t, "js-intro", s.SubModule().ID)
	assert.True(t, s.IsExpanded("js-basics"))

	require.NoError(t, s.SelectLesson("dsa", "trees", "bst"))
	assert.Equal(t, "bst", s.SubModule().ID)
	assert.Equal(t, []string{"arrays", "trees"}, s.Expanded())

	assert.ErrorIs(t, s.SelectLesson("dsa", "trees", "avl"), catalog.ErrNotFound)
	assert.Equal(t, "bst", s.SubModule().ID)
}

func TestToggleModuleExpansion(t *testing.T) {
	s := New(testCatalog(t))

	s.ToggleModuleExpansion("arrays")
	assert.False(t, s.IsExpanded("arrays"))
	s.ToggleModuleExpansion("arrays")
	assert.True(t, s.IsExpanded("arrays"))

	s.ToggleModuleExpansion("not-a-module")
	assert.True(t, s.IsExpanded("not-a-module"))
}

func TestToggleSidebarCollapseKeepsSelection(t *testing.T) {
	c := testCatalog(t)
	s := New(c)
	require.NoError(t, s.SelectSubModule(&c.First().Modules[0].SubModules[0]))

	s.ToggleSidebarCollapse()
	assert.True(t, s.SidebarCollapsed())
	assert.NotNil(t, s.SubModule())

	s.ToggleSidebarCollapse()
	assert.False(t, s.SidebarCollapsed())
}
