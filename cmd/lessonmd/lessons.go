package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gubarz/lessonmd/internal/catalog"
	"github.com/gubarz/lessonmd/internal/config"
	"github.com/gubarz/lessonmd/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics, modules and lessons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(nil)
		if err != nil {
			return fmt.Errorf("loading lessons: %w", err)
		}
		printCatalog(cmd.OutOrStdout(), c)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <topic>/<module>/<lesson>",
	Short: "Print a single lesson",
	Long: `Render one lesson to stdout.

Lesson paths are printed by "lessonmd list", for example:
  lessonmd show dsa/arrays/arrays-basics`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntP("width", "w", 0, "Wrap width (default: wrap_width from config)")
}

// printCatalog writes the lesson tree with one line per topic, module and lesson
func printCatalog(w io.Writer, c *catalog.Catalog) {
	topic := color.New(color.FgYellow, color.Bold).SprintFunc()
	module := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()

	for _, t := range c.Topics() {
		fmt.Fprintf(w, "%s %s\n", topic(strings.TrimSpace(t.Icon+" "+t.Title)),
			dim("("+count(len(t.Modules), "module")+", "+count(t.LessonCount(), "lesson")+")"))
		for _, m := range t.Modules {
			fmt.Fprintf(w, "  %s\n", module(strings.TrimSpace(m.Icon+" "+m.Title)))
			for _, s := range m.SubModules {
				fmt.Fprintf(w, "    %s  %s\n", s.Title, dim(t.ID+"/"+m.ID+"/"+s.ID))
			}
		}
	}
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// parseLessonPath splits "topic/module/lesson"
func parseLessonPath(path string) (topic, module, lesson string, err error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("invalid lesson path %q: want <topic>/<module>/<lesson>", path)
	}
	return parts[0], parts[1], parts[2], nil
}

func runShow(cmd *cobra.Command, args []string) error {
	topicID, moduleID, subID, err := parseLessonPath(args[0])
	if err != nil {
		return err
	}
	c, err := loadCatalog(nil)
	if err != nil {
		return fmt.Errorf("loading lessons: %w", err)
	}
	_, _, sub, err := c.Lookup(topicID, moduleID, subID)
	if err != nil {
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = config.GetWrapWidth()
	}
	styles := render.DefaultStyles()
	styles.LoadFromConfig()
	r := render.New(styles, width).WithLanguage(config.GetCodeLanguage())

	page := r.Lesson(sub, render.LessonView{Focus: -1})
	fmt.Fprintln(cmd.OutOrStdout(), page.Content)
	return nil
}
