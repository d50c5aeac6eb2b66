package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gubarz/lessonmd/internal/catalog"
	"github.com/gubarz/lessonmd/internal/config"
	"github.com/gubarz/lessonmd/internal/logger"
	"github.com/gubarz/lessonmd/internal/markdown"
	"github.com/gubarz/lessonmd/internal/nav"
	"github.com/gubarz/lessonmd/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "lessonmd",
	Short: "Terminal tutorials for DSA, JavaScript and React",
	Long: `Browse programming lessons in the terminal.

Pick a topic, open a lesson from the sidebar and copy its
code examples to the clipboard.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBrowser,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(listCmd, showCmd)

	rootCmd.PersistentFlags().StringP("topic", "t", "", "Topic to show at startup")
	rootCmd.PersistentFlags().String("content", "", "Load lessons from this directory instead of the built-in catalog")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolP("benchmark", "b", false, "Benchmark load and parse time and exit")

	viper.BindPFlag("topic", rootCmd.PersistentFlags().Lookup("topic"))
	viper.BindPFlag("content_path", rootCmd.PersistentFlags().Lookup("content"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// loadCatalog reads the configured content directory, or the built-in lessons
func loadCatalog(log *zap.Logger) (*catalog.Catalog, error) {
	if dir := config.GetContentPath(); dir != "" {
		return catalog.LoadDir(dir, log)
	}
	return catalog.Embedded(log)
}

func runBrowser(cmd *cobra.Command, args []string) error {
	log, err := logger.New(config.GetLogFile(), config.GetLogLevel())
	if err != nil {
		return err
	}
	defer log.Sync()

	benchmark, _ := cmd.Flags().GetBool("benchmark")
	start := time.Now()

	c, err := loadCatalog(log.Named("catalog"))
	if err != nil {
		return fmt.Errorf("loading lessons: %w", err)
	}

	state := nav.New(c)
	if id := config.GetTopic(); id != "" {
		if err := state.SelectTopicByID(id); err != nil {
			log.Warn("startup topic ignored", zap.Error(err))
			color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: %v, showing %s\n", err, state.Topic().Title)
		}
	}

	if benchmark {
		blocks := 0
		lessons := c.Lessons()
		for _, l := range lessons {
			blocks += len(markdown.Parse(l.SubModule.Text()))
		}
		elapsed := time.Since(start)
		// Force GC and get memory stats
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		fmt.Printf("Loaded %d topics, parsed %d lessons into %d blocks in %v\n", len(c.Topics()), len(lessons), blocks, elapsed)
		fmt.Printf("Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
			m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
		return nil
	}

	return ui.Run(state, ui.Options{
		Logger:       log,
		SidebarWidth: config.GetSidebarWidth(),
		WrapWidth:    config.GetWrapWidth(),
		CopyReset:    config.GetCopyReset(),
		Language:     config.GetCodeLanguage(),
	})
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
