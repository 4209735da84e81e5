package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aviref/mdq/docs"
	"github.com/aviref/mdq/internal/ui"
)

type docTopic struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	Path    string `json:"-"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse bundled documentation",
	Long: `Browse the guides and references bundled into the mdq binary.

Without arguments, lists available topics. With a topic name, renders
it. For command usage, use 'mdq help <command>'.

Examples:
  mdq docs
  mdq docs getting-started
  mdq docs predicates`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocTopics()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return listDocs(topics)
		}
		return showDoc(topics, args[0])
	},
}

func listDocTopics() ([]docTopic, error) {
	var topics []docTopic
	err := fs.WalkDir(docs.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}
		topics = append(topics, docTopic{
			Section: path.Dir(p),
			Name:    strings.TrimSuffix(path.Base(p), ".md"),
			Path:    p,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read bundled docs: %w", err)
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Section != topics[j].Section {
			return topics[i].Section < topics[j].Section
		}
		return topics[i].Name < topics[j].Name
	})
	return topics, nil
}

func listDocs(topics []docTopic) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{"topics": topics}, &Meta{Count: len(topics)})
		return nil
	}

	section := ""
	for _, t := range topics {
		if t.Section != section {
			if section != "" {
				fmt.Println()
			}
			section = t.Section
			fmt.Println(ui.Header(section))
		}
		fmt.Println("  " + t.Name)
	}
	fmt.Println()
	fmt.Println(ui.Muted.Render("Run 'mdq docs <topic>' to read one."))
	return nil
}

func showDoc(topics []docTopic, name string) error {
	for _, t := range topics {
		if t.Name != name {
			continue
		}
		content, err := fs.ReadFile(docs.FS, t.Path)
		if err != nil {
			return fmt.Errorf("read bundled docs: %w", err)
		}
		if isJSONOutput() {
			outputSuccess(map[string]string{
				"section": t.Section,
				"name":    t.Name,
				"content": string(content),
			}, nil)
			return nil
		}
		if !ui.IsTTY() {
			fmt.Print(string(content))
			return nil
		}
		rendered, err := ui.RenderMarkdown(string(content), ui.TermWidth())
		if err != nil {
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	}
	return fmt.Errorf("unknown docs topic %q\n\nRun 'mdq docs' to list topics", name)
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
