package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the documentation stays in sync with itself:
// every topic listed in readme.md loads, and every .md file (except the
// readme) is listed in readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		name := strings.TrimSuffix(filepath.Base(f), ".md")
		if name == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, name) {
			t.Errorf("topic %q is not listed in docs/readme.md", name)
		}
	}
}

// TestTopicHeadings checks that every topic opens with a level one
// heading, so concatenated topics render as separate sections.
func TestTopicHeadings(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading", topic)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with a level %d heading, want 1", topic, heading.Level)
			}
		})
	}
}

// TestGetAllTopicsExcludesReadme guards the table-of-contents invariant.
func TestGetAllTopicsExcludesReadme(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if slices.Contains(topics, "readme") {
		t.Error("GetAllTopics must not list the readme")
	}
	if len(topics) == 0 {
		t.Error("no topics embedded")
	}
}
