package testkit

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// AssertionType is the language tag of an assertion fence.
type AssertionType string

const (
	// AssertError expects compilation to fail with exactly this line.
	AssertError AssertionType = "error"
	// AssertIRContains expects every non-blank line to occur in the IR.
	AssertIRContains AssertionType = "ir-contains"
	// AssertScopes expects every non-blank line to occur in the scope listing.
	AssertScopes AssertionType = "scopes"
)

// inputFence marks the program under test.
const inputFence = "fanc"

type Assertion struct {
	Type    AssertionType
	Content string
	Line    int
}

// Case is one `## Test: <name>` section of a Markdown corpus.
type Case struct {
	Name       string
	Input      string
	Line       int
	Assertions []Assertion
}

// LoadCases reads and parses a Markdown corpus file.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases, err := ExtractCases(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// ExtractCases walks a Markdown document and collects its test cases.
// Fences without a language are prose and are skipped.
func ExtractCases(src []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var cases []Case
	var current *Case
	flush := func() error {
		if current == nil {
			return nil
		}
		if err := validateCase(current); err != nil {
			return err
		}
		cases = append(cases, *current)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, src)
			name, ok := strings.CutPrefix(heading, "Test: ")
			if !ok {
				return ast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			current = &Case{Name: strings.TrimSpace(name), Line: lineOf(n, src)}

		case *ast.FencedCodeBlock:
			lang := string(n.Language(src))
			if lang == "" {
				return ast.WalkContinue, nil
			}
			line := lineOf(n, src)
			if current == nil {
				return ast.WalkStop, fmt.Errorf("line %d: %s fence outside of a test case", line, lang)
			}
			content := fenceContent(n, src)
			switch AssertionType(lang) {
			case AssertError, AssertIRContains, AssertScopes:
				current.Assertions = append(current.Assertions, Assertion{
					Type:    AssertionType(lang),
					Content: strings.TrimRight(content, "\n"),
					Line:    line,
				})
			default:
				if lang != inputFence {
					return ast.WalkStop, fmt.Errorf("line %d: unknown fence language %q in test %q", line, lang, current.Name)
				}
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple %s fences in test %q", line, inputFence, current.Name)
				}
				current.Input = content
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

func validateCase(c *Case) error {
	if c.Input == "" {
		return fmt.Errorf("test %q has no %s fence", c.Name, inputFence)
	}
	if len(c.Assertions) == 0 {
		return fmt.Errorf("test %q has no assertion fences", c.Name)
	}
	for _, a := range c.Assertions {
		if a.Type == AssertError && len(c.Assertions) > 1 {
			return fmt.Errorf("test %q: an error fence cannot be combined with other assertions", c.Name)
		}
	}
	return nil
}

func nodeText(node ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func fenceContent(block *ast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	for i := 0; i < block.Lines().Len(); i++ {
		line := block.Lines().At(i)
		buf.Write(line.Value(src))
	}
	return buf.String()
}

func lineOf(node ast.Node, src []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return 1 + bytes.Count(src[:min(start, len(src))], []byte{'\n'})
}
