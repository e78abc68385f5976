package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/hclmodel"
	"github.com/stretchr/testify/require"
)

// ElementTestCase defines a single scenario for loading an element declared
// inside a plan model.
type ElementTestCase struct {
	Name string
	// HCL should contain only the content *inside* the
	// `case "Case_1" { plan_model "CasePlanModel_1" { ... } }` blocks.
	// It can be written as a readable, indented multi-line string.
	HCL string
	// ExpectErr should be true if a loading error is expected.
	ExpectErr bool
	// ErrContains is a substring that must appear in the error message if ExpectErr is true.
	ErrContains string
	// Validate performs assertions on the loaded plan model element. It is
	// only called if ExpectErr is false.
	Validate func(t *testing.T, planModel *casemodel.Element)
}

// unindent removes common leading whitespace from a multi-line string,
// allowing for readable, indented HCL snippets in Go tests.
func unindent(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) == 0 {
		return ""
	}

	// Remove leading/trailing empty lines that are common with multi-line literals
	if strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return ""
	}

	// Find the minimum indentation of non-empty lines
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := 0
		for _, r := range line {
			if r == ' ' || r == '\t' {
				indent++
			} else {
				break
			}
		}
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	// Strip the common indentation from each line
	var b strings.Builder
	for i, line := range lines {
		if len(line) >= minIndent {
			b.WriteString(line[minIndent:])
		} else {
			b.WriteString(strings.TrimSpace(line))
		}
		if i < len(lines)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// LoadHCL loads a single HCL source held in memory.
func LoadHCL(t *testing.T, src string) (*casemodel.Element, error) {
	t.Helper()
	return hclmodel.NewLoader().LoadSource(context.Background(), "test.hcl", []byte(unindent(src)))
}

// WriteFiles writes files, keyed by relative path, into a fresh temporary
// directory and returns the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(unindent(content)), 0644))
	}
	return dir
}

// RunElementParsingTests provides a reusable harness for testing how HCL
// blocks inside a plan model are loaded. It iterates through a table of test
// cases, handling boilerplate and common assertions.
func RunElementParsingTests(t *testing.T, cases []ElementTestCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			fullHCL := fmt.Sprintf(`case "Case_1" {
plan_model "CasePlanModel_1" {
%s
}
}`, unindent(tc.HCL))

			definitions, err := LoadHCL(t, fullHCL)

			if tc.ExpectErr {
				require.Error(t, err, "Expected a loading error, but got none")
				if tc.ErrContains != "" {
					require.Contains(t, err.Error(), tc.ErrContains, "Error message did not contain the expected text")
				}
				return
			}

			require.NoError(t, err, "Expected successful loading, but got an error")
			require.Len(t, definitions.Children, 1, "Expected exactly one case to be loaded")
			planModels := definitions.Children[0].ChildrenOfKind(casemodel.KindCasePlanModel)
			require.Len(t, planModels, 1, "Expected exactly one plan model")

			if tc.Validate != nil {
				tc.Validate(t, planModels[0])
			}
		})
	}
}

// Find returns the descendant of root with the given id.
func Find(t *testing.T, root *casemodel.Element, id string) *casemodel.Element {
	t.Helper()
	el, ok := casemodel.NewIndex(root).Lookup(id)
	require.True(t, ok, "element %q not found", id)
	return el
}
