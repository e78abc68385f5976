package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/casegrid/internal/cli"
	"github.com/stretchr/testify/require"
)

const validCase = `
case "Case_1" {
  name = "A Case"

  plan_model "CasePlanModel_1" {
    human_task "HumanTask_1" {
      name     = "Review"
      assignee = "${reviewer}"

      case_execution_listener {
        event = "complete"
        class = "casegrid.print"
      }
    }

    plan_item "PI_HumanTask_1" {
      definition = "HumanTask_1"
    }
  }
}
`

func writeCase(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_CompileYAML(t *testing.T) {
	t.Parallel()

	path := writeCase(t, validCase)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, logs, []string{"casegrid", "compile", "--format", "yaml", "--deployment-id", "d-1", path})

	require.NoError(t, err, logs.String())
	require.Contains(t, out.String(), "key: Case_1")
	require.Contains(t, out.String(), "deploymentId: d-1")
	require.Contains(t, out.String(), "id: PI_HumanTask_1")
	require.Contains(t, out.String(), "${reviewer}")
	require.Contains(t, logs.String(), "Cases compiled.")
	require.NotContains(t, logs.String(), "not registered")
}

func TestRun_CompileTable(t *testing.T) {
	t.Parallel()

	path := writeCase(t, validCase)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, logs, []string{"casegrid", "compile", path})

	require.NoError(t, err, logs.String())
	require.Contains(t, out.String(), "Case_1")
	require.Contains(t, out.String(), "PI_HumanTask_1")
}

func TestRun_ModelError(t *testing.T) {
	t.Parallel()

	path := writeCase(t, `
case "Case_1" {
  plan_model "CasePlanModel_1" {
    plan_item "PI_1" {
      definition = "Missing"
    }
  }
}
`)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, logs, []string{"casegrid", "compile", path})

	require.Error(t, err)
	require.Contains(t, err.Error(), `unresolved definition reference "Missing"`)
	require.Empty(t, out.String())
}

func TestRun_SyntaxError(t *testing.T) {
	t.Parallel()

	path := writeCase(t, `
case "Case_1" {
  plan_model "CasePlanModel_1" {
  // Missing closing braces here
`)
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"casegrid", "compile", path})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	testCases := map[string][]string{
		"no paths":       {"casegrid", "compile"},
		"unknown format": {"casegrid", "compile", "--format", "xml", "x.hcl"},
		"unknown level":  {"casegrid", "--log-level", "loud", "compile", "x.hcl"},
	}
	for name, args := range testCases {
		t.Run(name, func(t *testing.T) {
			err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)

			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"casegrid", "--help"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "compile")
}

func TestRun_Types(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"casegrid", "types"})

	require.NoError(t, err)
	require.Equal(t, "casegrid.print\n", out.String())
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"casegrid", "--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined")
}
