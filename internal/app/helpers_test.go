package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/casegrid/internal/registry"
	"github.com/specialistvlad/casegrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// appTest bundles an App with the buffers capturing its output and logs.
type appTest struct {
	app  *App
	out  *bytes.Buffer
	logs *testutil.SafeBuffer
}

// setupAppTest writes files into a temp dir and builds an App compiling
// that dir with the given format.
func setupAppTest(t *testing.T, format string, files map[string]string, modules ...registry.Module) *appTest {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	cfg, err := NewConfig(Config{
		Paths:        []string{dir},
		DeploymentID: "deployment-1",
		Format:       format,
		LogLevel:     "debug",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	return &appTest{
		app:  NewApp(out, logs, cfg, modules...),
		out:  out,
		logs: logs,
	}
}

func (at *appTest) run(t *testing.T) error {
	t.Helper()
	return at.app.Run(context.Background())
}
