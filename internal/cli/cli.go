// Package cli defines the casegrid command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/casegrid/internal/app"
	"github.com/urfave/cli/v3"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewCommand builds the root command. Rendered output and help go to outW,
// logs go to errW.
func NewCommand(outW, errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "casegrid",
		Usage:     "Compile declarative case models into executable activity trees",
		Writer:    outW,
		ErrWriter: errW,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("CASEGRID_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log output format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("CASEGRID_LOG_FORMAT"),
			},
		},
		Commands: []*cli.Command{
			newCompileCommand(outW, errW),
			newTypesCommand(outW, errW),
		},
	}
}

func newCompileCommand(outW, errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Aliases:   []string{"c"},
		Usage:     "Compile .hcl case files and print the activity trees",
		ArgsUsage: "PATH...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "deployment-id",
				Usage:   "Deployment id stamped on every case (generated if not provided)",
				Sources: cli.EnvVars("CASEGRID_DEPLOYMENT_ID"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (table, yaml)",
				Value:   app.FormatTable,
				Sources: cli.EnvVars("CASEGRID_FORMAT"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg, err := app.NewConfig(app.Config{
				Paths:        command.Args().Slice(),
				DeploymentID: command.String("deployment-id"),
				Format:       command.String("format"),
				LogFormat:    command.String("log-format"),
				LogLevel:     command.String("log-level"),
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return app.NewApp(outW, errW, cfg).Run(ctx)
		},
	}
}

func newTypesCommand(outW, errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List the listener types compiled into this binary",
		Action: func(ctx context.Context, command *cli.Command) error {
			a := app.NewApp(outW, errW, &app.Config{
				LogFormat: command.String("log-format"),
				LogLevel:  command.String("log-level"),
			})
			for _, name := range a.Registry().TypeNames() {
				fmt.Fprintln(outW, name)
			}
			return nil
		},
	}
}
