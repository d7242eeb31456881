// Command oxydesk builds the desk scene and saves, loads, lists or exports it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-desk/config"
	"github.com/Carmen-Shannon/oxy-desk/engine"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configPath string
	profile    bool
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:          "oxydesk",
		Short:        "Build and persist the desk scene",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "oxydesk.toml", "path to the TOML config file")
	root.PersistentFlags().BoolVar(&a.profile, "profile", false, "log per-operation timings")

	root.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "Build the desk and print scene statistics",
			Args:  cobra.NoArgs,
			RunE: a.withDesk(func(e engine.Engine, _ []string) error {
				fmt.Fprintln(a.stdout, e.Stats())
				for _, obj := range e.Scene().Objects() {
					fmt.Fprintln(a.stdout, obj)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "save <name>",
			Short: "Build the desk and save it as a snapshot",
			Args:  cobra.ExactArgs(1),
			RunE: a.withDesk(func(e engine.Engine, args []string) error {
				path, err := e.Save(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, path)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "load <name>",
			Short: "Load a snapshot and print its statistics",
			Args:  cobra.ExactArgs(1),
			RunE: a.withEngine(func(e engine.Engine, args []string) error {
				if err := e.Load(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, e.Stats())
				return nil
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List saved snapshots",
			Args:  cobra.NoArgs,
			RunE: a.withEngine(func(e engine.Engine, _ []string) error {
				names, err := e.List()
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(a.stdout, n)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "export <path>",
			Short: "Build the desk and export it as a binary STL file",
			Args:  cobra.ExactArgs(1),
			RunE: a.withDesk(func(e engine.Engine, args []string) error {
				n, err := e.ExportSTL(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%d triangles written to %s\n", n, args[0])
				return nil
			}),
		},
	)
	return root
}

type runFunc func(e engine.Engine, args []string) error

// withEngine loads the config, builds an engine and runs fn against it.
func (a *app) withEngine(fn runFunc) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		level, _ := cfg.Level()
		logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

		e, err := engine.NewEngine(
			engine.WithConfig(cfg),
			engine.WithLogger(logger),
			engine.WithProfiling(a.profile),
		)
		if err != nil {
			return err
		}
		defer e.Close()
		return fn(e, args)
	}
}

// withDesk is withEngine with the desk already built.
func (a *app) withDesk(fn runFunc) func(*cobra.Command, []string) error {
	return a.withEngine(func(e engine.Engine, args []string) error {
		if err := e.BuildDesk(); err != nil {
			return err
		}
		return fn(e, args)
	})
}
