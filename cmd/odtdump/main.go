// Command odtdump inspects OpenDocument packages.
//
//	odtdump ls report.odt
//	odtdump --log-level debug content report.odt
//	odtdump style report.odt Heading_20_1
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tsawler/opendoc"
	"github.com/tsawler/opendoc/config"
	"github.com/tsawler/opendoc/internal/logger"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "odtdump: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	d := &dumper{out: stdout}

	app := cli.NewApp()
	app.Name = "odtdump"
	app.Usage = "Inspect the members, content and styles of OpenDocument packages"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.HideVersion = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML settings file",
			EnvVars: []string{"ODTDUMP_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: trace, debug, info, warn, error (overrides the config file)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text or json (overrides the config file)",
		},
	}
	app.Before = func(c *cli.Context) error {
		return d.setup(c, stderr)
	}

	app.Commands = []*cli.Command{
		{
			Name:      "ls",
			Usage:     "List the extracted members with their sizes",
			ArgsUsage: "FILE",
			Action:    d.list,
		},
		{
			Name:      "content",
			Usage:     "Print the decoded content part as JSON",
			ArgsUsage: "FILE",
			Action:    d.content,
		},
		{
			Name:      "styles",
			Usage:     "Print the decoded styles part as JSON",
			ArgsUsage: "FILE",
			Action:    d.styles,
		},
		{
			Name:      "style",
			Usage:     "Print one style resolved through its parents as JSON",
			ArgsUsage: "FILE NAME",
			Action:    d.style,
		},
		{
			Name:      "info",
			Usage:     "Print the package format and body statistics",
			ArgsUsage: "FILE",
			Action:    d.info,
		},
	}
	return app
}

// setup loads the settings file and installs the logger.
func (d *dumper) setup(c *cli.Context, stderr io.Writer) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logger.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	opendoc.SetLogger(l)

	d.cfg = cfg
	return nil
}
