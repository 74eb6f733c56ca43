package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args)
	if err == nil {
		return
	}
	if !errors.Is(err, errNotified) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	e := &env{in: in, out: out, errOut: errOut}

	return &cli.App{
		Name:      "eventsctl",
		Usage:     "Browse and manage events on the remote event store.",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "store-url", Usage: "Event store base URL (overrides EVENTS_STORE_URL)."},
			&cli.DurationFlag{Name: "timeout", Usage: "HTTP timeout (overrides EVENTS_HTTP_TIMEOUT)."},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log at the configured EVENTS_LOG_LEVEL instead of warn."},
		},
		Before: e.setup,
		Commands: []*cli.Command{
			listCommand(e),
			showCommand(e),
			createCommand(e),
			editCommand(e),
			deleteCommand(e),
		},
	}
}
