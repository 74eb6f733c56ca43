package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"events-console/internal/app"
	"events-console/internal/config"
	"events-console/internal/domain/events"
	"events-console/internal/domain/pages"

	"github.com/urfave/cli/v2"
)

// errNotified: la acción falló y ya se imprimió la notificación.
var errNotified = errors.New("action failed")

// env es lo que comparten los comandos una vez leída la config.
type env struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	ctrl *pages.Controller
}

func (e *env) setup(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.IsSet("store-url") {
		cfg.StoreDriver = config.StoreREST
		cfg.StoreURL = c.String("store-url")
	}
	if c.IsSet("timeout") {
		cfg.HTTPTimeout = c.Duration("timeout")
	}
	if !c.Bool("verbose") {
		cfg.LogLevel = "warn"
	}

	log := app.NewLogger(cfg, e.errOut)
	store, err := app.NewStore(cfg, log)
	if err != nil {
		return err
	}
	e.ctrl = pages.NewController(store, pages.Options{
		CreatorID: events.ParseID(cfg.CreatorID),
		Logger:    log,
	})
	return nil
}

// notify imprime la notificación; si fue un error devuelve errNotified.
func (e *env) notify(res pages.Result) error {
	n := res.Notification
	if n == nil {
		return nil
	}
	line := fmt.Sprintf("[%s] %s", n.Status, n.Title)
	if n.Description != "" {
		line += ": " + n.Description
	}
	fmt.Fprintln(e.errOut, line)

	if res.Failed() {
		return errNotified
	}
	return nil
}

func listCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List events, filtered by text and categories.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "q", Usage: "Case-insensitive text matched against title and description."},
			&cli.StringSliceFlag{Name: "category", Aliases: []string{"c"}, Usage: "Selected category id (repeatable)."},
		},
		Action: func(c *cli.Context) error {
			data, err := e.ctrl.EnterList(c.Context)
			if err != nil {
				return err
			}

			var st pages.ListState
			st.SetQuery(c.String("q"))
			var ids []events.ID
			for _, v := range c.StringSlice("category") {
				ids = append(ids, events.ParseIDs(v)...)
			}
			st.SetCategories(ids)

			v := st.View(data)
			if len(v.Events) == 0 {
				fmt.Fprintln(e.out, v.Message)
				return nil
			}

			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tSTART\tLOCATION\tCATEGORIES")
			for _, ev := range v.Events {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					ev.ID, ev.Title, events.FormatTime(ev.StartTime), ev.Location,
					strings.Join(events.CategoryNames(v.Categories, ev), ", "))
			}
			return tw.Flush()
		},
	}
}

func showCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one event with its creator and categories.",
		ArgsUsage: "ID",
		Action: func(c *cli.Context) error {
			st, err := e.enterDetail(c)
			if err != nil {
				return err
			}
			e.printDetail(st)
			return nil
		},
	}
}

func createCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an event.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Required: true},
			&cli.StringFlag{Name: "description", Required: true},
			&cli.StringFlag{Name: "location"},
			&cli.StringFlag{Name: "start", Required: true, Usage: "Start time, e.g. 2024-03-15T19:00"},
			&cli.StringFlag{Name: "end", Required: true, Usage: "End time, e.g. 2024-03-15T22:00"},
			&cli.StringFlag{Name: "image", Usage: "Image URL."},
			&cli.StringSliceFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category id (accepted, not submitted)."},
		},
		Action: func(c *cli.Context) error {
			st := e.ctrl.EnterCreate()
			for field, flag := range map[string]string{
				"title":       "title",
				"description": "description",
				"location":    "location",
				"startTime":   "start",
				"endTime":     "end",
				"image":       "image",
			} {
				if err := st.SetField(field, c.String(flag)); err != nil {
					return err
				}
			}
			var ids []events.ID
			for _, v := range c.StringSlice("category") {
				ids = append(ids, events.ParseIDs(v)...)
			}
			st.SetCategories(ids)

			res, err := e.ctrl.SubmitCreate(c.Context, st)
			if err != nil {
				return err
			}
			return e.notify(res)
		},
	}
}

func editCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit title, description, image or times of an event.",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title"},
			&cli.StringFlag{Name: "description"},
			&cli.StringFlag{Name: "image"},
			&cli.StringFlag{Name: "start"},
			&cli.StringFlag{Name: "end"},
		},
		Action: func(c *cli.Context) error {
			st, err := e.enterDetail(c)
			if err != nil {
				return err
			}

			st.OpenEdit()
			changed := 0
			for field, flag := range map[string]string{
				"title":       "title",
				"description": "description",
				"image":       "image",
				"startTime":   "start",
				"endTime":     "end",
			} {
				if !c.IsSet(flag) {
					continue
				}
				if err := st.SetField(field, c.String(flag)); err != nil {
					return err
				}
				changed++
			}
			if changed == 0 {
				return errors.New("nothing to edit: pass at least one of --title, --description, --image, --start, --end")
			}

			res, err := e.ctrl.SaveEdit(c.Context, st)
			if err != nil {
				return err
			}
			return e.notify(res)
		},
	}
}

func deleteCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an event after confirmation.",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt."},
		},
		Action: func(c *cli.Context) error {
			st, err := e.enterDetail(c)
			if err != nil {
				return err
			}

			st.RequestDelete()
			if !c.Bool("yes") && !e.confirm(fmt.Sprintf("Delete event %q? [y/N] ", st.Event.Title)) {
				st.CancelDelete()
				fmt.Fprintln(e.errOut, "Cancelled.")
				return nil
			}

			res, err := e.ctrl.ConfirmDelete(c.Context, st)
			if err != nil {
				return err
			}
			return e.notify(res)
		},
	}
}

func (e *env) enterDetail(c *cli.Context) (*pages.DetailState, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one event ID")
	}
	return e.ctrl.EnterDetail(c.Context, events.ParseID(c.Args().First()))
}

func (e *env) confirm(prompt string) bool {
	fmt.Fprint(e.errOut, prompt)
	line, _ := bufio.NewReader(e.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (e *env) printDetail(st *pages.DetailState) {
	ev := st.Event
	tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", ev.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", ev.Title)
	fmt.Fprintf(tw, "Description:\t%s\n", ev.Description)
	fmt.Fprintf(tw, "Location:\t%s\n", ev.Location)
	fmt.Fprintf(tw, "Start:\t%s\n", events.FormatTime(ev.StartTime))
	fmt.Fprintf(tw, "End:\t%s\n", events.FormatTime(ev.EndTime))
	if ev.Image != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", ev.Image)
	}
	fmt.Fprintf(tw, "Created by:\t%s\n", st.CreatorName())
	fmt.Fprintf(tw, "Categories:\t%s\n", strings.Join(st.CategoryNames(), ", "))
	_ = tw.Flush()
}
