package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhyrak/planlekcji/internal/csvio"
	"github.com/rhyrak/planlekcji/internal/editor"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the weekly schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return csvio.PrintSchedule(cmd.OutOrStdout(), a.editor.Schedule())
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get <row> <day>",
		Short: "Print one lesson",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, day, err := parseCell(args)
			if err != nil {
				return err
			}
			out := a.editor.CellValue(row, day)
			if !raw {
				out, _ = a.editor.DisplayValue(row, day)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored value instead of the display text")
	return cmd
}

func newSetCmd(a *app) *cobra.Command {
	var subject, room string
	cmd := &cobra.Command{
		Use:   "set <row> <day>",
		Short: "Store a lesson",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, day, err := parseCell(args)
			if err != nil {
				return err
			}
			return a.apply(cmd, editor.CellEvent{Row: row, Day: day, Kind: editor.EditConfirmed, Subject: subject, Room: room})
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "subject name")
	cmd.Flags().StringVarP(&room, "room", "r", "", "room")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <row> <day>",
		Aliases: []string{"rm"},
		Short:   "Remove a lesson",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, day, err := parseCell(args)
			if err != nil {
				return err
			}
			return a.apply(cmd, editor.CellEvent{Row: row, Day: day, Kind: editor.DeleteRequested})
		},
	}
}

// newEditCmd prompts for subject and room, starting from the stored value.
// An empty answer keeps the current text, "-" as the subject deletes the
// lesson, and end of input cancels.
func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <row> <day>",
		Short: "Edit a lesson interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, day, err := parseCell(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			in := bufio.NewReader(cmd.InOrStdin())
			subject, room := a.editor.Prefill(row, day)
			_, _ = fmt.Fprintf(out, "Edytuj lekcję - %s\n", a.editor.Title(row, day))

			ev := editor.CellEvent{Row: row, Day: day, Kind: editor.EditConfirmed}
			if ev.Subject, err = prompt(out, in, "Przedmiot", subject); err != nil {
				ev.Kind = editor.Cancelled
			} else if ev.Subject == "-" {
				ev.Kind = editor.DeleteRequested
			} else if ev.Room, err = prompt(out, in, "Sala", room); err != nil {
				ev.Kind = editor.Cancelled
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return a.apply(cmd, ev)
		},
	}
}

func prompt(out io.Writer, in *bufio.Reader, label, current string) (string, error) {
	_, _ = fmt.Fprintf(out, "%s [%s]: ", label, current)
	line, err := in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	if line = strings.TrimSpace(line); line == "" {
		return current, nil
	}
	return line, nil
}

// apply hands the event to the editor. Save failures are notices: the
// change stays in memory and the command still succeeds.
func (a *app) apply(cmd *cobra.Command, ev editor.CellEvent) error {
	err := a.editor.Handle(ev)
	switch {
	case errors.Is(err, csvio.ErrWrite):
		notice(cmd.ErrOrStderr(), err)
		return nil
	case err != nil:
		return err
	}
	if ev.Kind == editor.Cancelled {
		return nil
	}
	text, _ := a.editor.DisplayValue(ev.Row, ev.Day)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", a.editor.Title(ev.Row, ev.Day), strings.ReplaceAll(text, "\n", " | "))
	return err
}
