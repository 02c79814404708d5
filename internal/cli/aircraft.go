package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newAircraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aircraft",
		Short: "Aircraft commands (each aircraft owns a checklist, ATC set and charts)",
	}
	cmd.AddCommand(newAircraftListCmd(app))
	cmd.AddCommand(newAircraftCreateCmd(app))
	cmd.AddCommand(newAircraftShowCmd(app))
	cmd.AddCommand(newAircraftDeleteCmd(app))
	return cmd
}

func newAircraftListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List aircraft",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			names, err := s.ListAircraft()
			if err != nil {
				return writeErr(cmd, err)
			}
			if names == nil {
				names = []string{}
			}
			return writeOut(cmd, app, map[string]any{"data": names})
		},
	}
}

func newAircraftCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an aircraft seeded with a single empty stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return writeErr(cmd, errNotFound("aircraft", args[0]))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.CreateAircraft(name); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "aircraft.create", name, nil)
			return writeOut(cmd, app, map[string]any{"data": name})
		},
	}
}

func newAircraftShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show an aircraft's checklist document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !s.HasAircraft(args[0]) {
				return writeErr(cmd, errNotFound("aircraft", args[0]))
			}
			doc, err := s.ReadChecklist(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": doc})
		},
	}
}

func newAircraftDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an aircraft and everything stored for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !s.HasAircraft(args[0]) {
				return writeErr(cmd, errNotFound("aircraft", args[0]))
			}
			if err := s.DeleteAircraft(args[0]); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "aircraft.delete", args[0], nil)
			return writeOut(cmd, app, map[string]any{"data": args[0]})
		},
	}
}
