package cli

import (
	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Free-form notes: one global scratchpad plus one note per aircraft stage",
	}
	cmd.AddCommand(newNotesShowCmd(app))
	cmd.AddCommand(newNotesSetCmd(app))
	cmd.AddCommand(newNotesClearCmd(app))
	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [aircraft stage]",
		Short: "Show the global note, or one stage's note",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			var text string
			if len(args) == 2 {
				text, err = s.ReadStageNote(args[0], args[1])
			} else {
				text, err = s.ReadGlobalNote()
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": text})
		},
	}
}

func newNotesSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <text> | set <aircraft> <stage> <text>",
		Short: "Replace the global note, or one stage's note",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			entity := "global"
			switch len(args) {
			case 1:
				err = s.WriteGlobalNote(args[0])
			case 3:
				err = s.WriteStageNote(args[0], args[1], args[2])
				entity = args[0] + "/" + args[1]
			default:
				return cmd.Help()
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "note.set", entity, nil)
			return writeOut(cmd, app, map[string]any{"data": "ok"})
		},
	}
}

func newNotesClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [aircraft]",
		Short: "Clear the global note, or every stage note of one aircraft",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			entity := "global"
			if len(args) == 1 {
				err = s.ClearStageNotes(args[0])
				entity = args[0]
			} else {
				err = s.ClearGlobalNote()
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "note.clear", entity, nil)
			return writeOut(cmd, app, map[string]any{"data": "ok"})
		},
	}
}
