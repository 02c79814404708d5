package cli

import (
	"strconv"

	"fdk/internal/edit"
	"fdk/internal/store"

	"github.com/spf13/cobra"
)

func newStagesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stages",
		Short: "Stage commands (ordered phases of an aircraft's checklist)",
	}
	cmd.AddCommand(newStagesListCmd(app))
	cmd.AddCommand(newStagesAddCmd(app))
	cmd.AddCommand(newStagesRenameCmd(app))
	cmd.AddCommand(newStagesDeleteCmd(app))
	return cmd
}

// openEditSession loads an editing session for an existing aircraft.
func openEditSession(app *App, cmd *cobra.Command, aircraft string) (store.Store, *edit.Session, error) {
	s, err := openStore(app)
	if err != nil {
		return store.Store{}, nil, err
	}
	if !s.HasAircraft(aircraft) {
		return store.Store{}, nil, errNotFound("aircraft", aircraft)
	}
	sess, err := edit.NewSession(s, nil, aircraft, false)
	if err != nil {
		return store.Store{}, nil, err
	}
	return s, sess, nil
}

// stageIndex resolves a stage argument that may be a name or a 0-based index.
func stageIndex(sess *edit.Session, arg string) (int, error) {
	names := sess.StageNames()
	for i, n := range names {
		if n == arg {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(arg); err == nil && i >= 0 && i < len(names) {
		return i, nil
	}
	return 0, errNotFound("stage", arg)
}

func newStagesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <aircraft>",
		Short: "List an aircraft's stages in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := openEditSession(app, cmd, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sess.StageNames()})
		},
	}
}

func newStagesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <aircraft> <name>",
		Short: "Append a stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sess, err := openEditSession(app, cmd, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.AddStage(args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if _, err := sess.SaveDraft(); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "stage.add", args[0], map[string]any{"stage": args[1]})
			return writeOut(cmd, app, map[string]any{"data": sess.StageNames()})
		},
	}
}

func newStagesRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <aircraft> <stage> <new-name>",
		Short: "Rename a stage (by name or index)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sess, err := openEditSession(app, cmd, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			i, err := stageIndex(sess, args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.RenameStage(i, args[2]); err != nil {
				return writeErr(cmd, err)
			}
			if _, err := sess.SaveDraft(); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "stage.rename", args[0], map[string]any{"from": args[1], "to": args[2]})
			return writeOut(cmd, app, map[string]any{"data": sess.StageNames()})
		},
	}
}

func newStagesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <aircraft> <stage>",
		Short: "Delete a stage (the last remaining stage is protected)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sess, err := openEditSession(app, cmd, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			i, err := stageIndex(sess, args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.DeleteStage(i); err != nil {
				return writeErr(cmd, err)
			}
			if _, err := sess.SaveDraft(); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "stage.delete", args[0], map[string]any{"stage": args[1]})
			return writeOut(cmd, app, map[string]any{"data": sess.StageNames()})
		},
	}
}
