package cli

import (
	"strconv"

	"fdk/internal/edit"
	"fdk/internal/outline"
	"fdk/internal/store"

	"github.com/spf13/cobra"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Checklist item commands (level-tagged nodes within a stage)",
	}
	cmd.AddCommand(newItemsListCmd(app))
	cmd.AddCommand(newItemsAddCmd(app))
	cmd.AddCommand(newItemsSetTextCmd(app))
	cmd.AddCommand(newItemsRemoveCmd(app))
	cmd.AddCommand(newItemsIndentCmd(app, "indent", 1))
	cmd.AddCommand(newItemsIndentCmd(app, "outdent", -1))
	cmd.AddCommand(newItemsSetOptionalCmd(app))
	return cmd
}

type itemRow struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	Level    int    `json:"level"`
	Optional bool   `json:"optional"`
	Locked   bool   `json:"locked"`
}

func itemRows(tree *outline.Tree) []itemRow {
	rows := make([]itemRow, tree.Len())
	for i := 0; i < tree.Len(); i++ {
		n := tree.Node(i)
		rows[i] = itemRow{
			Index:    i,
			Text:     n.Text,
			Level:    n.Level,
			Optional: tree.Optional(i),
			Locked:   tree.Locked(i),
		}
	}
	return rows
}

// openStageTree loads an edit session positioned on one stage.
func openStageTree(app *App, cmd *cobra.Command, aircraft, stage string) (store.Store, *edit.Session, error) {
	s, sess, err := openEditSession(app, cmd, aircraft)
	if err != nil {
		return store.Store{}, nil, err
	}
	i, err := stageIndex(sess, stage)
	if err != nil {
		return store.Store{}, nil, err
	}
	if err := sess.SelectStage(i); err != nil {
		return store.Store{}, nil, err
	}
	return s, sess, nil
}

func itemIndex(tree *outline.Tree, arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 || i >= tree.Len() {
		return 0, errNotFound("item", arg)
	}
	return i, nil
}

func saveItems(cmd *cobra.Command, app *App, s store.Store, sess *edit.Session, event string) error {
	if _, err := sess.SaveDraft(); err != nil {
		return writeErr(cmd, err)
	}
	_ = s.AppendEvent(cmd.Context(), event, sess.Aircraft(), map[string]any{"stage": sess.StageIndex()})
	return writeOut(cmd, app, map[string]any{"data": itemRows(sess.Tree())})
}

func newItemsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <aircraft> <stage>",
		Short: "List a stage's items with levels and optional flags",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := openStageTree(app, cmd, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": itemRows(sess.Tree())})
		},
	}
}

func newItemsAddCmd(app *App) *cobra.Command {
	var after int
	var optional bool

	cmd := &cobra.Command{
		Use:   "add <aircraft> <stage> <text>",
		Short: "Insert an item after another (default: after the last)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sess, err := openStageTree(app, cmd, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			tree := sess.Tree()
			if after < 0 || after >= tree.Len() {
				after = tree.Len() - 1
			}
			j := tree.InsertAfter(after)
			tree.SetText(j, args[2])
			if optional {
				if err := tree.SetOptional(j, true); err != nil {
					return writeErr(cmd, err)
				}
			}
			return saveItems(cmd, app, s, sess, "item.add")
		},
	}

	cmd.Flags().IntVar(&after, "after", -1, "Index to insert after (default: last item)")
	cmd.Flags().BoolVar(&optional, "optional", false, "Mark the new item optional")
	return cmd
}

func newItemsSetTextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-text <aircraft> <stage> <index> <text>",
		Short: "Replace an item's text",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sess, err := openStageTree(app, cmd, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			i, err := itemIndex(sess.Tree(), args[2])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess.Tree().SetText(i, args[3])
			return saveItems(cmd, app, s, sess, "item.set-text")
		},
	}
}

func newItemsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <aircraft> <stage> <index>",
		Short: "Remove an item; its children are promoted one level",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sess, err := openStageTree(app, cmd, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			i, err := itemIndex(sess.Tree(), args[2])
			if err != nil {
				return writeErr(cmd, err)
			}
			if !sess.Tree().Remove(i) {
				return writeErr(cmd, errNotFound("item", args[2]))
			}
			return saveItems(cmd, app, s, sess, "item.remove")
		},
	}
}

func newItemsIndentCmd(app *App, use string, delta int) *cobra.Command {
	short := "Indent an item and its subtree one level"
	if delta < 0 {
		short = "Out-dent an item and its subtree one level"
	}
	return &cobra.Command{
		Use:   use + " <aircraft> <stage> <index>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sess, err := openStageTree(app, cmd, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			i, err := itemIndex(sess.Tree(), args[2])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.Tree().Reindent(i, delta); err != nil {
				return writeErr(cmd, err)
			}
			return saveItems(cmd, app, s, sess, "item."+use)
		},
	}
}

func newItemsSetOptionalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-optional <aircraft> <stage> <index> <true|false>",
		Short: "Set an item's optional flag (locked items reject the edit)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sess, err := openStageTree(app, cmd, args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			i, err := itemIndex(sess.Tree(), args[2])
			if err != nil {
				return writeErr(cmd, err)
			}
			v, err := strconv.ParseBool(args[3])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.Tree().SetOptional(i, v); err != nil {
				return writeErr(cmd, err)
			}
			return saveItems(cmd, app, s, sess, "item.set-optional")
		},
	}
}
