package cli

import (
	"fdk/internal/edit"
	"fdk/internal/model"

	"github.com/spf13/cobra"
)

func newATCCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atc",
		Short: "ATC phrase templates (CN/EN, grouped per stage)",
	}
	cmd.AddCommand(newATCListCmd(app))
	cmd.AddCommand(newATCAddCmd(app))
	cmd.AddCommand(newATCUpdateCmd(app))
	cmd.AddCommand(newATCRemoveCmd(app))
	return cmd
}

func newATCListCmd(app *App) *cobra.Command {
	var stage string
	cmd := &cobra.Command{
		Use:   "list <aircraft>",
		Short: "List an aircraft's ATC templates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			f, err := s.ReadATC(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			tpls := f.Templates
			if stage != "" {
				tpls = edit.TemplatesForStage(f, stage)
			}
			if tpls == nil {
				tpls = []model.Template{}
			}
			return writeOut(cmd, app, map[string]any{"data": tpls})
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "", "Only templates assigned to this stage")
	return cmd
}

func newATCAddCmd(app *App) *cobra.Command {
	var stage, cn, en string
	cmd := &cobra.Command{
		Use:   "add <aircraft> <name>",
		Short: "Add an ATC template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			tpl := model.Template{Name: args[1], Stage: stage, CN: cn, EN: en}
			if err := edit.AddTemplate(s, args[0], tpl); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "atc.add", args[0], tpl)
			return writeOut(cmd, app, map[string]any{"data": tpl})
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "", "Stage the template belongs to")
	cmd.Flags().StringVar(&cn, "cn", "", "CN phrase (markdown)")
	cmd.Flags().StringVar(&en, "en", "", "EN phrase (markdown)")
	return cmd
}

func newATCUpdateCmd(app *App) *cobra.Command {
	var toStage, cn, en string
	cmd := &cobra.Command{
		Use:   "update <aircraft> <stage> <name>",
		Short: "Update a template's stage or content (the name is fixed)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			stage := toStage
			if stage == "" {
				stage = args[1]
			}
			upd := model.Template{Name: args[2], Stage: stage, CN: cn, EN: en}
			if err := edit.UpdateTemplate(s, args[0], args[1], args[2], upd); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "atc.update", args[0], upd)
			return writeOut(cmd, app, map[string]any{"data": upd})
		},
	}
	cmd.Flags().StringVar(&toStage, "stage", "", "Move the template to this stage")
	cmd.Flags().StringVar(&cn, "cn", "", "CN phrase (markdown)")
	cmd.Flags().StringVar(&en, "en", "", "EN phrase (markdown)")
	return cmd
}

func newATCRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <aircraft> <stage> <name>",
		Short: "Remove an ATC template",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := edit.RemoveTemplate(s, args[0], args[1], args[2]); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "atc.remove", args[0], map[string]any{"stage": args[1], "name": args[2]})
			return writeOut(cmd, app, map[string]any{"data": args[2]})
		},
	}
}
