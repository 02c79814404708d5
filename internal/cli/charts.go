package cli

import (
	"github.com/spf13/cobra"
)

func newChartsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Chart images attached to an aircraft",
	}
	cmd.AddCommand(newChartsListCmd(app))
	cmd.AddCommand(newChartsAddCmd(app))
	cmd.AddCommand(newChartsRenameCmd(app))
	cmd.AddCommand(newChartsDeleteCmd(app))
	cmd.AddCommand(newChartsClearCmd(app))
	return cmd
}

func newChartsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <aircraft>",
		Short: "List an aircraft's charts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			names, err := s.ListCharts(args[0])
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

func newChartsAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <aircraft> <file>",
		Short: "Copy an image file into the aircraft's charts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AddChart(args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "chart.add", args[0], map[string]any{"file": args[1]})
			return writeOut(cmd, app, map[string]any{"data": args[1]})
		},
	}
}

func newChartsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <aircraft> <old> <new>",
		Short: "Rename a chart",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.RenameChart(args[0], args[1], args[2]); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "chart.rename", args[0], map[string]any{"from": args[1], "to": args[2]})
			return writeOut(cmd, app, map[string]any{"data": args[2]})
		},
	}
}

func newChartsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <aircraft> <name>",
		Short: "Delete a chart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.DeleteChart(args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "chart.delete", args[0], map[string]any{"name": args[1]})
			return writeOut(cmd, app, map[string]any{"data": args[1]})
		},
	}
}

func newChartsClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <aircraft>",
		Short: "Remove every chart of one aircraft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.ClearCharts(args[0]); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent(cmd.Context(), "chart.clear", args[0], nil)
			return writeOut(cmd, app, map[string]any{"data": "ok"})
		},
	}
}
