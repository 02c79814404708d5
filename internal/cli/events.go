package cli

import (
	"fdk/internal/model"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the mutation event log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			events, err := s.ReadEvents(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if events == nil {
				events = []model.Event{}
			}
			return writeOut(cmd, app, map[string]any{"data": events})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Max events to return (<= 0 for all)")
	return cmd
}
