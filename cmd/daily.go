package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/game"
)

func dailyCommand(a *app) *cobra.Command {
	var (
		mode        string
		generations int
		date        string
	)
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Print the answer for a day and the day before",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := game.ParseMode(mode)
			if err != nil {
				return err
			}
			if generations == 0 {
				generations = a.cfg.DefaultGenerations
			}
			if err := a.svc.ValidateGenerations(generations); err != nil {
				return err
			}
			loc, err := a.cfg.Location()
			if err != nil {
				return err
			}
			day := daily.NewCalendar(nil, loc).Today()
			if date != "" {
				if day, err = time.ParseInLocation("2006-01-02", date, loc); err != nil {
					return fmt.Errorf("--date: %w", err)
				}
			}

			salt := a.svc.DailySalt(m)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s gen 1-%d: %s\n", daily.DateKey(day), m, generations,
				a.svc.SelectDailyName(day, salt, generations))
			fmt.Fprintf(out, "%s %s gen 1-%d: %s (yesterday)\n", daily.DateKey(daily.PreviousDay(day)), m, generations,
				a.svc.SelectPreviousDayName(day, salt, generations))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "classic", "classic or silhouette")
	cmd.Flags().IntVar(&generations, "generations", 0, "generation pool (default from DEFAULT_GENERATIONS)")
	cmd.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD (default today)")
	return cmd
}
