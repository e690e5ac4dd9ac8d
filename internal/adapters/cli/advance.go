package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAdvanceCommand creates the advance command
func NewAdvanceCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance the simulation by a number of days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("days must be positive, got %d", days)
			}

			s, err := openSession()
			if err != nil {
				return err
			}

			s.engine.AdvanceTime(days)
			fmt.Printf("Advanced %d day(s); now day %d with %d active event(s)\n",
				days, s.engine.CurrentDay(), len(s.engine.GetActiveEvents()))
			return s.save()
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "Number of days to advance")
	return cmd
}
