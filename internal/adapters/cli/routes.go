package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRoutesCommand creates the routes command
func NewRoutesCommand() *cobra.Command {
	var fromID, maxResults int

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Rank destination cities by estimated trade profit",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			suggestions := s.engine.FindProfitableRoutes(fromID, maxResults)
			if len(suggestions) == 0 {
				fmt.Println("No profitable routes from this city right now.")
				return nil
			}

			fmt.Printf("%-12s %-12s\n", "DESTINATION", "EST. PROFIT")
			for _, rs := range suggestions {
				fmt.Printf("%-12d %-12.0f\n", rs.DestinationID, rs.ExpectedProfit)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fromID, "from", 0, "Source city id")
	cmd.Flags().IntVar(&maxResults, "max", 0, "Maximum results (default 5)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
