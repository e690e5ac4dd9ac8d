package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewMarketCommand creates the market command group
func NewMarketCommand() *cobra.Command {
	marketCmd := &cobra.Command{
		Use:   "market",
		Short: "Inspect city markets, trends and active events",
	}

	marketCmd.AddCommand(newMarketPricesCommand())
	marketCmd.AddCommand(newMarketTrendCommand())
	marketCmd.AddCommand(newMarketEventsCommand())

	return marketCmd
}

func newMarketPricesCommand() *cobra.Command {
	var cityID int

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show current prices and stock for a city",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			prices := s.engine.GetCityPrices(cityID)
			if len(prices) == 0 {
				return fmt.Errorf("unknown city: %d", cityID)
			}

			goodIDs := make([]int, 0, len(prices))
			for id := range prices {
				goodIDs = append(goodIDs, id)
			}
			sort.Ints(goodIDs)

			fmt.Printf("City %d (day %d)\n", cityID, s.engine.CurrentDay())
			fmt.Printf("%-8s %-10s %-8s\n", "GOOD", "PRICE", "STOCK")
			for _, goodID := range goodIDs {
				fmt.Printf("%-8d %-10d %-8d\n", goodID, prices[goodID], s.engine.GetStock(cityID, goodID))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cityID, "city", 0, "City id")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func newMarketTrendCommand() *cobra.Command {
	var cityID, goodID int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the recent price trend for a good at a city",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			history := s.engine.GetPriceHistory(cityID, goodID)
			trend := s.engine.GetPriceTrend(cityID, goodID)

			fmt.Printf("Samples: %v\n", history)
			switch {
			case trend > 0:
				fmt.Printf("Trend: rising (%+.2f/sample)\n", trend)
			case trend < 0:
				fmt.Printf("Trend: falling (%+.2f/sample)\n", trend)
			default:
				fmt.Println("Trend: flat")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cityID, "city", 0, "City id")
	cmd.Flags().IntVar(&goodID, "good", 0, "Good id")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("good")
	return cmd
}

func newMarketEventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List active trade events",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			events := s.engine.GetActiveEvents()
			if len(events) == 0 {
				fmt.Println("No active trade events.")
				return nil
			}

			for _, ev := range events {
				fmt.Printf("%-10s x%.2f until day %-5d %s\n",
					ev.EventType(), ev.PriceModifier(), ev.ExpiryDay(), ev.Description())
			}
			return nil
		},
	}
}
