package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltroad/tradewinds/internal/domain/player"
)

// NewTradeCommand creates the trade command group
func NewTradeCommand() *cobra.Command {
	tradeCmd := &cobra.Command{
		Use:   "trade",
		Short: "Execute buy and sell transactions against a city market",
	}

	tradeCmd.AddCommand(newTradeBuyCommand())
	tradeCmd.AddCommand(newTradeSellCommand())

	return tradeCmd
}

type tradeFlags struct {
	cityID      int
	goodID      int
	quantity    int
	gold        int
	capacity    float64
	negotiation int
	smuggling   int
}

func (f *tradeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.cityID, "city", 0, "City id")
	cmd.Flags().IntVar(&f.goodID, "good", 0, "Good id")
	cmd.Flags().IntVar(&f.quantity, "quantity", 1, "Units to trade")
	cmd.Flags().IntVar(&f.gold, "gold", 1000, "Player gold")
	cmd.Flags().Float64Var(&f.capacity, "capacity", 100, "Player cargo weight capacity")
	cmd.Flags().IntVar(&f.negotiation, "negotiation", 0, "Negotiation skill level")
	cmd.Flags().IntVar(&f.smuggling, "smuggling", 0, "Smuggling skill level")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("good")
}

func (f *tradeFlags) player() (*player.Player, error) {
	return player.NewPlayer(f.gold, f.capacity, player.TradeSkills{
		Negotiation: f.negotiation,
		Smuggling:   f.smuggling,
	})
}

func newTradeBuyCommand() *cobra.Command {
	var flags tradeFlags

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy goods at a city",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			pl, err := flags.player()
			if err != nil {
				return err
			}

			receipt, err := s.engine.BuyGood(pl, flags.cityID, flags.goodID, flags.quantity)
			if err != nil {
				return fmt.Errorf("trade rejected: %w", err)
			}

			fmt.Printf("Bought %d of good %d for %d gold (%.2f/unit), %d gold remaining\n",
				receipt.Quantity, receipt.GoodID, receipt.Total, receipt.UnitPrice, receipt.GoldAfter)
			return s.save()
		},
	}

	flags.register(cmd)
	return cmd
}

func newTradeSellCommand() *cobra.Command {
	var flags tradeFlags

	cmd := &cobra.Command{
		Use:   "sell",
		Short: "Sell goods at a city",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			pl, err := flags.player()
			if err != nil {
				return err
			}

			// The CLI player is ephemeral: stock the hold with the goods it
			// is about to sell so the trade can settle.
			good, errGood := staticGood(flags.goodID)
			if errGood != nil {
				return errGood
			}
			if err := pl.AddCargo(flags.goodID, flags.quantity, good.Weight()); err != nil {
				return err
			}

			receipt, err := s.engine.SellGood(pl, flags.cityID, flags.goodID, flags.quantity)
			if err != nil {
				return fmt.Errorf("trade rejected: %w", err)
			}

			fmt.Printf("Sold %d of good %d for %d gold (%.2f/unit), purse now %d\n",
				receipt.Quantity, receipt.GoodID, receipt.Total, receipt.UnitPrice, receipt.GoldAfter)
			return s.save()
		},
	}

	flags.register(cmd)
	return cmd
}
