package trading

import (
	"sort"

	"github.com/saltroad/tradewinds/internal/domain/catalog"
	"github.com/saltroad/tradewinds/internal/domain/market"
	"github.com/saltroad/tradewinds/pkg/utils"
)

// Route search defaults.
const (
	// DefaultMaxRoutes is the result cap when the caller passes none.
	DefaultMaxRoutes = 5

	// routeCargoSample is the per-good quantity assumed when estimating a
	// route's profit (capped by the source city's stock).
	routeCargoSample = 10
)

// MarketView exposes read access to the current market entries. The engine
// facade implements it; the analyzer never mutates what it reads.
type MarketView interface {
	Entry(locationID, goodID int) (*market.Entry, bool)
}

// RouteSuggestion is an ephemeral query result: a destination city and the
// estimated profit of hauling goods there from the source. Recomputed on
// demand, never stored.
type RouteSuggestion struct {
	DestinationID  int
	ExpectedProfit float64
}

// RouteProfitAnalyzer ranks destination cities by the profit of buying at a
// source city and selling there, using the latest market snapshot.
type RouteProfitAnalyzer struct {
	goods     catalog.GoodCatalog
	locations catalog.LocationCatalog
	view      MarketView
}

// NewRouteProfitAnalyzer creates an analyzer over the given catalogs and
// market view.
func NewRouteProfitAnalyzer(goods catalog.GoodCatalog, locations catalog.LocationCatalog, view MarketView) *RouteProfitAnalyzer {
	return &RouteProfitAnalyzer{
		goods:     goods,
		locations: locations,
		view:      view,
	}
}

// FindProfitableRoutes estimates, for every other known city, the profit of
// buying each good tradable at the source and selling it there. Only goods
// the destination also trades contribute; per good the haul is capped at
// min(source stock, routeCargoSample) units. Destinations with non-positive
// totals are excluded. Results are sorted by descending profit with ties
// broken by ascending destination id, truncated to maxResults
// (DefaultMaxRoutes when non-positive).
func (a *RouteProfitAnalyzer) FindProfitableRoutes(sourceID int, maxResults int) []RouteSuggestion {
	if maxResults <= 0 {
		maxResults = DefaultMaxRoutes
	}

	source, err := a.locations.GetLocation(sourceID)
	if err != nil {
		return nil
	}

	suggestions := make([]RouteSuggestion, 0)
	for _, dest := range a.locations.ListLocations() {
		if dest.ID() == sourceID {
			continue
		}

		total := 0.0
		for _, goodID := range source.AvailableGoods() {
			good, err := a.goods.GetGood(goodID)
			if err != nil {
				continue
			}
			srcEntry, ok := a.view.Entry(sourceID, goodID)
			if !ok || srcEntry.CurrentStock() == 0 {
				continue
			}
			destEntry, ok := a.view.Entry(dest.ID(), goodID)
			if !ok {
				continue
			}

			buyPrice := float64(good.BasePrice()) * srcEntry.PriceFactor()
			sellPrice := float64(good.BasePrice()) * destEntry.PriceFactor()
			profitPerUnit := sellPrice - buyPrice
			if profitPerUnit <= 0 {
				continue
			}

			haul := utils.Min(srcEntry.CurrentStock(), routeCargoSample)
			total += profitPerUnit * float64(haul)
		}

		if total > 0 {
			suggestions = append(suggestions, RouteSuggestion{
				DestinationID:  dest.ID(),
				ExpectedProfit: total,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].ExpectedProfit != suggestions[j].ExpectedProfit {
			return suggestions[i].ExpectedProfit > suggestions[j].ExpectedProfit
		}
		return suggestions[i].DestinationID < suggestions[j].DestinationID
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}
	return suggestions
}
