package event

import (
	"fmt"
	"math/rand"

	"github.com/saltroad/tradewinds/internal/domain/catalog"
)

// Scheduler defaults.
const (
	DefaultMaxActive   = 10
	DefaultSpawnChance = 0.10
)

// Sampling bounds for spawned events.
const (
	minAffectedRegions = 1
	maxAffectedRegions = 3
	minAffectedGoods   = 1
	maxAffectedGoods   = 5
)

// blueprint fixes the duration and price modifier for one event kind.
// Harvest and Discovery carry an alternate modifier chosen 50/50 at spawn.
type blueprint struct {
	modifier    float64
	altModifier float64
	duration    int64
	describe    func(region string) string
}

var blueprints = map[Type]blueprint{
	TypeStorm: {
		modifier: 1.2, duration: 7,
		describe: func(region string) string { return fmt.Sprintf("Storms batter the shipping lanes of %s", region) },
	},
	TypeConflict: {
		modifier: 1.5, duration: 14,
		describe: func(region string) string { return fmt.Sprintf("Armed conflict disrupts trade across %s", region) },
	},
	TypeHarvest: {
		modifier: 0.8, altModifier: 1.3, duration: 30,
		describe: func(region string) string { return fmt.Sprintf("Harvest season changes supply in %s", region) },
	},
	TypeFestival: {
		modifier: 1.1, duration: 10,
		describe: func(region string) string { return fmt.Sprintf("A festival draws crowds and coin to %s", region) },
	},
	TypeDiscovery: {
		modifier: 0.9, altModifier: 1.15, duration: 60,
		describe: func(region string) string { return fmt.Sprintf("A discovery reshapes the markets of %s", region) },
	},
}

// Scheduler owns the active trade event set. Each tick it expires events
// whose time has passed, then may spawn one new event. Expiry always runs
// before spawning so a freshly spawned event can never be culled in the same
// tick.
type Scheduler struct {
	goods       catalog.GoodCatalog
	locations   catalog.LocationCatalog
	rng         *rand.Rand
	maxActive   int
	spawnChance float64
	active      []*TradeEvent
}

// NewScheduler creates a scheduler with the given capacity and per-tick spawn
// chance. Zero maxActive or spawnChance fall back to the defaults; a negative
// spawnChance disables spontaneous spawning (injected events still expire).
func NewScheduler(goods catalog.GoodCatalog, locations catalog.LocationCatalog, rng *rand.Rand, maxActive int, spawnChance float64) *Scheduler {
	if maxActive <= 0 {
		maxActive = DefaultMaxActive
	}
	if spawnChance == 0 || spawnChance > 1 {
		spawnChance = DefaultSpawnChance
	}
	if spawnChance < 0 {
		spawnChance = 0
	}
	return &Scheduler{
		goods:       goods,
		locations:   locations,
		rng:         rng,
		maxActive:   maxActive,
		spawnChance: spawnChance,
	}
}

// Active returns a copy of the active event set.
func (s *Scheduler) Active() []*TradeEvent {
	out := make([]*TradeEvent, len(s.active))
	copy(out, s.active)
	return out
}

// Tick advances the scheduler to the given day: expired events are removed,
// then with spawnChance probability one new event is created if the active
// set is below capacity. Returns the expired events and the spawned event
// (nil if none).
func (s *Scheduler) Tick(day int64) (expired []*TradeEvent, spawned *TradeEvent) {
	kept := s.active[:0]
	for _, ev := range s.active {
		if ev.ExpiredBy(day) {
			expired = append(expired, ev)
			continue
		}
		kept = append(kept, ev)
	}
	s.active = kept

	if len(s.active) < s.maxActive && s.rng.Float64() < s.spawnChance {
		spawned = s.spawn(day)
		if spawned != nil {
			s.active = append(s.active, spawned)
		}
	}
	return expired, spawned
}

// Inject adds an externally built event to the active set. Used by save-game
// restore and by deterministic test setups.
func (s *Scheduler) Inject(ev *TradeEvent) {
	s.active = append(s.active, ev)
}

// Reset drops all active events.
func (s *Scheduler) Reset() {
	s.active = nil
}

func (s *Scheduler) spawn(day int64) *TradeEvent {
	kind := Type(s.rng.Intn(typeCount))
	bp := blueprints[kind]

	modifier := bp.modifier
	if bp.altModifier != 0 && s.rng.Float64() < 0.5 {
		modifier = bp.altModifier
	}

	regions := s.sampleRegions()
	goods := s.sampleGoods()
	if len(regions) == 0 || len(goods) == 0 {
		return nil
	}

	ev, err := NewTradeEvent(kind, bp.describe(regions[0]), regions, goods, modifier, bp.duration, day)
	if err != nil {
		return nil
	}
	return ev
}

// sampleRegions picks 1-3 distinct regions without replacement.
func (s *Scheduler) sampleRegions() []string {
	all := s.locations.Regions()
	if len(all) == 0 {
		return nil
	}
	count := minAffectedRegions + s.rng.Intn(maxAffectedRegions-minAffectedRegions+1)
	if count > len(all) {
		count = len(all)
	}
	picked := make([]string, len(all))
	copy(picked, all)
	s.rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked[:count]
}

// sampleGoods picks 1-5 distinct good ids without replacement.
func (s *Scheduler) sampleGoods() []int {
	all := s.goods.ListGoods()
	if len(all) == 0 {
		return nil
	}
	count := minAffectedGoods + s.rng.Intn(maxAffectedGoods-minAffectedGoods+1)
	if count > len(all) {
		count = len(all)
	}
	ids := make([]int, len(all))
	for i, g := range all {
		ids[i] = g.ID()
	}
	s.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return ids[:count]
}
