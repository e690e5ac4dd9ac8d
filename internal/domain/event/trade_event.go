package event

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Type identifies one of the closed set of trade event kinds. The numeric
// values are part of the save schema and must not be reordered.
type Type int

const (
	TypeStorm Type = iota
	TypeConflict
	TypeHarvest
	TypeFestival
	TypeDiscovery
)

// typeCount is the number of event kinds the scheduler can spawn.
const typeCount = 5

func (t Type) String() string {
	switch t {
	case TypeStorm:
		return "STORM"
	case TypeConflict:
		return "CONFLICT"
	case TypeHarvest:
		return "HARVEST"
	case TypeFestival:
		return "FESTIVAL"
	case TypeDiscovery:
		return "DISCOVERY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// IsValid reports whether t is one of the known event kinds.
func (t Type) IsValid() bool {
	return t >= TypeStorm && t < typeCount
}

// TradeEvent is a time-bounded modifier affecting prices and stock in a set
// of regions and goods. An empty region set means the event is global; an
// empty good set means it affects all goods. Events are immutable once
// spawned; the scheduler removes them when the clock passes their expiry day.
type TradeEvent struct {
	id            string
	eventType     Type
	description   string
	regions       map[string]bool
	goods         map[int]bool
	priceModifier float64
	duration      int64
	expiryDay     int64
}

// NewTradeEvent creates an event spawned on spawnDay with validation.
func NewTradeEvent(
	eventType Type,
	description string,
	regions []string,
	goods []int,
	priceModifier float64,
	duration int64,
	spawnDay int64,
) (*TradeEvent, error) {
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %d", int(eventType))
	}
	if priceModifier <= 0 {
		return nil, errors.New("price modifier must be positive")
	}
	if duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	regionSet := make(map[string]bool, len(regions))
	for _, r := range regions {
		regionSet[r] = true
	}
	goodSet := make(map[int]bool, len(goods))
	for _, g := range goods {
		goodSet[g] = true
	}

	return &TradeEvent{
		id:            uuid.New().String(),
		eventType:     eventType,
		description:   description,
		regions:       regionSet,
		goods:         goodSet,
		priceModifier: priceModifier,
		duration:      duration,
		expiryDay:     spawnDay + duration,
	}, nil
}

// RestoreTradeEvent reconstructs an event from persisted state. The expiry
// day is taken as-is rather than derived from a spawn day.
func RestoreTradeEvent(
	eventType Type,
	description string,
	regions []string,
	goods []int,
	priceModifier float64,
	duration int64,
	expiryDay int64,
) (*TradeEvent, error) {
	ev, err := NewTradeEvent(eventType, description, regions, goods, priceModifier, duration, 0)
	if err != nil {
		return nil, err
	}
	ev.expiryDay = expiryDay
	return ev, nil
}

func (e *TradeEvent) ID() string {
	return e.id
}

func (e *TradeEvent) EventType() Type {
	return e.eventType
}

func (e *TradeEvent) Description() string {
	return e.description
}

func (e *TradeEvent) PriceModifier() float64 {
	return e.priceModifier
}

func (e *TradeEvent) Duration() int64 {
	return e.duration
}

func (e *TradeEvent) ExpiryDay() int64 {
	return e.expiryDay
}

// AffectedRegions returns the region names in ascending order (empty = global).
func (e *TradeEvent) AffectedRegions() []string {
	out := make([]string, 0, len(e.regions))
	for r := range e.regions {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// AffectedGoods returns the good ids in ascending order (empty = all goods).
func (e *TradeEvent) AffectedGoods() []int {
	out := make([]int, 0, len(e.goods))
	for g := range e.goods {
		out = append(out, g)
	}
	sort.Ints(out)
	return out
}

// Affects reports whether the event touches the given region and good.
func (e *TradeEvent) Affects(region string, goodID int) bool {
	if len(e.regions) > 0 && !e.regions[region] {
		return false
	}
	if len(e.goods) > 0 && !e.goods[goodID] {
		return false
	}
	return true
}

// ExpiredBy reports whether the event is past its expiry on the given day.
func (e *TradeEvent) ExpiredBy(day int64) bool {
	return day > e.expiryDay
}

func (e *TradeEvent) String() string {
	return fmt.Sprintf("TradeEvent[%s, x%.2f, expires day %d]", e.eventType, e.priceModifier, e.expiryDay)
}
