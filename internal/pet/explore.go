package pet

import "time"

// LocationID identifies an exploring destination.
type LocationID uint8

const (
	LocationPark LocationID = iota
	LocationForest
	LocationCave
	LocationMountain

	locationCount
)

// Location is the static data of a destination.
type Location struct {
	ID         LocationID
	Name       string
	Length     time.Duration
	CheckEvery time.Duration
	Difficulty float32 // the skill roll must beat a difficulty roll scaled by this
	Reward     Money
	Find       ItemKind
	MinStage   LifeStage
}

var locations = [locationCount]Location{
	{ID: LocationPark, Name: "Park", Length: 10 * time.Minute, CheckEvery: time.Minute, Difficulty: 0.2, Reward: 15, Find: ItemApple, MinStage: Baby},
	{ID: LocationForest, Name: "Forest", Length: 30 * time.Minute, CheckEvery: 2 * time.Minute, Difficulty: 0.4, Reward: 40, Find: ItemPlant, MinStage: Child},
	{ID: LocationCave, Name: "Cave", Length: time.Hour, CheckEvery: 5 * time.Minute, Difficulty: 0.6, Reward: 90, Find: ItemMedicine, MinStage: Adult},
	{ID: LocationMountain, Name: "Mountain", Length: 3 * time.Hour, CheckEvery: 10 * time.Minute, Difficulty: 0.8, Reward: 250, Find: ItemHeater, MinStage: Adult},
}

// Locations returns every destination.
func Locations() []Location {
	return locations[:]
}

// LookupLocation returns the destination for id.
func LookupLocation(id LocationID) *Location {
	if id >= locationCount {
		return &locations[LocationPark]
	}
	return &locations[id]
}

// Explore is the state of an outing.
type Explore struct {
	Active     bool
	Location   LocationID
	Elapsed    time.Duration
	SinceCheck time.Duration
	Checks     uint16
	Passes     uint16
	Last       ExploreResult
}

// ExploreResult is the outcome of a finished outing.
type ExploreResult struct {
	Location LocationID
	Checks   uint16
	Passes   uint16
	Money    Money
	Found    ItemKind
	Unseen   bool // not yet shown to the player
}

// Start begins an outing, resetting all progress.
func (e *Explore) Start(id LocationID) {
	last := e.Last
	*e = Explore{Active: true, Location: id, Last: last}
}

// Cancel abandons the outing without reward.
func (e *Explore) Cancel() {
	e.Active = false
}

// Progress is the completed fraction of the current outing.
func (e *Explore) Progress() float32 {
	loc := LookupLocation(e.Location)
	if loc.Length <= 0 {
		return 1
	}
	return min(float32(e.Elapsed)/float32(loc.Length), 1)
}

// Finish closes the outing and computes the reward.
func (e *Explore) Finish() ExploreResult {
	loc := LookupLocation(e.Location)
	res := ExploreResult{
		Location: e.Location,
		Checks:   e.Checks,
		Passes:   e.Passes,
		Unseen:   true,
	}
	if e.Checks > 0 {
		res.Money = loc.Reward * Money(e.Passes) / Money(e.Checks)
		if e.Passes*2 >= e.Checks {
			res.Found = loc.Find
		}
	}
	e.Active = false
	e.Last = res
	return res
}
