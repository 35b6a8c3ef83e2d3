package gamectx

import (
	"bytes"
	"testing"
	"time"

	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

var start = timestamp.MustNew(2025, time.January, 1, 0, 0, 0, 0)

func TestNewSeedsFromTimestamp(t *testing.T) {
	a, b := New(start), New(start)
	if !bytes.Equal(a.RNG.State(), b.RNG.State()) {
		t.Error("contexts built from the same timestamp should share RNG state")
	}
	if a.Pet.Name != b.Pet.Name || a.Pet.UPID != b.Pet.UPID {
		t.Error("starter pet should be deterministic")
	}

	c := New(start.Add(time.Nanosecond))
	if bytes.Equal(a.RNG.State(), c.RNG.State()) {
		t.Error("different timestamps should seed differently")
	}
}

func TestPoops(t *testing.T) {
	c := New(start)

	for i := range pet.MaxPoops {
		if !c.AddPoop(start) {
			t.Fatalf("AddPoop() #%d failed", i)
		}
	}
	if c.AddPoop(start) {
		t.Error("AddPoop() should fail on a full floor")
	}
	if c.PoopCount() != pet.MaxPoops {
		t.Errorf("PoopCount() = %d", c.PoopCount())
	}
	if n := c.ClearPoops(); n != pet.MaxPoops || c.PoopCount() != 0 {
		t.Errorf("ClearPoops() = %d, count after = %d", n, c.PoopCount())
	}
}

func TestReplaceAndArchive(t *testing.T) {
	c := New(start)
	c.AddPoop(start)
	c.Suitor.Present = true
	c.Explore.Start(pet.LocationPark)
	old := c.Pet

	c.ArchivePet(pet.DeathStarvation, start.Add(48*time.Hour))
	c.ReplacePet(pet.New(pet.Sprout, 99, "Lu", start))

	if c.Pet.UPID != 99 || c.PoopCount() != 0 || c.Suitor.Present || c.Explore.Active {
		t.Error("ReplacePet() should start from a clean slate")
	}

	recs := c.Records.List()
	if len(recs) != 1 || recs[0].UPID != old.UPID || recs[0].Cause != pet.DeathStarvation {
		t.Fatalf("Records = %+v", recs)
	}
	if recs[0].Died != (timestamp.Date{Year: 2025, Month: time.January, Day: 3}) {
		t.Errorf("Died = %v", recs[0].Died)
	}
}

func TestArchiveOnce(t *testing.T) {
	c := New(start)
	c.ArchivePet(pet.DeathOldAge, start)
	c.ArchivePet(pet.DeathOldAge, start)
	if c.Records.Total != 1 {
		t.Errorf("Total = %d, expected the same pet archived once", c.Records.Total)
	}
}

func TestWarm(t *testing.T) {
	c := New(start)
	c.Temperature = 5
	if c.Warm(10) {
		t.Error("5 degrees should be cold")
	}
	c.Layout.Slots[1] = pet.ItemHeater
	if !c.Warm(10) {
		t.Error("a heater should keep the pet warm")
	}
}
