package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocketpet/internal/game"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/save"
	"github.com/vovakirdan/pocketpet/internal/storage"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// Store is the part of storage.Store the shells need.
type Store interface {
	GetSave(slot string) ([]byte, error)
	PutSave(slot string, version int, data []byte) error
	RecordReplay(r storage.ReplayRecord) (int64, error)
}

// OpenGame restores slot and catches it up to now. A missing slot starts a
// blank pet, and so does one that cannot be read or decoded, after a
// warning. The replay is recorded when the store accepts it.
func OpenGame(store Store, slot string, now timestamp.Timestamp, logger *log.Logger, opts ...game.Option) *game.Game {
	data, err := store.GetSave(slot)
	switch {
	case errors.Is(err, storage.ErrNoSave):
		logger.Info("starting a new pet", "slot", slot)
		return game.Blank(&now, opts...)
	case err != nil:
		logger.Warn("could not read save, starting a new pet", "slot", slot, "error", err)
		return game.Blank(&now, opts...)
	}

	snap, err := save.Decode(data)
	if err != nil {
		logger.Warn("save is unreadable, starting a new pet", "slot", slot, "error", err)
		return game.Blank(&now, opts...)
	}

	g := game.New(now, opts...)
	rep := g.LoadSave(now, snap)
	fields := []any{
		"slot", slot,
		"pet", g.Context().Pet.Name,
		"away", rep.Elapsed,
		"simulated", rep.Simulated,
		"steps", rep.Steps,
	}
	if rep.Capped {
		fields = append(fields, "capped", true)
	}
	if rep.Death != pet.DeathNone {
		fields = append(fields, "died", rep.Death)
	}
	if rep.Rewound {
		logger.Warn("clock is earlier than the save, nothing replayed", "slot", slot, "saved", snap.Timestamp, "now", now)
	}
	logger.Info("caught up", fields...)

	record := storage.ReplayRecord{
		Slot:      slot,
		Elapsed:   rep.Elapsed,
		Simulated: rep.Simulated,
		Steps:     rep.Steps,
		Capped:    rep.Capped,
	}
	if rep.Death != pet.DeathNone {
		record.Death = rep.Death.String()
	}
	if _, err := store.RecordReplay(record); err != nil {
		logger.Warn("could not record catch-up", "slot", slot, "error", err)
	}
	return g
}

// SaveGame writes g to slot. It reports false without touching the store
// when the game has nothing worth saving yet.
func SaveGame(store Store, slot string, g *game.Game) (bool, error) {
	snap, ok := g.GetSave(g.Time())
	if !ok {
		return false, nil
	}
	data, err := save.Encode(snap)
	if err != nil {
		return false, fmt.Errorf("encode slot %s: %w", slot, err)
	}
	if err := store.PutSave(slot, int(save.Version), data); err != nil {
		return false, err
	}
	return true, nil
}
