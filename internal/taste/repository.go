// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package taste

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/models"
)

// ErrProfileNotFound is returned when no profile is stored for a listener.
var ErrProfileNotFound = errors.New("taste profile not found")

// Repository persists store snapshots per listener.
type Repository interface {
	Load(ctx context.Context, listenerID string) (Snapshot, error)
	Save(ctx context.Context, listenerID string, snap Snapshot) error
	Delete(ctx context.Context, listenerID string) error
	Listeners(ctx context.Context) ([]string, error)
	Close() error
}

const (
	profilePrefix = "profile:"
	historyPrefix = "history:"
	tracksPrefix  = "tracks:"
)

// BadgerRepository stores snapshots in BadgerDB as three JSON values per
// listener: profile:<id>, history:<id> and tracks:<id>.
type BadgerRepository struct {
	db *badger.DB
}

var _ Repository = (*BadgerRepository)(nil)

// OpenBadger opens (or creates) the profile database.
//
//nolint:gocritic // StorageConfig is read once at startup
func OpenBadger(cfg config.StorageConfig) (*BadgerRepository, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Profile store opened")
	return &BadgerRepository{db: db}, nil
}

// Load reads a listener's snapshot. Missing history or tracks are treated
// as empty; a missing profile is ErrProfileNotFound.
func (r *BadgerRepository) Load(ctx context.Context, listenerID string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	err := r.db.View(func(txn *badger.Txn) error {
		if err := readJSON(txn, profilePrefix+listenerID, &snap.Profile); err != nil {
			return err
		}
		if err := readJSON(txn, historyPrefix+listenerID, &snap.History); err != nil && !errors.Is(err, ErrProfileNotFound) {
			return err
		}
		if err := readJSON(txn, tracksPrefix+listenerID, &snap.Tracks); err != nil && !errors.Is(err, ErrProfileNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("load profile %s: %w", listenerID, err)
	}
	return snap, nil
}

// Save writes a listener's snapshot in a single transaction.
//
//nolint:gocritic // Snapshot is serialized as-is
func (r *BadgerRepository) Save(ctx context.Context, listenerID string, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	history := snap.History
	if history == nil {
		history = []models.InteractionEvent{}
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		if err := writeJSON(txn, profilePrefix+listenerID, snap.Profile); err != nil {
			return err
		}
		if err := writeJSON(txn, historyPrefix+listenerID, history); err != nil {
			return err
		}
		return writeJSON(txn, tracksPrefix+listenerID, snap.Tracks)
	})
	if err != nil {
		return fmt.Errorf("save profile %s: %w", listenerID, err)
	}
	return nil
}

// Delete removes every key of a listener.
func (r *BadgerRepository) Delete(ctx context.Context, listenerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		for _, prefix := range []string{profilePrefix, historyPrefix, tracksPrefix} {
			if err := txn.Delete([]byte(prefix + listenerID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", listenerID, err)
	}
	return nil
}

// Listeners returns the ids of every stored profile, in key order.
func (r *BadgerRepository) Listeners(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(profilePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			ids = append(ids, strings.TrimPrefix(string(it.Item().Key()), profilePrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return ids, nil
}

// CollectGarbage runs one BadgerDB value log GC pass. It reports whether a
// log file was rewritten; in-memory databases never rewrite.
func (r *BadgerRepository) CollectGarbage() (bool, error) {
	err := r.db.RunValueLogGC(0.5)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
		return false, nil
	default:
		return false, fmt.Errorf("value log gc: %w", err)
	}
}

// Close closes the database.
func (r *BadgerRepository) Close() error {
	return r.db.Close()
}

func readJSON(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, out); err != nil {
			return fmt.Errorf("unmarshal %s: %w", key, err)
		}
		return nil
	})
}

func writeJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}
