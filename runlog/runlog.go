// Package runlog keeps a persistent history of tour benchmark runs in a
// SQLite database through gorm.
//
// Each Entry records what was solved (point count, source, seed), how
// (strategy) and the outcome (tour length, construction time). The CLI
// appends one Entry per run and can print the most recent ones.
package runlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/katalvlaran/nntour/tsp"
)

// ErrNilLedger is returned by every method called on a nil *Ledger.
var ErrNilLedger = errors.New("runlog: nil ledger")

// Entry is one benchmark run.
type Entry struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	Strategy  string    `gorm:"size:32;index"`
	Points    int       `gorm:"index"`
	Source    string    `gorm:"size:512"`
	Seed      int64
	StartID   string `gorm:"size:255"`
	Length    float64
	ElapsedNS int64
}

// TableName pins the table name independently of gorm's naming strategy.
func (Entry) TableName() string { return "runs" }

// Elapsed returns the construction time as a time.Duration.
func (e Entry) Elapsed() time.Duration { return time.Duration(e.ElapsedNS) }

// NewEntry describes res as a ledger entry.
func NewEntry(res tsp.Result, points int, source string, seed int64) Entry {
	e := Entry{
		Strategy:  res.Strategy.String(),
		Points:    points,
		Source:    source,
		Seed:      seed,
		Length:    res.Length,
		ElapsedNS: int64(res.Elapsed),
	}
	if len(res.Tour.Points) > 0 {
		e.StartID = res.Tour.Points[0].ID
	}

	return e
}

// Ledger is a run history backed by gorm. It is safe for concurrent use.
type Ledger struct {
	db  *gorm.DB
	log *slog.Logger
}

// Open opens (creating if needed) the SQLite database at path and migrates
// the runs table. A nil log disables logging.
func Open(path string, log *slog.Logger) (*Ledger, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("runlog: open %s: %w", path, err)
	}

	return New(db, log)
}

// New wraps an existing gorm connection and migrates the runs table.
func New(db *gorm.DB, log *slog.Logger) (*Ledger, error) {
	if db == nil {
		return nil, ErrNilLedger
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("runlog: migrate: %w", err)
	}
	if log == nil {
		log = slog.New(discard{})
	}

	return &Ledger{db: db, log: log}, nil
}

// Record inserts e and returns it with ID and CreatedAt filled in.
func (l *Ledger) Record(ctx context.Context, e Entry) (Entry, error) {
	if l == nil {
		return Entry{}, ErrNilLedger
	}
	e.ID = 0
	if err := l.db.WithContext(ctx).Create(&e).Error; err != nil {
		return Entry{}, fmt.Errorf("runlog: record: %w", err)
	}
	l.log.Debug("run recorded",
		"id", e.ID, "strategy", e.Strategy, "points", e.Points,
		"length", e.Length, "elapsed", e.Elapsed())

	return e, nil
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if l == nil {
		return nil, ErrNilLedger
	}
	q := l.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []Entry
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("runlog: recent: %w", err)
	}

	return out, nil
}

// Best returns the fastest run for the given point count and strategy.
// found is false when no such run exists.
func (l *Ledger) Best(ctx context.Context, points int, strategy tsp.Strategy) (e Entry, found bool, err error) {
	if l == nil {
		return Entry{}, false, ErrNilLedger
	}
	res := l.db.WithContext(ctx).
		Where("points = ? AND strategy = ?", points, strategy.String()).
		Order("elapsed_ns ASC, id ASC").
		Limit(1).
		Find(&e)
	if res.Error != nil {
		return Entry{}, false, fmt.Errorf("runlog: best: %w", res.Error)
	}

	return e, res.RowsAffected > 0, nil
}

// Close releases the underlying database handle.
func (l *Ledger) Close() error {
	if l == nil {
		return ErrNilLedger
	}
	sqlDB, err := l.db.DB()
	if err != nil {
		return fmt.Errorf("runlog: close: %w", err)
	}

	return sqlDB.Close()
}

// discard is a slog.Handler that drops every record.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
