package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
)

// ErrNotFound is returned by Get when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// Log is a thread-safe append-only log of HealthRecords in submission order.
type Log struct {
	mu      sync.RWMutex
	records []types.HealthRecord
	loc     *time.Location
	now     func() time.Time // injectable for deterministic tests
	newID   func() string
}

// New creates an empty Log that stamps records in loc. A nil loc means the
// process local zone.
func New(loc *time.Location) *Log {
	if loc == nil {
		loc = time.Local
	}
	return &Log{
		loc:   loc,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Record builds the HealthRecord for a scored reading, stamped with the
// current date and time in the log's location.
func (l *Log) Record(r types.Reading, a types.Assessment) types.HealthRecord {
	rec := vitals.NewRecord(r, a, l.now().In(l.loc))
	rec.ID = l.newID()
	return rec
}

// Append adds rec to the end of the log.
func (l *Log) Append(rec types.HealthRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
}

// All returns a copy of every record in submission order.
func (l *Log) All() []types.HealthRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]types.HealthRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records appended so far.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Last returns the most recent record and false when the log is empty.
func (l *Log) Last() (types.HealthRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.records) == 0 {
		return types.HealthRecord{}, false
	}
	return l.records[len(l.records)-1], true
}

// Get returns the record with the given ID.
func (l *Log) Get(id string) (types.HealthRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, rec := range l.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return types.HealthRecord{}, ErrNotFound
}

// DailyCounts groups the log by exact Date string and counts records per
// date. Dates are returned in ascending order.
func (l *Log) DailyCounts() []types.DailyCount {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return dailyCounts(l.records)
}

// Snapshot returns the full session view at the current time. Records and
// daily counts are read under one lock, so the counts always sum to the
// number of records.
func (l *Log) Snapshot() types.Snapshot {
	l.mu.RLock()
	records := make([]types.HealthRecord, len(l.records))
	copy(records, l.records)
	daily := dailyCounts(l.records)
	l.mu.RUnlock()

	return types.Snapshot{
		Records:     records,
		Daily:       daily,
		GeneratedAt: l.now().UTC().Format(time.RFC3339),
	}
}

func dailyCounts(records []types.HealthRecord) []types.DailyCount {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Date]++
	}
	out := make([]types.DailyCount, 0, len(counts))
	for date, n := range counts {
		out = append(out, types.DailyCount{Date: date, TotalTests: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
