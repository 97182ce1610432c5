package progress

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/sabdam/internal/logging"
	"github.com/abhisek/sabdam/internal/store"
)

// Store owns the practice record. Every operation is a read-modify-write
// cycle against a single key; cycles are serialized by mu so overlapping
// callers never drop each other's updates.
//
// The session-facing mutators are forgiving: an unreadable record reads as
// empty and a failed write is logged and swallowed. MarkDifficult,
// UnmarkDifficult, ClearDifficult, Replace and Reset return storage
// failures instead, for callers that report success to the user.
type Store struct {
	kv  store.KV
	log logrus.FieldLogger
	now func() time.Time

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a progress store over kv.
func NewStore(kv store.KV, log logrus.FieldLogger, opts ...Option) *Store {
	if log == nil {
		log = logging.Discard()
	}
	s := &Store{
		kv:  kv,
		log: log.WithField("component", "progress"),
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// load fetches and decodes the record. A missing or corrupt record reads
// as the empty one so the next write can replace it; storage failures are
// returned. Caller must hold mu.
func (s *Store) load(ctx context.Context) (Data, error) {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return Data{}, fmt.Errorf("read practice data: %w", err)
	}
	if !ok {
		return Default(), nil
	}
	d, err := Decode(raw)
	if err != nil {
		s.log.WithError(err).WithField("key", StorageKey).Warn("corrupt practice data; using empty record")
		return Default(), nil
	}
	return d, nil
}

// read is load with storage failures downgraded to the empty record.
// Caller must hold mu.
func (s *Store) read(ctx context.Context) Data {
	d, err := s.load(ctx)
	if err != nil {
		s.log.WithError(err).WithField("key", StorageKey).Warn("using empty practice record")
		return Default()
	}
	return d
}

// write persists the record. Caller must hold mu.
func (s *Store) write(ctx context.Context, d Data) error {
	raw, err := Encode(d)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save practice data: %w", err)
	}
	return nil
}

// update runs fn inside one serialized read-modify-write cycle and writes
// the record back when fn reports a change. A failed read aborts the
// cycle before anything is written.
func (s *Store) update(ctx context.Context, fn func(d *Data) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !fn(&d) {
		return nil
	}
	return s.write(ctx, d)
}

// apply is the forgiving form of update used while a session is running:
// an unreadable record is treated as empty and a failed write is logged.
func (s *Store) apply(ctx context.Context, op string, fn func(d *Data) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.read(ctx)
	if !fn(&d) {
		return
	}
	if err := s.write(ctx, d); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"key": StorageKey,
			"op":  op,
		}).Warn("practice data not saved")
	}
}

func (s *Store) snapshot(ctx context.Context) Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

// Load returns a copy of the whole record.
func (s *Store) Load(ctx context.Context) Data {
	return s.snapshot(ctx).clone()
}

// GetDifficultWords returns the difficult-word ids, sorted.
func (s *Store) GetDifficultWords(ctx context.Context) []string {
	ids := append([]string{}, s.snapshot(ctx).DifficultWordIDs...)
	sort.Strings(ids)
	return ids
}

// AddDifficultWord inserts id into the difficult set. Idempotent.
func (s *Store) AddDifficultWord(ctx context.Context, id string) {
	s.apply(ctx, "add_difficult", func(d *Data) bool { return d.markDifficult(id) })
}

// RemoveDifficultWord removes id from the difficult set. Idempotent.
func (s *Store) RemoveDifficultWord(ctx context.Context, id string) {
	s.apply(ctx, "remove_difficult", func(d *Data) bool { return d.unmarkDifficult(id) })
}

// ClearDifficultWords empties the difficult set.
func (s *Store) ClearDifficultWords(ctx context.Context) {
	s.apply(ctx, "clear_difficult", (*Data).clearDifficult)
}

// MarkDifficult is AddDifficultWord for callers that must know whether
// the change reached storage.
func (s *Store) MarkDifficult(ctx context.Context, id string) error {
	return s.update(ctx, func(d *Data) bool { return d.markDifficult(id) })
}

// UnmarkDifficult is RemoveDifficultWord with storage failures returned.
func (s *Store) UnmarkDifficult(ctx context.Context, id string) error {
	return s.update(ctx, func(d *Data) bool { return d.unmarkDifficult(id) })
}

// ClearDifficult is ClearDifficultWords with storage failures returned.
func (s *Store) ClearDifficult(ctx context.Context) error {
	return s.update(ctx, (*Data).clearDifficult)
}

// SaveSessionResult appends a history entry stamped with the current time.
func (s *Store) SaveSessionResult(ctx context.Context, score, total int) {
	s.apply(ctx, "save_session", func(d *Data) bool {
		d.SessionHistory = append(d.SessionHistory, SessionRecord{
			Date:           s.now().UTC(),
			Score:          score,
			TotalQuestions: total,
		})
		return true
	})
}

// GetSessionHistory returns completed sessions, oldest first.
func (s *Store) GetSessionHistory(ctx context.Context) []SessionRecord {
	return append([]SessionRecord{}, s.snapshot(ctx).SessionHistory...)
}

// GetWordProgress returns a copy of the per-word counters.
func (s *Store) GetWordProgress(ctx context.Context) map[string]WordProgress {
	return s.snapshot(ctx).clone().WordProgress
}

// IncrementWordProgress records one more correct answer for wordID,
// creating its counter on first use.
func (s *Store) IncrementWordProgress(ctx context.Context, wordID string) {
	s.apply(ctx, "increment_word", func(d *Data) bool {
		wp := d.WordProgress[wordID]
		wp.WordID = wordID
		wp.CorrectCount++
		wp.LastPracticed = s.now().UTC()
		d.WordProgress[wordID] = wp
		return true
	})
}

// Replace overwrites the whole record, e.g. when importing a backup. The
// current record is not read, so Replace also recovers from a record the
// storage layer can no longer return.
func (s *Store) Replace(ctx context.Context, d Data) error {
	d = d.clone()
	d.normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, d)
}

// Reset discards all learner data.
func (s *Store) Reset(ctx context.Context) error {
	return s.Replace(ctx, Default())
}
