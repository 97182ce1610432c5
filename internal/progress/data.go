package progress

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
)

// StorageKey is the fixed key the practice record is stored under.
const StorageKey = "pronunciation_practice_data"

// SessionRecord is one completed practice session.
type SessionRecord struct {
	Date           time.Time `json:"date"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
}

// Percent returns the score as a whole percentage, rounded half away
// from zero. A zero-question record scores 0.
func (r SessionRecord) Percent() int {
	if r.TotalQuestions <= 0 {
		return 0
	}
	return (r.Score*200 + r.TotalQuestions) / (r.TotalQuestions * 2)
}

// WordProgress counts correct answers for one word.
type WordProgress struct {
	WordID        string    `json:"wordId"`
	CorrectCount  int       `json:"correctCount"`
	LastPracticed time.Time `json:"lastPracticed"`
}

// Data is the durable root record.
type Data struct {
	DifficultWordIDs []string                `json:"difficultWordIds"`
	SessionHistory   []SessionRecord         `json:"sessionHistory"`
	WordProgress     map[string]WordProgress `json:"wordProgress"`
}

// Default returns the empty record.
func Default() Data {
	return Data{
		DifficultWordIDs: []string{},
		SessionHistory:   []SessionRecord{},
		WordProgress:     map[string]WordProgress{},
	}
}

// normalize fills absent collections so older records (which had no
// wordProgress) read as empty, and drops duplicate difficult ids.
func (d *Data) normalize() {
	if d.DifficultWordIDs == nil {
		d.DifficultWordIDs = []string{}
	}
	d.DifficultWordIDs = lo.Uniq(d.DifficultWordIDs)
	if d.SessionHistory == nil {
		d.SessionHistory = []SessionRecord{}
	}
	if d.WordProgress == nil {
		d.WordProgress = map[string]WordProgress{}
	}
}

// markDifficult, unmarkDifficult and clearDifficult edit the difficult set
// and report whether anything changed.
func (d *Data) markDifficult(id string) bool {
	if lo.Contains(d.DifficultWordIDs, id) {
		return false
	}
	d.DifficultWordIDs = append(d.DifficultWordIDs, id)
	return true
}

func (d *Data) unmarkDifficult(id string) bool {
	if !lo.Contains(d.DifficultWordIDs, id) {
		return false
	}
	d.DifficultWordIDs = lo.Without(d.DifficultWordIDs, id)
	return true
}

func (d *Data) clearDifficult() bool {
	d.DifficultWordIDs = []string{}
	return true
}

// clone returns a deep copy so callers never alias the store's state.
func (d Data) clone() Data {
	out := Data{
		DifficultWordIDs: append([]string{}, d.DifficultWordIDs...),
		SessionHistory:   append([]SessionRecord{}, d.SessionHistory...),
		WordProgress:     make(map[string]WordProgress, len(d.WordProgress)),
	}
	for k, v := range d.WordProgress {
		out.WordProgress[k] = v
	}
	return out
}

// Decode parses a stored record.
func Decode(raw string) (Data, error) {
	var d Data
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Default(), fmt.Errorf("decode practice data: %w", err)
	}
	d.normalize()
	return d, nil
}

// Encode serializes a record in the stored layout.
func Encode(d Data) (string, error) {
	d.normalize()
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode practice data: %w", err)
	}
	return string(b), nil
}
