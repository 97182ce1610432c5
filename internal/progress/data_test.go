package progress

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := Data{
		DifficultWordIDs: []string{"w1", "w2"},
		SessionHistory: []SessionRecord{
			{Date: time.Date(2026, 1, 2, 3, 4, 5, 6000000, time.UTC), Score: 4, TotalQuestions: 5},
		},
		WordProgress: map[string]WordProgress{
			"w1": {WordID: "w1", CorrectCount: 2, LastPracticed: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		},
	}

	raw, err := Encode(d)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestEncode_UsesStoredFieldNames(t *testing.T) {
	raw, err := Encode(Default())
	require.NoError(t, err)
	assert.Equal(t, `{"difficultWordIds":[],"sessionHistory":[],"wordProgress":{}}`, raw)

	d := Default()
	d.WordProgress["w"] = WordProgress{WordID: "w", CorrectCount: 1, LastPracticed: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	raw, err = Encode(d)
	require.NoError(t, err)
	assert.True(t, strings.Contains(raw, `"lastPracticed":"2026-01-01T00:00:00Z"`), raw)
	assert.True(t, strings.Contains(raw, `"correctCount":1`), raw)
}

func TestDecode_MissingCollectionsDefault(t *testing.T) {
	got, err := Decode(`{"difficultWordIds":["a"]}`)
	require.NoError(t, err)
	assert.NotNil(t, got.WordProgress)
	assert.Empty(t, got.WordProgress)
	assert.NotNil(t, got.SessionHistory)

	got, err = Decode(`{}`)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestDecode_DeduplicatesDifficultIDs(t *testing.T) {
	got, err := Decode(`{"difficultWordIds":["a","b","a"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.DifficultWordIDs)
}

func TestDecode_JavaScriptTimestamps(t *testing.T) {
	got, err := Decode(`{"sessionHistory":[{"date":"2024-05-06T07:08:09.123Z","score":1,"totalQuestions":2}]}`)
	require.NoError(t, err)
	require.Len(t, got.SessionHistory, 1)
	assert.Equal(t, time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.UTC), got.SessionHistory[0].Date)
}

func TestDecode_Invalid(t *testing.T) {
	got, err := Decode("garbage")
	assert.Error(t, err)
	assert.Equal(t, Default(), got)
}

func TestSessionRecordPercent(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{5, 5, 100},
		{4, 5, 80},
		{2, 3, 67},
		{1, 3, 33},
		{1, 8, 13}, // 12.5 rounds up
		{0, 5, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		r := SessionRecord{Score: tt.score, TotalQuestions: tt.total}
		assert.Equal(t, tt.want, r.Percent(), "%d/%d", tt.score, tt.total)
	}
}
