package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goto/timerange/normalize"
)

func TestParser(t *testing.T) {
	parser := normalize.Parser{}

	t.Run("Normalize", func(t *testing.T) {
		t.Run("parses ISO-8601 text with offset", func(t *testing.T) {
			got, err := parser.Normalize("2015-03-22T10:00:00+0900", nil)
			assert.NoError(t, err)
			assert.True(t, got.Equal(time.Date(2015, 3, 22, 10, 0, 0, 0, time.FixedZone("", 9*60*60))))

			_, offset := got.Zone()
			assert.Equal(t, 9*60*60, offset)
		})
		t.Run("parses date only text", func(t *testing.T) {
			got, err := parser.Normalize("2015-03-22", nil)
			assert.NoError(t, err)
			assert.True(t, got.Equal(time.Date(2015, 3, 22, 0, 0, 0, 0, time.UTC)))
		})
		t.Run("parses epoch seconds", func(t *testing.T) {
			got, err := parser.Normalize("1427015400", nil)
			assert.NoError(t, err)
			assert.Equal(t, int64(1427015400), got.Unix())
		})
		t.Run("returns error for text that is not a date-time", func(t *testing.T) {
			_, err := parser.Normalize("invalid time string", nil)
			assert.Error(t, err)
			assert.ErrorContains(t, err, "unable to parse date-time")
		})
	})

	t.Run("Normalize with hint", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)

		t.Run("attaches the hint zone to text without offset", func(t *testing.T) {
			got, err := parser.Normalize("2015-03-22 10:00:00", jst)
			assert.NoError(t, err)
			assert.True(t, got.Equal(time.Date(2015, 3, 22, 10, 0, 0, 0, jst)))
		})
		t.Run("converts text with offset into the hint zone", func(t *testing.T) {
			got, err := parser.Normalize("2015-03-22T01:00:00+0000", jst)
			assert.NoError(t, err)
			assert.Equal(t, jst, got.Location())
			assert.True(t, got.Equal(time.Date(2015, 3, 22, 10, 0, 0, 0, jst)))
		})
	})
}
