/* models_test.go
 * Contains unit tests for models.go
 * Authors: owl-scraper contributors
 */

package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRecordValues_NullsAreEmpty(t *testing.T) {
	record := MatchRecord{ID: "10223", Season: "2019", Stage: "1", Status: "PENDING"}

	values := record.Values()

	assert.Len(t, values, len(MatchFields))
	for _, field := range MatchFields {
		assert.Contains(t, values, field)
	}
	assert.Equal(t, "", values["host"])
	assert.Equal(t, "", values["start_timestamp"])
	assert.Equal(t, "PENDING", values["status"])
}

func TestMatchRecordValues_Timestamp(t *testing.T) {
	ts := int64(1549580400000)
	record := MatchRecord{ID: "1", StartTimestamp: &ts}

	assert.Equal(t, "1549580400000", record.Values()["start_timestamp"])
}

func TestVideoRecordValues(t *testing.T) {
	record := VideoRecord{Title: "Full Match | SHD vs DAL", ID: "v1", URL: "https://www.twitch.tv/videos/1"}

	values := record.Values()

	assert.Equal(t, map[string]string{"title": "Full Match | SHD vs DAL", "id": "v1", "url": "https://www.twitch.tv/videos/1"}, values)
}

func TestJoinAndSplitPair(t *testing.T) {
	composite := JoinPair("SHD", "DAL")
	first, second, err := SplitPair(composite)

	require.NoError(t, err)
	assert.Equal(t, "SHD,DAL", composite)
	assert.Equal(t, "SHD", first)
	assert.Equal(t, "DAL", second)
}

func TestSplitPair_WrongCount(t *testing.T) {
	_, _, err := SplitPair("1,2,3")

	assert.Error(t, err)
}
