/* csv_test.go
 * Contains unit tests for csv.go functions
 * Authors: owl-scraper contributors
 */

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"owl-scraper/api/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatches() []shared.MatchRecord {
	ts := int64(1549580400000)
	return []shared.MatchRecord{
		{
			ID:             "21211",
			Season:         "2019",
			Stage:          "1",
			PageName:       shared.StrPtr("Week 1"),
			VenueName:      shared.StrPtr("Blizzard Arena"),
			StartTimestamp: &ts,
			Date:           shared.StrPtr("02/07/2019"),
			Time:           shared.StrPtr("15:00"),
			Status:         "CONCLUDED",
			Teams:          shared.StrPtr("SFS,LAV"),
			Scores:         shared.StrPtr("3,1"),
		},
		{
			ID:     "21212",
			Season: "2019",
			Stage:  "1",
			Status: "PENDING",
		},
	}
}

func expectedRows(records []shared.MatchRecord) []map[string]string {
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Values())
	}
	return rows
}

// region Append tests

func TestAppend_RoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "2019.csv")
	records := sampleMatches()

	require.NoError(t, Append(filename, shared.MatchFields, records))
	rows, err := Read(filename)

	require.NoError(t, err)
	if diff := cmp.Diff(expectedRows(records), rows); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "", rows[1]["teams"])
	assert.Equal(t, "", rows[1]["start_timestamp"])
}

func TestAppend_HeaderWrittenOnce(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "2019.csv")
	records := sampleMatches()

	require.NoError(t, Append(filename, shared.MatchFields, records[:1]))
	require.NoError(t, Append(filename, shared.MatchFields, records[1:]))

	rows, err := Read(filename)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "21211", rows[0]["id"])
	assert.Equal(t, "21212", rows[1]["id"])
}

// Appending the same records again duplicates them. Nothing dedupes rows across runs
func TestAppend_RerunDuplicatesRows(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "2019.csv")
	records := sampleMatches()

	require.NoError(t, Append(filename, shared.MatchFields, records))
	require.NoError(t, Append(filename, shared.MatchFields, records))

	rows, err := Read(filename)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, rows[0], rows[2])
	assert.Equal(t, rows[1], rows[3])
}

func TestAppend_EmptyRowsStillCreatesHeader(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, Append(filename, shared.MatchFields, []shared.MatchRecord{}))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "id,season,stage,page_name,host,venue_name,venue_address,venue_link,start_timestamp,date,time,status,teams,scores\n", string(content))
}

func TestAppend_MissingDirectory(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing", "2019.csv")

	err := Append(filename, shared.MatchFields, sampleMatches())

	assert.Error(t, err)
}

// endregion

// region Overwrite tests

func TestOverwrite_ReplacesFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "vods.csv")
	first := []shared.VideoRecord{{Title: "Full Match | A vs B", ID: "1", URL: "https://www.twitch.tv/videos/1"}}
	second := []shared.VideoRecord{{Title: "Full Match | C vs D", ID: "2", URL: "https://www.twitch.tv/videos/2"}}

	require.NoError(t, Overwrite(filename, shared.VideoFields, first))
	require.NoError(t, Overwrite(filename, shared.VideoFields, second))

	rows, err := Read(filename)
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"title": "Full Match | C vs D", "id": "2", "url": "https://www.twitch.tv/videos/2"}}, rows)
}

func TestOverwrite_QuotesCommas(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "vods.csv")
	videos := []shared.VideoRecord{{Title: "Full Match | Stage 1, Week 2", ID: "1", URL: "u"}}

	require.NoError(t, Overwrite(filename, shared.VideoFields, videos))

	rows, err := Read(filename)
	require.NoError(t, err)
	assert.Equal(t, "Full Match | Stage 1, Week 2", rows[0]["title"])
}

// endregion

// region Read tests

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))

	assert.Error(t, err)
}

func TestRead_EmptyFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(filename, nil, 0644))

	rows, err := Read(filename)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

// endregion

// region closeFile tests

func TestCloseFile_ReportsCloseError(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "2019.csv"))
	require.NoError(t, err)
	require.NoError(t, file.Close())

	var result error
	closeFile(file, &result)

	assert.True(t, errors.Is(result, os.ErrClosed))
}

func TestCloseFile_KeepsEarlierError(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "2019.csv"))
	require.NoError(t, err)
	require.NoError(t, file.Close())

	earlier := errors.New("error writing row")
	result := earlier
	closeFile(file, &result)

	assert.Equal(t, earlier, result)
}

func TestOverwrite_FullDevice(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	err := Overwrite("/dev/full", shared.MatchFields, sampleMatches())

	assert.Error(t, err)
}

// endregion
