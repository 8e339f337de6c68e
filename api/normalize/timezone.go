/* timezone.go
 * All dates and times are written in America/Los_Angeles so files from different machines line up
 * Authors: owl-scraper contributors
 */

package normalize

import (
	"time"
	_ "time/tzdata" // zoneinfo for hosts and images that don't ship it
)

// Location is America/Los_Angeles, the zone every date and time column is written in
var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
}

const (
	dateLayout = "01/02/2006"
	timeLayout = "15:04"
)

// splitTimestamp converts an epoch millisecond timestamp into the date and time columns
func splitTimestamp(millis int64) (string, string) {
	t := time.UnixMilli(millis).In(Location)
	return t.Format(dateLayout), t.Format(timeLayout)
}
