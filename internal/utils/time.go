package utils

import (
	"time"
)

// ShowTimeLayout is the display format for show start times.
const ShowTimeLayout = "2006-01-02 15:04:05"

// FormatShowTime renders a start time for listing and detail pages.
func FormatShowTime(t time.Time) string {
	return t.Format(ShowTimeLayout)
}
