package ctftime

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Layouts accepted for CTFTime timestamps. The API usually sends an offset
// but older records omit it.
var timeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
}

// EpochUTC converts an ISO-8601 timestamp to epoch seconds, reinterpreting
// the wall-clock fields as UTC even when the value carries its own offset.
// This matches the bot's historical behavior and is pinned by tests; do not
// "fix" it without confirming how announcement times are meant to shift.
func EpochUTC(ts string) (int64, error) {
	var parsed time.Time
	var err error
	for _, layout := range timeLayouts {
		parsed, err = time.Parse(layout, ts)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, goerr.Wrap(err, "failed to parse timestamp", goerr.V("timestamp", ts))
	}

	utc := time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(), time.UTC)
	return utc.Unix(), nil
}

// FormatTimeRange renders a start/finish pair as Discord absolute-time
// tokens joined by a hyphen, e.g. "<t:1704067200:F>-<t:1704153600:F>".
// Discord clients render the tokens in each viewer's local timezone.
func FormatTimeRange(start, finish string) (string, error) {
	startEpoch, err := EpochUTC(start)
	if err != nil {
		return "", goerr.Wrap(err, "invalid start time")
	}
	finishEpoch, err := EpochUTC(finish)
	if err != nil {
		return "", goerr.Wrap(err, "invalid finish time")
	}
	return fmt.Sprintf("<t:%d:F>-<t:%d:F>", startEpoch, finishEpoch), nil
}
