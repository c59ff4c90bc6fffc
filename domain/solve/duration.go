package solve

import (
	"strconv"
	"strings"

	"solvestats/domain/core"
)

// ParseDuration converts a raw csTimer time string to seconds.
//
// Two formats are recognized: "ss.ff" (no colon, parsed directly as a
// float) and "mm:ss.ff" (minutes and seconds split on the colon). Only the
// last two colon-delimited segments are used, so an "hh:" prefix is
// ignored rather than rejected.
func ParseDuration(raw string) (float64, error) {
	segments := strings.Split(strings.TrimSpace(raw), ":")

	seconds, err := strconv.ParseFloat(segments[len(segments)-1], 64)
	if err != nil {
		return 0, core.NewMalformedTimeError(raw, err)
	}
	if len(segments) == 1 {
		return seconds, nil
	}

	minutes, err := strconv.ParseFloat(segments[len(segments)-2], 64)
	if err != nil {
		return 0, core.NewMalformedTimeError(raw, err)
	}
	return minutes*60 + seconds, nil
}
