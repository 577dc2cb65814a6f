package transcript

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp converts a cue timestamp (HH:MM:SS.mmm or MM:SS.mmm) to
// a duration. A comma is accepted as the millisecond separator.
func ParseTimestamp(ts string) (time.Duration, error) {
	ts = strings.Replace(strings.TrimSpace(ts), ",", ".", 1)
	parts := strings.Split(ts, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("parse timestamp %q: want HH:MM:SS.mmm", ts)
	}

	var hours, minutes int
	var err error
	if len(parts) == 3 {
		if hours, err = strconv.Atoi(parts[0]); err != nil {
			return 0, fmt.Errorf("parse timestamp %q hours: %w", ts, err)
		}
		parts = parts[1:]
	}
	if minutes, err = strconv.Atoi(parts[0]); err != nil {
		return 0, fmt.Errorf("parse timestamp %q minutes: %w", ts, err)
	}

	secParts := strings.SplitN(parts[1], ".", 2)
	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q seconds: %w", ts, err)
	}
	millis := 0
	if len(secParts) == 2 {
		frac := secParts[1]
		if len(frac) > 3 {
			frac = frac[:3]
		}
		for len(frac) < 3 {
			frac += "0"
		}
		if millis, err = strconv.Atoi(frac); err != nil {
			return 0, fmt.Errorf("parse timestamp %q millis: %w", ts, err)
		}
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}
