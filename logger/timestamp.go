package logger

import (
	"fmt"
	"strconv"
	"time"
)

// timeNow is the clock read on every log call; tests pin it.
var timeNow = time.Now

// FormatTimestamp renders t as "[YYYY-MM-DD] [HH:MM:SS]".
// TimezoneUTC reads the UTC fields of t; TimezoneLocal reads the host's local ones.
func FormatTimestamp(t time.Time, tz Timezone) string {
	if tz == TimezoneLocal {
		t = t.Local()
	} else {
		t = t.UTC()
	}
	return fmt.Sprintf("[%d-%s-%s] [%s:%s:%s]",
		t.Year(),
		Pad(int(t.Month())),
		Pad(t.Day()),
		Pad(t.Hour()),
		Pad(t.Minute()),
		Pad(t.Second()),
	)
}

// Pad renders n in decimal with a leading zero when it is a single character.
func Pad(n int) string {
	return PadString(strconv.Itoa(n))
}

// PadString left-pads s with one "0" if it is exactly one byte long.
func PadString(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
