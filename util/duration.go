package util

import "strconv"

// TimeToEnglish converts an elapsed time in whole seconds into a phrase like
// "2 days 3 hours 1 minute 5 seconds". Units with a zero count are omitted,
// except that the seconds component is always emitted when no larger unit
// is, so TimeToEnglish(0) == "0 seconds". Day, hour, and minute phrases
// carry a trailing space; the seconds phrase does not.
func TimeToEnglish(secs uint64) string {
	days := secs / 86400
	hours := secs % 86400 / 3600
	minutes := secs % 3600 / 60
	seconds := secs % 60

	var out string
	if days > 0 {
		out += unitPhrase(days, "day") + " "
	}
	if hours > 0 {
		out += unitPhrase(hours, "hour") + " "
	}
	if minutes > 0 {
		out += unitPhrase(minutes, "minute") + " "
	}
	if seconds > 0 || out == "" {
		out += unitPhrase(seconds, "second")
	}
	return out
}

// unitPhrase renders "1 day" / "2 days", singular exactly at 1.
func unitPhrase(n uint64, unit string) string {
	s := strconv.FormatUint(n, 10) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
