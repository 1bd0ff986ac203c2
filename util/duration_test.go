package util

import "testing"

func TestTimeToEnglish(t *testing.T) {
	tests := []struct {
		name string
		secs uint64
		want string
	}{
		{"zero", 0, "0 seconds"},
		{"one second", 1, "1 second"},
		{"under a minute", 59, "59 seconds"},
		{"exact minute keeps trailing space", 60, "1 minute "},
		{"minute and second", 61, "1 minute 1 second"},
		{"two minutes", 120, "2 minutes "},
		{"exact hour", 3600, "1 hour "},
		{"hour minute second", 3661, "1 hour 1 minute 1 second"},
		{"two hours plural", 7322, "2 hours 2 minutes 2 seconds"},
		{"exact day", 86400, "1 day "},
		{"day hour minute second", 90061, "1 day 1 hour 1 minute 1 second"},
		{"two days", 172800, "2 days "},
		{"skips zero middle units", 86401, "1 day 1 second"},
		{"days and minutes only", 86460, "1 day 1 minute "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeToEnglish(tt.secs); got != tt.want {
				t.Errorf("TimeToEnglish(%d) = %q, want %q", tt.secs, got, tt.want)
			}
		})
	}
}
