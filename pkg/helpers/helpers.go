package helpers

import (
	"time"

	humanize "github.com/dustin/go-humanize"
)

func Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return humanize.Time(t)
}

func CoalesceString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}
