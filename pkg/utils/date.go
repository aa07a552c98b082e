package utils

import (
	"time"
)

const dateLayout = "2006-01-02"

func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, dateStr)
}

func FormatDate(date time.Time) string {
	return date.Format(dateLayout)
}
