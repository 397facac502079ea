package format

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps and the zone-less local times
// WordPress emits in its "date" fields.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func FormatDate(iso string) string {
	return FormatDateAt(iso, time.Now())
}

// FormatDateAt renders iso relative to now in Vietnamese: "Vừa xong",
// "N phút trước", "N giờ trước", "Hôm qua", "N ngày trước", and the long
// date from a week on. Unparseable input is returned unchanged.
func FormatDateAt(iso string, now time.Time) string {
	t, ok := ParseDate(iso)
	if !ok {
		return iso
	}

	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}

	days := int(diff / (24 * time.Hour))

	if days < 1 {
		hours := int(diff / time.Hour)
		if hours < 1 {
			minutes := int(diff / time.Minute)
			if minutes <= 0 {
				return "Vừa xong"
			}

			return fmt.Sprintf("%d phút trước", minutes)
		}

		return fmt.Sprintf("%d giờ trước", hours)
	}

	if days == 1 {
		return "Hôm qua"
	}

	if days < 7 {
		return fmt.Sprintf("%d ngày trước", days)
	}

	return LongDate(t)
}

// LongDate is the vi-VN long form, e.g. "5 tháng 3, 2024".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d tháng %d, %d", t.Day(), int(t.Month()), t.Year())
}
