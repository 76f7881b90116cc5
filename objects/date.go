package objects

import "time"

// Display renders a Date the same way CatTime.toMeow does: an ISO-like
// "YYYY-MM-DD HH:MM:SS" in the host's local time zone.
func (d *Date) Display() string {
	return time.UnixMilli(d.Millis).Local().Format("2006-01-02 15:04:05")
}
