// Package calendarx provides small calendar helpers shared by the planner's
// read side. All computations are pure and locale-independent apart from the
// location carried by the input time.
package calendarx

import "time"

// WeekWindow returns the Monday-Sunday week containing ref. The start is
// 00:00:00 on the Monday of ref's ISO week, the end is the start of the
// Sunday six days later, both in ref's location.
func WeekWindow(ref time.Time) (start, end time.Time) {
	day := startOfDay(ref)

	// time.Weekday puts Sunday at 0; ISO weeks start on Monday.
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// NextDay returns 00:00:00 of the day after t. Useful as the exclusive upper
// bound when filtering timestamps against a WeekWindow end.
func NextDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
