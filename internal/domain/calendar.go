package domain

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// BusinessCalendar pins the business timezone and week start. Day-of-week
// numbering follows time.Weekday (Sunday=0).
type BusinessCalendar struct {
	Location  *time.Location
	WeekStart time.Weekday
	Now       func() time.Time
}

func NewBusinessCalendar(offsetHours int, weekStart time.Weekday) *BusinessCalendar {
	return &BusinessCalendar{
		Location:  time.FixedZone("business", offsetHours*60*60),
		WeekStart: weekStart,
		Now:       time.Now,
	}
}

// Moment is a point in time expressed in the business calendar.
type Moment struct {
	DayOfWeek int
	Clock     string
	Today     string
	Tomorrow  string
	WeekStart string
}

func (c *BusinessCalendar) Current() Moment {
	return c.At(c.Now())
}

func (c *BusinessCalendar) At(t time.Time) Moment {
	local := t.In(c.Location)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.Location)
	back := (int(local.Weekday()) - int(c.WeekStart) + 7) % 7

	return Moment{
		DayOfWeek: int(local.Weekday()),
		Clock:     local.Format(ClockLayout),
		Today:     day.Format(DateLayout),
		Tomorrow:  day.AddDate(0, 0, 1).Format(DateLayout),
		WeekStart: day.AddDate(0, 0, -back).Format(DateLayout),
	}
}
