package domain

// ShiftContains reports whether clock ("HH:mm") falls within the shift.
//
// A regular shift (open <= close) is open on [open, close). A shift whose
// open hour is after its close hour wraps past midnight and is open when the
// clock is before both hours or after both hours. Both boundary minutes of a
// wrapping shift count as closed.
func ShiftContains(openHour, closeHour, clock string) bool {
	if openHour <= closeHour {
		return clock >= openHour && clock < closeHour
	}
	return (openHour > clock && closeHour > clock) || (openHour < clock && closeHour < clock)
}

// OperationalHourFor returns the schedule row of the given day, or nil.
func (s *Store) OperationalHourFor(dayOfWeek int) *OperationalHour {
	for _, oh := range s.OperationalHours {
		if oh != nil && oh.DayOfWeek == dayOfWeek {
			return oh
		}
	}
	return nil
}

// AvailabilityQuery carries the inputs of an operational status check.
type AvailabilityQuery struct {
	DayOfWeek           int
	Clock               string
	IncludeClosedStores bool
	// SkipShiftCheck folds any store with a matching schedule row in,
	// regardless of the clock.
	SkipShiftCheck bool
}

// IsAvailable classifies the store as open or closed for discovery.
// A store without a schedule row for the day is never available.
func (s *Store) IsAvailable(q AvailabilityQuery) bool {
	oh := s.OperationalHourFor(q.DayOfWeek)
	if oh == nil {
		return false
	}
	if q.IncludeClosedStores {
		return true
	}
	if !s.IsStoreOpen || !oh.IsOpen {
		return false
	}
	if q.SkipShiftCheck || oh.IsOpen24h {
		return true
	}
	for _, shift := range oh.Shifts {
		if shift == nil || !shift.IsActive {
			continue
		}
		if ShiftContains(shift.OpenHour, shift.CloseHour, q.Clock) {
			return true
		}
	}
	return false
}
