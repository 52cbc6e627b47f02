package discovery

import (
	"database/sql"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/filter"
)

// Mirrors domain.ShiftContains. HH:mm strings compare lexicographically.
const shiftContainsSQL = "shifts.is_active = true AND (" +
	"(shifts.open_hour <= shifts.close_hour AND @clock >= shifts.open_hour AND @clock < shifts.close_hour) OR " +
	"(shifts.open_hour > shifts.close_hour AND (" +
	"(shifts.open_hour > @clock AND shifts.close_hour > @clock) OR " +
	"(shifts.open_hour < @clock AND shifts.close_hour < @clock))))"

// OperationalStatus keeps the stores that count as open at now, following
// the same rules as domain.Store.IsAvailable.
func OperationalStatus(now domain.Moment, includeClosed, skipShiftCheck bool) filter.Query {
	today := filter.Equal("operational_day", "operational_hours.day_of_week", now.DayOfWeek)
	if includeClosed {
		return filter.AllOf(AliasOperationalStatus, today)
	}

	members := []filter.Query{
		filter.Raw("store_open", "stores.is_store_open = true"),
		today,
		filter.Raw("operational_day_open", "operational_hours.is_open = true"),
	}
	if !skipShiftCheck {
		members = append(members, filter.Bracket("operational_window",
			filter.Raw("operational_shift", shiftContainsSQL, sql.Named("clock", now.Clock)),
			filter.Raw("operational_all_day", "operational_hours.is_open_24h = true"),
		))
	}

	return filter.AllOf(AliasOperationalStatus, members...)
}
