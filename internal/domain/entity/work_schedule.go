package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinisalud/portal-backend/pkg/calendar"
)

// WorkScheduleEntry is one recurring weekly availability window of a
// specialist. Weekday is stored as ISO 1=Monday..7=Sunday; a specialist
// may hold several entries for the same weekday. Maintained by clinic
// staff tooling, read-only here.
type WorkScheduleEntry struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SpecialistID uuid.UUID `gorm:"type:uuid;not null;index" json:"specialist_id"`
	Weekday      int       `gorm:"not null" json:"weekday"`
	StartTime    string    `gorm:"type:time;not null" json:"start_time"`
	EndTime      string    `gorm:"type:time;not null" json:"end_time"`

	// Relationships
	Specialist Specialist `gorm:"foreignKey:SpecialistID" json:"specialist,omitempty"`
}

func (WorkScheduleEntry) TableName() string {
	return "work_schedule"
}

// GoWeekday converts the stored ISO weekday number.
func (e *WorkScheduleEntry) GoWeekday() (time.Weekday, error) {
	return calendar.WeekdayFromISO(e.Weekday)
}

// MatchesDate reports whether the entry's weekday is the date's weekday.
// Entries with a corrupt stored weekday match nothing.
func (e *WorkScheduleEntry) MatchesDate(date time.Time) bool {
	d, err := e.GoWeekday()
	if err != nil {
		return false
	}
	return d == date.Weekday()
}
