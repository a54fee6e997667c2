package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-console/internal/models"
)

const dateLayout = "2006-01-02"

// LunchSlot is reserved and never shows an appointment.
const LunchSlot = "12:00"

var slots = []string{"09:00", "10:00", "11:00", LunchSlot, "14:00", "15:00", "16:00", "17:00", "18:00"}

type View string

const (
	ViewWeek View = "week"
	ViewDay  View = "day"
)

// Shift moves the reference date one page back (dir < 0) or forward.
func Shift(ref time.Time, view View, dir int) time.Time {
	step := 1
	if view == ViewWeek {
		step = 7
	}
	if dir < 0 {
		step = -step
	}
	return ref.AddDate(0, 0, step)
}

// ===============================
// Grid types
// ===============================

type Cell struct {
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	Appointment *models.Appointment `json:"appointment,omitempty"`
}

type Row struct {
	Time  string `json:"time"`
	Lunch bool   `json:"lunch"`
	Cells []Cell `json:"cells,omitempty"`
}

type Column struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Day     string `json:"day"`
	Today   bool   `json:"today"`
}

type WeekGrid struct {
	Start      string   `json:"start"`
	MonthLabel string   `json:"monthLabel"`
	Prev       string   `json:"prev"`
	Next       string   `json:"next"`
	Days       []Column `json:"days"`
	Rows       []Row    `json:"rows"`
}

type DayGrid struct {
	Date       string `json:"date"`
	Label      string `json:"label"`
	MonthLabel string `json:"monthLabel"`
	Today      bool   `json:"today"`
	Prev       string `json:"prev"`
	Next       string `json:"next"`
	Rows       []Row  `json:"rows"`
}

// ===============================
// Builders
// ===============================

// BuildWeek lays appointments on the Monday to Friday grid around ref. When
// two appointments share a slot the later one in the list is shown.
func BuildWeek(ref time.Time, today string, appointments []models.Appointment) WeekGrid {
	bySlot := make(map[string]models.Appointment, len(appointments))
	for _, ap := range appointments {
		bySlot[ap.Date+"_"+ap.Time] = ap
	}

	days := WeekDays(ref)
	grid := WeekGrid{
		Start:      days[0].Format(dateLayout),
		MonthLabel: MonthLabel(days[0]),
		Prev:       Shift(ref, ViewWeek, -1).Format(dateLayout),
		Next:       Shift(ref, ViewWeek, 1).Format(dateLayout),
	}

	for _, d := range days {
		date := d.Format(dateLayout)
		grid.Days = append(grid.Days, Column{
			Date:    date,
			Weekday: ShortWeekday(d),
			Day:     d.Format("02"),
			Today:   date == today,
		})
	}

	for _, slot := range slots {
		row := Row{Time: slot, Lunch: slot == LunchSlot}
		if !row.Lunch {
			for _, col := range grid.Days {
				cell := Cell{Date: col.Date, Time: slot}
				if ap, ok := bySlot[col.Date+"_"+slot]; ok {
					cell.Appointment = &ap
				}
				row.Cells = append(row.Cells, cell)
			}
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// BuildDay lays ref's appointments on the slot list; the first appointment
// matching a slot wins.
func BuildDay(ref time.Time, today string, appointments []models.Appointment) DayGrid {
	day := Midnight(ref)
	date := day.Format(dateLayout)

	grid := DayGrid{
		Date:       date,
		Label:      DayLabel(day),
		MonthLabel: MonthLabel(WeekStart(day)),
		Today:      date == today,
		Prev:       Shift(day, ViewDay, -1).Format(dateLayout),
		Next:       Shift(day, ViewDay, 1).Format(dateLayout),
	}

	var ofDay []models.Appointment
	for _, ap := range appointments {
		if ap.Date == date {
			ofDay = append(ofDay, ap)
		}
	}

	for _, slot := range slots {
		row := Row{Time: slot, Lunch: slot == LunchSlot}
		if !row.Lunch {
			cell := Cell{Date: date, Time: slot}
			for _, ap := range ofDay {
				if ap.Time == slot {
					cell.Appointment = &ap
					break
				}
			}
			row.Cells = []Cell{cell}
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}
