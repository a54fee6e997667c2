package schedule

import (
	"fmt"
	"time"
)

// pt-BR calendar names, as the console prints them.
var (
	monthNames = [...]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
	weekdayNames = [...]string{
		"domingo", "segunda-feira", "terça-feira", "quarta-feira",
		"quinta-feira", "sexta-feira", "sábado",
	}
	weekdayShort = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}
)

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of t's week. Sunday belongs to the week that
// started six days earlier.
func WeekStart(t time.Time) time.Time {
	day := Midnight(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}

// WeekDays returns Monday through Friday of t's week.
func WeekDays(t time.Time) []time.Time {
	start := WeekStart(t)
	days := make([]time.Time, 5)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthLabel renders "Outubro de 2026".
func MonthLabel(t time.Time) string {
	name := monthNames[t.Month()-1]
	return capitalize(name) + fmt.Sprintf(" de %d", t.Year())
}

// ShortWeekday renders "seg", "ter", ...
func ShortWeekday(t time.Time) string {
	return weekdayShort[t.Weekday()]
}

// DayLabel renders "sábado, 17 de outubro".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%s, %02d de %s", weekdayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1])
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
