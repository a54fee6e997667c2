package report

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/models"
	"github.com/BruksfildServices01/barber-console/internal/schedule"
)

const dateLayout = "2006-01-02"

var weekdayBuckets = [...]string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

// Stats totals the given transactions. Average is zero when there are none.
func Stats(txs []models.Transaction) models.DailyStats {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Value)
	}

	st := models.DailyStats{
		TotalRevenue:      total,
		ServicesCompleted: len(txs),
		AverageTicket:     decimal.Zero,
	}
	if len(txs) > 0 {
		st.AverageTicket = total.DivRound(decimal.NewFromInt(int64(len(txs))), 2)
	}
	return st
}

// StatsFor totals the transactions dated date.
func StatsFor(txs []models.Transaction, date string) models.DailyStats {
	var ofDay []models.Transaction
	for _, tx := range txs {
		if tx.Date == date {
			ofDay = append(ofDay, tx)
		}
	}
	return Stats(ofDay)
}

type WeekdayRevenue struct {
	Day     string          `json:"day"`
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Weekly sums revenue per weekday, Monday to Sunday, for the week holding ref.
func Weekly(txs []models.Transaction, ref time.Time) []WeekdayRevenue {
	start := schedule.WeekStart(ref)

	out := make([]WeekdayRevenue, len(weekdayBuckets))
	index := make(map[string]int, len(out))
	for i, name := range weekdayBuckets {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		out[i] = WeekdayRevenue{Day: name, Date: date, Revenue: decimal.Zero}
		index[date] = i
	}

	for _, tx := range txs {
		if i, ok := index[tx.Date]; ok {
			out[i].Revenue = out[i].Revenue.Add(tx.Value)
		}
	}
	return out
}

// TodayQueue lists the day's appointments with arrived clients first, then
// confirmed, then attended; ties go by time.
func TodayQueue(appts []models.Appointment, today string) []models.Appointment {
	var out []models.Appointment
	for _, ap := range appts {
		if ap.Date == today {
			out = append(out, ap)
		}
	}

	slices.SortStableFunc(out, func(a, b models.Appointment) int {
		return cmp.Or(
			cmp.Compare(domain.QueueOrder(domain.Status(a.Status)), domain.QueueOrder(domain.Status(b.Status))),
			strings.Compare(a.Time, b.Time),
		)
	})
	return out
}

// Row is a transaction as the report table shows it.
type Row struct {
	models.Transaction
	Methods     []string `json:"methods"`
	DisplayDate string   `json:"displayDate"`
}

func Rows(txs []models.Transaction) []Row {
	out := make([]Row, 0, len(txs))
	for _, tx := range txs {
		out = append(out, Row{
			Transaction: tx,
			Methods:     strings.Split(tx.PaymentMethod, ", "),
			DisplayDate: DisplayDate(tx.Date),
		})
	}
	return out
}

// DisplayDate renders YYYY-MM-DD as DD/MM/YYYY and returns anything else as is.
func DisplayDate(raw string) string {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006")
}
