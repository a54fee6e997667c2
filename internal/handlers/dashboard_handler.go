package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-console/internal/httpresp"
	"github.com/BruksfildServices01/barber-console/internal/models"
	"github.com/BruksfildServices01/barber-console/internal/report"
	"github.com/BruksfildServices01/barber-console/internal/store"
	"github.com/BruksfildServices01/barber-console/internal/summary"
	"github.com/BruksfildServices01/barber-console/internal/timezone"
)

type DashboardHandler struct {
	transactions *store.TransactionStore
	appointments *store.AppointmentStore
	summarizer   *summary.Summarizer
	clock        timezone.Clock
}

func NewDashboardHandler(
	transactions *store.TransactionStore,
	appointments *store.AppointmentStore,
	summarizer *summary.Summarizer,
	clock timezone.Clock,
) *DashboardHandler {
	return &DashboardHandler{
		transactions: transactions,
		appointments: appointments,
		summarizer:   summarizer,
		clock:        clock,
	}
}

type DashboardResponse struct {
	Date  string               `json:"date"`
	Stats models.DailyStats    `json:"stats"`
	Queue []models.Appointment `json:"queue"`
}

func (h *DashboardHandler) Get(c *gin.Context) {
	today := h.clock.Today()

	queue := report.TodayQueue(h.appointments.List(), today)
	if queue == nil {
		queue = []models.Appointment{}
	}

	httpresp.OK(c, DashboardResponse{
		Date:  today,
		Stats: report.StatsFor(h.transactions.List(), today),
		Queue: queue,
	})
}

// Summary asks for the day's natural-language summary. It always answers
// 200; failures come back as the fallback text.
func (h *DashboardHandler) Summary(c *gin.Context) {
	stats := report.StatsFor(h.transactions.List(), h.clock.Today())

	httpresp.OK(c, gin.H{
		"summary": h.summarizer.Summarize(c.Request.Context(), stats),
	})
}
