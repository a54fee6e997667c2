package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/httpresp"
	"github.com/BruksfildServices01/barber-console/internal/schedule"
	"github.com/BruksfildServices01/barber-console/internal/store"
	"github.com/BruksfildServices01/barber-console/internal/timezone"
)

type ScheduleHandler struct {
	appointments *store.AppointmentStore
	clock        timezone.Clock
}

func NewScheduleHandler(appointments *store.AppointmentStore, clock timezone.Clock) *ScheduleHandler {
	return &ScheduleHandler{appointments: appointments, clock: clock}
}

func (h *ScheduleHandler) Week(c *gin.Context) {
	ref, ok := referenceDate(c, h.clock)
	if !ok {
		return
	}
	httpresp.OK(c, schedule.BuildWeek(ref, h.clock.Today(), h.appointments.List()))
}

func (h *ScheduleHandler) Day(c *gin.Context) {
	ref, ok := referenceDate(c, h.clock)
	if !ok {
		return
	}
	httpresp.OK(c, schedule.BuildDay(ref, h.clock.Today(), h.appointments.List()))
}

// referenceDate reads ?date=YYYY-MM-DD, defaulting to today in the shop
// timezone.
func referenceDate(c *gin.Context, clock timezone.Clock) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return clock(), true
	}

	t, err := clock.ParseDate(raw)
	if err != nil {
		httperr.Business(c, "invalid_date")
		return time.Time{}, false
	}
	return t, true
}
