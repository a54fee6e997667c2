package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/httpresp"
	"github.com/BruksfildServices01/barber-console/internal/models"
	"github.com/BruksfildServices01/barber-console/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	appointments *store.AppointmentStore
}

func NewAppointmentHandler(appointments *store.AppointmentStore) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	ClientName string `json:"clientName"`
	Service    string `json:"service"`
	Status     string `json:"status"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	httpresp.List(c, h.appointments.List())
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req models.NewAppointment
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.appointments.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update rewrites the whole appointment. An empty status keeps the current one.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	status := req.Status
	if status == "" {
		if current, found := h.appointments.Get(id); found {
			status = current.Status
		}
	}

	updated, err := h.appointments.Update(c.Request.Context(), models.Appointment{
		ID:         id,
		Date:       req.Date,
		Time:       req.Time,
		ClientName: req.ClientName,
		Service:    req.Service,
		Status:     status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.appointments.SetStatus(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, updated)
}
