package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-console/internal/domain/payment"
	"github.com/BruksfildServices01/barber-console/internal/dto"
	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/httpresp"
	"github.com/BruksfildServices01/barber-console/internal/store"
	"github.com/BruksfildServices01/barber-console/internal/usecase/checkout"
)

// ======================================================
// HANDLER
// ======================================================

type CheckoutHandler struct {
	drafts       *checkout.Registry
	finalize     *checkout.Finalize
	services     *store.ServiceStore
	appointments *store.AppointmentStore
}

func NewCheckoutHandler(
	drafts *checkout.Registry,
	finalize *checkout.Finalize,
	services *store.ServiceStore,
	appointments *store.AppointmentStore,
) *CheckoutHandler {
	return &CheckoutHandler{
		drafts:       drafts,
		finalize:     finalize,
		services:     services,
		appointments: appointments,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OpenDraftRequest struct {
	ClientName    string `json:"clientName"`
	AppointmentID *uint  `json:"appointmentId"`
}

type DiscountRequest struct {
	Discount string `json:"discount"`
}

type ClientRequest struct {
	ClientName string `json:"clientName"`
}

type PaymentPatchRequest struct {
	Method *string `json:"method"`
	Amount *string `json:"amount"`
}

// ======================================================
// LIFECYCLE
// ======================================================

// Open starts a walk-in draft, or an appointment draft when appointmentId is
// given.
func (h *CheckoutHandler) Open(c *gin.Context) {
	var req OpenDraftRequest
	if !bindJSON(c, &req) {
		return
	}

	var d *checkout.Draft
	if req.AppointmentID != nil {
		ap, ok := h.appointments.Get(*req.AppointmentID)
		if !ok {
			httperr.Business(c, "appointment_not_found")
			return
		}

		var err error
		d, err = checkout.NewForAppointment(ap, h.services.List())
		if err != nil {
			respondError(c, err)
			return
		}
	} else {
		d = checkout.NewWalkIn(req.ClientName)
	}

	h.drafts.Open(d)
	c.JSON(http.StatusCreated, dto.FromDraft(d.Clone()))
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	h.mutate(c, func(*checkout.Draft) error { return nil })
}

func (h *CheckoutHandler) Close(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.drafts.Close(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// STEP 1
// ======================================================

func (h *CheckoutHandler) ToggleService(c *gin.Context) {
	serviceID, ok := uintParam(c, "serviceId")
	if !ok {
		return
	}
	svc, found := h.services.Get(serviceID)
	if !found {
		httperr.Business(c, "service_not_found")
		return
	}

	h.mutate(c, func(d *checkout.Draft) error {
		d.ToggleService(svc)
		return nil
	})
}

func (h *CheckoutHandler) SetDiscount(c *gin.Context) {
	var req DiscountRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, func(d *checkout.Draft) error {
		d.SetDiscount(req.Discount)
		return nil
	})
}

func (h *CheckoutHandler) SetClient(c *gin.Context) {
	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, func(d *checkout.Draft) error {
		return d.SetClientName(req.ClientName)
	})
}

func (h *CheckoutHandler) Next(c *gin.Context) {
	h.mutate(c, func(d *checkout.Draft) error { return d.Next() })
}

func (h *CheckoutHandler) Back(c *gin.Context) {
	h.mutate(c, func(d *checkout.Draft) error {
		d.Back()
		return nil
	})
}

// ======================================================
// STEP 2
// ======================================================

func (h *CheckoutHandler) AddPayment(c *gin.Context) {
	h.mutate(c, func(d *checkout.Draft) error {
		_, err := d.AddPayment()
		return err
	})
}

func (h *CheckoutHandler) UpdatePayment(c *gin.Context) {
	paymentID, ok := uuidParam(c, "paymentId")
	if !ok {
		return
	}

	var req PaymentPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	h.mutate(c, func(d *checkout.Draft) error {
		if req.Method != nil {
			if err := d.SetPaymentMethod(paymentID, payment.Method(*req.Method)); err != nil {
				return err
			}
		}
		if req.Amount != nil {
			return d.SetPaymentAmount(paymentID, *req.Amount)
		}
		return nil
	})
}

func (h *CheckoutHandler) RemovePayment(c *gin.Context) {
	paymentID, ok := uuidParam(c, "paymentId")
	if !ok {
		return
	}
	h.mutate(c, func(d *checkout.Draft) error {
		return d.RemovePayment(paymentID)
	})
}

// ======================================================
// SUBMIT
// ======================================================

func (h *CheckoutHandler) Submit(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	res, err := h.drafts.Submit(c.Request.Context(), id, h.finalize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction": res.Transaction,
		"appointment": res.Appointment,
	})
}

// mutate applies fn to the draft named by :id and responds with the result.
func (h *CheckoutHandler) mutate(c *gin.Context, fn func(d *checkout.Draft) error) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var snapshot checkout.Draft
	err := h.drafts.With(id, func(d *checkout.Draft) error {
		if err := fn(d); err != nil {
			return err
		}
		snapshot = d.Clone()
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, dto.FromDraft(snapshot))
}
