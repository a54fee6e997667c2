package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-console/internal/httpresp"
	"github.com/BruksfildServices01/barber-console/internal/models"
	"github.com/BruksfildServices01/barber-console/internal/store"
)

type ServiceHandler struct {
	services *store.ServiceStore
}

func NewServiceHandler(services *store.ServiceStore) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, h.services.List())
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.services.Add(c.Request.Context(), models.NewService{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.services.Update(c.Request.Context(), models.Service{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
