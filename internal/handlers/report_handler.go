package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/httpresp"
	"github.com/BruksfildServices01/barber-console/internal/models"
	"github.com/BruksfildServices01/barber-console/internal/report"
	"github.com/BruksfildServices01/barber-console/internal/store"
	"github.com/BruksfildServices01/barber-console/internal/timezone"
)

type ReportHandler struct {
	transactions *store.TransactionStore
	exporter     *report.Exporter
	clock        timezone.Clock
}

func NewReportHandler(
	transactions *store.TransactionStore,
	exporter *report.Exporter,
	clock timezone.Clock,
) *ReportHandler {
	return &ReportHandler{
		transactions: transactions,
		exporter:     exporter,
		clock:        clock,
	}
}

type ReportResponse struct {
	Stats models.DailyStats `json:"stats"`
	Rows  []report.Row      `json:"rows"`
}

func (h *ReportHandler) Get(c *gin.Context) {
	txs := h.transactions.List()

	httpresp.OK(c, ReportResponse{
		Stats: report.Stats(txs),
		Rows:  report.Rows(txs),
	})
}

func (h *ReportHandler) Weekly(c *gin.Context) {
	ref, ok := referenceDate(c, h.clock)
	if !ok {
		return
	}
	httpresp.List(c, report.Weekly(h.transactions.List(), ref))
}

func (h *ReportHandler) Export(c *gin.Context) {
	out, err := h.exporter.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "export_failed", httperr.Message("export_failed"))
		return
	}

	if out.ArchiveKey != "" {
		c.Header("X-Archive-Key", out.ArchiveKey)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", out.Filename))
	c.Data(http.StatusOK, report.XLSXContentType, out.Data)
}
