package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/infra/repository"
)

var notFoundByTable = map[string]string{
	"services":     "service_not_found",
	"appointments": "appointment_not_found",
	"transactions": "transaction_not_found",
}

// respondError maps use case and storage errors to the JSON error envelope.
func respondError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.FromError(c, be)
		return
	}

	var se *repository.StorageError
	if errors.As(err, &se) {
		if errors.Is(se.Kind, repository.ErrNotFound) {
			if code, ok := notFoundByTable[se.Table]; ok {
				httperr.Business(c, code)
				return
			}
		}
		if errors.Is(se.Kind, repository.ErrDuplicate) {
			httperr.Write(c, http.StatusConflict, "duplicate", "Registro duplicado.")
			return
		}

		_ = c.Error(err)
		httperr.BadGateway(c, "storage_error", "Falha na comunicação com o banco de dados. Tente novamente.")
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Erro interno.")
}

// --------------------------------------------------
// params
// --------------------------------------------------

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.Business(c, "invalid_id")
		return 0, false
	}
	return uint(v), true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Business(c, "invalid_id")
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Business(c, "invalid_request")
		return false
	}
	return true
}
