package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-console/internal/httpresp"
	"github.com/BruksfildServices01/barber-console/internal/preference"
)

// colorSchemeHint is the client hint carrying the OS light/dark preference.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

type PreferenceHandler struct {
	themes *preference.Service
}

func NewPreferenceHandler(themes *preference.Service) *PreferenceHandler {
	return &PreferenceHandler{themes: themes}
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type ThemeResponse struct {
	Theme preference.Theme `json:"theme"`
}

func (h *PreferenceHandler) GetTheme(c *gin.Context) {
	c.Header("Accept-CH", colorSchemeHint)
	httpresp.OK(c, ThemeResponse{
		Theme: h.themes.Current(c.Request.Context(), c.GetHeader(colorSchemeHint)),
	})
}

func (h *PreferenceHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if !bindJSON(c, &req) {
		return
	}

	t := preference.Theme(req.Theme)
	if err := h.themes.Set(c.Request.Context(), t); err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, ThemeResponse{Theme: t})
}

func (h *PreferenceHandler) ToggleTheme(c *gin.Context) {
	t, err := h.themes.Toggle(c.Request.Context(), c.GetHeader(colorSchemeHint))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, ThemeResponse{Theme: t})
}
