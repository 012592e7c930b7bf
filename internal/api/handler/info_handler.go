package handler

import (
	"net/http"

	"natrix-bank/internal/api/handler/dto"
	"natrix-bank/internal/config"
)

// InfoHandler serves the deprecated build-info and contact-info
// endpoints, kept for callers that still probe them.
type InfoHandler struct {
	build config.BuildConfig
}

func NewInfoHandler(build config.BuildConfig) *InfoHandler {
	return &InfoHandler{build: build}
}

// BuildInfo handles GET <base>/build-info
// @Summary Get build information
// @Description Returns the build version deployed for this service.
// @Tags Info
// @Produce json
// @Success 200 {object} dto.BuildInfoDto "Build version"
// @Router /build-info [get]
// @Deprecated
func (h *InfoHandler) BuildInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.BuildInfoDto{Version: h.build.Version})
}

// ContactInfo handles GET <base>/contact-info
// @Summary Get contact information
// @Description Returns the support contact configured for this service.
// @Tags Info
// @Produce json
// @Success 200 {object} dto.ContactInfoDto "Support contact"
// @Router /contact-info [get]
// @Deprecated
func (h *InfoHandler) ContactInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.ContactInfoDto{
		Name:  h.build.ContactName,
		Email: h.build.ContactEmail,
	})
}
