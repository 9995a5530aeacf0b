package settings

import (
	"net/http"

	"dost/infras/otel"
	"dost/internal/domains/settings/model/dto"
	"dost/internal/domains/settings/service"
	"dost/shared/constant"
	"dost/shared/validator"
	"dost/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Put("/", handler.Update)
	})
}

// Get fetches the app configuration
// @Summary Get app settings
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.AppConfigResponse
// @Router /v1/settings [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Update saves the app configuration
// @Summary Update app settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateAppConfigRequest true "Update Settings Request"
// @Success 200 {object} response.Message "Settings updated successfully"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error "Demo mode"
// @Router /v1/settings [put]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateAppConfigRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings updated successfully")

	response.WithMessage(w, http.StatusOK, "Settings updated successfully")
}
