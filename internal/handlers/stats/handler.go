package stats

import (
	"net/http"

	"dost/infras/otel"
	"dost/internal/domains/stats/service"
	"dost/shared/constant"
	"dost/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/stats", func(r chi.Router) {
		r.Get("/dashboard", handler.GetDashboard)
	})
}

// GetDashboard aggregates the dashboard metrics
// @Summary Get dashboard statistics
// @Description Aggregate revenue, booking, room and user metrics for the dashboard.
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Router /v1/stats/dashboard [get]
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboardStats")
	defer scope.End()

	res, err := handler.service.GetDashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
