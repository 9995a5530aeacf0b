package booking

import (
	"net/http"
	"strconv"

	"dost/infras/otel"
	"dost/internal/domains/booking/model/dto"
	"dost/internal/domains/booking/service"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/validator"
	"dost/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const defaultRecentLimit = 5

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Get("/recent", handler.GetRecent)
		r.Get("/export", handler.Export)
		r.Patch("/{id}/status", handler.UpdateStatus)
	})
}

// GetAll lists bookings
// @Summary List bookings
// @Description List bookings filtered by search term and status.
// @Tags Booking
// @Produce json
// @Param q query string false "Search by booking ID, guest or room name"
// @Param status query string false "Booking status filter"
// @Success 200 {object} dto.GetBookingsResponse
// @Router /v1/bookings [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	term := r.URL.Query().Get(constant.RequestParamSearch)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.GetAll(ctx, params, term, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRecent lists the most recent bookings for the dashboard
// @Summary List recent bookings
// @Tags Booking
// @Produce json
// @Param limit query int false "Number of bookings to return"
// @Success 200 {object} dto.GetBookingsResponse
// @Router /v1/bookings/recent [get]
func (handler *Handler) GetRecent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentBookings")
	defer scope.End()

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get(constant.RequestParamLimit); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	res, err := handler.service.GetRecent(ctx, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateStatus transitions a booking
// @Summary Update a booking's status
// @Description Apply a status transition. Illegal transitions are rejected.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status updated successfully")

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// Export streams the current booking list as a file
// @Summary Export bookings
// @Description Export the filtered booking list as CSV or XLSX.
// @Tags Booking
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param q query string false "Search by booking ID, guest or room name"
// @Param status query string false "Booking status filter"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Router /v1/bookings/export [get]
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	term := r.URL.Query().Get(constant.RequestParamSearch)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	format := r.URL.Query().Get(constant.RequestParamFormat)
	if format == "" {
		format = service.FormatCSV
	}

	export, err := handler.service.Export(ctx, term, status, format)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings exported successfully")

	response.WithFile(w, export.Filename, export.ContentType, export.Content)
}
