package payment

import (
	"net/http"

	"dost/infras/otel"
	"dost/internal/domains/payment/service"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Post("/{id}/refund", handler.Refund)
	})
}

// GetAll lists payments
// @Summary List payments
// @Description List payments filtered by search term and status.
// @Tags Payment
// @Produce json
// @Param q query string false "Search by transaction ID, guest or room name"
// @Param status query string false "Payment status filter"
// @Success 200 {object} dto.GetPaymentsResponse
// @Router /v1/payments [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllPayments")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	term := r.URL.Query().Get(constant.RequestParamSearch)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.GetAll(ctx, params, term, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Refund marks a paid payment as refunded
// @Summary Refund a payment
// @Description Refund a payment. Only payments in the Paid status can be refunded.
// @Tags Payment
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Message "Payment refunded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/{id}/refund [post]
func (handler *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefundPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Refund(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refund payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment refunded successfully")

	response.WithMessage(w, http.StatusOK, "Payment refunded successfully")
}
