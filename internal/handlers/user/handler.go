package user

import (
	"net/http"

	"dost/infras/otel"
	"dost/internal/domains/user/model/dto"
	"dost/internal/domains/user/service"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/validator"
	"dost/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Patch("/{id}/status", handler.UpdateStatus)
		r.Delete("/{id}", handler.Delete)
	})
}

// GetAll lists users
// @Summary List users
// @Description List users filtered by search term and status.
// @Tags User
// @Produce json
// @Param q query string false "Search by name, email or phone"
// @Param status query string false "User status filter"
// @Success 200 {object} dto.GetUsersResponse
// @Router /v1/users [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllUsers")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	term := r.URL.Query().Get(constant.RequestParamSearch)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.GetAll(ctx, params, term, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateStatus activates or blocks a user
// @Summary Update a user's status
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "User status updated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/users/{id}/status [patch]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUserStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateUserStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User status updated successfully")

	response.WithMessage(w, http.StatusOK, "User status updated successfully")
}

// Delete removes a user
// @Summary Delete a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User deleted successfully")

	response.WithMessage(w, http.StatusOK, "User deleted successfully")
}
