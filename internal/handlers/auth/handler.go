package auth

import (
	"net/http"
	"time"

	"dost/infras/otel"
	"dost/internal/domains/auth/model/dto"
	"dost/internal/domains/auth/service"
	"dost/internal/session"
	"dost/shared/constant"
	"dost/shared/validator"
	"dost/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// rememberedEmailCookie pre-fills the sign-in form across visits.
const (
	rememberedEmailCookie = "dost_remembered_email"
	rememberedEmailMaxAge = 30 * 24 * time.Hour
)

type Handler struct {
	service service.Auth
	session *session.Store
	otel    otel.Otel
}

func New(service service.Auth, session *session.Store, otel otel.Otel) Handler {
	return Handler{
		service: service,
		session: session,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-in", handler.SignIn)
		r.Post("/sign-out", handler.SignOut)
		r.Post("/refresh-token", handler.RefreshToken)
		r.Get("/session", handler.Session)
		r.Get("/remembered-email", handler.RememberedEmail)
	})
}

// SignIn authenticates an admin
// @Summary Sign in an admin user
// @Description Sign in with email and password. Without a configured remote backend only the demo admin account is accepted.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Sign In Request"
// @Success 200 {object} dto.SignInResponse "User signed in successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/sign-in [post]
func (handler *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignIn")
	defer scope.End()

	req := dto.SignInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SignIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign in user")

		response.WithError(w, err)

		return
	}

	handler.setRememberedEmail(w, req)

	scope.AddEvent("User signed in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SignOut clears the active session
// @Summary Sign out the current user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "User signed out successfully"
// @Router /v1/auth/sign-out [post]
func (handler *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignOut")
	defer scope.End()

	handler.service.SignOut(ctx)

	scope.AddEvent("User signed out successfully")

	response.WithMessage(w, http.StatusOK, "User signed out successfully")
}

// RefreshToken exchanges a refresh token for a new token pair
// @Summary Refresh user token
// @Description Refresh user token using the provided refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.RefreshTokenResponse "Token refreshed successfully"
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Session reports the current auth state
// @Summary Get the current session snapshot
// @Tags Auth
// @Produce json
// @Success 200 {object} session.Snapshot
// @Router /v1/auth/session [get]
func (handler *Handler) Session(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Session")
	defer scope.End()

	snapshot := handler.session.Snapshot()

	payload := struct {
		User    *dto.AuthUser `json:"user"`
		Loading bool          `json:"loading"`
	}{
		User:    snapshot.User,
		Loading: snapshot.Loading,
	}

	response.WithJSON(w, http.StatusOK, payload)
}

// RememberedEmail returns the email remembered from a previous sign-in
// @Summary Get the remembered sign-in email
// @Tags Auth
// @Produce json
// @Success 200 {object} object{email=string}
// @Router /v1/auth/remembered-email [get]
func (handler *Handler) RememberedEmail(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RememberedEmail")
	defer scope.End()

	email := ""
	if cookie, err := r.Cookie(rememberedEmailCookie); err == nil {
		email = cookie.Value
	}

	payload := struct {
		Email string `json:"email"`
	}{Email: email}

	response.WithJSON(w, http.StatusOK, payload)
}

func (handler *Handler) setRememberedEmail(w http.ResponseWriter, req dto.SignInRequest) {
	cookie := &http.Cookie{
		Name:     rememberedEmailCookie,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if req.Remember {
		cookie.Value = req.Email
		cookie.MaxAge = int(rememberedEmailMaxAge.Seconds())
	} else {
		cookie.MaxAge = -1
	}

	http.SetCookie(w, cookie)
}
