package notification

import (
	"net/http"

	"dost/infras/otel"
	"dost/internal/notify"
	"dost/shared/constant"
	"dost/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	store *notify.Store
	otel  otel.Otel
}

func New(store *notify.Store, otel otel.Otel) Handler {
	return Handler{
		store: store,
		otel:  otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", handler.GetHistory)
		r.Get("/toasts", handler.GetToasts)
		r.Get("/unread-count", handler.GetUnreadCount)
		r.Patch("/{id}/read", handler.MarkRead)
		r.Post("/read-all", handler.MarkAllRead)
		r.Delete("/toasts/{id}", handler.Dismiss)
		r.Delete("/", handler.ClearHistory)
	})
}

// GetHistory lists the notification history, newest first
// @Summary List notification history
// @Tags Notification
// @Produce json
// @Success 200 {array} notify.Notification
// @Router /v1/notifications [get]
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotificationHistory")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.store.History())
}

// GetToasts lists the currently visible toasts
// @Summary List active toasts
// @Tags Notification
// @Produce json
// @Success 200 {array} notify.Notification
// @Router /v1/notifications/toasts [get]
func (handler *Handler) GetToasts(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetToasts")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.store.Toasts())
}

// GetUnreadCount reports the number of unread history entries
// @Summary Get unread notification count
// @Tags Notification
// @Produce json
// @Success 200 {object} object{count=int}
// @Router /v1/notifications/unread-count [get]
func (handler *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnreadCount")
	defer scope.End()

	payload := struct {
		Count int `json:"count"`
	}{Count: handler.store.UnreadCount()}

	response.WithJSON(w, http.StatusOK, payload)
}

// MarkRead marks one notification as read
// @Summary Mark a notification as read
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification marked as read"
// @Router /v1/notifications/{id}/read [patch]
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNotificationRead")
	defer scope.End()

	handler.store.MarkRead(chi.URLParam(r, constant.RequestParamID))

	response.WithMessage(w, http.StatusOK, "Notification marked as read")
}

// MarkAllRead marks every notification as read
// @Summary Mark all notifications as read
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Message "All notifications marked as read"
// @Router /v1/notifications/read-all [post]
func (handler *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAllNotificationsRead")
	defer scope.End()

	handler.store.MarkAllRead()

	response.WithMessage(w, http.StatusOK, "All notifications marked as read")
}

// Dismiss hides a toast without touching its history entry
// @Summary Dismiss a toast
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Toast dismissed"
// @Router /v1/notifications/toasts/{id} [delete]
func (handler *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DismissToast")
	defer scope.End()

	handler.store.Dismiss(chi.URLParam(r, constant.RequestParamID))

	response.WithMessage(w, http.StatusOK, "Toast dismissed")
}

// ClearHistory empties the notification history
// @Summary Clear notification history
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Message "Notification history cleared"
// @Router /v1/notifications [delete]
func (handler *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearNotificationHistory")
	defer scope.End()

	handler.store.ClearHistory()

	response.WithMessage(w, http.StatusOK, "Notification history cleared")
}
