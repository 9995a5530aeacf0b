package room

import (
	"net/http"

	"dost/infras/otel"
	"dost/internal/domains/room/model/dto"
	"dost/internal/domains/room/service"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
	"dost/shared/validator"
	"dost/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formFieldImages = "images"

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Post("/", handler.Create)
		r.Post("/images", handler.UploadImages)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

// GetAll lists rooms
// @Summary List rooms
// @Description List rooms filtered by search term and room type.
// @Tags Room
// @Produce json
// @Param q query string false "Search by room name or type"
// @Param status query string false "Room type filter"
// @Success 200 {object} dto.GetRoomsResponse
// @Router /v1/rooms [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllRooms")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	term := r.URL.Query().Get(constant.RequestParamSearch)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.GetAll(ctx, params, term, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get fetches a single room
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create adds a room
// @Summary Create a room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} dto.RoomResponse "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error "Demo mode"
// @Router /v1/rooms [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Update edits a room
// @Summary Update a room
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [put]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// Delete removes a room
// @Summary Delete a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// UploadImages uploads room images sequentially
// @Summary Upload room images
// @Description Upload up to five images. Files are processed in order and each slot reports either a URL or an error.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Success 200 {object} dto.UploadImagesResponse
// @Failure 400 {object} response.Error
// @Router /v1/rooms/images [post]
func (handler *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadRoomImages")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		err = failure.BadRequest(err)
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	headers := r.MultipartForm.File[formFieldImages]
	if len(headers) == 0 {
		err := failure.BadRequestFromString("no image files provided")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if len(headers) > constant.MaxRoomImages {
		err := failure.BadRequestFromString("a room can have at most 5 images")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	files := make([]dto.UploadFile, 0, len(headers))

	for _, header := range headers {
		upload := dto.UploadFile{Header: header}

		if err := validator.ValidateStruct(&upload); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("filename", header.Filename).Msg("rejected image file")

			response.WithError(w, err)

			return
		}

		file, err := header.Open()
		if err != nil {
			err = failure.BadRequest(err)
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}
		defer file.Close()

		upload.File = file
		files = append(files, upload)
	}

	res := dto.UploadImagesResponse{}
	res.Images = handler.service.UploadImages(ctx, files, func(progress int) {
		res.Progress = append(res.Progress, progress)
	})

	scope.AddEvent("Room images uploaded")

	response.WithJSON(w, http.StatusOK, res)
}
