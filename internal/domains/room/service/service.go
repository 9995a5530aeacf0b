package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dost/config"
	"dost/infras/otel"
	"dost/infras/s3"
	"dost/internal/domains/room/model"
	"dost/internal/domains/room/model/dto"
	"dost/internal/domains/room/repository"
	"dost/internal/events"
	"dost/internal/seed"
	"dost/shared"
	"dost/shared/cache"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
	"dost/shared/fallback"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

type Room interface {
	GetAll(ctx context.Context, params gDto.QueryParams, term, status string) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) error
	Delete(ctx context.Context, id string) error
	UploadImages(ctx context.Context, files []dto.UploadFile, onProgress func(int)) []dto.UploadedImage
}

type serviceImpl struct {
	repo   repository.Room
	cfg    *config.Config
	cache  cache.Cache
	otel   otel.Otel
	s3     s3.S3
	events events.Publisher
}

func New(repo repository.Room, cfg *config.Config, cache cache.Cache, otel otel.Otel, s3 s3.S3, events events.Publisher) Room {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		s3:     s3,
		events: events,
	}
}

func listFilter(term, status string) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if term != "" {
		group.Filters = append(group.Filters, gDto.SearchFilter(term,
			gDto.SearchColumn{Field: model.FieldRoomName, Table: model.TableName},
			gDto.SearchColumn{Field: model.FieldRoomType, Table: model.TableName},
		))
	}

	if status != "" && status != constant.FilterAll {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return group
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, term, status string) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()

	filter := listFilter(term, status)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	res, degraded := fallback.Read(ctx, s.cfg.RemoteConfigured(),
		func(ctx context.Context) (dto.GetRoomsResponse, error) {
			var remote dto.GetRoomsResponse

			models, err := s.repo.GetAll(ctx, params, filter)
			if err != nil {
				return remote, fmt.Errorf("failed to get rooms: %w", err)
			}

			remote.FromModels(models, len(models))

			return remote, nil
		},
		func() dto.GetRoomsResponse {
			rooms := seed.FilterRooms(seed.Rooms(), term, status)

			return dto.GetRoomsResponse{Rooms: rooms, TotalData: len(rooms)}
		},
	)

	if !degraded {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save rooms to cache")
			}
		}()
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.cfg.RemoteConfigured() {
		for _, room := range seed.Rooms() {
			if room.ID == id {
				return room, nil
			}
		}

		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err = fallback.WriteResult(ctx, s.cfg.RemoteConfigured(), func(ctx context.Context) (dto.RoomResponse, error) {
		var created dto.RoomResponse

		room := req.ToModel(actor)
		if err := s.repo.Insert(ctx, room); err != nil {
			return created, fmt.Errorf("failed to create room: %w", err)
		}

		created.FromModel(room)

		return created, nil
	})
	if err != nil {
		return res, err
	}

	s.events.Publish(ctx, events.Activity{
		Action:   events.ActionRoomCreated,
		Entity:   model.EntityName,
		EntityID: res.ID,
		Actor:    actor,
		Title:    "Room created",
		Detail:   fmt.Sprintf("room %q was added", req.RoomName),
	})

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllRoom)
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = fallback.Write(ctx, s.cfg.RemoteConfigured(), func(ctx context.Context) error {
		exist, err := s.repo.Exist(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if !exist {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}

		if err := s.repo.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, events.Activity{
		Action:   events.ActionRoomUpdated,
		Entity:   model.EntityName,
		EntityID: id,
		Actor:    actor,
		Title:    "Room updated",
		Detail:   fmt.Sprintf("room %s was updated", id),
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = fallback.Write(ctx, s.cfg.RemoteConfigured(), func(ctx context.Context) error {
		exist, err := s.repo.Exist(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if !exist {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}

		if err := s.repo.Delete(ctx, filter); err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, events.Activity{
		Action:   events.ActionRoomDeleted,
		Entity:   model.EntityName,
		EntityID: id,
		Actor:    actor,
		Title:    "Room deleted",
		Detail:   fmt.Sprintf("room %s was removed", id),
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	return nil
}

// UploadImages stores the given files one at a time, reporting progress after
// each as round((completed/total)*100). A failed upload fills its slot with
// the placeholder URL and the error message instead of aborting the batch, so
// the result always has one entry per input file, in input order.
func (s *serviceImpl) UploadImages(ctx context.Context, files []dto.UploadFile, onProgress func(int)) []dto.UploadedImage {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UploadImages")
	defer scope.End()

	results := make([]dto.UploadedImage, len(files))
	total := len(files)

	for idx, file := range files {
		results[idx] = s.uploadOne(ctx, file)

		if onProgress != nil {
			progress := int(math.Round(float64(idx+1) / float64(total) * 100))
			onProgress(progress)
		}
	}

	return results
}

func (s *serviceImpl) uploadOne(ctx context.Context, file dto.UploadFile) dto.UploadedImage {
	if !s.cfg.RemoteConfigured() {
		return dto.UploadedImage{URL: constant.PlaceholderImageURL}
	}

	filename := uuid.NewString()

	parts := strings.Split(file.Header.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, s.cfg.Storage.S3.BucketName, model.EntityName, file.File, file.Header, filename)
	if err != nil {
		log.Error().Err(err).Str("file", file.Header.Filename).Msg("failed to upload image, substituting placeholder")

		return dto.UploadedImage{URL: constant.PlaceholderImageURL, Error: err.Error()}
	}

	return dto.UploadedImage{URL: url}
}
