package repository

import (
	"context"

	"dost/infras/otel"
	"dost/infras/postgres"
	"dost/internal/domains/settings/model"
	gDto "dost/shared/dto"
	gRepo "dost/shared/repository"
)

type Settings interface {
	Insert(ctx context.Context, model model.AppConfig) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AppConfig, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AppConfig]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Settings {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AppConfig](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
