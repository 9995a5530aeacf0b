package repository

import (
	"context"
	"fmt"

	"dost/infras/otel"
	"dost/infras/postgres"
	"dost/internal/domains/booking/model"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/logger"
	gRepo "dost/shared/repository"
)

type TrendRow struct {
	Day   string `db:"day"`
	Count int    `db:"count"`
}

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	WeekdayTrends(ctx context.Context) ([]TrendRow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// WeekdayTrends counts bookings created in the last seven days, grouped by
// weekday abbreviation.
func (repo *repositoryImpl) WeekdayTrends(ctx context.Context) (rows []TrendRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.WeekdayTrends")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT to_char(created_at, 'Dy') AS day, COUNT(id) AS count
		FROM bookings
		WHERE created_at >= NOW() - INTERVAL '7 days'
		GROUP BY to_char(created_at, 'Dy'), date_part('isodow', created_at)
		ORDER BY date_part('isodow', created_at)`

	err = repo.SelectNamed(ctx, &rows, query, map[string]any{})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to aggregate booking trends: %w", err)
	}

	return rows, nil
}
