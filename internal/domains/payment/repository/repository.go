package repository

import (
	"context"
	"fmt"

	"dost/infras/otel"
	"dost/infras/postgres"
	"dost/internal/domains/payment/model"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/logger"
	gRepo "dost/shared/repository"
)

type RevenueRow struct {
	Month  string `db:"month"`
	Amount int64  `db:"amount"`
}

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Sum(ctx context.Context, sumColumn string, filter gDto.FilterGroup) (int64, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	MonthlyRevenue(ctx context.Context) ([]RevenueRow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// MonthlyRevenue sums paid amounts per month over the last six months.
func (repo *repositoryImpl) MonthlyRevenue(ctx context.Context) (rows []RevenueRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.MonthlyRevenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT to_char(created_at, 'Mon') AS month, COALESCE(SUM(amount), 0) AS amount
		FROM payments
		WHERE payment_status = :status AND created_at >= NOW() - INTERVAL '6 months'
		GROUP BY to_char(created_at, 'Mon'), date_trunc('month', created_at)
		ORDER BY date_trunc('month', created_at)`

	err = repo.SelectNamed(ctx, &rows, query, map[string]any{"status": constant.PaymentStatusPaid})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}

	return rows, nil
}
