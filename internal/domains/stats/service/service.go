package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"dost/config"
	"dost/infras/otel"
	bookingModel "dost/internal/domains/booking/model"
	bookingRepo "dost/internal/domains/booking/repository"
	paymentModel "dost/internal/domains/payment/model"
	paymentRepo "dost/internal/domains/payment/repository"
	roomModel "dost/internal/domains/room/model"
	roomRepo "dost/internal/domains/room/repository"
	"dost/internal/domains/stats/model/dto"
	userModel "dost/internal/domains/user/model"
	userRepo "dost/internal/domains/user/repository"
	"dost/internal/seed"
	"dost/shared/cache"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/fallback"
	"dost/shared/timezone"
)

const (
	cacheDashboard = "stats:dashboard"
)

type Stats interface {
	GetDashboard(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	users    userRepo.User
	rooms    roomRepo.Room
	bookings bookingRepo.Booking
	payments paymentRepo.Payment
	cfg      *config.Config
	cache    cache.Cache
	otel     otel.Otel
}

func New(
	users userRepo.User,
	rooms roomRepo.Room,
	bookings bookingRepo.Booking,
	payments paymentRepo.Payment,
	cfg *config.Config,
	cache cache.Cache,
	otel otel.Otel,
) Stats {
	return &serviceImpl{
		users:    users,
		rooms:    rooms,
		bookings: bookings,
		payments: payments,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func statusFilter(field, table, value string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Operator: gDto.FilterOperatorEq, Value: value, Table: table},
		},
	}
}

// GetDashboard aggregates the dashboard counters from the remote store, or
// serves the fixed snapshot in demo mode.
func (s *serviceImpl) GetDashboard(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.GetDashboard")
	defer scope.End()

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard stats")

		return res, nil
	}

	res, degraded := fallback.Read(ctx, s.cfg.RemoteConfigured(), s.aggregate, seed.Stats)

	if !degraded {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save dashboard stats to cache")
			}
		}()
	}

	return res, nil
}

func (s *serviceImpl) aggregate(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	paidFilter := statusFilter(paymentModel.FieldPaymentStatus, paymentModel.TableName, constant.PaymentStatusPaid)

	res.TotalRevenue, err = s.payments.Sum(ctx, paymentModel.FieldAmount, paidFilter)
	if err != nil {
		return res, fmt.Errorf("failed to sum total revenue: %w", err)
	}

	now := timezone.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, timezone.GetLocation())

	monthFilter := statusFilter(paymentModel.FieldPaymentStatus, paymentModel.TableName, constant.PaymentStatusPaid)
	monthFilter.Filters = append(monthFilter.Filters, gDto.Filter{
		ArgName:  "month_start",
		Field:    constant.FieldCreatedAt,
		Operator: gDto.FilterOperatorGreaterEq,
		Value:    monthStart,
		Table:    paymentModel.TableName,
	})

	res.MonthlyRevenue, err = s.payments.Sum(ctx, paymentModel.FieldAmount, monthFilter)
	if err != nil {
		return res, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}

	activeFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldBookingStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.BookingStatusPending, constant.BookingStatusApproved},
				Table:    bookingModel.TableName,
			},
		},
	}

	res.ActiveBookings, err = s.bookings.Count(ctx, activeFilter)
	if err != nil {
		return res, fmt.Errorf("failed to count active bookings: %w", err)
	}

	pendingFilter := statusFilter(paymentModel.FieldPaymentStatus, paymentModel.TableName, constant.PaymentStatusPending)

	res.PendingPayments, err = s.payments.Sum(ctx, paymentModel.FieldAmount, pendingFilter)
	if err != nil {
		return res, fmt.Errorf("failed to sum pending payments: %w", err)
	}

	failedFilter := statusFilter(paymentModel.FieldPaymentStatus, paymentModel.TableName, constant.PaymentStatusFailed)

	res.FailedPaymentsCount, err = s.payments.Count(ctx, failedFilter)
	if err != nil {
		return res, fmt.Errorf("failed to count failed payments: %w", err)
	}

	availableFilter := statusFilter(roomModel.FieldStatus, roomModel.TableName, constant.RoomStatusAvailable)

	res.AvailableRooms, err = s.rooms.Count(ctx, availableFilter)
	if err != nil {
		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	res.TotalRooms, err = s.rooms.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	res.TotalUsers, err = s.users.Count(ctx, statusFilter(userModel.FieldRole, userModel.TableName, constant.RoleClient))
	if err != nil {
		return res, fmt.Errorf("failed to count users: %w", err)
	}

	revenueRows, err := s.payments.MonthlyRevenue(ctx)
	if err != nil {
		return res, err
	}

	res.RevenueByMonth = make([]dto.MonthlyRevenue, len(revenueRows))
	for i, row := range revenueRows {
		res.RevenueByMonth[i] = dto.MonthlyRevenue{Month: row.Month, Amount: row.Amount}
	}

	trendRows, err := s.bookings.WeekdayTrends(ctx)
	if err != nil {
		return res, err
	}

	res.BookingTrends = make([]dto.BookingTrend, len(trendRows))
	for i, row := range trendRows {
		res.BookingTrends[i] = dto.BookingTrend{Day: row.Day, Count: row.Count}
	}

	return res, nil
}
