package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"eikaiwa/infras/otel"
	"eikaiwa/infras/postgres"
	"eikaiwa/internal/domains/booking/model"
	"eikaiwa/shared/constant"
	gDto "eikaiwa/shared/dto"
	"eikaiwa/shared/failure"
	gRepo "eikaiwa/shared/repository"
	"errors"
	"time"

	"github.com/lib/pq"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllInRange(ctx context.Context, from, to time.Time) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
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

// Insert persists a booking. A unique violation on the start timestamp means a
// concurrent submission won the slot; that is an expected outcome, not a bug.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	err := repo.Repository.Insert(ctx, booking)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.SlotTakenError
		}

		return err //nolint:wrapcheck
	}

	return nil
}

// GetAllInRange returns the non-cancelled bookings whose start falls in [from, to).
func (repo *repositoryImpl) GetAllInRange(ctx context.Context, from, to time.Time) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorLess,
				Value:    to,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.BookingStatusCancelled,
				Table:    model.TableName,
			},
		},
	}

	return repo.Repository.GetAll(ctx, gDto.QueryParams{}, filter)
}
