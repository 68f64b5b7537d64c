package noterepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/note"
	"verduleria/internal/pkg/errs"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormDeliveryNoteRepository implements DeliveryNoteRepository using GORM.
type GormDeliveryNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryNoteRepository creates a new GORM delivery-note repository.
func NewGormDeliveryNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryNoteRepository {
	return &GormDeliveryNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery note. A second note for the same order trips the
// unique index and is surfaced as a ConflictError.
func (r *GormDeliveryNoteRepository) Add(ctx context.Context, aggregate *note.DeliveryNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if (errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation) ||
			errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("order %s already has a delivery note", aggregate.OrderID()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery note to the database.
func (r *GormDeliveryNoteRepository) Update(ctx context.Context, aggregate *note.DeliveryNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryNoteDTO{}).Where("id = ?", dto.ID).
		Select("Number", "OrderID", "Total", "IssuedAt", "ReceivedBy", "ReceivedDoc", "Remarks").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery note by ID.
func (r *GormDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*note.DeliveryNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryNoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryNote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the note issued against the given order.
func (r *GormDeliveryNoteRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*note.DeliveryNote, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryNoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryNote by order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a delivery note with the given ID is persisted.
func (r *GormDeliveryNoteRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryNoteDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a delivery note by ID.
func (r *GormDeliveryNoteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DeliveryNoteDTO{}, "id = ?", id.Bytes()).Error
}
