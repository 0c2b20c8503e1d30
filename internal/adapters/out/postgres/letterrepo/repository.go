package letterrepo

import (
	"context"
	"errors"

	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLetterRepository implements LetterRepository using GORM.
type GormLetterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormLetterRepository creates a new GORM letter repository.
func NewGormLetterRepository(db *gorm.DB, tracker aggregateTracker) *GormLetterRepository {
	return &GormLetterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new letter and returns the aggregate rebuilt with the
// database-assigned identity and timestamps.
func (r *GormLetterRepository) Add(ctx context.Context, aggregate *letter.Letter) (*letter.Letter, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	saved, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(saved.ID(), saved)
	return saved, nil
}

// Update saves an existing letter as a single atomic row write.
func (r *GormLetterRepository) Update(ctx context.Context, aggregate *letter.Letter) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Save alone skips fields that moved to NULL (a recall clearing the
	// timestamps), so name the columns explicitly.
	result := r.db.WithContext(ctx).Model(&LetterDTO{}).
		Where("id = ?", dto.ID).
		Select("Message", "Status", "DispatchedAt", "DeliveredAt").
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

// Get retrieves a letter by ID.
func (r *GormLetterRepository) Get(ctx context.Context, id int64) (*letter.Letter, error) {
	var dto LetterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("letter", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the letter row. The queued-only rule is checked through the
// aggregate before this is reached.
func (r *GormLetterRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&LetterDTO{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("letter", id)
	}
	return nil
}

// CountByCarrier returns how many letters reference the carrier.
func (r *GormLetterRepository) CountByCarrier(ctx context.Context, carrierID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LetterDTO{}).
		Where("carrier_id = ?", carrierID).
		Count(&count).Error
	return count, err
}

// CountByClient returns how many letters reference the client as sender or
// recipient.
func (r *GormLetterRepository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LetterDTO{}).
		Where("sender_id = ? OR recipient_id = ?", clientID, clientID).
		Count(&count).Error
	return count, err
}
