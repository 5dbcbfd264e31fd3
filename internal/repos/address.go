package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/types"
)

type AddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, address *types.Address) (*types.Address, error)
	GetByIDAndContactID(ctx context.Context, tx *gorm.DB, id, contactID int64) (*types.Address, error)
	Update(ctx context.Context, tx *gorm.DB, address *types.Address) (int64, error)
	DeleteByIDAndContactID(ctx context.Context, tx *gorm.DB, id, contactID int64) (int64, error)
	DeleteByContactID(ctx context.Context, tx *gorm.DB, contactID int64) (int64, error)
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	repoLog := baseLog.With("repo", "AddressRepo")
	return &addressRepo{db: db, log: repoLog}
}

func (ar *addressRepo) Create(ctx context.Context, tx *gorm.DB, address *types.Address) (*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if err := transaction.WithContext(ctx).Create(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

func (ar *addressRepo) GetByIDAndContactID(ctx context.Context, tx *gorm.DB, id, contactID int64) (*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var result types.Address
	err := transaction.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Update scopes by both keys so a colliding address id under another contact
// can never be touched.
func (ar *addressRepo) Update(ctx context.Context, tx *gorm.DB, address *types.Address) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Address{}).
		Where("id = ? AND contact_id = ?", address.ID, address.ContactID).
		Updates(map[string]interface{}{
			"street":      address.Street,
			"city":        address.City,
			"province":    address.Province,
			"country":     address.Country,
			"postal_code": address.PostalCode,
		})
	return res.RowsAffected, res.Error
}

func (ar *addressRepo) DeleteByIDAndContactID(ctx context.Context, tx *gorm.DB, id, contactID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		Delete(&types.Address{})
	return res.RowsAffected, res.Error
}

// DeleteByContactID backs the contact-delete cascade.
func (ar *addressRepo) DeleteByContactID(ctx context.Context, tx *gorm.DB, contactID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	res := transaction.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Delete(&types.Address{})
	return res.RowsAffected, res.Error
}
