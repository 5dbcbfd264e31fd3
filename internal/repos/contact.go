package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/types"
)

// ContactFilter holds the optional conjunctive search predicates. Name matches
// first OR last name as a substring; email and phone match independently.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error)
	GetByIDAndUsername(ctx context.Context, tx *gorm.DB, id int64, username string) (*types.Contact, error)
	Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) (int64, error)
	DeleteByIDAndUsername(ctx context.Context, tx *gorm.DB, id int64, username string) (int64, error)
	Search(ctx context.Context, tx *gorm.DB, username string, filter ContactFilter, limit, offset int) ([]*types.Contact, error)
	CountSearch(ctx context.Context, tx *gorm.DB, username string, filter ContactFilter) (int64, error)
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (cr *contactRepo) GetByIDAndUsername(ctx context.Context, tx *gorm.DB, id int64, username string) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.Contact
	err := transaction.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Update writes all mutable columns scoped by (id, username) and reports the
// affected row count so a row that vanished between check and mutate surfaces
// as a miss instead of a silent no-op.
func (cr *contactRepo) Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Contact{}).
		Where("id = ? AND username = ?", contact.ID, contact.Username).
		Updates(map[string]interface{}{
			"first_name": contact.FirstName,
			"last_name":  contact.LastName,
			"email":      contact.Email,
			"phone":      contact.Phone,
		})
	return res.RowsAffected, res.Error
}

func (cr *contactRepo) DeleteByIDAndUsername(ctx context.Context, tx *gorm.DB, id int64, username string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&types.Contact{})
	return res.RowsAffected, res.Error
}

func applyContactFilter(q *gorm.DB, username string, filter ContactFilter) *gorm.DB {
	q = q.Where("username = ?", username)
	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		q = q.Where("(first_name LIKE ? OR last_name LIKE ?)", pattern, pattern)
	}
	if filter.Email != "" {
		q = q.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		q = q.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	return q
}

func (cr *contactRepo) Search(ctx context.Context, tx *gorm.DB, username string, filter ContactFilter, limit, offset int) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Contact
	q := applyContactFilter(transaction.WithContext(ctx).Model(&types.Contact{}), username, filter)
	if err := q.Order("id").Limit(limit).Offset(offset).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) CountSearch(ctx context.Context, tx *gorm.DB, username string, filter ContactFilter) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var count int64
	q := applyContactFilter(transaction.WithContext(ctx).Model(&types.Contact{}), username, filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
