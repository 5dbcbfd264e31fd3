package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/contactbook-backend/internal/apierr"
	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/repos"
	"github.com/yungbote/contactbook-backend/internal/types"
	"github.com/yungbote/contactbook-backend/internal/validation"
)

type ContactService interface {
	Create(ctx context.Context, user *types.User, req *types.CreateContactRequest) (*types.ContactResponse, error)
	Get(ctx context.Context, user *types.User, contactID int64) (*types.ContactResponse, error)
	Update(ctx context.Context, user *types.User, req *types.UpdateContactRequest) (*types.ContactResponse, error)
	Delete(ctx context.Context, user *types.User, contactID int64) error
	Search(ctx context.Context, user *types.User, req *types.SearchContactRequest) (*types.ContactPage, error)
	// MustExist is the shared ownership gate: it resolves the contact scoped
	// to the user and reports NotFound both for a missing row and for a row
	// owned by someone else.
	MustExist(ctx context.Context, tx *gorm.DB, user *types.User, contactID int64) (*types.Contact, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
	addressRepo repos.AddressRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo, addressRepo repos.AddressRepo) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{db: db, log: serviceLog, contactRepo: contactRepo, addressRepo: addressRepo}
}

func (cs *contactService) Create(ctx context.Context, user *types.User, req *types.CreateContactRequest) (*types.ContactResponse, error) {
	if err := validation.CreateContact(req); err != nil {
		return nil, err
	}
	// Ownership comes from the authenticated user, never from the body.
	contact := &types.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if _, err := cs.contactRepo.Create(ctx, nil, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return types.ToContactResponse(contact), nil
}

func (cs *contactService) Get(ctx context.Context, user *types.User, contactID int64) (*types.ContactResponse, error) {
	if err := validation.ContactID(contactID); err != nil {
		return nil, err
	}
	contact, err := cs.MustExist(ctx, nil, user, contactID)
	if err != nil {
		return nil, err
	}
	return types.ToContactResponse(contact), nil
}

func (cs *contactService) MustExist(ctx context.Context, tx *gorm.DB, user *types.User, contactID int64) (*types.Contact, error) {
	contact, err := cs.contactRepo.GetByIDAndUsername(ctx, tx, contactID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	if contact == nil {
		return nil, apierr.NotFound("Contact")
	}
	return contact, nil
}

func (cs *contactService) Update(ctx context.Context, user *types.User, req *types.UpdateContactRequest) (*types.ContactResponse, error) {
	if err := validation.UpdateContact(req); err != nil {
		return nil, err
	}
	contact := &types.Contact{
		ID:        req.ID,
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	// Existence check and mutation share one transaction. If the row still
	// vanishes in between, the zero affected count surfaces as NotFound.
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.MustExist(ctx, tx, user, req.ID); err != nil {
			return err
		}
		affected, err := cs.contactRepo.Update(ctx, tx, contact)
		if err != nil {
			return fmt.Errorf("failed to update contact: %w", err)
		}
		if affected == 0 {
			return apierr.NotFound("Contact")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return types.ToContactResponse(contact), nil
}

func (cs *contactService) Delete(ctx context.Context, user *types.User, contactID int64) error {
	if err := validation.ContactID(contactID); err != nil {
		return err
	}
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.MustExist(ctx, tx, user, contactID); err != nil {
			return err
		}
		// Owned addresses go first; the FK cascade is only a backstop.
		if _, err := cs.addressRepo.DeleteByContactID(ctx, tx, contactID); err != nil {
			return fmt.Errorf("failed to delete contact addresses: %w", err)
		}
		affected, err := cs.contactRepo.DeleteByIDAndUsername(ctx, tx, contactID, user.Username)
		if err != nil {
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		if affected == 0 {
			return apierr.NotFound("Contact")
		}
		return nil
	})
}

func (cs *contactService) Search(ctx context.Context, user *types.User, req *types.SearchContactRequest) (*types.ContactPage, error) {
	if err := validation.SearchContact(req); err != nil {
		return nil, err
	}

	filter := repos.ContactFilter{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	skip := (req.Page - 1) * req.Size

	contacts, err := cs.contactRepo.Search(ctx, nil, user.Username, filter, req.Size, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	total, err := cs.contactRepo.CountSearch(ctx, nil, user.Username, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	data := make([]*types.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		data = append(data, types.ToContactResponse(contact))
	}
	return &types.ContactPage{
		Data: data,
		Paging: types.Paging{
			CurrentPage: req.Page,
			// Ceiling division; zero matches report zero pages.
			TotalPage: int((total + int64(req.Size) - 1) / int64(req.Size)),
			Size:      req.Size,
		},
	}, nil
}
