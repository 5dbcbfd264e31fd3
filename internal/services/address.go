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

type AddressService interface {
	Create(ctx context.Context, user *types.User, req *types.CreateAddressRequest) (*types.AddressResponse, error)
	Get(ctx context.Context, user *types.User, req *types.GetAddressRequest) (*types.AddressResponse, error)
	Update(ctx context.Context, user *types.User, req *types.UpdateAddressRequest) (*types.AddressResponse, error)
	Delete(ctx context.Context, user *types.User, req *types.GetAddressRequest) error
}

type addressService struct {
	db             *gorm.DB
	log            *logger.Logger
	addressRepo    repos.AddressRepo
	contactService ContactService
}

func NewAddressService(db *gorm.DB, log *logger.Logger, addressRepo repos.AddressRepo, contactService ContactService) AddressService {
	serviceLog := log.With("service", "AddressService")
	return &addressService{db: db, log: serviceLog, addressRepo: addressRepo, contactService: contactService}
}

// Every operation walks the ownership chain twice: the contact must belong to
// the requesting user, and the address must belong to that contact.

func (as *addressService) Create(ctx context.Context, user *types.User, req *types.CreateAddressRequest) (*types.AddressResponse, error) {
	if err := validation.CreateAddress(req); err != nil {
		return nil, err
	}
	address := &types.Address{
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	// Sharing a transaction with the ownership check guarantees no address
	// row is left behind when the contact does not exist.
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.contactService.MustExist(ctx, tx, user, req.ContactID); err != nil {
			return err
		}
		_, cErr := as.addressRepo.Create(ctx, tx, address)
		return cErr
	}); err != nil {
		return nil, err
	}
	return types.ToAddressResponse(address), nil
}

func (as *addressService) Get(ctx context.Context, user *types.User, req *types.GetAddressRequest) (*types.AddressResponse, error) {
	if err := validation.GetAddress(req); err != nil {
		return nil, err
	}
	if _, err := as.contactService.MustExist(ctx, nil, user, req.ContactID); err != nil {
		return nil, err
	}
	address, err := as.mustExist(ctx, nil, req.ContactID, req.ID)
	if err != nil {
		return nil, err
	}
	return types.ToAddressResponse(address), nil
}

func (as *addressService) mustExist(ctx context.Context, tx *gorm.DB, contactID, addressID int64) (*types.Address, error) {
	address, err := as.addressRepo.GetByIDAndContactID(ctx, tx, addressID, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch address: %w", err)
	}
	if address == nil {
		return nil, apierr.NotFound("Address")
	}
	return address, nil
}

func (as *addressService) Update(ctx context.Context, user *types.User, req *types.UpdateAddressRequest) (*types.AddressResponse, error) {
	if err := validation.UpdateAddress(req); err != nil {
		return nil, err
	}
	address := &types.Address{
		ID:         req.ID,
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.contactService.MustExist(ctx, tx, user, req.ContactID); err != nil {
			return err
		}
		if _, err := as.mustExist(ctx, tx, req.ContactID, req.ID); err != nil {
			return err
		}
		affected, err := as.addressRepo.Update(ctx, tx, address)
		if err != nil {
			return fmt.Errorf("failed to update address: %w", err)
		}
		if affected == 0 {
			return apierr.NotFound("Address")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return types.ToAddressResponse(address), nil
}

func (as *addressService) Delete(ctx context.Context, user *types.User, req *types.GetAddressRequest) error {
	if err := validation.GetAddress(req); err != nil {
		return err
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.contactService.MustExist(ctx, tx, user, req.ContactID); err != nil {
			return err
		}
		affected, err := as.addressRepo.DeleteByIDAndContactID(ctx, tx, req.ID, req.ContactID)
		if err != nil {
			return fmt.Errorf("failed to delete address: %w", err)
		}
		if affected == 0 {
			return apierr.NotFound("Address")
		}
		return nil
	})
}
