package services

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/repositories"
)

// ContactReader defines read operations for contacts.
type ContactReader interface {
	ListByOwner(ctx context.Context, owner string) ([]models.ContactDB, error)
}

// ContactWriter defines write operations for contacts.
type ContactWriter interface {
	Save(ctx context.Context, contact *models.ContactDB) error
	Delete(ctx context.Context, owner, contactWallet string) error
}

// ContactService manages per-owner contact lists.
type ContactService struct {
	reader    ContactReader
	writer    ContactWriter
	publisher EventPublisher
	now       func() time.Time
}

// NewContactService creates a new ContactService. publisher may be nil.
func NewContactService(reader ContactReader, writer ContactWriter, publisher EventPublisher) *ContactService {
	return &ContactService{
		reader:    reader,
		writer:    writer,
		publisher: publisher,
		now:       time.Now,
	}
}

// List returns the contacts of owner ordered by name.
func (s *ContactService) List(ctx context.Context, owner string) ([]models.ContactDB, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrOwnerRequired
	}

	contacts, err := s.reader.ListByOwner(ctx, owner)
	if err != nil {
		logger.Log.Errorw("failed to list contacts", "owner", owner, "error", err)
		return nil, err
	}
	return contacts, nil
}

// Add stores contact in owner's list and returns the created record.
func (s *ContactService) Add(ctx context.Context, owner string, contact *models.ContactInput) (*models.ContactDB, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" || contact == nil {
		return nil, ErrContactDataRequired
	}

	record := &models.ContactDB{
		UserWalletAddress:    owner,
		ContactWalletAddress: strings.TrimSpace(contact.WalletAddress),
		Name:                 strings.TrimSpace(contact.Name),
		Email:                strings.TrimSpace(contact.Email),
		Company:              strings.TrimSpace(contact.Company),
		Location:             strings.TrimSpace(contact.Location),
		CreatedAt:            s.now().UTC(),
	}
	if record.ContactWalletAddress == "" || record.Name == "" || record.Email == "" {
		return nil, ErrContactFieldsRequired
	}
	if record.ContactWalletAddress == owner {
		logger.Log.Warnw("self contact rejected", "owner", owner)
		return nil, ErrSelfContact
	}

	err := s.writer.Save(ctx, record)
	if errors.Is(err, repositories.ErrDuplicate) {
		logger.Log.Warnw("contact already exists", "owner", owner, "contact", record.ContactWalletAddress)
		return nil, ErrContactExists
	}
	if err != nil {
		logger.Log.Errorw("failed to add contact", "owner", owner, "contact", record.ContactWalletAddress, "error", err)
		return nil, err
	}

	publish(ctx, s.publisher, s.now, models.EventContactAdded, owner, record.ContactWalletAddress)
	return record, nil
}

// Delete removes contactWallet from owner's list.
func (s *ContactService) Delete(ctx context.Context, owner, contactWallet string) error {
	owner = strings.TrimSpace(owner)
	contactWallet = strings.TrimSpace(contactWallet)
	if owner == "" || contactWallet == "" {
		return ErrContactWalletsRequired
	}

	err := s.writer.Delete(ctx, owner, contactWallet)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrContactNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete contact", "owner", owner, "contact", contactWallet, "error", err)
		return err
	}

	publish(ctx, s.publisher, s.now, models.EventContactDeleted, owner, contactWallet)
	return nil
}
