package services

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/repositories"
)

const (
	// MinWalletAddressLength is the shortest accepted wallet address.
	MinWalletAddressLength = 32
	// SearchLimit caps the number of search results.
	SearchLimit = 50
	// DirectoryLimit caps the number of directory entries.
	DirectoryLimit = 100
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

// ProfileReader defines read operations for profiles.
type ProfileReader interface {
	GetByWallet(ctx context.Context, walletAddress string) (*models.ProfileDB, error)
	GetByUsername(ctx context.Context, username string) (*models.ProfileDB, error)
	FindUsernameOwner(ctx context.Context, username, excludeWallet string) (string, error)
	Search(ctx context.Context, term, excludeWallet string, limit int) ([]models.ProfileDB, error)
	ListNamed(ctx context.Context, excludeWallet string, limit int) ([]models.ProfileDB, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	Save(ctx context.Context, profile *models.ProfileDB) error
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher announces committed writes. Implementations must not fail the caller.
type EventPublisher interface {
	Publish(ctx context.Context, evt models.ChangeEvent)
}

// ValidateUsername reports whether username is 3-20 letters, digits, '_' or '-'.
func ValidateUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// ProfileService handles profile upserts and lookups.
type ProfileService struct {
	reader    ProfileReader
	writer    ProfileWriter
	tx        Transactor
	publisher EventPublisher
	now       func() time.Time
}

// NewProfileService creates a new ProfileService. publisher may be nil.
func NewProfileService(reader ProfileReader, writer ProfileWriter, tx Transactor, publisher EventPublisher) *ProfileService {
	return &ProfileService{
		reader:    reader,
		writer:    writer,
		tx:        tx,
		publisher: publisher,
		now:       time.Now,
	}
}

// Save validates in and inserts or updates the profile stored under its wallet.
// The username check and the write share one transaction; the unique index
// on username catches anything that slips between them.
func (s *ProfileService) Save(ctx context.Context, in models.ProfileInput) error {
	wallet := in.WalletAddress
	if wallet == "" {
		return ErrWalletRequired
	}
	if utf8.RuneCountInString(wallet) < MinWalletAddressLength {
		logger.Log.Warnw("invalid wallet address", "wallet", wallet)
		return ErrInvalidWallet
	}

	var username *string
	if in.Username != nil && *in.Username != "" {
		if !ValidateUsername(*in.Username) {
			logger.Log.Warnw("invalid username", "wallet", wallet, "username", *in.Username)
			return ErrInvalidUsername
		}
		lowered := strings.ToLower(*in.Username)
		username = &lowered
	}

	now := s.now().UTC()
	profile := &models.ProfileDB{
		WalletAddress: wallet,
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Company:       strings.TrimSpace(in.Company),
		Location:      strings.TrimSpace(in.Location),
		AvatarImage:   in.AvatarImage,
		Username:      username,
		CreatedAt:     now,
		LastUpdated:   now,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if username != nil {
			owner, err := s.reader.FindUsernameOwner(ctx, *username, wallet)
			if err != nil {
				return err
			}
			if owner != "" {
				return ErrUsernameTaken
			}
		}
		return s.writer.Save(ctx, profile)
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, repositories.ErrDuplicate):
		logger.Log.Warnw("username already taken", "wallet", wallet, "username", in.Username)
		return ErrUsernameTaken
	default:
		logger.Log.Errorw("failed to save profile", "wallet", wallet, "error", err)
		return err
	}

	s.publish(ctx, models.EventProfileSaved, wallet, "")
	return nil
}

// Get returns the profile stored under walletAddress.
func (s *ProfileService) Get(ctx context.Context, walletAddress string) (*models.ProfileDB, error) {
	profile, err := s.reader.GetByWallet(ctx, walletAddress)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get profile", "wallet", walletAddress, "error", err)
		return nil, err
	}
	return profile, nil
}

// GetByUsername returns the profile whose stored username equals username.
func (s *ProfileService) GetByUsername(ctx context.Context, username string) (*models.ProfileDB, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}

	profile, err := s.reader.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get profile by username", "username", username, "error", err)
		return nil, err
	}
	return profile, nil
}

// Search finds profiles by name or username. A blank query returns no results
// without touching the store.
func (s *ProfileService) Search(ctx context.Context, query, excludeWallet string) ([]models.ProfileDB, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.ProfileDB{}, nil
	}

	profiles, err := s.reader.Search(ctx, query, strings.TrimSpace(excludeWallet), SearchLimit)
	if err != nil {
		logger.Log.Errorw("failed to search profiles", "query", query, "error", err)
		return nil, err
	}
	return profiles, nil
}

// ListAll returns the named profiles of the user directory.
func (s *ProfileService) ListAll(ctx context.Context, excludeWallet string) ([]models.ProfileDB, error) {
	profiles, err := s.reader.ListNamed(ctx, strings.TrimSpace(excludeWallet), DirectoryLimit)
	if err != nil {
		logger.Log.Errorw("failed to list profiles", "error", err)
		return nil, err
	}
	return profiles, nil
}

func (s *ProfileService) publish(ctx context.Context, eventType, wallet, subject string) {
	publish(ctx, s.publisher, s.now, eventType, wallet, subject)
}

func publish(ctx context.Context, p EventPublisher, now func() time.Time, eventType, wallet, subject string) {
	if p == nil {
		return
	}
	p.Publish(ctx, models.ChangeEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		WalletAddress: wallet,
		Subject:       subject,
		Timestamp:     now().Unix(),
	})
}
