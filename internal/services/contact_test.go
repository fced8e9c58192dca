package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_List(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockContactReader(ctrl)
	svc := NewContactService(reader, NewMockContactWriter(ctrl), nil)

	_, err := svc.List(ctx, " ")
	assert.ErrorIs(t, err, ErrOwnerRequired)

	contacts := []models.ContactDB{{ID: 1, UserWalletAddress: testWallet, ContactWalletAddress: testOtherWallet, Name: "Bob"}}
	reader.EXPECT().ListByOwner(ctx, testWallet).Return(contacts, nil)
	got, err := svc.List(ctx, testWallet)
	require.NoError(t, err)
	assert.Equal(t, contacts, got)

	reader.EXPECT().ListByOwner(ctx, testWallet).Return(nil, errors.New("db down"))
	_, err = svc.List(ctx, testWallet)
	assert.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestContactService_Add_Validation(t *testing.T) {
	valid := func() *models.ContactInput {
		return &models.ContactInput{WalletAddress: testOtherWallet, Name: "Bob", Email: "bob@example.com"}
	}

	tests := []struct {
		name    string
		owner   string
		contact *models.ContactInput
		wantErr error
	}{
		{name: "missing owner", owner: "", contact: valid(), wantErr: ErrContactDataRequired},
		{name: "missing contact", owner: testWallet, contact: nil, wantErr: ErrContactDataRequired},
		{
			name:    "missing contact wallet",
			owner:   testWallet,
			contact: &models.ContactInput{Name: "Bob", Email: "bob@example.com"},
			wantErr: ErrContactFieldsRequired,
		},
		{
			name:    "blank name",
			owner:   testWallet,
			contact: &models.ContactInput{WalletAddress: testOtherWallet, Name: "  ", Email: "bob@example.com"},
			wantErr: ErrContactFieldsRequired,
		},
		{
			name:    "missing email",
			owner:   testWallet,
			contact: &models.ContactInput{WalletAddress: testOtherWallet, Name: "Bob"},
			wantErr: ErrContactFieldsRequired,
		},
		{
			name:    "self add",
			owner:   testWallet,
			contact: &models.ContactInput{WalletAddress: testWallet, Name: "Me", Email: "me@example.com"},
			wantErr: ErrSelfContact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewContactService(NewMockContactReader(ctrl), NewMockContactWriter(ctrl), NewMockEventPublisher(ctrl))
			contact, err := svc.Add(context.Background(), tt.owner, tt.contact)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, contact)
		})
	}
}

func TestContactService_Add(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockContactWriter(ctrl)
	publisher := NewMockEventPublisher(ctrl)

	writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.ContactDB) error {
			c.ID = 42
			return nil
		})
	publisher.EXPECT().Publish(ctx, gomock.Any()).Do(
		func(_ context.Context, evt models.ChangeEvent) {
			assert.Equal(t, models.EventContactAdded, evt.Type)
			assert.Equal(t, testWallet, evt.WalletAddress)
			assert.Equal(t, testOtherWallet, evt.Subject)
		})

	svc := NewContactService(NewMockContactReader(ctrl), writer, publisher)
	svc.now = func() time.Time { return fixedNow }

	contact, err := svc.Add(ctx, testWallet, &models.ContactInput{
		WalletAddress: " " + testOtherWallet,
		Name:          "Bob ",
		Email:         "bob@example.com",
		Location:      " Berlin ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), contact.ID)
	assert.Equal(t, testWallet, contact.UserWalletAddress)
	assert.Equal(t, testOtherWallet, contact.ContactWalletAddress)
	assert.Equal(t, "Bob", contact.Name)
	assert.Equal(t, "Berlin", contact.Location)
	assert.Equal(t, "", contact.Company)
	assert.Equal(t, fixedNow, contact.CreatedAt)
}

func TestContactService_Add_StoreErrors(t *testing.T) {
	dbErr := errors.New("db down")

	tests := []struct {
		name     string
		storeErr error
		wantErr  error
		wantKind Kind
	}{
		{
			name:     "duplicate pair",
			storeErr: fmt.Errorf("save contact: %w", repositories.ErrDuplicate),
			wantErr:  ErrContactExists,
			wantKind: KindConflict,
		},
		{name: "store error", storeErr: dbErr, wantErr: dbErr, wantKind: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := NewMockContactWriter(ctrl)
			writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(tt.storeErr)

			// the publisher must stay silent when nothing was written
			svc := NewContactService(NewMockContactReader(ctrl), writer, NewMockEventPublisher(ctrl))
			contact, err := svc.Add(context.Background(), testWallet, &models.ContactInput{
				WalletAddress: testOtherWallet, Name: "Bob", Email: "bob@example.com",
			})

			assert.Nil(t, contact)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestContactService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		owner       string
		contact     string
		setup       func(writer *MockContactWriter, publisher *MockEventPublisher)
		wantErr     error
		wantErrKind Kind
	}{
		{
			name:        "missing owner",
			contact:     testOtherWallet,
			setup:       func(*MockContactWriter, *MockEventPublisher) {},
			wantErr:     ErrContactWalletsRequired,
			wantErrKind: KindValidation,
		},
		{
			name:        "missing contact",
			owner:       testWallet,
			setup:       func(*MockContactWriter, *MockEventPublisher) {},
			wantErr:     ErrContactWalletsRequired,
			wantErrKind: KindValidation,
		},
		{
			name:    "not found",
			owner:   testWallet,
			contact: testOtherWallet,
			setup: func(writer *MockContactWriter, _ *MockEventPublisher) {
				writer.EXPECT().Delete(ctx, testWallet, testOtherWallet).Return(repositories.ErrNotFound)
			},
			wantErr:     ErrContactNotFound,
			wantErrKind: KindNotFound,
		},
		{
			name:    "deleted",
			owner:   testWallet,
			contact: testOtherWallet,
			setup: func(writer *MockContactWriter, publisher *MockEventPublisher) {
				writer.EXPECT().Delete(ctx, testWallet, testOtherWallet).Return(nil)
				publisher.EXPECT().Publish(ctx, gomock.Any()).Do(
					func(_ context.Context, evt models.ChangeEvent) {
						assert.Equal(t, models.EventContactDeleted, evt.Type)
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := NewMockContactWriter(ctrl)
			publisher := NewMockEventPublisher(ctrl)
			tt.setup(writer, publisher)

			svc := NewContactService(NewMockContactReader(ctrl), writer, publisher)
			err := svc.Delete(ctx, tt.owner, tt.contact)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantErrKind, KindOf(err))
		})
	}
}

func TestContactService_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockContactWriter(ctrl)
	writer.EXPECT().Delete(gomock.Any(), testWallet, testOtherWallet).Return(nil)

	svc := NewContactService(NewMockContactReader(ctrl), writer, nil)
	assert.NoError(t, svc.Delete(context.Background(), testWallet, testOtherWallet))
}
