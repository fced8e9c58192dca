package handlers

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
)

// ContactLister returns the contacts of an owner.
type ContactLister interface {
	List(ctx context.Context, owner string) ([]models.ContactDB, error)
}

// ContactAdder adds a contact to an owner's list.
type ContactAdder interface {
	Add(ctx context.Context, owner string, contact *models.ContactInput) (*models.ContactDB, error)
}

// ContactDeleter removes a contact from an owner's list.
type ContactDeleter interface {
	Delete(ctx context.Context, owner, contactWallet string) error
}

// ContactPayload is the contact part of an add request
// swagger:model ContactPayload
type ContactPayload struct {
	// required: true
	// default: 9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM
	WalletAddress string `json:"walletAddress"`

	// required: true
	// default: Bob
	Name string `json:"name"`

	// required: true
	// default: bob@example.com
	Email string `json:"email"`

	Company  string `json:"company"`
	Location string `json:"location"`
}

// AddContactRequest represents the JSON body for adding a contact
// swagger:model AddContactRequest
type AddContactRequest struct {
	// Owner wallet address
	// required: true
	UserWallet string `json:"userWallet"`

	// required: true
	Contact *ContactPayload `json:"contact"`
}

// ContactResponse represents a stored contact
// swagger:model ContactResponse
type ContactResponse struct {
	// Surrogate id rendered as a string
	// default: 1
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	WalletAddress string    `json:"walletAddress"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ContactListResponse wraps an owner's contacts
// swagger:model ContactListResponse
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

// AddContactResponse represents a successful add
// swagger:model AddContactResponse
type AddContactResponse struct {
	// default: true
	Success bool `json:"success"`

	// default: Contact added successfully
	Message string `json:"message"`

	Contact ContactResponse `json:"contact"`
}

// DeleteContactResponse represents a successful delete
// swagger:model DeleteContactResponse
type DeleteContactResponse struct {
	// default: true
	Success bool `json:"success"`

	// default: Contact deleted successfully
	Message string `json:"message"`
}

func toContactResponse(c *models.ContactDB) ContactResponse {
	return ContactResponse{
		ID:            strconv.FormatInt(c.ID, 10),
		Name:          c.Name,
		Email:         c.Email,
		WalletAddress: c.ContactWalletAddress,
		Company:       c.Company,
		Location:      c.Location,
		CreatedAt:     c.CreatedAt,
	}
}

// NewListContactsHandler returns an HTTP handler listing an owner's contacts.
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Param user_wallet query string true "Owner wallet address"
// @Success 200 {object} handlers.ContactListResponse
// @Failure 400 {object} handlers.ErrorResponse "User wallet address is required"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /contacts [get]
func NewListContactsHandler(svc ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := svc.List(r.Context(), r.URL.Query().Get("user_wallet"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := ContactListResponse{Contacts: make([]ContactResponse, 0, len(contacts))}
		for i := range contacts {
			resp.Contacts = append(resp.Contacts, toContactResponse(&contacts[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewAddContactHandler returns an HTTP handler adding a contact.
// @Summary Add contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body handlers.AddContactRequest true "Contact"
// @Success 201 {object} handlers.AddContactResponse "Contact added successfully"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 409 {object} handlers.ErrorResponse "Contact already exists or self-add"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /contacts [post]
func NewAddContactHandler(svc ContactAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode add contact request", "error", err)
			writeErrorMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		var in *models.ContactInput
		if req.Contact != nil {
			in = &models.ContactInput{
				WalletAddress: req.Contact.WalletAddress,
				Name:          req.Contact.Name,
				Email:         req.Contact.Email,
				Company:       req.Contact.Company,
				Location:      req.Contact.Location,
			}
		}

		contact, err := svc.Add(r.Context(), req.UserWallet, in)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, AddContactResponse{
			Success: true,
			Message: "Contact added successfully",
			Contact: toContactResponse(contact),
		})
	}
}

// NewDeleteContactHandler returns an HTTP handler removing a contact.
// @Summary Delete contact
// @Tags contacts
// @Produce json
// @Param wallet path string true "Contact wallet address"
// @Param user_wallet query string true "Owner wallet address"
// @Success 200 {object} handlers.DeleteContactResponse "Contact deleted successfully"
// @Failure 400 {object} handlers.ErrorResponse "User wallet and contact wallet are required"
// @Failure 404 {object} handlers.ErrorResponse "Contact not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /contacts/{wallet} [delete]
func NewDeleteContactHandler(svc ContactDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), r.URL.Query().Get("user_wallet"), chi.URLParam(r, "wallet"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteContactResponse{
			Success: true,
			Message: "Contact deleted successfully",
		})
	}
}

// RegisterListContactsHandler registers the contact list route
func RegisterListContactsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/contacts", h)
}

// RegisterAddContactHandler registers the add contact route
func RegisterAddContactHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/contacts", h)
}

// RegisterDeleteContactHandler registers the delete contact route
func RegisterDeleteContactHandler(r chi.Router, h http.HandlerFunc) {
	r.Delete("/contacts/{wallet}", h)
}
