package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
)

// ProfileSaver defines the interface that the service must implement.
type ProfileSaver interface {
	Save(ctx context.Context, in models.ProfileInput) error
}

// ProfileGetter returns a profile by wallet address.
type ProfileGetter interface {
	Get(ctx context.Context, walletAddress string) (*models.ProfileDB, error)
}

// ProfileUsernameGetter returns a profile by username.
type ProfileUsernameGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.ProfileDB, error)
}

// ProfileSearcher finds profiles by name or username.
type ProfileSearcher interface {
	Search(ctx context.Context, query, excludeWallet string) ([]models.ProfileDB, error)
}

// ProfileLister lists the user directory.
type ProfileLister interface {
	ListAll(ctx context.Context, excludeWallet string) ([]models.ProfileDB, error)
}

// SaveProfileRequest represents the JSON body for saving a profile
// swagger:model SaveProfileRequest
type SaveProfileRequest struct {
	// Wallet address, at least 32 characters
	// required: true
	// default: 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU
	WalletAddress string `json:"walletAddress"`

	// default: Alice
	Name string `json:"name"`

	// default: alice@example.com
	Email string `json:"email"`

	Company  string `json:"company"`
	Location string `json:"location"`

	// Data URI or URL; omitted keeps the stored value
	AvatarImage *string `json:"avatarImage"`

	// 3-20 letters, digits, '_' or '-'; omitted keeps the stored value
	// default: alice
	Username *string `json:"username"`
}

// SaveProfileResponse represents a successful save
// swagger:model SaveProfileResponse
type SaveProfileResponse struct {
	// default: true
	Success bool `json:"success"`

	// default: Profile saved successfully
	Message string `json:"message"`

	WalletAddress string `json:"walletAddress"`
}

// ProfileResponse represents a full profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	WalletAddress string    `json:"walletAddress"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	AvatarImage   *string   `json:"avatarImage"`
	Username      *string   `json:"username"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// ProfileSummary is the directory projection of a profile
// swagger:model ProfileSummary
type ProfileSummary struct {
	WalletAddress string  `json:"walletAddress"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Company       string  `json:"company"`
	Location      string  `json:"location"`
	AvatarImage   *string `json:"avatarImage"`
	Username      *string `json:"username"`
}

// ProfileListResponse wraps search and directory results
// swagger:model ProfileListResponse
type ProfileListResponse struct {
	Users []ProfileSummary `json:"users"`
}

func toProfileResponse(p *models.ProfileDB) ProfileResponse {
	return ProfileResponse{
		WalletAddress: p.WalletAddress,
		Name:          p.Name,
		Email:         p.Email,
		Company:       p.Company,
		Location:      p.Location,
		AvatarImage:   p.AvatarImage,
		Username:      p.Username,
		CreatedAt:     p.CreatedAt,
		LastUpdated:   p.LastUpdated,
	}
}

func toProfileList(profiles []models.ProfileDB) ProfileListResponse {
	users := make([]ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, ProfileSummary{
			WalletAddress: p.WalletAddress,
			Name:          p.Name,
			Email:         p.Email,
			Company:       p.Company,
			Location:      p.Location,
			AvatarImage:   p.AvatarImage,
			Username:      p.Username,
		})
	}
	return ProfileListResponse{Users: users}
}

// NewSaveProfileHandler returns an HTTP handler that creates or updates a profile.
// @Summary Save profile
// @Description Insert or update the profile of a wallet. createdAt is kept on update.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body handlers.SaveProfileRequest true "Profile"
// @Success 200 {object} handlers.SaveProfileResponse "Profile saved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid wallet address or username"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles [post]
func NewSaveProfileHandler(svc ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode save profile request", "error", err)
			writeErrorMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		err := svc.Save(r.Context(), models.ProfileInput{
			WalletAddress: req.WalletAddress,
			Name:          req.Name,
			Email:         req.Email,
			Company:       req.Company,
			Location:      req.Location,
			AvatarImage:   req.AvatarImage,
			Username:      req.Username,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SaveProfileResponse{
			Success:       true,
			Message:       "Profile saved successfully",
			WalletAddress: req.WalletAddress,
		})
	}
}

// NewGetProfileHandler returns an HTTP handler that fetches a profile by wallet.
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param wallet path string true "Wallet address"
// @Success 200 {object} handlers.ProfileResponse
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/{wallet} [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.Get(r.Context(), chi.URLParam(r, "wallet"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(profile))
	}
}

// NewGetProfileByUsernameHandler returns an HTTP handler that fetches a profile by username.
// @Summary Get profile by username
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.ProfileResponse
// @Failure 400 {object} handlers.ErrorResponse "Username is required"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/username/{username} [get]
func NewGetProfileByUsernameHandler(svc ProfileUsernameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.GetByUsername(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(profile))
	}
}

// NewSearchProfilesHandler returns an HTTP handler that searches profiles.
// @Summary Search profiles
// @Description Case-insensitive substring match on name or username. Username matches come first.
// @Tags profiles
// @Produce json
// @Param q query string false "Search term"
// @Param exclude query string false "Wallet address to leave out"
// @Success 200 {object} handlers.ProfileListResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/search [get]
func NewSearchProfilesHandler(svc ProfileSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		profiles, err := svc.Search(r.Context(), q.Get("q"), q.Get("exclude"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileList(profiles))
	}
}

// NewListProfilesHandler returns an HTTP handler for the user directory.
// @Summary List profiles
// @Description Profiles with a non-empty name, alphabetical, at most 100
// @Tags profiles
// @Produce json
// @Param exclude query string false "Wallet address to leave out"
// @Success 200 {object} handlers.ProfileListResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/all [get]
func NewListProfilesHandler(svc ProfileLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := svc.ListAll(r.Context(), r.URL.Query().Get("exclude"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileList(profiles))
	}
}

// RegisterSaveProfileHandler registers the profile upsert route
func RegisterSaveProfileHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/profiles", h)
}

// RegisterGetProfileHandler registers the profile lookup route
func RegisterGetProfileHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/profiles/{wallet}", h)
}

// RegisterGetProfileByUsernameHandler registers the username lookup route.
// The bare path is routed too so an empty username gets a JSON 400.
func RegisterGetProfileByUsernameHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/profiles/username/", h)
	r.Get("/profiles/username/{username}", h)
}

// RegisterSearchProfilesHandler registers the profile search route
func RegisterSearchProfilesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/profiles/search", h)
}

// RegisterListProfilesHandler registers the directory route
func RegisterListProfilesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/profiles/all", h)
}
