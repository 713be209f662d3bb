package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"cafe-storefront/client"
	"cafe-storefront/models"
	"cafe-storefront/storage"
	"cafe-storefront/utils"
)

// AuthAPI is the slice of the backend the session store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	AdminLogin(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

// AuthService holds the authenticated identity and its bearer token. The two
// are a linked pair: they are stored together, restored together, and
// discarded together.
type AuthService struct {
	mu       sync.Mutex
	api      AuthAPI
	store    storage.Store
	notifier Notifier
	user     *models.User
	token    string
}

func NewAuthService(api AuthAPI, store storage.Store, notifier Notifier) *AuthService {
	s := &AuthService{api: api, store: store, notifier: notifier}
	s.restoreFromStorage()
	return s
}

// restoreFromStorage loads the persisted pair. Anything short of a complete,
// parsable, unexpired pair drops both values so the session can never come
// back half-restored.
func (s *AuthService) restoreFromStorage() {
	token, tokenErr := s.store.Get(storage.KeyToken)
	saved, userErr := s.store.Get(storage.KeyUser)
	if tokenErr != nil || userErr != nil {
		s.discardStored()
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(saved), &user); err != nil {
		log.Printf("session restore: discarding unreadable state: %v", err)
		s.discardStored()
		return
	}

	if utils.TokenExpired(token) {
		log.Printf("session restore: discarding expired token for %s", user.Email)
		s.discardStored()
		return
	}

	s.user = &user
	s.token = token
}

func (s *AuthService) discardStored() {
	if err := s.store.Delete(storage.KeyToken); err != nil {
		log.Printf("session discard failed: %v", err)
	}
	if err := s.store.Delete(storage.KeyUser); err != nil {
		log.Printf("session discard failed: %v", err)
	}
}

func (s *AuthService) commit(resp *models.LoginResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := resp.User
	s.user = &user
	s.token = resp.AccessToken

	payload, err := json.Marshal(resp.User)
	if err != nil {
		log.Printf("session persist failed: %v", err)
		return
	}
	if err := s.store.Set(storage.KeyToken, resp.AccessToken); err != nil {
		log.Printf("session persist failed: %v", err)
	}
	if err := s.store.Set(storage.KeyUser, string(payload)); err != nil {
		log.Printf("session persist failed: %v", err)
	}
}

// Login authenticates against the customer endpoint. On failure the session
// state is left untouched and the backend's reason is surfaced.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notifier.Notify(Notification{
			Title:   "Login failed",
			Message: failureReason(err, "Please check your credentials and try again."),
			Variant: VariantDestructive,
		})
		return err
	}

	s.commit(resp)
	s.notifier.Notify(Notification{
		Title:   "Login successful",
		Message: fmt.Sprintf("Welcome back, %s!", resp.User.DisplayName()),
		Variant: VariantDefault,
	})
	return nil
}

// AdminLogin has the same contract against the elevated-privilege endpoint.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) error {
	resp, err := s.api.AdminLogin(ctx, email, password)
	if err != nil {
		s.notifier.Notify(Notification{
			Title:   "Admin login failed",
			Message: failureReason(err, "Please check your credentials and try again."),
			Variant: VariantDestructive,
		})
		return err
	}

	s.commit(resp)
	s.notifier.Notify(Notification{
		Title:   "Admin login successful",
		Message: fmt.Sprintf("Welcome, %s!", resp.User.DisplayName()),
		Variant: VariantDefault,
	})
	return nil
}

// Register creates an account but never authenticates; the caller still has
// to log in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	if _, err := s.api.Register(ctx, req); err != nil {
		s.notifier.Notify(Notification{
			Title:   "Registration failed",
			Message: failureReason(err, "Please try again."),
			Variant: VariantDestructive,
		})
		return err
	}

	s.notifier.Notify(Notification{
		Title:   "Registration successful",
		Message: "Your account has been created. Please log in.",
		Variant: VariantDefault,
	})
	return nil
}

// Logout clears the pair from memory and storage and always notifies.
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.discardStored()
	s.mu.Unlock()

	s.notifier.Notify(Notification{
		Title:   "Logged out",
		Message: "You have been successfully logged out.",
		Variant: VariantDefault,
	})
}

// User returns a copy of the authenticated identity, or nil.
func (s *AuthService) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *AuthService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *AuthService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *AuthService) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.Role == models.RoleAdmin
}

// failureReason surfaces a backend rejection verbatim and hides transport
// noise behind the caller's generic fallback.
func failureReason(err error, fallback string) string {
	if client.IsRejection(err) {
		return err.Error()
	}
	return fallback
}
