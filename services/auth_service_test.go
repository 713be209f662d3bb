package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-storefront/client"
	"cafe-storefront/models"
	"cafe-storefront/storage"
	"cafe-storefront/utils"
)

func customerLoginResponse() *models.LoginResponse {
	return &models.LoginResponse{
		AccessToken: "token-123",
		TokenType:   "bearer",
		User: models.User{
			ID:       "u1",
			Username: "jdoe",
			Email:    "jdoe@example.com",
			FullName: "Jane Doe",
			Role:     "customer",
		},
	}
}

func TestLogin_SuccessStoresPairAndNotifies(t *testing.T) {
	api := &MockAuthAPI{LoginResp: customerLoginResponse()}
	store := storage.NewMemoryStore()
	notifier := &recorderNotifier{}
	svc := NewAuthService(api, store, notifier)

	require.NoError(t, svc.Login(context.Background(), "jdoe@example.com", "secret"))

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, "token-123", svc.Token())
	require.NotNil(t, svc.User())
	assert.Equal(t, "jdoe@example.com", svc.User().Email)

	n := notifier.last()
	assert.Equal(t, "Login successful", n.Title)
	assert.Equal(t, "Welcome back, Jane Doe!", n.Message)

	token, err := store.Get(storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)

	saved, err := store.Get(storage.KeyUser)
	require.NoError(t, err)
	var user models.User
	require.NoError(t, json.Unmarshal([]byte(saved), &user))
	assert.Equal(t, "u1", user.ID)
}

func TestLogin_FallsBackToUsernameInGreeting(t *testing.T) {
	resp := customerLoginResponse()
	resp.User.FullName = ""
	api := &MockAuthAPI{LoginResp: resp}
	notifier := &recorderNotifier{}
	svc := NewAuthService(api, storage.NewMemoryStore(), notifier)

	require.NoError(t, svc.Login(context.Background(), "jdoe@example.com", "secret"))
	assert.Equal(t, "Welcome back, jdoe!", notifier.last().Message)
}

func TestLogin_RejectionSurfacesBackendReason(t *testing.T) {
	api := &MockAuthAPI{LoginErr: &client.APIError{StatusCode: 401, Detail: "Invalid email or password"}}
	store := storage.NewMemoryStore()
	notifier := &recorderNotifier{}
	svc := NewAuthService(api, store, notifier)

	err := svc.Login(context.Background(), "jdoe@example.com", "wrong")
	require.Error(t, err)

	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, svc.Token())
	_, getErr := store.Get(storage.KeyToken)
	assert.ErrorIs(t, getErr, storage.ErrNotFound)

	n := notifier.last()
	assert.Equal(t, "Login failed", n.Title)
	assert.Equal(t, "Invalid email or password", n.Message)
	assert.Equal(t, VariantDestructive, n.Variant)
}

func TestLogin_NetworkFailureUsesGenericMessage(t *testing.T) {
	api := &MockAuthAPI{LoginErr: errors.New("dial tcp: connection refused")}
	notifier := &recorderNotifier{}
	svc := NewAuthService(api, storage.NewMemoryStore(), notifier)

	require.Error(t, svc.Login(context.Background(), "jdoe@example.com", "secret"))
	assert.Equal(t, "Please check your credentials and try again.", notifier.last().Message)
}

func TestAdminLogin_Success(t *testing.T) {
	resp := customerLoginResponse()
	resp.User.Role = "admin"
	api := &MockAuthAPI{AdminResp: resp}
	notifier := &recorderNotifier{}
	svc := NewAuthService(api, storage.NewMemoryStore(), notifier)

	require.NoError(t, svc.AdminLogin(context.Background(), "jdoe@example.com", "secret"))

	assert.True(t, svc.IsAdmin())
	n := notifier.last()
	assert.Equal(t, "Admin login successful", n.Title)
	assert.Equal(t, "Welcome, Jane Doe!", n.Message)
}

func TestIsAdmin_FalseForCustomerAndGuest(t *testing.T) {
	api := &MockAuthAPI{LoginResp: customerLoginResponse()}
	svc := NewAuthService(api, storage.NewMemoryStore(), &recorderNotifier{})
	assert.False(t, svc.IsAdmin())

	require.NoError(t, svc.Login(context.Background(), "jdoe@example.com", "secret"))
	assert.False(t, svc.IsAdmin())
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	api := &MockAuthAPI{RegisteredUser: &models.User{ID: "u2"}}
	notifier := &recorderNotifier{}
	svc := NewAuthService(api, storage.NewMemoryStore(), notifier)

	require.NoError(t, svc.Register(context.Background(), models.RegisterRequest{
		Username: "new", Email: "new@example.com", Password: "secret123",
	}))

	assert.False(t, svc.IsAuthenticated())
	n := notifier.last()
	assert.Equal(t, "Registration successful", n.Title)
	assert.Equal(t, "Your account has been created. Please log in.", n.Message)
}

func TestRegister_FailureSurfacesReason(t *testing.T) {
	api := &MockAuthAPI{RegisterErr: &client.APIError{
		StatusCode: 400,
		Detail:     "User with this email or username already exists",
	}}
	notifier := &recorderNotifier{}
	svc := NewAuthService(api, storage.NewMemoryStore(), notifier)

	require.Error(t, svc.Register(context.Background(), models.RegisterRequest{}))
	assert.Equal(t, "User with this email or username already exists", notifier.last().Message)
}

func TestLogout_ClearsMemoryAndStorage(t *testing.T) {
	api := &MockAuthAPI{LoginResp: customerLoginResponse()}
	store := storage.NewMemoryStore()
	notifier := &recorderNotifier{}
	svc := NewAuthService(api, store, notifier)
	require.NoError(t, svc.Login(context.Background(), "jdoe@example.com", "secret"))

	svc.Logout()

	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, svc.Token())
	_, err := store.Get(storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.Get(storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	n := notifier.last()
	assert.Equal(t, "Logged out", n.Title)
	assert.Equal(t, "You have been successfully logged out.", n.Message)
}

func seedSession(t *testing.T, store storage.Store, token string, user any) {
	t.Helper()
	if token != "" {
		require.NoError(t, store.Set(storage.KeyToken, token))
	}
	if user != nil {
		payload, err := json.Marshal(user)
		require.NoError(t, err)
		require.NoError(t, store.Set(storage.KeyUser, string(payload)))
	}
}

func TestRestore_ValidPair(t *testing.T) {
	token, err := utils.GenerateToken("secret", "u1", "jdoe@example.com", "customer", time.Hour)
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	seedSession(t, store, token, models.User{ID: "u1", Email: "jdoe@example.com", Role: "customer"})

	svc := NewAuthService(&MockAuthAPI{}, store, &recorderNotifier{})
	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, token, svc.Token())
}

func TestRestore_CorruptedUserDiscardsBoth(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyToken, "token-123"))
	require.NoError(t, store.Set(storage.KeyUser, "{broken"))

	svc := NewAuthService(&MockAuthAPI{}, store, &recorderNotifier{})

	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, svc.Token())
	_, err := store.Get(storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.Get(storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRestore_MissingTokenDiscardsUser(t *testing.T) {
	store := storage.NewMemoryStore()
	seedSession(t, store, "", models.User{ID: "u1"})

	svc := NewAuthService(&MockAuthAPI{}, store, &recorderNotifier{})

	assert.False(t, svc.IsAuthenticated())
	_, err := store.Get(storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRestore_ExpiredTokenDiscardsBoth(t *testing.T) {
	token, err := utils.GenerateToken("secret", "u1", "jdoe@example.com", "customer", -time.Hour)
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	seedSession(t, store, token, models.User{ID: "u1", Email: "jdoe@example.com"})

	svc := NewAuthService(&MockAuthAPI{}, store, &recorderNotifier{})

	assert.False(t, svc.IsAuthenticated())
	_, getErr := store.Get(storage.KeyToken)
	assert.ErrorIs(t, getErr, storage.ErrNotFound)
}
