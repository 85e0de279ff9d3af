package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aka-Harsh/eventbook/internal/client/api"
	"github.com/aka-Harsh/eventbook/internal/client/models"
	"github.com/aka-Harsh/eventbook/internal/logging"
)

// fakeClient implements just the account surface of api.Client; the
// embedded interface panics if anything else is called, which would flag a
// store reaching past its contract.
type fakeClient struct {
	api.Client

	AuthenticateRet *models.User
	AuthenticateErr error
	RegisterErr     error

	LastEmail    string
	LastPassword string
	LastRegister models.RegisterRequest
}

func (f *fakeClient) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	f.LastEmail = email
	f.LastPassword = password
	return f.AuthenticateRet, f.AuthenticateErr
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	f.LastRegister = req
	return nil, f.RegisterErr
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func newTestStore(t *testing.T, client api.Client) (*Store, *FilePersistence) {
	t.Helper()
	p := NewFilePersistence(filepath.Join(t.TempDir(), "session.json"))
	return NewStore(client, p, testLogger()), p
}

func TestLogin_SuccessSetsAndPersistsIdentity(t *testing.T) {
	john := &models.User{ID: 2, Name: "John", Email: "john@example.com", Role: models.RoleUser}
	client := &fakeClient{AuthenticateRet: john}
	store, p := newTestStore(t, client)

	res := store.Login(context.Background(), "john@example.com", "password123")

	require.True(t, res.OK)
	assert.Equal(t, john, store.Current())
	assert.Equal(t, "john@example.com", client.LastEmail)
	assert.Equal(t, "password123", client.LastPassword)

	persisted, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, john, persisted)
}

func TestLogin_RejectionSurfacesServiceMessage(t *testing.T) {
	client := &fakeClient{AuthenticateErr: &api.RequestError{Status: 400, Message: "Invalid credentials"}}
	store, p := newTestStore(t, client)

	res := store.Login(context.Background(), "john@example.com", "wrong")

	assert.False(t, res.OK)
	assert.Equal(t, "Invalid credentials", res.Message)
	assert.Nil(t, store.Current())

	persisted, err := p.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestLogin_TransportFailureGetsGenericMessage(t *testing.T) {
	client := &fakeClient{AuthenticateErr: api.ErrUnavailable}
	store, _ := newTestStore(t, client)

	res := store.Login(context.Background(), "john@example.com", "password123")

	assert.False(t, res.OK)
	assert.Equal(t, "Login failed", res.Message)
	assert.Nil(t, store.Current())
}

func TestLogout_ClearsIdentityAndPersistedRecord(t *testing.T) {
	john := &models.User{ID: 2, Name: "John", Email: "john@example.com", Role: models.RoleUser}
	client := &fakeClient{AuthenticateRet: john}
	store, p := newTestStore(t, client)
	require.True(t, store.Login(context.Background(), "john@example.com", "password123").OK)

	store.Logout(context.Background())

	assert.Nil(t, store.Current())

	// A fresh store over the same file must come up logged out.
	restored := NewStore(client, p, testLogger())
	restored.Restore(context.Background())
	assert.Nil(t, restored.Current())
}

func TestRestore_RoundTrip(t *testing.T) {
	admin := &models.User{ID: 1, Name: "Ava", Email: "ava@example.com", Role: models.RoleAdmin}
	client := &fakeClient{AuthenticateRet: admin}
	store, p := newTestStore(t, client)
	require.True(t, store.Login(context.Background(), "ava@example.com", "secret").OK)

	restored := NewStore(client, p, testLogger())
	restored.Restore(context.Background())

	assert.Equal(t, admin, restored.Current())
}

func TestRestore_MalformedRecordMeansLoggedOut(t *testing.T) {
	p := NewFilePersistence(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, os.WriteFile(p.Path(), []byte("{broken"), 0o600))
	store := NewStore(&fakeClient{}, p, testLogger())

	store.Restore(context.Background())

	assert.Nil(t, store.Current())
}

func TestRegister_DoesNotLogIn(t *testing.T) {
	client := &fakeClient{}
	store, _ := newTestStore(t, client)

	res := store.Register(context.Background(), models.RegisterRequest{
		Name: "John", Email: "john@example.com", Password: "password123", Role: models.RoleUser,
	})

	require.True(t, res.OK)
	assert.Nil(t, store.Current())
	assert.Equal(t, "John", client.LastRegister.Name)
}

func TestRegister_FailureSurfacesMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"service rejection", &api.RequestError{Status: 400, Message: "Email already registered"}, "Email already registered"},
		{"transport failure", errors.New("connection refused"), "Registration failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := newTestStore(t, &fakeClient{RegisterErr: tc.err})

			res := store.Register(context.Background(), models.RegisterRequest{Name: "x"})

			assert.False(t, res.OK)
			assert.Equal(t, tc.want, res.Message)
		})
	}
}
