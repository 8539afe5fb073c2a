package session

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thegriller/internal/remote"
)

// fakeAuth scripts the remote auth endpoints and counts calls so
// restore tests can prove no network round trip happened.
type fakeAuth struct {
	resp *remote.AuthResponse
	err  error

	mu    sync.Mutex
	calls int
}

func (f *fakeAuth) Login(context.Context, string, string, string) (*remote.AuthResponse, error) {
	f.record()
	return f.resp, f.err
}

func (f *fakeAuth) Register(context.Context, string, string, string, string) (*remote.AuthResponse, error) {
	f.record()
	return f.resp, f.err
}

func (f *fakeAuth) record() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func okResponse() *remote.AuthResponse {
	phone := "555-0100"
	return &remote.AuthResponse{
		Token: "tok-123",
		User:  remote.AuthUser{ID: 42, Name: "Ada", Email: "ada@example.com", Role: RoleCustomer, Phone: &phone},
	}
}

func newTestStore(t *testing.T, auth Authenticator) (*Store, Storage) {
	t.Helper()
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return NewStore(auth, storage, testLogger()), storage
}

func TestLoginEstablishesSession(t *testing.T) {
	store, storage := newTestStore(t, &fakeAuth{resp: okResponse()})

	user, err := store.Login(context.Background(), "ada@example.com", "pw", RoleCustomer)
	require.NoError(t, err)

	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "555-0100", user.Phone)
	assert.Equal(t, "tok-123", store.Token())
	require.NotNil(t, store.Current())
	assert.Equal(t, "ada@example.com", store.Current().Email)

	tok, err := storage.Get(keyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	store, storage := newTestStore(t, &fakeAuth{
		err: &remote.APIError{Status: 401, Message: "invalid email or password"},
	})

	_, err := store.Login(context.Background(), "bad@x.com", "wrong", RoleCustomer)
	require.Error(t, err)

	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())

	tok, _ := storage.Get(keyToken)
	assert.Empty(t, tok, "nothing may be persisted on a failed login")
}

func TestRegisterAutoLogin(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuth{resp: okResponse()})

	user, err := store.Register(context.Background(), "Ada", "ada@example.com", "pw", "")
	require.NoError(t, err)

	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "tok-123", store.Token(), "signup establishes a session")
}

func TestLogoutClearsEverything(t *testing.T) {
	store, storage := newTestStore(t, &fakeAuth{resp: okResponse()})
	_, err := store.Login(context.Background(), "ada@example.com", "pw", RoleCustomer)
	require.NoError(t, err)

	store.Logout()

	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())
	tok, _ := storage.Get(keyToken)
	assert.Empty(t, tok)
	usr, _ := storage.Get(keyUser)
	assert.Empty(t, usr)
}

func TestConcurrentAuthKeepsStorageInStep(t *testing.T) {
	store, storage := newTestStore(t, &fakeAuth{resp: okResponse()})

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Login(context.Background(), "ada@example.com", "pw", RoleCustomer)
		}()
		go func() {
			defer wg.Done()
			store.Logout()
		}()
	}
	wg.Wait()

	// Whichever operation won, storage and memory must tell the same
	// story.
	tok, err := storage.Get(keyToken)
	require.NoError(t, err)
	assert.Equal(t, store.Token(), tok)

	raw, err := storage.Get(keyUser)
	require.NoError(t, err)
	if store.Current() == nil {
		assert.Empty(t, raw)
	} else {
		assert.NotEmpty(t, raw)
	}
}

func TestRestoreWithoutNetwork(t *testing.T) {
	auth := &fakeAuth{resp: okResponse()}
	store, storage := newTestStore(t, auth)
	_, err := store.Login(context.Background(), "ada@example.com", "pw", RoleCustomer)
	require.NoError(t, err)
	loggedIn := store.Current()
	loginCalls := auth.calls

	// A fresh store over the same storage stands in for a restart.
	restored := NewStore(auth, storage, testLogger())
	require.NoError(t, restored.Restore())

	assert.Equal(t, loggedIn, restored.Current(), "restored user must be identical")
	assert.Equal(t, "tok-123", restored.Token())
	assert.Equal(t, loginCalls, auth.calls, "restore must not contact the auth endpoint")
}

func TestRestoreEmptyStorage(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuth{})

	require.NoError(t, store.Restore())

	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())
}
