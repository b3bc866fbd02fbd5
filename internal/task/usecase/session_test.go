package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/internal/model"
	"tasksync/internal/session"
	"tasksync/internal/session/repository/diskv"
	sessionUC "tasksync/internal/session/usecase"
	"tasksync/internal/task"
	"tasksync/internal/task/usecase"
	pkgLog "tasksync/pkg/log"
)

type noopAuthenticator struct{}

func (noopAuthenticator) Login(ctx context.Context, username, password string) (model.Credential, error) {
	return "", nil
}

func (noopAuthenticator) Register(ctx context.Context, username, password string) error { return nil }

func (noopAuthenticator) Probe(ctx context.Context, cred model.Credential) error { return nil }

func signedToken(t *testing.T) model.Credential {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return model.Credential(s)
}

func TestRejectionPurgesRealSession(t *testing.T) {
	ctx := context.Background()
	creds := diskv.New(t.TempDir(), "access_token")
	sess := sessionUC.New(pkgLog.NewNop(), creds, noopAuthenticator{})

	repo := newFakeRepo(newTask("1", "a", pending), newTask("2", "b", pending))
	store := usecase.New(pkgLog.NewNop(), repo, sess)
	sess.Subscribe(store.OnSessionEvent)

	require.NoError(t, sess.Login(ctx, signedToken(t)))
	require.NoError(t, store.Load(ctx, task.All()))
	require.Len(t, store.View().Tasks, 2)

	repo.deleteFunc = func(model.TaskID) error { return unauthorized }
	assert.ErrorIs(t, store.Delete(ctx, "1"), task.ErrUnauthorized)

	assert.Equal(t, session.StatusInvalid, sess.Status())
	_, err := creds.Load(ctx)
	assert.Error(t, err, "credential purged from storage")
	assert.Empty(t, store.View().Tasks, "task state dropped with the session")

	assert.ErrorIs(t, store.Load(ctx, task.All()), task.ErrUnauthorized)
}

func TestLogoutDropsTaskState(t *testing.T) {
	ctx := context.Background()
	sess := sessionUC.New(pkgLog.NewNop(), diskv.New(t.TempDir(), "access_token"), noopAuthenticator{})
	store := usecase.New(pkgLog.NewNop(), newFakeRepo(newTask("1", "a", pending)), sess)
	sess.Subscribe(store.OnSessionEvent)

	require.NoError(t, sess.Login(ctx, signedToken(t)))
	require.NoError(t, store.Load(ctx, task.All()))
	require.True(t, store.Select("1"))

	require.NoError(t, sess.Logout(ctx))
	v := store.View()
	assert.Empty(t, v.Tasks)
	assert.Nil(t, v.Selected)
}
