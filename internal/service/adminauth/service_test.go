package adminauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepo struct {
	code string
}

func (r *fakeConfigRepo) UpsertAccessCode(_ context.Context, code string) error {
	r.code = code
	return nil
}

func (r *fakeConfigRepo) GetAccessCode(_ context.Context) (string, error) {
	return r.code, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSeedAndVerify(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Seed(context.Background(), "s3cret"))

	assert.NoError(t, svc.Verify(context.Background(), "s3cret"))
	assert.ErrorIs(t, svc.Verify(context.Background(), "wrong"), ErrAccessDenied)
	assert.ErrorIs(t, svc.Verify(context.Background(), ""), ErrAccessDenied)
}

func TestSeed_Overwrites(t *testing.T) {
	repo := &fakeConfigRepo{code: "1234"}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Seed(context.Background(), "new-code"))

	assert.ErrorIs(t, svc.Verify(context.Background(), "1234"), ErrAccessDenied)
	assert.NoError(t, svc.Verify(context.Background(), "new-code"))
}
