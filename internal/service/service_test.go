package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/operator"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/upload"
)

// mockUploader is a mock for upload.Uploader.
type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, file *upload.File) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

// newTestStorage opens a bbolt store in a temp dir with a running operator.
func newTestStorage(t *testing.T) (*storage.Storage, *operator.OperatorDelegator) {
	t.Helper()
	store, err := storage.NewBoltStorage(filepath.Join(t.TempDir(), "budget.db"))
	require.NoError(t, err)

	op := operator.NewOperatorDelegator(store, 1, logging.SetupLogging("error"))
	op.Start()
	t.Cleanup(func() {
		op.Stop()
		_ = store.Close()
	})
	return store, op
}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedAccount(t *testing.T, svc *AccountService, name string, balance int64) Account {
	t.Helper()
	id, err := svc.CreateAccount(context.Background(), Account{Name: name, Kind: "banco", Balance: balance})
	require.NoError(t, err)
	account, err := svc.GetAccount(context.Background(), id)
	require.NoError(t, err)
	return *account
}
