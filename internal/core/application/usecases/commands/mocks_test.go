package commands_test

import (
	"context"
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/user"
	"parcel/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingID(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) AttachParcel(ctx context.Context, userID, parcelID kernel.UUID) error {
	args := m.Called(ctx, userID, parcelID)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newTestUser(t *testing.T, role user.Role, activity user.Activity, deleted bool) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.NewUUID(), "Test User", "test@example.com", "+8801712345678",
		role, activity, deleted)
	require.NoError(t, err)
	return u
}

func newTestReceiverInfo(t *testing.T) parcel.ReceiverInfo {
	t.Helper()
	address, err := parcel.NewAddress("12 Lake Road", "Dhaka", "", "", "")
	require.NoError(t, err)
	info, err := parcel.NewReceiverInfo("Rahim Uddin", "+8801712345678", address)
	require.NoError(t, err)
	return info
}

func newTestDetails(t *testing.T) parcel.Details {
	t.Helper()
	details, err := parcel.NewDetails(parcel.TypePackage, 1.5, "books", 300)
	require.NoError(t, err)
	return details
}

// newTestParcel builds a parcel owned by sender/receiver and drives it to the
// requested status through an admin override.
func newTestParcel(t *testing.T, sender, receiver *user.User, status parcel.Status) *parcel.Parcel {
	t.Helper()
	now := time.Now().UTC()

	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewTrackingID(now),
		sender.ID(), receiver.ID(), newTestReceiverInfo(t), newTestDetails(t), 120, now)
	require.NoError(t, err)

	if status != parcel.StatusRequested {
		require.NoError(t, p.OverrideStatus(kernel.NewUUID(), status, "", now))
	}
	return p
}
