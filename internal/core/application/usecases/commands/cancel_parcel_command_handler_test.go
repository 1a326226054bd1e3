package commands_test

import (
	"errors"
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/user"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	sender := newTestUser(t, user.RoleUser, user.ActivityActive, false)
	receiver := newTestUser(t, user.RoleUser, user.ActivityActive, false)
	testParcel := newTestParcel(t, sender, receiver, parcel.StatusRequested)

	cmd, err := commands.NewCancelParcelCommand(sender.ID(), testParcel.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.StatusRequested, testParcel.Status())
	assert.Len(t, testParcel.StatusLogs(), 2)
	userRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelParcelCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCancelParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCancelParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelParcelCommandHandler_Handle_ActorNotFound(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	cmd, err := commands.NewCancelParcelCommand(actorID, kernel.NewUUID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, actorID).Return(nil, errs.NewObjectNotFoundError("userId", actorID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ParcelRepository")
}

func TestCancelParcelCommandHandler_Handle_BlockedActorCheckedBeforeParcel(t *testing.T) {
	ctx := t.Context()

	blocked := newTestUser(t, user.RoleUser, user.ActivityBlocked, false)
	cmd, err := commands.NewCancelParcelCommand(blocked.ID(), kernel.NewUUID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, blocked.ID()).Return(blocked, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationForbidden)
	uow.AssertNotCalled(t, "ParcelRepository")
}

func TestCancelParcelCommandHandler_Handle_NotSender(t *testing.T) {
	ctx := t.Context()

	sender := newTestUser(t, user.RoleUser, user.ActivityActive, false)
	receiver := newTestUser(t, user.RoleUser, user.ActivityActive, false)
	testParcel := newTestParcel(t, sender, receiver, parcel.StatusRequested)

	cmd, err := commands.NewCancelParcelCommand(receiver.ID(), testParcel.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, receiver.ID()).Return(receiver, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationForbidden)
	parcelRepo.AssertNotCalled(t, "Update")
}

func TestCancelParcelCommandHandler_Handle_InvalidState(t *testing.T) {
	ctx := t.Context()

	sender := newTestUser(t, user.RoleUser, user.ActivityActive, false)
	receiver := newTestUser(t, user.RoleUser, user.ActivityActive, false)
	testParcel := newTestParcel(t, sender, receiver, parcel.StatusInTransit)

	cmd, err := commands.NewCancelParcelCommand(sender.ID(), testParcel.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	parcelRepo.AssertNotCalled(t, "Update")
}

func TestCancelParcelCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()

	sender := newTestUser(t, user.RoleUser, user.ActivityActive, false)
	receiver := newTestUser(t, user.RoleUser, user.ActivityActive, false)
	testParcel := newTestParcel(t, sender, receiver, parcel.StatusApproved)

	cmd, err := commands.NewCancelParcelCommand(sender.ID(), testParcel.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit")
}
