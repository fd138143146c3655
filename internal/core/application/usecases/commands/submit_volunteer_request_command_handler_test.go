package commands_test

import (
	"testing"

	"fooddonation/internal/core/application/usecases/commands"
	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
	"fooddonation/internal/core/domain/model/volunteer"
	"fooddonation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitVolunteerRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, account.RoleVolunteer)

	profile, err := volunteer.RestoreProfile(kernel.NewUUID(), actor.ID(), "Asha", true, nil)
	require.NoError(t, err)
	ngoProfile := testNgoProfile(t, kernel.NewUUID())

	requestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitVolunteerRequestCommand(requestID, ngoProfile.ID(), actor)
	require.NoError(t, err)

	volunteerRepo := new(MockScheduleVolunteerRepository)
	ngoRepo := new(MockScheduleNgoRepository)
	joinRequestRepo := new(MockJoinRequestRepository)
	uow := new(MockMembershipUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JoinRequestRepository").Return(joinRequestRepo).Once(),
		uow.On("VolunteerRepository").Return(volunteerRepo).Once(),
		volunteerRepo.On("GetByUserID", ctx, actor.ID()).Return(profile, nil).Once(),
		uow.On("NgoRepository").Return(ngoRepo).Once(),
		ngoRepo.On("Get", ctx, ngoProfile.ID()).Return(ngoProfile, nil).Once(),
		joinRequestRepo.On("HasActive", ctx, ngoProfile.ID(), profile.ID()).Return(false, nil).Once(),
		joinRequestRepo.On("Add", ctx, mock.AnythingOfType("*ngo.JoinRequest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMembershipUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitVolunteerRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := joinRequestRepo.Calls[1]
	added := addCall.Arguments[1].(*ngo.JoinRequest)
	assert.True(t, added.ID().IsEqual(requestID))
	assert.True(t, added.NgoID().IsEqual(ngoProfile.ID()))
	assert.True(t, added.VolunteerID().IsEqual(profile.ID()))
	assert.Equal(t, ngo.JoinRequestStatusPending, added.Status())

	joinRequestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitVolunteerRequestCommandHandler_Handle_DuplicateActiveRequest(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, account.RoleVolunteer)

	profile, err := volunteer.RestoreProfile(kernel.NewUUID(), actor.ID(), "Asha", true, nil)
	require.NoError(t, err)
	ngoProfile := testNgoProfile(t, kernel.NewUUID())

	cmd, err := commands.NewSubmitVolunteerRequestCommand(kernel.NewUUID(), ngoProfile.ID(), actor)
	require.NoError(t, err)

	volunteerRepo := new(MockScheduleVolunteerRepository)
	ngoRepo := new(MockScheduleNgoRepository)
	joinRequestRepo := new(MockJoinRequestRepository)
	uow := new(MockMembershipUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JoinRequestRepository").Return(joinRequestRepo).Once(),
		uow.On("VolunteerRepository").Return(volunteerRepo).Once(),
		volunteerRepo.On("GetByUserID", ctx, actor.ID()).Return(profile, nil).Once(),
		uow.On("NgoRepository").Return(ngoRepo).Once(),
		ngoRepo.On("Get", ctx, ngoProfile.ID()).Return(ngoProfile, nil).Once(),
		joinRequestRepo.On("HasActive", ctx, ngoProfile.ID(), profile.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMembershipUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitVolunteerRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	joinRequestRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitVolunteerRequestCommandHandler_Handle_AlreadyMember(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, account.RoleVolunteer)

	ngoProfile := testNgoProfile(t, kernel.NewUUID())
	profile, err := volunteer.RestoreProfile(
		kernel.NewUUID(), actor.ID(), "Asha", true, []kernel.UUID{ngoProfile.ID()},
	)
	require.NoError(t, err)

	cmd, err := commands.NewSubmitVolunteerRequestCommand(kernel.NewUUID(), ngoProfile.ID(), actor)
	require.NoError(t, err)

	volunteerRepo := new(MockScheduleVolunteerRepository)
	ngoRepo := new(MockScheduleNgoRepository)
	joinRequestRepo := new(MockJoinRequestRepository)
	uow := new(MockMembershipUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JoinRequestRepository").Return(joinRequestRepo).Once(),
		uow.On("VolunteerRepository").Return(volunteerRepo).Once(),
		volunteerRepo.On("GetByUserID", ctx, actor.ID()).Return(profile, nil).Once(),
		uow.On("NgoRepository").Return(ngoRepo).Once(),
		ngoRepo.On("Get", ctx, ngoProfile.ID()).Return(ngoProfile, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMembershipUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitVolunteerRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	joinRequestRepo.AssertNotCalled(t, "HasActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitVolunteerRequestCommandHandler_Handle_WrongRole(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, account.RoleDonor)

	cmd, err := commands.NewSubmitVolunteerRequestCommand(kernel.NewUUID(), kernel.NewUUID(), actor)
	require.NoError(t, err)

	factory := new(MockMembershipUoWFactory)
	handler := commands.NewSubmitVolunteerRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}
