package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/mocks"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/service"
	"go.uber.org/mock/gomock"
)

func validGroupInput() service.GroupInput {
	return service.GroupInput{
		Subject:      "Linear Algebra",
		SmallDesc:    "Midterm prep",
		Description:  "Working through eigenvalues and diagonalization.",
		Date:         "2025-10-01",
		StartTime:    "2025-10-01T10:00",
		EndTime:      "2025-10-01T12:00",
		Capacity:     6,
		TypeOfStudy:  "exam prep",
		ScheduleType: "once",
		Language:     "English",
		Location:     "Library",
		Tags:         []string{"math", "linear-algebra"},
	}
}

func TestCreateGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	t.Run("creates group with owner membership in one call", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupID := uuid.New()
		input := validGroupInput()

		groupRepo.EXPECT().
			CreateWithOwner(gomock.Any(), gomock.Any(), input.Tags).
			DoAndReturn(func(_ context.Context, group *model.Group, _ []string) error {
				assert.Equal(t, ownerID, group.CreatedBy)
				assert.Equal(t, input.Subject, group.Subject)
				assert.Equal(t, 6, group.Capacity)
				group.ID = groupID
				return nil
			})
		groupRepo.EXPECT().
			FindByID(gomock.Any(), groupID).
			Return(&model.Group{ID: groupID, Subject: input.Subject, CreatedBy: ownerID}, nil)
		groupRepo.EXPECT().
			Summarize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, group *model.Group) (*model.GroupSummary, error) {
				return &model.GroupSummary{Group: *group, TagNames: input.Tags, MemberCount: 1}, nil
			})

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		summary, err := svc.CreateGroup(context.Background(), ownerID, input)

		assert.NoError(t, err)
		assert.Equal(t, groupID, summary.ID)
		assert.Equal(t, int64(1), summary.MemberCount)
	})

	t.Run("rejects missing subject before touching the store", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		input := validGroupInput()
		input.Subject = ""

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.CreateGroup(context.Background(), ownerID, input)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects unparsable start time", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		input := validGroupInput()
		input.StartTime = "next tuesday"

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.CreateGroup(context.Background(), ownerID, input)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("clamps negative capacity to zero", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupID := uuid.New()
		input := validGroupInput()
		input.Capacity = -3

		groupRepo.EXPECT().
			CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, group *model.Group, _ []string) error {
				assert.Equal(t, 0, group.Capacity)
				group.ID = groupID
				return nil
			})
		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID}, nil)
		groupRepo.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(&model.GroupSummary{}, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.CreateGroup(context.Background(), ownerID, input)

		assert.NoError(t, err)
	})
}

func TestRequestJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	groupID := uuid.New()

	t.Run("creates a pending member request", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID}, nil)
		membershipRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, membership *model.Membership) error {
				assert.Equal(t, model.RoleMember, membership.Role)
				assert.Equal(t, model.StatusPending, membership.Status)
				return nil
			})

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		membership, err := svc.RequestJoin(context.Background(), userID, groupID)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, membership.Status)
	})

	t.Run("duplicate request surfaces as a conflict", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID}, nil)
		membershipRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateRequest)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.RequestJoin(context.Background(), userID, groupID)

		assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
	})

	t.Run("unknown group", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(nil, domain.ErrGroupNotFound)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.RequestJoin(context.Background(), userID, groupID)

		assert.ErrorIs(t, err, domain.ErrGroupNotFound)
	})
}

func TestResolveRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	requesterID := uuid.New()
	groupID := uuid.New()
	membershipID := uuid.New()

	pending := func() *model.Membership {
		return &model.Membership{
			ID:      membershipID,
			UserID:  requesterID,
			GroupID: groupID,
			Role:    model.RoleMember,
			Status:  model.StatusPending,
		}
	}

	t.Run("rejects decisions other than approved or rejected", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.ResolveRequest(context.Background(), adminID, membershipID, model.StatusPending)

		assert.ErrorIs(t, err, domain.ErrInvalidDecision)
	})

	t.Run("approval updates the row and notifies the requester", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		membershipRepo.EXPECT().FindByID(gomock.Any(), membershipID).Return(pending(), nil)
		membershipRepo.EXPECT().HasAdmin(gomock.Any(), adminID, groupID).Return(true, nil)
		membershipRepo.EXPECT().UpdateStatus(gomock.Any(), membershipID, model.StatusApproved).Return(nil)
		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID, Subject: "Linear Algebra"}, nil)
		notificationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) error {
				assert.Equal(t, requesterID, n.UserID)
				assert.Equal(t, model.NotificationInfo, n.Type)
				assert.Contains(t, n.Message, "approved")
				assert.Contains(t, n.Message, "Linear Algebra")
				return nil
			})

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		membership, err := svc.ResolveRequest(context.Background(), adminID, membershipID, model.StatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusApproved, membership.Status)
	})

	t.Run("rejection notifies with the rejected outcome", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		membershipRepo.EXPECT().FindByID(gomock.Any(), membershipID).Return(pending(), nil)
		membershipRepo.EXPECT().HasAdmin(gomock.Any(), adminID, groupID).Return(true, nil)
		membershipRepo.EXPECT().UpdateStatus(gomock.Any(), membershipID, model.StatusRejected).Return(nil)
		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID, Subject: "Linear Algebra"}, nil)
		notificationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) error {
				assert.Contains(t, n.Message, "rejected")
				return nil
			})

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		membership, err := svc.ResolveRequest(context.Background(), adminID, membershipID, model.StatusRejected)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusRejected, membership.Status)
	})

	t.Run("non-admin cannot resolve", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		membershipRepo.EXPECT().FindByID(gomock.Any(), membershipID).Return(pending(), nil)
		membershipRepo.EXPECT().HasAdmin(gomock.Any(), adminID, groupID).Return(false, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.ResolveRequest(context.Background(), adminID, membershipID, model.StatusApproved)

		assert.ErrorIs(t, err, domain.ErrNotGroupAdmin)
	})

	t.Run("a failed notification does not unwind the transition", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		membershipRepo.EXPECT().FindByID(gomock.Any(), membershipID).Return(pending(), nil)
		membershipRepo.EXPECT().HasAdmin(gomock.Any(), adminID, groupID).Return(true, nil)
		membershipRepo.EXPECT().UpdateStatus(gomock.Any(), membershipID, model.StatusApproved).Return(nil)
		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID}, nil)
		notificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("store down"))

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		membership, err := svc.ResolveRequest(context.Background(), adminID, membershipID, model.StatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusApproved, membership.Status)
	})
}

func TestKickMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	memberID := uuid.New()
	groupID := uuid.New()

	t.Run("only the owner can kick", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID, CreatedBy: uuid.New()}, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		err := svc.KickMember(context.Background(), ownerID, groupID, memberID)

		assert.ErrorIs(t, err, domain.ErrNotGroupOwner)
	})

	t.Run("owner cannot kick themselves", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID, CreatedBy: ownerID}, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		err := svc.KickMember(context.Background(), ownerID, groupID, ownerID)

		assert.ErrorIs(t, err, domain.ErrCannotKickSelf)
	})

	t.Run("kick deletes the membership and informs the member", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID, CreatedBy: ownerID, Subject: "Linear Algebra"}, nil)
		membershipRepo.EXPECT().DeleteByUserAndGroup(gomock.Any(), memberID, groupID).Return(nil)
		notificationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) error {
				assert.Equal(t, memberID, n.UserID)
				assert.Equal(t, model.NotificationInfo, n.Type)
				assert.Contains(t, n.Message, "removed")
				return nil
			})

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		err := svc.KickMember(context.Background(), ownerID, groupID, memberID)

		assert.NoError(t, err)
	})
}

func TestUpdateGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	groupID := uuid.New()

	t.Run("only the owner can edit", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID, CreatedBy: uuid.New()}, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.UpdateGroup(context.Background(), ownerID, groupID, validGroupInput())

		assert.ErrorIs(t, err, domain.ErrNotGroupOwner)
	})

	t.Run("fan-out reaches every approved member except the owner", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		memberA := uuid.New()
		memberB := uuid.New()

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID, CreatedBy: ownerID}, nil)
		groupRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		membershipRepo.EXPECT().FindApprovedByGroup(gomock.Any(), groupID).Return([]model.Membership{
			{UserID: ownerID, GroupID: groupID, Role: model.RoleAdmin, Status: model.StatusApproved},
			{UserID: memberA, GroupID: groupID, Role: model.RoleMember, Status: model.StatusApproved},
			{UserID: memberB, GroupID: groupID, Role: model.RoleMember, Status: model.StatusApproved},
		}, nil)

		notified := map[uuid.UUID]bool{}
		notificationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Times(2).
			DoAndReturn(func(_ context.Context, n *model.Notification) error {
				assert.Equal(t, model.NotificationUpdate, n.Type)
				assert.NotEqual(t, ownerID, n.UserID)
				notified[n.UserID] = true
				return nil
			})
		groupRepo.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(&model.GroupSummary{}, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.UpdateGroup(context.Background(), ownerID, groupID, validGroupInput())

		assert.NoError(t, err)
		assert.True(t, notified[memberA])
		assert.True(t, notified[memberB])
	})
}

func TestListPendingRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	groupID := uuid.New()

	t.Run("requires an admin membership", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		membershipRepo.EXPECT().HasAdmin(gomock.Any(), userID, groupID).Return(false, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.ListPendingRequests(context.Background(), userID, groupID)

		assert.ErrorIs(t, err, domain.ErrNotGroupAdmin)
	})

	t.Run("admin sees the pending queue", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		membershipRepo.EXPECT().HasAdmin(gomock.Any(), userID, groupID).Return(true, nil)
		membershipRepo.EXPECT().FindPendingByGroup(gomock.Any(), groupID).Return([]model.JoinRequest{
			{Membership: model.Membership{GroupID: groupID, Status: model.StatusPending}},
		}, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		requests, err := svc.ListPendingRequests(context.Background(), userID, groupID)

		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})
}

func TestListApprovedMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()

	t.Run("roster is owner-only", func(t *testing.T) {
		groupRepo := mocks.NewMockGroupRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		groupRepo.EXPECT().FindByID(gomock.Any(), groupID).Return(&model.Group{ID: groupID, CreatedBy: uuid.New()}, nil)

		svc := service.NewGroupService(groupRepo, membershipRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.ListApprovedMembers(context.Background(), uuid.New(), groupID)

		assert.ErrorIs(t, err, domain.ErrNotGroupOwner)
	})
}
