// internal/service/group.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/repository"
)

// GroupService is the membership lifecycle engine: group creation, join
// requests, approval and rejection, kicks, owner edits, and the
// notification side effects those transitions produce.
type GroupService struct {
	groups        repository.GroupRepositoryIface
	memberships   repository.MembershipRepositoryIface
	notifications *NotificationService
	validate      *validator.Validate
}

func NewGroupService(
	groups repository.GroupRepositoryIface,
	memberships repository.MembershipRepositoryIface,
	notifications *NotificationService,
) *GroupService {
	return &GroupService{
		groups:        groups,
		memberships:   memberships,
		notifications: notifications,
		validate:      validator.New(),
	}
}

type GroupInput struct {
	Subject      string   `json:"subject" validate:"required"`
	SmallDesc    string   `json:"smallDesc"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime" validate:"required"`
	EndTime      string   `json:"endTime" validate:"required"`
	Capacity     int      `json:"capacity"`
	TypeOfStudy  string   `json:"typeOfStudy"`
	ScheduleType string   `json:"scheduleType"`
	Language     string   `json:"language"`
	Location     string   `json:"location"`
	Tags         []string `json:"tags"`
}

// CreateGroup creates the group, its tag links and the owner's
// admin/approved membership in one transaction.
func (s *GroupService) CreateGroup(ctx context.Context, ownerID uuid.UUID, input GroupInput) (*model.GroupSummary, error) {
	start, end, err := s.validateGroupInput(input)
	if err != nil {
		return nil, err
	}

	group := &model.Group{
		Subject:      input.Subject,
		SmallDesc:    input.SmallDesc,
		Description:  input.Description,
		Date:         input.Date,
		StartTime:    start,
		EndTime:      end,
		Capacity:     coerceCapacity(input.Capacity),
		TypeOfStudy:  input.TypeOfStudy,
		ScheduleType: input.ScheduleType,
		Language:     input.Language,
		Location:     input.Location,
		CreatedBy:    ownerID,
	}

	if err := s.groups.CreateWithOwner(ctx, group, input.Tags); err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	created, err := s.groups.FindByID(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading group: %w", err)
	}
	return s.groups.Summarize(ctx, created)
}

// RequestJoin submits a pending membership request. Any existing row for
// the pair, whatever its status, blocks a new request; the composite
// unique index makes this hold under concurrent submissions too.
func (s *GroupService) RequestJoin(ctx context.Context, userID, groupID uuid.UUID) (*model.Membership, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return nil, err
	}

	membership := &model.Membership{
		UserID:  userID,
		GroupID: groupID,
		Role:    model.RoleMember,
		Status:  model.StatusPending,
	}
	if err := s.memberships.Create(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

// ListPendingRequests returns a group's pending join requests for one of
// its admins.
func (s *GroupService) ListPendingRequests(ctx context.Context, requesterID, groupID uuid.UUID) ([]model.JoinRequest, error) {
	isAdmin, err := s.memberships.HasAdmin(ctx, requesterID, groupID)
	if err != nil {
		return nil, fmt.Errorf("checking admin membership: %w", err)
	}
	if !isAdmin {
		return nil, domain.ErrNotGroupAdmin
	}
	return s.memberships.FindPendingByGroup(ctx, groupID)
}

// ListAllPendingRequests returns pending requests across every group the
// user created, for the dashboard view.
func (s *GroupService) ListAllPendingRequests(ctx context.Context, ownerID uuid.UUID) ([]model.JoinRequest, error) {
	return s.memberships.FindPendingByOwner(ctx, ownerID)
}

// ResolveRequest approves or rejects a pending join request and notifies
// the requester of the outcome.
func (s *GroupService) ResolveRequest(ctx context.Context, requesterID, membershipID uuid.UUID, decision model.MembershipStatus) (*model.Membership, error) {
	if decision != model.StatusApproved && decision != model.StatusRejected {
		return nil, domain.ErrInvalidDecision
	}

	membership, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	isAdmin, err := s.memberships.HasAdmin(ctx, requesterID, membership.GroupID)
	if err != nil {
		return nil, fmt.Errorf("checking admin membership: %w", err)
	}
	if !isAdmin {
		return nil, domain.ErrNotGroupAdmin
	}

	if err := s.memberships.UpdateStatus(ctx, membershipID, decision); err != nil {
		return nil, err
	}
	membership.Status = decision

	// The requester learns the outcome from an explicit notification
	// rather than by polling the membership list.
	subject := ""
	if group, err := s.groups.FindByID(ctx, membership.GroupID); err == nil {
		subject = group.Subject
	}
	verb := "approved"
	if decision == model.StatusRejected {
		verb = "rejected"
	}
	s.notifyQuietly(ctx, &model.Notification{
		UserID:  membership.UserID,
		Message: fmt.Sprintf("Your request to join the group %q has been %s.", subject, verb),
		GroupID: &membership.GroupID,
		Type:    model.NotificationInfo,
	})

	return membership, nil
}

// KickMember removes every membership row for the member and tells them.
// Owners cannot kick themselves.
func (s *GroupService) KickMember(ctx context.Context, ownerID, groupID, memberID uuid.UUID) error {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.CreatedBy != ownerID {
		return domain.ErrNotGroupOwner
	}
	if memberID == ownerID {
		return domain.ErrCannotKickSelf
	}

	if err := s.memberships.DeleteByUserAndGroup(ctx, memberID, groupID); err != nil {
		return err
	}

	s.notifyQuietly(ctx, &model.Notification{
		UserID:  memberID,
		Message: fmt.Sprintf("You have been removed from the group %q.", group.Subject),
		GroupID: &groupID,
		Type:    model.NotificationInfo,
	})
	return nil
}

// UpdateGroup applies an owner's edit and then fans out one update
// notification per approved non-owner member. The fan-out runs after the
// edit is committed and is best effort: a failed notification is logged
// and skipped, never unwinding the edit.
func (s *GroupService) UpdateGroup(ctx context.Context, ownerID, groupID uuid.UUID, input GroupInput) (*model.GroupSummary, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.CreatedBy != ownerID {
		return nil, domain.ErrNotGroupOwner
	}

	start, end, err := s.validateGroupInput(input)
	if err != nil {
		return nil, err
	}

	group.Subject = input.Subject
	group.SmallDesc = input.SmallDesc
	group.Description = input.Description
	group.Date = input.Date
	group.StartTime = start
	group.EndTime = end
	group.Capacity = coerceCapacity(input.Capacity)
	group.TypeOfStudy = input.TypeOfStudy
	group.ScheduleType = input.ScheduleType
	group.Language = input.Language
	group.Location = input.Location

	if err := s.groups.Update(ctx, group); err != nil {
		return nil, err
	}

	members, err := s.memberships.FindApprovedByGroup(ctx, groupID)
	if err != nil {
		slog.ErrorContext(ctx, "listing members for update fan-out", "error", err, "groupID", groupID)
	} else {
		message := fmt.Sprintf("The group %q has been updated by the owner.", group.Subject)
		for _, m := range members {
			if m.UserID == ownerID {
				continue
			}
			s.notifyQuietly(ctx, &model.Notification{
				UserID:  m.UserID,
				Message: message,
				GroupID: &groupID,
				Type:    model.NotificationUpdate,
			})
		}
	}

	return s.groups.Summarize(ctx, group)
}

// ListApprovedMembers returns the roster. Owner-only: the roster view is
// entangled with the edit/kick surface.
func (s *GroupService) ListApprovedMembers(ctx context.Context, requesterID, groupID uuid.UUID) ([]model.Member, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.CreatedBy != requesterID {
		return nil, domain.ErrNotGroupOwner
	}
	return s.memberships.FindApprovedMembers(ctx, groupID)
}

func (s *GroupService) GetGroup(ctx context.Context, groupID uuid.UUID) (*model.GroupSummary, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.groups.Summarize(ctx, group)
}

func (s *GroupService) ListGroups(ctx context.Context) ([]model.GroupSummary, error) {
	return s.groups.FindAll(ctx)
}

func (s *GroupService) SearchGroups(ctx context.Context, query string) ([]model.GroupSummary, error) {
	return s.groups.Search(ctx, query)
}

func (s *GroupService) ListMyGroups(ctx context.Context, userID uuid.UUID) ([]model.GroupSummary, error) {
	return s.groups.FindByMember(ctx, userID)
}

func (s *GroupService) ListCreatedGroups(ctx context.Context, userID uuid.UUID) ([]model.GroupSummary, error) {
	return s.groups.FindByCreator(ctx, userID)
}

func (s *GroupService) ListSuggestedGroups(ctx context.Context, userID uuid.UUID) ([]model.GroupSummary, error) {
	return s.groups.FindSuggested(ctx, userID, 20)
}

func (s *GroupService) validateGroupInput(input GroupInput) (start, end time.Time, err error) {
	if err := s.validate.Struct(input); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	start, err = parseDateTime(input.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unparsable startTime %q", domain.ErrInvalidInput, input.StartTime)
	}
	end, err = parseDateTime(input.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unparsable endTime %q", domain.ErrInvalidInput, input.EndTime)
	}
	return start, end, nil
}

// parseDateTime accepts the formats the web client actually submits.
func parseDateTime(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date-time %q", value)
}

// coerceCapacity clamps capacity to a non-negative integer; absent or
// nonsense values become 0 (capacity is display-only, never enforced).
func coerceCapacity(capacity int) int {
	if capacity < 0 {
		return 0
	}
	return capacity
}

// notifyQuietly writes a notification, logging instead of failing the
// surrounding operation. Losing a notification is tolerable; losing the
// state transition that produced it is not.
func (s *GroupService) notifyQuietly(ctx context.Context, n *model.Notification) {
	if err := s.notifications.Notify(ctx, n); err != nil {
		slog.ErrorContext(ctx, "writing notification", "error", err, "userID", n.UserID, "type", n.Type)
	}
}
