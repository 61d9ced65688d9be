// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/model"
	"gorm.io/gorm"
)

type MembershipRepositoryIface interface {
	Create(ctx context.Context, membership *model.Membership) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MembershipStatus) error
	DeleteByUserAndGroup(ctx context.Context, userID, groupID uuid.UUID) error
	HasAdmin(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	HasApproved(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	FindPendingByGroup(ctx context.Context, groupID uuid.UUID) ([]model.JoinRequest, error)
	FindPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.JoinRequest, error)
	FindApprovedMembers(ctx context.Context, groupID uuid.UUID) ([]model.Member, error)
	FindApprovedByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Membership, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a membership row. The composite unique index on
// (user_id, group_id) resolves concurrent duplicate requests at the
// store: the second insert fails and surfaces as ErrDuplicateRequest.
func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	result := r.db.WithContext(ctx).Create(membership)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("failed to create membership: %w", result.Error)
	}
	return nil
}

func (r *MembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	result := r.db.WithContext(ctx).First(&membership, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find membership: %w", result.Error)
	}
	return &membership, nil
}

func (r *MembershipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MembershipStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update membership status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

// DeleteByUserAndGroup removes every membership row for the pair,
// whatever its status. Used by kick; it also re-opens the join path.
func (r *MembershipRepository) DeleteByUserAndGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&model.Membership{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete membership: %w", result.Error)
	}
	return nil
}

func (r *MembershipRepository) HasAdmin(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("user_id = ? AND group_id = ? AND role = ?", userID, groupID, model.RoleAdmin).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check admin membership: %w", err)
	}
	return count > 0, nil
}

func (r *MembershipRepository) HasApproved(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("user_id = ? AND group_id = ? AND status = ?", userID, groupID, model.StatusApproved).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check approved membership: %w", err)
	}
	return count > 0, nil
}

func (r *MembershipRepository) FindPendingByGroup(ctx context.Context, groupID uuid.UUID) ([]model.JoinRequest, error) {
	var memberships []model.Membership
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND status = ?", groupID, model.StatusPending).
		Find(&memberships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pending requests: %w", result.Error)
	}
	return r.joinProfiles(ctx, memberships, false)
}

func (r *MembershipRepository) FindPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.JoinRequest, error) {
	var memberships []model.Membership
	result := r.db.WithContext(ctx).
		Joins("JOIN groups ON groups.id = memberships.group_id").
		Where("groups.created_by = ? AND memberships.status = ?", ownerID, model.StatusPending).
		Find(&memberships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pending requests: %w", result.Error)
	}
	return r.joinProfiles(ctx, memberships, true)
}

func (r *MembershipRepository) FindApprovedMembers(ctx context.Context, groupID uuid.UUID) ([]model.Member, error) {
	var memberships []model.Membership
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND status = ?", groupID, model.StatusApproved).
		Find(&memberships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find approved members: %w", result.Error)
	}

	profiles, err := r.userProfiles(ctx, memberships)
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, model.Member{
			UserProfile: profiles[m.UserID],
			Role:        m.Role,
			JoinedAt:    m.CreatedAt,
		})
	}
	return members, nil
}

func (r *MembershipRepository) FindApprovedByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Membership, error) {
	var memberships []model.Membership
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND status = ?", groupID, model.StatusApproved).
		Find(&memberships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find approved memberships: %w", result.Error)
	}
	return memberships, nil
}

func (r *MembershipRepository) joinProfiles(ctx context.Context, memberships []model.Membership, withGroups bool) ([]model.JoinRequest, error) {
	profiles, err := r.userProfiles(ctx, memberships)
	if err != nil {
		return nil, err
	}

	var refs map[uuid.UUID]model.GroupRef
	if withGroups {
		refs, err = r.groupRefs(ctx, memberships)
		if err != nil {
			return nil, err
		}
	}

	requests := make([]model.JoinRequest, 0, len(memberships))
	for _, m := range memberships {
		req := model.JoinRequest{Membership: m, User: profiles[m.UserID]}
		if withGroups {
			ref := refs[m.GroupID]
			req.Group = &ref
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *MembershipRepository) userProfiles(ctx context.Context, memberships []model.Membership) (map[uuid.UUID]model.UserProfile, error) {
	if len(memberships) == 0 {
		return map[uuid.UUID]model.UserProfile{}, nil
	}

	ids := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UserID)
	}

	var users []model.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find request users: %w", err)
	}

	profiles := make(map[uuid.UUID]model.UserProfile, len(users))
	for i := range users {
		profiles[users[i].ID] = users[i].Profile()
	}
	return profiles, nil
}

func (r *MembershipRepository) groupRefs(ctx context.Context, memberships []model.Membership) (map[uuid.UUID]model.GroupRef, error) {
	ids := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.GroupID)
	}

	var groups []model.Group
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to find request groups: %w", err)
	}

	refs := make(map[uuid.UUID]model.GroupRef, len(groups))
	for _, g := range groups {
		refs[g.ID] = model.GroupRef{ID: g.ID, Subject: g.Subject}
	}
	return refs, nil
}
