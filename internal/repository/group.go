// internal/repository/group.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupRepositoryIface interface {
	CreateWithOwner(ctx context.Context, group *model.Group, tagNames []string) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Group, error)
	Update(ctx context.Context, group *model.Group) error
	FindAll(ctx context.Context) ([]model.GroupSummary, error)
	Search(ctx context.Context, query string) ([]model.GroupSummary, error)
	FindByMember(ctx context.Context, userID uuid.UUID) ([]model.GroupSummary, error)
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]model.GroupSummary, error)
	FindSuggested(ctx context.Context, userID uuid.UUID, limit int) ([]model.GroupSummary, error)
	Summarize(ctx context.Context, group *model.Group) (*model.GroupSummary, error)
}

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithOwner inserts the group row, upserts and links each tag, and
// creates the owner's admin/approved membership inside one transaction.
// A group whose creator has no membership row must never be observable.
func (r *GroupRepository) CreateWithOwner(ctx context.Context, group *model.Group, tagNames []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(group).Error; err != nil {
			return fmt.Errorf("creating group: %w", err)
		}

		for _, name := range tagNames {
			tag := model.Tag{Name: name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&tag).Error; err != nil {
				return fmt.Errorf("upserting tag %q: %w", name, err)
			}
			// DoNothing leaves the id zero when the tag already existed.
			if tag.ID == uuid.Nil {
				if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
					return fmt.Errorf("finding tag %q: %w", name, err)
				}
			}
			if err := tx.Model(group).Association("Tags").Append(&tag); err != nil {
				return fmt.Errorf("linking tag %q: %w", name, err)
			}
		}

		owner := model.Membership{
			UserID:  group.CreatedBy,
			GroupID: group.ID,
			Role:    model.RoleAdmin,
			Status:  model.StatusApproved,
		}
		if err := tx.Create(&owner).Error; err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	var group model.Group
	result := r.db.WithContext(ctx).Preload("Tags").First(&group, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", result.Error)
	}
	return &group, nil
}

func (r *GroupRepository) Update(ctx context.Context, group *model.Group) error {
	result := r.db.WithContext(ctx).Omit("Tags").Save(group)
	if result.Error != nil {
		return fmt.Errorf("failed to update group: %w", result.Error)
	}
	return nil
}

func (r *GroupRepository) FindAll(ctx context.Context) ([]model.GroupSummary, error) {
	var groups []model.Group
	result := r.db.WithContext(ctx).Preload("Tags").Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all groups: %w", result.Error)
	}
	return r.summarizeAll(ctx, groups)
}

func (r *GroupRepository) Search(ctx context.Context, query string) ([]model.GroupSummary, error) {
	var groups []model.Group
	like := "%" + query + "%"
	result := r.db.WithContext(ctx).Preload("Tags").
		Where("subject ILIKE ? OR small_desc ILIKE ? OR description ILIKE ?", like, like, like).
		Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to search groups: %w", result.Error)
	}
	return r.summarizeAll(ctx, groups)
}

func (r *GroupRepository) FindByMember(ctx context.Context, userID uuid.UUID) ([]model.GroupSummary, error) {
	var groups []model.Group
	result := r.db.WithContext(ctx).Preload("Tags").
		Joins("JOIN memberships ON memberships.group_id = groups.id").
		Where("memberships.user_id = ? AND memberships.status = ?", userID, model.StatusApproved).
		Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find member groups: %w", result.Error)
	}
	return r.summarizeAll(ctx, groups)
}

func (r *GroupRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]model.GroupSummary, error) {
	var groups []model.Group
	result := r.db.WithContext(ctx).Preload("Tags").
		Where("created_by = ?", userID).
		Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find created groups: %w", result.Error)
	}
	return r.summarizeAll(ctx, groups)
}

// FindSuggested returns groups sharing a tag with any group the user
// already belongs to, falling back to the most recent groups when the
// user has no tag signal yet.
func (r *GroupRepository) FindSuggested(ctx context.Context, userID uuid.UUID, limit int) ([]model.GroupSummary, error) {
	var tagIDs []uuid.UUID
	err := r.db.WithContext(ctx).Table("group_tags").
		Select("group_tags.tag_id").
		Joins("JOIN memberships ON memberships.group_id = group_tags.group_id").
		Where("memberships.user_id = ? AND memberships.status = ?", userID, model.StatusApproved).
		Scan(&tagIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user tags: %w", err)
	}

	var groups []model.Group
	if len(tagIDs) == 0 {
		result := r.db.WithContext(ctx).Preload("Tags").
			Order("created_at DESC").Limit(limit).Find(&groups)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to find recent groups: %w", result.Error)
		}
		return r.summarizeAll(ctx, groups)
	}

	result := r.db.WithContext(ctx).Preload("Tags").
		Joins("JOIN group_tags ON group_tags.group_id = groups.id").
		Where("group_tags.tag_id IN ?", tagIDs).
		Distinct("groups.*").
		Limit(limit).
		Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find suggested groups: %w", result.Error)
	}
	return r.summarizeAll(ctx, groups)
}

// Summarize attaches tag names and the approved member count to a single
// group; the group must have its Tags preloaded.
func (r *GroupRepository) Summarize(ctx context.Context, group *model.Group) (*model.GroupSummary, error) {
	summaries, err := r.summarizeAll(ctx, []model.Group{*group})
	if err != nil {
		return nil, err
	}
	return &summaries[0], nil
}

func (r *GroupRepository) summarizeAll(ctx context.Context, groups []model.Group) ([]model.GroupSummary, error) {
	summaries := make([]model.GroupSummary, 0, len(groups))
	if len(groups) == 0 {
		return summaries, nil
	}

	ids := make([]uuid.UUID, len(groups))
	for i := range groups {
		ids[i] = groups[i].ID
	}

	type groupCount struct {
		GroupID uuid.UUID
		Count   int64
	}
	var counts []groupCount
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Select("group_id, count(*) as count").
		Where("group_id IN ? AND status = ?", ids, model.StatusApproved).
		Group("group_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	byGroup := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byGroup[c.GroupID] = c.Count
	}

	for i := range groups {
		names := make([]string, 0, len(groups[i].Tags))
		for _, t := range groups[i].Tags {
			names = append(names, t.Name)
		}
		summaries = append(summaries, model.GroupSummary{
			Group:       groups[i],
			TagNames:    names,
			MemberCount: byGroup[groups[i].ID],
		})
	}
	return summaries, nil
}
