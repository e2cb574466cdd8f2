package services

import (
	"context"
	"errors"
	"time"

	"github.com/dileepkhanna/jobportal/internal/store"
	"github.com/dileepkhanna/jobportal/types"
)

const skillsCachePrefix = "skills:role:"

// CatalogRepository defines read operations over job roles and skills.
type CatalogRepository interface {
	ListRoles(ctx context.Context) ([]types.JobRole, error)
	GetRoleByName(ctx context.Context, name string) (types.JobRole, error)
	ListRolesWithSkills(ctx context.Context) ([]types.JobRole, error)
}

// SkillCache stores grouped skills per role. Errors are never fatal.
type SkillCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RoleSkills is one role of the catalog with its grouped skills.
type RoleSkills struct {
	Role   string            `json:"role"`
	Skills types.SkillGroups `json:"skills"`
}

// SkillService encapsulates job-role and skill lookups.
type SkillService struct {
	repo  CatalogRepository
	cache SkillCache
}

func NewSkillService(repo CatalogRepository, cache SkillCache) *SkillService {
	return &SkillService{repo: repo, cache: cache}
}

// GetJobRoles returns every role name in seed order.
func (s *SkillService) GetJobRoles(ctx context.Context) ([]string, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return names, nil
}

// GetSkillsForRole returns the role's skills grouped by category. An unknown
// role yields an empty mapping.
func (s *SkillService) GetSkillsForRole(ctx context.Context, role string) (types.SkillGroups, error) {
	key := skillsCachePrefix + role
	if s.cache != nil {
		var cached types.SkillGroups
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobRole, err := s.repo.GetRoleByName(ctx, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.SkillGroups{}, nil
		}
		return nil, err
	}

	groups := types.GroupSkills(jobRole.Skills)
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, groups, 0)
	}
	return groups, nil
}

// Catalog returns every role with its grouped skills, in seed order.
func (s *SkillService) Catalog(ctx context.Context) ([]RoleSkills, error) {
	roles, err := s.repo.ListRolesWithSkills(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RoleSkills, 0, len(roles))
	for _, role := range roles {
		out = append(out, RoleSkills{Role: role.Name, Skills: types.GroupSkills(role.Skills)})
	}
	return out, nil
}
