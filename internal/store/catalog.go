package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dileepkhanna/jobportal/types"
)

// CatalogRepository reads job roles and their skills.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListRoles returns every job role ordered by id, without skills.
func (r *CatalogRepository) ListRoles(ctx context.Context) ([]types.JobRole, error) {
	const query = `
		SELECT id, name, description
		FROM job_roles
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]types.JobRole, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

// GetRoleByName returns the named role with its skills ordered by id.
func (r *CatalogRepository) GetRoleByName(ctx context.Context, name string) (types.JobRole, error) {
	const roleQuery = `
		SELECT id, name, description
		FROM job_roles
		WHERE name = $1`
	role, err := scanRole(r.db.QueryRowContext(ctx, roleQuery, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.JobRole{}, ErrNotFound
		}
		return types.JobRole{}, err
	}

	const skillsQuery = `
		SELECT id, name, category, job_role_id
		FROM skills
		WHERE job_role_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, skillsQuery, role.ID)
	if err != nil {
		return types.JobRole{}, err
	}
	defer rows.Close()

	role.Skills = make([]types.Skill, 0)
	for rows.Next() {
		var skill types.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.Category, &skill.JobRoleID); err != nil {
			return types.JobRole{}, err
		}
		role.Skills = append(role.Skills, skill)
	}
	if err := rows.Err(); err != nil {
		return types.JobRole{}, err
	}
	return role, nil
}

// ListRolesWithSkills returns every role with its skills, roles and skills
// both ordered by id.
func (r *CatalogRepository) ListRolesWithSkills(ctx context.Context) ([]types.JobRole, error) {
	const query = `
		SELECT r.id, r.name, r.description, s.id, s.name, s.category
		FROM job_roles r
		LEFT JOIN skills s ON s.job_role_id = r.id
		ORDER BY r.id, s.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]types.JobRole, 0)
	for rows.Next() {
		var (
			roleID      int
			roleName    string
			description sql.NullString
			skillID     sql.NullInt64
			skillName   sql.NullString
			category    sql.NullString
		)
		if err := rows.Scan(&roleID, &roleName, &description, &skillID, &skillName, &category); err != nil {
			return nil, err
		}
		if len(roles) == 0 || roles[len(roles)-1].ID != roleID {
			role := types.JobRole{ID: roleID, Name: roleName, Skills: make([]types.Skill, 0)}
			if description.Valid {
				role.Description = &description.String
			}
			roles = append(roles, role)
		}
		if skillID.Valid {
			current := &roles[len(roles)-1]
			current.Skills = append(current.Skills, types.Skill{
				ID:        int(skillID.Int64),
				Name:      skillName.String,
				Category:  category.String,
				JobRoleID: roleID,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *CatalogRepository) CountRoles(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(1) FROM job_roles`)
}

func (r *CatalogRepository) CountSkills(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(1) FROM skills`)
}

func (r *CatalogRepository) CountUserSkills(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(1) FROM user_skills`)
}

func (r *CatalogRepository) count(ctx context.Context, query string) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func scanRole(row rowScanner) (types.JobRole, error) {
	var role types.JobRole
	var description sql.NullString
	if err := row.Scan(&role.ID, &role.Name, &description); err != nil {
		return types.JobRole{}, err
	}
	if description.Valid {
		role.Description = &description.String
	}
	return role, nil
}
