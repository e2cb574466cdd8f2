package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dileepkhanna/jobportal/types"
)

// UserLister lists every registered user.
type UserLister interface {
	List(ctx context.Context) ([]types.User, error)
}

// CatalogReader reads job roles with their skills.
type CatalogReader interface {
	ListRolesWithSkills(ctx context.Context) ([]types.JobRole, error)
	CountSkills(ctx context.Context) (int, error)
	CountUserSkills(ctx context.Context) (int, error)
}

// Write prints a summary of users, job roles and skills to w.
func Write(ctx context.Context, w io.Writer, users UserLister, catalog CatalogReader) error {
	allUsers, err := users.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	roles, err := catalog.ListRolesWithSkills(ctx)
	if err != nil {
		return fmt.Errorf("list job roles: %w", err)
	}
	skillCount, err := catalog.CountSkills(ctx)
	if err != nil {
		return fmt.Errorf("count skills: %w", err)
	}
	links, err := catalog.CountUserSkills(ctx)
	if err != nil {
		return fmt.Errorf("count user skills: %w", err)
	}

	fmt.Fprintf(w, "Users in database: %d\n", len(allUsers))
	for _, user := range allUsers {
		fmt.Fprintf(w, "  - %s (Phone: %s)\n", user.UserID, user.Phone)
	}

	fmt.Fprintf(w, "\nJob roles in database: %d\n", len(roles))
	for _, role := range roles {
		fmt.Fprintf(w, "  - %s\n", role.Name)
	}

	fmt.Fprintf(w, "\nSkills in database: %d\n", skillCount)
	for _, role := range roles {
		names := make([]string, 0, len(role.Skills))
		for _, skill := range role.Skills {
			names = append(names, skill.Name)
		}
		fmt.Fprintf(w, "\n%s skills: %s\n", role.Name, strings.Join(names, ", "))
	}

	fmt.Fprintf(w, "\nUser skill links: %d\n", links)
	return nil
}
