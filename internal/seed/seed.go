package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Category is a named group of skills inside a role.
type Category struct {
	Name   string
	Skills []string
}

// Role is a job role with its categorized skills.
type Role struct {
	Name        string
	Description string
	Categories  []Category
}

// DefaultCatalog is loaded into an empty database on startup.
var DefaultCatalog = []Role{
	{
		Name: "Full Stack Developer",
		Categories: []Category{
			{Name: "Frontend Technologies", Skills: []string{"HTML5", "CSS3", "JavaScript", "React", "Vue.js", "TypeScript"}},
			{Name: "Backend Technologies", Skills: []string{"Node.js", "Python", "Java", "Express.js", "Django", "Spring Boot"}},
			{Name: "Database", Skills: []string{"MySQL", "PostgreSQL", "MongoDB", "Redis"}},
			{Name: "DevOps & Tools", Skills: []string{"Docker", "Git", "AWS", "Nginx"}},
		},
	},
	{
		Name: "Frontend Developer",
		Categories: []Category{
			{Name: "Core Technologies", Skills: []string{"HTML5", "CSS3", "JavaScript", "TypeScript"}},
			{Name: "Frameworks & Libraries", Skills: []string{"React", "Vue.js", "Angular", "jQuery"}},
			{Name: "Styling", Skills: []string{"Sass", "Less", "Bootstrap", "Tailwind CSS"}},
			{Name: "Tools & Build", Skills: []string{"Webpack", "Vite", "npm", "Figma", "Adobe XD"}},
		},
	},
	{
		Name: "Backend Developer",
		Categories: []Category{
			{Name: "Programming Languages", Skills: []string{"Python", "Java", "Node.js", "C#", "Go", "PHP"}},
			{Name: "Frameworks", Skills: []string{"Django", "Flask", "Spring Boot", "Express.js", ".NET"}},
			{Name: "Database", Skills: []string{"PostgreSQL", "MySQL", "MongoDB", "Redis", "Oracle"}},
			{Name: "DevOps & Cloud", Skills: []string{"Docker", "Kubernetes", "AWS", "Azure", "Jenkins"}},
		},
	},
	{
		Name: "Data Scientist",
		Categories: []Category{
			{Name: "Programming", Skills: []string{"Python", "R", "SQL", "Scala"}},
			{Name: "Machine Learning", Skills: []string{"Scikit-learn", "TensorFlow", "PyTorch", "Keras"}},
			{Name: "Data Analysis", Skills: []string{"Pandas", "NumPy", "Matplotlib", "Seaborn"}},
			{Name: "Tools & Platforms", Skills: []string{"Jupyter", "Tableau", "Power BI", "Apache Spark"}},
		},
	},
	{
		Name: "DevOps Engineer",
		Categories: []Category{
			{Name: "Containerization", Skills: []string{"Docker", "Kubernetes", "Podman"}},
			{Name: "Cloud Platforms", Skills: []string{"AWS", "Azure", "Google Cloud", "DigitalOcean"}},
			{Name: "CI/CD", Skills: []string{"Jenkins", "GitLab CI", "GitHub Actions", "CircleCI"}},
			{Name: "Infrastructure", Skills: []string{"Terraform", "Ansible", "Chef", "Puppet"}},
			{Name: "Monitoring", Skills: []string{"Prometheus", "Grafana", "ELK Stack", "Nagios"}},
		},
	},
}

// Seed loads DefaultCatalog when the job_roles table is empty.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	return SeedCatalog(ctx, db, DefaultCatalog)
}

// SeedCatalog inserts catalog in one transaction if no job role exists yet.
// It reports whether anything was inserted.
func SeedCatalog(ctx context.Context, db *sql.DB, catalog []Role) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var existing int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM job_roles`).Scan(&existing); err != nil {
		return false, fmt.Errorf("count job roles: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	skillCount := 0
	for _, role := range catalog {
		var description sql.NullString
		if role.Description != "" {
			description = sql.NullString{String: role.Description, Valid: true}
		}

		var roleID int
		if err := tx.QueryRowContext(
			ctx,
			`INSERT INTO job_roles (name, description) VALUES ($1, $2) RETURNING id`,
			role.Name,
			description,
		).Scan(&roleID); err != nil {
			return false, fmt.Errorf("insert job role %q: %w", role.Name, err)
		}

		for _, category := range role.Categories {
			for _, skill := range category.Skills {
				if _, err := tx.ExecContext(
					ctx,
					`INSERT INTO skills (name, category, job_role_id) VALUES ($1, $2, $3)`,
					skill,
					category.Name,
					roleID,
				); err != nil {
					return false, fmt.Errorf("insert skill %q: %w", skill, err)
				}
				skillCount++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	log.Printf("[Seed] inserted %d job roles and %d skills", len(catalog), skillCount)
	return true, nil
}
