package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageLogin    = "login.html"
	PageJobRoles = "job_roles.html"
)

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// LoginPage is the data rendered by the login/signup page.
type LoginPage struct {
	Error   string
	Success string
}

// JobRolesPage is the data rendered by the job roles page.
type JobRolesPage struct {
	UserName string
	Roles    []string
}

// Render executes the named page into w.
func Render(w io.Writer, page string, data any) error {
	return templates.ExecuteTemplate(w, page, data)
}

// StaticHandler serves the embedded static assets. Mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
