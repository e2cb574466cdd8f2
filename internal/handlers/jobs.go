package handlers

import (
	"net/http"

	"github.com/dileepkhanna/jobportal/internal/services"
	"github.com/dileepkhanna/jobportal/internal/session"
	"github.com/dileepkhanna/jobportal/internal/web"
	"github.com/go-chi/chi/v5"
)

// JobHandler serves the job roles page and the skills API.
type JobHandler struct {
	skillService *services.SkillService
}

// NewJobHandler constructs a JobHandler with the provided dependencies.
func NewJobHandler(skillService *services.SkillService) *JobHandler {
	return &JobHandler{skillService: skillService}
}

// JobRouter registers the job roles page on the given router.
func JobRouter(r chi.Router, skillService *services.SkillService) {
	handler := NewJobHandler(skillService)

	r.With(RequireSession).Get("/job-roles", handler.JobRolesPage)
}

// APIRouter registers the JSON API routes on the given router.
func APIRouter(r chi.Router, skillService *services.SkillService) {
	handler := NewJobHandler(skillService)

	r.Get("/skills/{role}", handler.GetSkills)
}

// RequireSession redirects to the login page when the request carries no session.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// JobRolesPage lists every job role for the logged-in user.
func (h *JobHandler) JobRolesPage(w http.ResponseWriter, r *http.Request) {
	data, _ := session.FromContext(r.Context())

	roles, err := h.skillService.GetJobRoles(r.Context())
	if err != nil {
		http.Error(w, "failed to list job roles", http.StatusInternalServerError)
		return
	}

	renderPage(w, http.StatusOK, web.PageJobRoles, web.JobRolesPage{
		UserName: data.UserName,
		Roles:    roles,
	})
}

// GetSkills returns the role's skills grouped by category.
func (h *JobHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.GetSkillsForRole(r.Context(), chi.URLParam(r, "role"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch skills")
		return
	}

	writeJSON(w, http.StatusOK, SkillsResponse{Skills: skills})
}
