package handlers

import (
	"log"
	"net/http"

	"github.com/dileepkhanna/jobportal/internal/services"
	"github.com/dileepkhanna/jobportal/internal/session"
	"github.com/dileepkhanna/jobportal/internal/web"
	"github.com/go-chi/chi/v5"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgSignupSucceeded    = "Account created successfully! Please login."
	msgSignupFailed       = "User already exists or registration failed"
)

// AuthHandler serves the login page and the login, signup and logout forms.
type AuthHandler struct {
	userService *services.UserService
	sessions    *session.Manager
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(userService *services.UserService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, sessions *session.Manager) {
	handler := NewAuthHandler(userService, sessions)

	r.Get("/", handler.LoginPage)
	r.Post("/login", handler.Login)
	r.Post("/signup", handler.Signup)
	r.Get("/logout", handler.Logout)
}

// LoginPage renders the combined login and signup page.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, web.PageLogin, web.LoginPage{})
}

// Login verifies the submitted credentials and starts a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPage(w, http.StatusBadRequest, web.PageLogin, web.LoginPage{Error: msgInvalidCredentials})
		return
	}

	userID := r.PostFormValue("userid")
	password := r.PostFormValue("password")
	phone := r.PostFormValue("phone")
	if userID == "" || password == "" || phone == "" {
		renderPage(w, http.StatusOK, web.PageLogin, web.LoginPage{Error: msgInvalidCredentials})
		return
	}

	user, ok, err := h.userService.Authenticate(r.Context(), userID, password, phone)
	if err != nil {
		log.Printf("[Users] authenticate %q failed: %v", userID, err)
		renderPage(w, http.StatusInternalServerError, web.PageLogin, web.LoginPage{Error: msgInvalidCredentials})
		return
	}
	if !ok {
		renderPage(w, http.StatusOK, web.PageLogin, web.LoginPage{Error: msgInvalidCredentials})
		return
	}

	if err := h.sessions.Save(w, session.Data{
		UserID:   user.ID,
		UserName: user.Name,
		LoginID:  user.UserID,
	}); err != nil {
		log.Printf("[Users] save session for %q failed: %v", userID, err)
		renderPage(w, http.StatusInternalServerError, web.PageLogin, web.LoginPage{Error: msgInvalidCredentials})
		return
	}

	http.Redirect(w, r, "/job-roles", http.StatusSeeOther)
}

// Signup registers a new account and re-renders the login page with the outcome.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPage(w, http.StatusBadRequest, web.PageLogin, web.LoginPage{Error: msgSignupFailed})
		return
	}

	name := r.PostFormValue("name")
	userID := r.PostFormValue("userid")
	password := r.PostFormValue("password")
	phone := r.PostFormValue("phone")
	if name == "" || userID == "" || password == "" || phone == "" {
		renderPage(w, http.StatusOK, web.PageLogin, web.LoginPage{Error: msgSignupFailed})
		return
	}

	if !h.userService.CreateUser(r.Context(), name, userID, password, phone) {
		renderPage(w, http.StatusOK, web.PageLogin, web.LoginPage{Error: msgSignupFailed})
		return
	}
	renderPage(w, http.StatusOK, web.PageLogin, web.LoginPage{Success: msgSignupSucceeded})
}

// Logout clears the session and returns to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
