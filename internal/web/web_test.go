package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRender_LoginShowsMessages(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, PageLogin, LoginPage{Error: "Invalid credentials"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Invalid credentials") {
		t.Fatalf("error message missing from page")
	}
	if !strings.Contains(buf.String(), `action="/signup"`) {
		t.Fatalf("signup form missing from page")
	}
}

func TestRender_JobRolesEscapesNames(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, PageJobRoles, JobRolesPage{UserName: "<b>x</b>", Roles: []string{"Data Scientist"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<b>x</b>") {
		t.Fatalf("user name was not escaped")
	}
	if !strings.Contains(out, `data-role="Data Scientist"`) {
		t.Fatalf("role button missing: %s", out)
	}
}

func TestStaticHandler_ServesScript(t *testing.T) {
	rec := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/script.js", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/skills/") {
		t.Fatalf("unexpected script body")
	}
}
