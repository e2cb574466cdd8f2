package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dileepkhanna/jobportal/internal/testutil"
)

func TestServer_PortalFlow(t *testing.T) {
	cfg := testutil.SQLiteConfig(t)
	srv, err := New(testContext(t), cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	resp, err := client.PostForm(ts.URL+"/signup", url.Values{
		"name": {"Meera"}, "userid": {"meera"}, "password": {"pw"}, "phone": {"123"},
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	_ = resp.Body.Close()

	resp, err = client.PostForm(ts.URL+"/login", url.Values{
		"userid": {"meera"}, "password": {"pw"}, "phone": {"123"},
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer resp.Body.Close()
	if resp.Request.URL.Path != "/job-roles" || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected to land on /job-roles, got %s %d", resp.Request.URL.Path, resp.StatusCode)
	}

	resp, err = client.Get(ts.URL + "/static/script.js")
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("static asset not served: %d", resp.StatusCode)
	}

	resp, err = client.Get(ts.URL + "/logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	_ = resp.Body.Close()
	if resp.Request.URL.Path != "/" {
		t.Fatalf("expected to land on /, got %s", resp.Request.URL.Path)
	}

	resp, err = client.Get(ts.URL + "/job-roles")
	if err != nil {
		t.Fatalf("job roles: %v", err)
	}
	_ = resp.Body.Close()
	if resp.Request.URL.Path != "/" {
		t.Fatalf("job roles should redirect after logout, got %s", resp.Request.URL.Path)
	}
}

func TestNew_RequiresSecret(t *testing.T) {
	cfg := testutil.SQLiteConfig(t)
	cfg.Session.SecretKey = " "
	if _, err := New(testContext(t), cfg); err == nil || !strings.Contains(err.Error(), "secret") {
		t.Fatalf("expected missing secret error, got %v", err)
	}
}

func TestServer_RunStopsWhenContextIsDone(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	_ = listener.Close()

	cfg := testutil.SQLiteConfig(t)
	cfg.ServerPort = port
	srv, err := New(testContext(t), cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", port)
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(healthURL)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("server never became healthy: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatalf("server did not stop after cancellation")
	}

	if _, err := http.Get(healthURL); err == nil {
		t.Fatalf("server still answering after shutdown")
	}
}

// testContext returns a context canceled when the test finishes, mirroring
// testing.T.Context for toolchains that predate it.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
