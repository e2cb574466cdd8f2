package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dileepkhanna/jobportal/internal/auth"
	"github.com/dileepkhanna/jobportal/internal/store"
	"github.com/dileepkhanna/jobportal/internal/testutil"
	"github.com/dileepkhanna/jobportal/types"
)

type recordingNotifier struct {
	users []types.User
}

func (n *recordingNotifier) Registered(_ context.Context, user types.User) {
	n.users = append(n.users, user)
}

func newUserService(t *testing.T) (*UserService, *store.UserRepository, *recordingNotifier) {
	t.Helper()
	repo := store.NewUserRepository(testutil.OpenMigratedDB(t))
	notifier := &recordingNotifier{}
	return NewUserService(repo, notifier), repo, notifier
}

func TestUserService_CreateThenAuthenticate(t *testing.T) {
	svc, _, notifier := newUserService(t)
	ctx := context.Background()

	if !svc.CreateUser(ctx, "Test User", "testuser", "test123", "1234567890") {
		t.Fatalf("expected signup to succeed")
	}
	if len(notifier.users) != 1 || notifier.users[0].UserID != "testuser" || notifier.users[0].ID == 0 {
		t.Fatalf("expected one registration event, got %+v", notifier.users)
	}

	user, ok, err := svc.Authenticate(ctx, "testuser", "test123", "1234567890")
	if err != nil || !ok {
		t.Fatalf("authenticate: ok=%v err=%v", ok, err)
	}
	if user.Name != "Test User" || user.Phone != "1234567890" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "test123" || auth.IsLegacyHash(user.PasswordHash) {
		t.Fatalf("password stored without bcrypt: %q", user.PasswordHash)
	}
}

func TestUserService_AuthenticateRequiresAllCredentials(t *testing.T) {
	svc, _, _ := newUserService(t)
	ctx := context.Background()
	if !svc.CreateUser(ctx, "Test User", "testuser", "test123", "1234567890") {
		t.Fatalf("signup failed")
	}

	tests := []struct {
		name     string
		userID   string
		password string
		phone    string
		want     bool
	}{
		{name: "all match", userID: "testuser", password: "test123", phone: "1234567890", want: true},
		{name: "wrong password", userID: "testuser", password: "test124", phone: "1234567890"},
		{name: "wrong phone", userID: "testuser", password: "test123", phone: "0987654321"},
		{name: "unknown userid", userID: "nobody", password: "test123", phone: "1234567890"},
		{name: "userid is case sensitive", userID: "TestUser", password: "test123", phone: "1234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := svc.Authenticate(ctx, tt.userID, tt.password, tt.phone)
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if ok != tt.want {
				t.Fatalf("ok = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestUserService_CreateUserRejectsDuplicate(t *testing.T) {
	svc, _, notifier := newUserService(t)
	ctx := context.Background()

	if !svc.CreateUser(ctx, "First", "dup", "pw1", "111") {
		t.Fatalf("first signup failed")
	}
	if svc.CreateUser(ctx, "Second", "dup", "pw2", "222") {
		t.Fatalf("expected duplicate signup to fail")
	}
	if len(notifier.users) != 1 {
		t.Fatalf("expected a single registration event, got %d", len(notifier.users))
	}

	// The first account's credentials still work; the rejected ones do not.
	if _, ok, _ := svc.Authenticate(ctx, "dup", "pw1", "111"); !ok {
		t.Fatalf("first user should still authenticate")
	}
	if _, ok, _ := svc.Authenticate(ctx, "dup", "pw2", "222"); ok {
		t.Fatalf("rejected credentials must not authenticate")
	}
}

func TestUserService_CredentialsRoundTripVerbatim(t *testing.T) {
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	if !svc.CreateUser(ctx, "Bob", " bob ", "pw", " 555 ") {
		t.Fatalf("expected signup to succeed")
	}
	user, ok, err := svc.Authenticate(ctx, " bob ", "pw", " 555 ")
	if err != nil || !ok {
		t.Fatalf("expected same credentials to authenticate, ok=%v err=%v", ok, err)
	}
	if user.UserID != " bob " || user.Phone != " 555 " {
		t.Fatalf("credentials were altered: %+v", user)
	}
	if _, ok, _ := svc.Authenticate(ctx, "bob", "pw", "555"); ok {
		t.Fatalf("different userid must not authenticate")
	}
}

func TestUserService_CreateUserAcceptsLongPassword(t *testing.T) {
	svc, _, _ := newUserService(t)
	ctx := context.Background()
	long := strings.Repeat("x", 100)

	if !svc.CreateUser(ctx, "Long", "long", long, "1") {
		t.Fatalf("expected signup with a 100-byte password to succeed")
	}
	if _, ok, err := svc.Authenticate(ctx, "long", long, "1"); err != nil || !ok {
		t.Fatalf("expected long password to authenticate, ok=%v err=%v", ok, err)
	}
}

func TestUserService_AuthenticatesLegacySHA256Rows(t *testing.T) {
	svc, repo, _ := newUserService(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, types.User{
		Name:         "Legacy",
		UserID:       "legacy",
		PasswordHash: auth.LegacySHA256("test123"),
		Phone:        "1234567890",
	}); err != nil {
		t.Fatalf("insert legacy user: %v", err)
	}

	if _, ok, err := svc.Authenticate(ctx, "legacy", "test123", "1234567890"); err != nil || !ok {
		t.Fatalf("legacy authenticate: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := svc.Authenticate(ctx, "legacy", "wrong", "1234567890"); ok {
		t.Fatalf("legacy wrong password must fail")
	}
}

type failingUserRepo struct{ err error }

func (f failingUserRepo) GetByUserID(context.Context, string) (types.User, error) {
	return types.User{}, f.err
}

func (f failingUserRepo) GetByUserIDAndPhone(context.Context, string, string) (types.User, error) {
	return types.User{}, f.err
}

func (f failingUserRepo) Create(context.Context, types.User) (types.User, error) {
	return types.User{}, f.err
}

func TestUserService_StorageErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewUserService(failingUserRepo{err: boom}, nil)
	ctx := context.Background()

	if _, ok, err := svc.Authenticate(ctx, "a", "b", "c"); ok || !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got ok=%v err=%v", ok, err)
	}
	if svc.CreateUser(ctx, "A", "a", "b", "c") {
		t.Fatalf("expected signup to fail on storage error")
	}
	if _, err := svc.GetUserByUserID(ctx, "a"); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
