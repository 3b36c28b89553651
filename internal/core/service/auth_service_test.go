package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func signupInput(username string) ports.SignupInput {
	return ports.SignupInput{
		FirstName:       "Test",
		LastName:        "User",
		Email:           username + "@example.com",
		Username:        username,
		Password:        "s3cretpass",
		PasswordConfirm: "s3cretpass",
	}
}

func activate(t *testing.T, repo *stubUserRepo, username string) {
	t.Helper()
	for _, u := range repo.users {
		if u.Username == username {
			u.IsActive = true
			return
		}
	}
	t.Fatalf("user %s not found in stub", username)
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Signup(context.Background(), signupInput("alice"))
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.PasswordHash == "s3cretpass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.IsActive {
		t.Fatalf("new accounts must start inactive")
	}
}

func TestAuthService_Signup_PasswordMismatch(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	in := signupInput("bob")
	in.PasswordConfirm = "different"
	if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestAuthService_Signup_LowercasesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	in := signupInput("carol")
	in.Email = "Carol@Example.COM"
	user, err := svc.Signup(context.Background(), in)
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Signup(context.Background(), signupInput("dave")); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), signupInput("dave")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Signup(context.Background(), signupInput("eve")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	activate(t, repo, "eve")

	_, _, errUnknown := svc.Login(context.Background(), "nobody", "whatever")
	_, _, errWrongPass := svc.Login(context.Background(), "eve", "wrongpass")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Fatalf("errors must be identical: %q vs %q", errUnknown, errWrongPass)
	}
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Signup(context.Background(), signupInput("frank")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "frank", "s3cretpass"); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	ttl := 2 * time.Hour
	svc := NewAuthService(repo, "secret", ttl)

	user, err := svc.Signup(context.Background(), signupInput("grace"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	activate(t, repo, "grace")

	before := time.Now()
	token, got, err := svc.Login(context.Background(), "grace", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("unexpected user: %+v", got)
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.Subject)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.After(before.Add(ttl+time.Minute)) {
		t.Fatalf("expiry beyond the configured TTL: %v", claims.ExpiresAt)
	}
}

func TestAuthService_Verify(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Signup(context.Background(), signupInput("heidi"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	activate(t, repo, "heidi")

	token, _, err := svc.Login(context.Background(), "heidi", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	got, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, got.ID)
	}

	if _, err := svc.Verify(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for garbage token, got %v", err)
	}
}

func TestAuthService_Verify_WrongSecret(t *testing.T) {
	repo := newStubUserRepo()
	issuer := NewAuthService(repo, "secret-a", time.Hour)
	verifier := NewAuthService(repo, "secret-b", time.Hour)

	if _, err := issuer.Signup(context.Background(), signupInput("ivan")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	activate(t, repo, "ivan")

	token, _, err := issuer.Login(context.Background(), "ivan", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Full lifecycle: signup, failed login, inactive login, activation, success.
func TestAuthService_SignupActivateLoginScenario(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Signup(context.Background(), signupInput("judy")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "judy", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "judy", "s3cretpass"); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("inactive: expected ErrAccountInactive, got %v", err)
	}

	activate(t, repo, "judy")

	token, user, err := svc.Login(context.Background(), "judy", "s3cretpass")
	if err != nil {
		t.Fatalf("login after activation failed: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("expected token and user after activation")
	}
}
