package services_test

import (
	"context"
	"testing"
	"time"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/models/response_models"
	"clubcentral/internal/services"
)

type fakeMemberRepo struct {
	byEmail map[string]*db_models.Member
}

func (f *fakeMemberRepo) ListAll(ctx context.Context) ([]db_models.Member, error) { return nil, nil }

func (f *fakeMemberRepo) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	return f.byEmail[email], nil
}

func (f *fakeMemberRepo) Add(ctx context.Context, member *db_models.Member) (string, error) {
	return "", nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	return nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeRevokedStore struct {
	revoked map[string]bool
}

func (f *fakeRevokedStore) Revoke(token string, ttl time.Duration) {
	if f.revoked == nil {
		f.revoked = make(map[string]bool)
	}
	f.revoked[token] = true
}

func (f *fakeRevokedStore) IsRevoked(token string) bool { return f.revoked[token] }

func TestResolveRole(t *testing.T) {
	regular := &db_models.Member{Name: "Asha", Email: "asha@club.org"}
	flagged := &db_models.Member{Name: "Ravi", Email: "ravi@club.org", IsAdmin: true}

	tests := []struct {
		name       string
		email      string
		adminEmail string
		member     *db_models.Member
		want       string
	}{
		{
			name:       "configured admin email wins without a member record",
			email:      "owner@club.org",
			adminEmail: "owner@club.org",
			member:     nil,
			want:       response_models.RoleAdmin,
		},
		{
			name:       "admin email match is case insensitive",
			email:      "Owner@Club.org",
			adminEmail: "owner@club.org",
			member:     nil,
			want:       response_models.RoleAdmin,
		},
		{
			name:       "member flag grants admin",
			email:      "ravi@club.org",
			adminEmail: "owner@club.org",
			member:     flagged,
			want:       response_models.RoleAdmin,
		},
		{
			name:       "plain member record",
			email:      "asha@club.org",
			adminEmail: "owner@club.org",
			member:     regular,
			want:       response_models.RoleMember,
		},
		{
			name:       "no record and no match is guest",
			email:      "stranger@club.org",
			adminEmail: "owner@club.org",
			member:     nil,
			want:       response_models.RoleGuest,
		},
		{
			name:       "empty admin email never matches",
			email:      "",
			adminEmail: "",
			member:     nil,
			want:       response_models.RoleGuest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.ResolveRole(tt.email, tt.adminEmail, tt.member); got != tt.want {
				t.Errorf("ResolveRole() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionService_SignIn(t *testing.T) {
	t.Setenv("JWT_SECRET", "session-test-secret")
	repo := &fakeMemberRepo{byEmail: map[string]*db_models.Member{
		"asha@club.org": {Name: "Asha", Email: "asha@club.org"},
	}}
	svc := services.NewSessionService(repo, &fakeRevokedStore{}, "owner@club.org")

	resp, err := svc.SignIn(context.Background(), request_models.SignInRequest{
		UID:         "uid-1",
		Email:       "asha@club.org",
		DisplayName: "Asha",
	})
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("SignIn() returned an empty token")
	}
	if resp.Session.Role != response_models.RoleMember {
		t.Errorf("role = %q, want member", resp.Session.Role)
	}
	if resp.Session.UID != "uid-1" || resp.Session.Email != "asha@club.org" {
		t.Errorf("session snapshot lost identity fields: %+v", resp.Session)
	}
}

func TestSessionService_SignOut(t *testing.T) {
	revoked := &fakeRevokedStore{}
	svc := services.NewSessionService(&fakeMemberRepo{}, revoked, "")

	svc.SignOut("some-token")
	if !revoked.IsRevoked("some-token") {
		t.Error("SignOut did not revoke the token")
	}

	svc.SignOut("")
	if revoked.IsRevoked("") {
		t.Error("SignOut revoked an empty token")
	}
}
