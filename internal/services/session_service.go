package services

import (
	"context"
	"strings"
	"time"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/models/response_models"
	"clubcentral/internal/repositories"
	mem "clubcentral/pkg/memcache"
	"clubcentral/pkg/utils"
)

type SessionServiceInterface interface {
	SignIn(ctx context.Context, req request_models.SignInRequest) (*response_models.SignInResponse, error)
	SignOut(token string)
	Snapshot(claims *utils.SessionClaims) response_models.SessionSnapshot
}

type SessionService struct {
	memberRepo repositories.MemberRepository
	revoked    mem.RevokedTokenStore
	adminEmail string
}

func NewSessionService(memberRepo repositories.MemberRepository, revoked mem.RevokedTokenStore, adminEmail string) SessionServiceInterface {
	return &SessionService{
		memberRepo: memberRepo,
		revoked:    revoked,
		adminEmail: adminEmail,
	}
}

// ResolveRole is the single admin gate: a signed-in user is admin when
// their email matches the configured admin email OR their member record
// carries the admin flag. Anyone with a member record is at least a
// member; everyone else is a guest.
func ResolveRole(email, adminEmail string, member *db_models.Member) string {
	if adminEmail != "" && strings.EqualFold(email, adminEmail) {
		return response_models.RoleAdmin
	}
	if member != nil && member.IsAdmin {
		return response_models.RoleAdmin
	}
	if member != nil {
		return response_models.RoleMember
	}
	return response_models.RoleGuest
}

func (s *SessionService) SignIn(ctx context.Context, req request_models.SignInRequest) (*response_models.SignInResponse, error) {
	member, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	role := ResolveRole(req.Email, s.adminEmail, member)

	token, err := utils.CreateSessionToken(req.UID, req.Email, req.DisplayName, req.PhotoURL, role)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	return &response_models.SignInResponse{
		Token: token,
		Session: response_models.SessionSnapshot{
			UID:      req.UID,
			Email:    req.Email,
			Name:     req.DisplayName,
			PhotoURL: req.PhotoURL,
			Role:     role,
		},
	}, nil
}

// SignOut revokes the presented token for the remainder of its lifetime.
func (s *SessionService) SignOut(token string) {
	if token == "" {
		return
	}
	s.revoked.Revoke(token, 24*time.Hour)
}

func (s *SessionService) Snapshot(claims *utils.SessionClaims) response_models.SessionSnapshot {
	return response_models.SessionSnapshot{
		UID:      claims.UID,
		Email:    claims.Email,
		Name:     claims.Name,
		PhotoURL: claims.PhotoURL,
		Role:     claims.Role,
	}
}
