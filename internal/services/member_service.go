package services

import (
	"context"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/repositories"
	"clubcentral/pkg/utils"
)

type MemberServiceInterface interface {
	ListAll(ctx context.Context) ([]db_models.Member, error)
	Create(ctx context.Context, req request_models.CreateMemberRequest) (*db_models.Member, error)
	Update(ctx context.Context, id string, req request_models.UpdateMemberRequest) error
	Delete(ctx context.Context, id string) error
}

type MemberService struct {
	memberRepo repositories.MemberRepository
}

func NewMemberService(memberRepo repositories.MemberRepository) MemberServiceInterface {
	return &MemberService{memberRepo: memberRepo}
}

func (s *MemberService) ListAll(ctx context.Context) ([]db_models.Member, error) {
	return s.memberRepo.ListAll(ctx)
}

func (s *MemberService) Create(ctx context.Context, req request_models.CreateMemberRequest) (*db_models.Member, error) {
	member := &db_models.Member{
		Name:       req.Name,
		Email:      req.Email,
		PhotoURL:   req.PhotoURL,
		JoinDate:   req.JoinDate,
		DOB:        req.DOB,
		Phone:      req.Phone,
		BloodGroup: req.BloodGroup,
		IsAdmin:    req.IsAdmin,
	}
	if _, err := s.memberRepo.Add(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Update(ctx context.Context, id string, req request_models.UpdateMemberRequest) error {
	partial := req.Updates()
	if len(partial) == 0 {
		return utils.ErrValidation
	}
	return s.memberRepo.Update(ctx, id, partial)
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.memberRepo.Delete(ctx, id)
}
