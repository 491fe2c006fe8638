package member_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(provideMemberRepo, provideMemberService)

func provideMemberRepo(store repositories.DocumentStore) repositories.MemberRepository {
	return repositories.NewMemberRepository(store)
}

func provideMemberService(memberRepo repositories.MemberRepository) services.MemberServiceInterface {
	return services.NewMemberService(memberRepo)
}
