package session_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
	mem "clubcentral/pkg/memcache"
)

var Module = fx.Provide(provideSessionService)

func provideSessionService(
	memberRepo repositories.MemberRepository,
	revoked mem.RevokedTokenStore,
) services.SessionServiceInterface {
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is required")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Println("ADMIN_EMAIL not set, admin access is member-flag only")
	}

	return services.NewSessionService(memberRepo, revoked, adminEmail)
}
