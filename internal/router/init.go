package router

import (
	memberapp "github.com/loopers/member-api/internal/application"
	"github.com/loopers/member-api/internal/container"
	"github.com/loopers/member-api/internal/domain/member"
	pginfra "github.com/loopers/member-api/internal/infrastructure/postgres"
	handlers "github.com/loopers/member-api/internal/interface/http"
	"github.com/loopers/member-api/internal/interface/middleware"
	"github.com/loopers/member-api/internal/router/modules"
)

type MemberModuleDeps struct {
	Repo    member.Repository
	Service *memberapp.Service
	Handler *handlers.MemberHandler
}

func buildMemberDeps() MemberModuleDeps {
	repo := pginfra.NewMemberRepository(container.GetPGPool())

	service := memberapp.NewService(
		repo,
		container.GetHasher(),
		container.GetLogger(),
	)

	handler := handlers.NewMemberHandler(service, container.GetLogger())

	return MemberModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with
// the router registry. The authentication gate runs on the API group ahead
// of every module route; public paths pass through inside the gate itself.
func InitModules(r *Registry) {
	memberDeps := buildMemberDeps()

	r.Use(middleware.Authentication(memberDeps.Repo, container.GetHasher()))

	r.Add(modules.NewMemberModule(memberDeps.Handler))
	r.Add(modules.NewExampleModule(handlers.NewExampleHandler()))
}
