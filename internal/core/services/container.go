package services

import (
	"github.com/tresahq/cashbook_cli/internal/cache"
	portsapi "github.com/tresahq/cashbook_cli/internal/core/ports/api"
	portsrepo "github.com/tresahq/cashbook_cli/internal/core/ports/repositories"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
)

// API combines the REST surfaces the resource services consume; the concrete
// client satisfies all of them.
type API interface {
	portsapi.WorkspaceAPI
	portsapi.MemberAPI
	portsapi.CashbookAPI
	portsapi.EntryAPI
	portsapi.MetadataAPI
}

// Container bundles the service facades the CLI consumes.
type Container struct {
	Workspace portssvc.WorkspaceSvcFacade
	Member    portssvc.MemberSvcFacade
	Cashbook  portssvc.CashbookSvcFacade
	Entry     portssvc.EntrySvcFacade
	Metadata  portssvc.MetadataSvcFacade
	LocalBook portssvc.LocalBookSvcFacade
}

// NewServiceContainer wires the resource services onto one API client and a
// shared query cache. localRepo may be nil when the offline store is not
// opened; the LocalBook facade is nil in that case.
func NewServiceContainer(api API, c *cache.Cache, localRepo portsrepo.LocalBookRepositoryFacade) *Container {
	container := &Container{
		Workspace: NewWorkspaceService(api, c),
		Member:    NewMemberService(api, c),
		Cashbook:  NewCashbookService(api, c),
		Entry:     NewEntryService(api, c),
		Metadata:  NewMetadataService(api, c),
	}
	if localRepo != nil {
		container.LocalBook = NewLocalBookService(localRepo)
	}
	return container
}
