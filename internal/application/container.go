package application

import (
	"github.com/linskybing/staffing-go/internal/repository"
)

type Services struct {
	Audit  *AuditService
	Form   *FormService
	Linker *FormLinker
}

// New wires the services. archive may be nil when archiving is disabled.
func New(repos *repository.Repos, archive FormArchiver) *Services {
	linker := NewFormLinker(repos)
	return &Services{
		Audit:  NewAuditService(repos, linker),
		Form:   NewFormService(repos, linker, archive),
		Linker: linker,
	}
}
