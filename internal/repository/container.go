package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form  FormRepo
	Owner OwnerRepo
	Audit AuditRepo
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Form:  NewFormRepo(db),
		Owner: NewOwnerRepo(db),
		Audit: NewAuditRepo(db),
	}
}
