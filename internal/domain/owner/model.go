package owner

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Kind identifies which owner collection a caller acts for.
type Kind string

const (
	KindAgency   Kind = "agency"
	KindBusiness Kind = "business"
	KindWorker   Kind = "worker"
)

func (k Kind) Valid() bool {
	switch k {
	case KindAgency, KindBusiness, KindWorker:
		return true
	}
	return false
}

// CanCreateForms reports whether the kind may author forms.
func (k Kind) CanCreateForms() bool {
	return k == KindAgency || k == KindBusiness
}

// Table returns the table holding owners of this kind.
func (k Kind) Table() string {
	switch k {
	case KindAgency:
		return "agencies"
	case KindBusiness:
		return "businesses"
	case KindWorker:
		return "workers"
	}
	return ""
}

// Counterparty is the kind on the other side of a contract form:
// agencies contract businesses and businesses contract workers.
func (k Kind) Counterparty() (Kind, bool) {
	switch k {
	case KindAgency:
		return KindBusiness, true
	case KindBusiness:
		return KindWorker, true
	}
	return "", false
}

// Principal is the authenticated owner a request runs on behalf of.
type Principal struct {
	Kind Kind
	ID   string
}

// Owner holds the form reference array shared by every owner document.
type Owner struct {
	ID    string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name  string         `json:"name"`
	Forms pq.StringArray `json:"forms" gorm:"type:text[];not null;default:'{}'"`
}

func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Forms == nil {
		o.Forms = pq.StringArray{}
	}
	return nil
}

type Agency struct {
	Owner
}

func (Agency) TableName() string { return KindAgency.Table() }

type Business struct {
	Owner
}

func (Business) TableName() string { return KindBusiness.Table() }

type Worker struct {
	Owner
}

func (Worker) TableName() string { return KindWorker.Table() }
