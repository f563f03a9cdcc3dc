package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/staffing-go/internal/config/logger"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/internal/metrics"
	"github.com/linskybing/staffing-go/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FormLinker keeps the forms arrays of owners in step with the form store.
type FormLinker struct {
	Repos *repository.Repos
}

func NewFormLinker(repos *repository.Repos) *FormLinker {
	return &FormLinker{
		Repos: repos,
	}
}

// Attach records formID on the owner. Adding an id that is already present
// leaves the array unchanged.
func (l *FormLinker) Attach(kind owner.Kind, ownerID, formID string) error {
	if !kind.CanCreateForms() {
		return fmt.Errorf("%w: %s cannot hold authored forms", ErrNotAuthorized, kind)
	}
	if err := l.Repos.Owner.AddForm(kind, ownerID, formID); err != nil {
		return linkError(kind, ownerID, err)
	}
	return nil
}

// Detach removes formID from the owner. Removing an absent id succeeds.
func (l *FormLinker) Detach(kind owner.Kind, ownerID, formID string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOwnerKind, kind)
	}
	if err := l.Repos.Owner.RemoveForm(kind, ownerID, formID); err != nil {
		return linkError(kind, ownerID, err)
	}
	return nil
}

func (l *FormLinker) HasForm(kind owner.Kind, ownerID, formID string) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownOwnerKind, kind)
	}
	ok, err := l.Repos.Owner.HasForm(kind, ownerID, formID)
	if err != nil {
		return false, storeError("check owner forms", err)
	}
	return ok, nil
}

// DetachAll removes formID from the principal and, when counterpartyID is
// set, from the counterparty the principal contracts with. A counterparty
// that does not exist is logged and skipped.
func (l *FormLinker) DetachAll(p owner.Principal, counterpartyID, formID string) error {
	if err := l.Detach(p.Kind, p.ID, formID); err != nil {
		return err
	}
	if counterpartyID == "" {
		return nil
	}

	kind, ok := p.Kind.Counterparty()
	if !ok {
		logger.Log.Debug("no counterparty for owner kind",
			zap.String("kind", string(p.Kind)),
			zap.String("counterparty_id", counterpartyID))
		return nil
	}
	err := l.Detach(kind, counterpartyID, formID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Warn("counterparty not found while detaching form",
			zap.String("kind", string(kind)),
			zap.String("counterparty_id", counterpartyID),
			zap.String("form_id", formID))
		return nil
	}
	return err
}

// Reconcile strips ids of deleted forms from every owner array.
func (l *FormLinker) Reconcile() (int64, error) {
	var total int64
	for _, kind := range []owner.Kind{owner.KindAgency, owner.KindBusiness, owner.KindWorker} {
		n, err := l.Repos.Owner.PruneDanglingForms(kind)
		if err != nil {
			return total, storeError("prune "+kind.Table(), err)
		}
		total += n
	}
	metrics.DanglingReferencesPruned.Add(float64(total))
	return total, nil
}

func linkError(kind owner.Kind, ownerID string, err error) error {
	if errors.Is(err, repository.ErrUnknownOwnerKind) {
		return fmt.Errorf("%w: %q", ErrUnknownOwnerKind, kind)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrUpdateFailed, kind, ownerID, err)
}
