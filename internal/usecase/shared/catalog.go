package shared

import (
	"context"

	"pawsalon/internal/infra"
	"pawsalon/internal/pkg/errs"

	"github.com/google/uuid"
)

// ActiveService resolves a bookable service. Unknown and inactive services are both NotFound.
func ActiveService(ctx context.Context, catalog Catalog, id uuid.UUID) (*ServiceSnapshot, error) {
	svc, err := catalog.ServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrServiceNotFound)
		}
		return nil, errs.Wrap(err, "failed to look up service")
	}
	if !svc.Active {
		return nil, errs.NotFound(ErrServiceNotFound)
	}
	return svc, nil
}
