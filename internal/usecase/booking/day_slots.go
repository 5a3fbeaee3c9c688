package booking

import (
	"context"
	"time"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
)

type GetDayAvailability struct {
	repo     domain.Repository
	resolver *domain.Resolver
}

func NewGetDayAvailability(repo domain.Repository) *GetDayAvailability {
	return &GetDayAvailability{
		repo:     repo,
		resolver: domain.NewResolver(repo),
	}
}

// Execute returns the full canonical slot list for the barber and date,
// each marked available or not. The view is advisory only; booking
// re-checks the slot at commit.
func (uc *GetDayAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]domain.Slot, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	return uc.resolver.ResolveDaySlots(ctx, barberID, date)
}
