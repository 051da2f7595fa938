package commands

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrHostRoleRequired = errs.New("only hosts can manage properties")

type CreatePropertyRequest struct {
	Title             string
	Description       string
	Location          string
	NightlyPriceCents int64
	MaxGuests         int
	Amenities         []string
	ImageURLs         []string
}

type UpdatePropertyRequest struct {
	Title             *string
	Description       *string
	Location          *string
	NightlyPriceCents *int64
	MaxGuests         *int
	Amenities         []string
	ImageURLs         []string
}

type PropertyCommands interface {
	CreateProperty(ctx context.Context, req CreatePropertyRequest, hostID uuid.UUID, hostRole user.Role) (uuid.UUID, error)
	UpdateProperty(ctx context.Context, propertyID uuid.UUID, req UpdatePropertyRequest, actorID uuid.UUID, actorRole user.Role) error
	DeleteProperty(ctx context.Context, propertyID, actorID uuid.UUID, actorRole user.Role) error
}

type propertyUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPropertyUseCase(uow shared.UnitOfWork) PropertyCommands {
	return &propertyUseCaseImpl{uow: uow}
}

func (uc *propertyUseCaseImpl) CreateProperty(ctx context.Context, req CreatePropertyRequest, hostID uuid.UUID, hostRole user.Role) (uuid.UUID, error) {
	if hostRole != user.RoleHost && hostRole != user.RoleAdmin {
		return uuid.Nil, ErrHostRoleRequired
	}

	entity, err := property.NewProperty(hostID, req.Title, req.Description, req.Location, req.NightlyPriceCents, req.MaxGuests, req.Amenities, req.ImageURLs)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var propertyID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Properties().Create(ctx, entity)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		propertyID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return propertyID, nil
}

// UpdateProperty applies partial changes after re-validating the merged
// record through the entity constructor.
func (uc *propertyUseCaseImpl) UpdateProperty(ctx context.Context, propertyID uuid.UUID, req UpdatePropertyRequest, actorID uuid.UUID, actorRole user.Role) error {
	snap, err := uc.uow.CommandReads().PropertyDetailByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPropertyNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.HostID != actorID && actorRole != user.RoleAdmin {
		return ErrNotAllowed
	}

	amenities := snap.Amenities
	if req.Amenities != nil {
		amenities = req.Amenities
	}
	imageURLs := snap.ImageURLs
	if req.ImageURLs != nil {
		imageURLs = req.ImageURLs
	}

	merged, err := property.NewProperty(
		snap.HostID,
		orElse(req.Title, snap.Title),
		orElse(req.Description, snap.Description),
		orElse(req.Location, snap.Location),
		orElse(req.NightlyPriceCents, snap.NightlyPriceCents),
		orElse(req.MaxGuests, snap.MaxGuests),
		amenities,
		imageURLs,
	)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	entity := property.ReconstructProperty(
		snap.ID, snap.HostID,
		merged.Title(), merged.Description(), merged.Location(),
		merged.NightlyPriceCents(), merged.MaxGuests(),
		merged.Amenities(), merged.ImageURLs(),
		snap.CreatedAt, snap.UpdatedAt,
	)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Properties().Update(ctx, entity); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// DeleteProperty removes a listing. Bookings and reviews cascade at the
// store level.
func (uc *propertyUseCaseImpl) DeleteProperty(ctx context.Context, propertyID, actorID uuid.UUID, actorRole user.Role) error {
	snap, err := uc.uow.CommandReads().PropertyByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPropertyNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.HostID != actorID && actorRole != user.RoleAdmin {
		return ErrNotAllowed
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Properties().Delete(ctx, snap.ID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func orElse[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
