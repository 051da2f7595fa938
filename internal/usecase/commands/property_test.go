//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/property"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/shared"
	sharedmock "stayhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type propertyMocks struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	reads      *sharedmock.MockCommandReads
	properties *sharedmock.MockPropertyRepository
}

func newPropertyMocks(ctrl *gomock.Controller) *propertyMocks {
	m := &propertyMocks{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		reads:      sharedmock.NewMockCommandReads(ctrl),
		properties: sharedmock.NewMockPropertyRepository(ctrl),
	}
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Properties().Return(m.properties).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	return m
}

func (m *propertyMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func validCreateRequest() commands.CreatePropertyRequest {
	return commands.CreatePropertyRequest{
		Title:             "Harbour Loft",
		Description:       "Bright loft near the harbour.",
		Location:          "Bergen",
		NightlyPriceCents: 15000,
		MaxGuests:         3,
		Amenities:         []string{"wifi"},
		ImageURLs:         []string{"https://img.example/1.jpg"},
	}
}

func TestPropertyCommands_CreateProperty(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	propertyID := uuid.New()

	testCases := []struct {
		name        string
		req         commands.CreatePropertyRequest
		role        user.Role
		setupMock   func(m *propertyMocks)
		expectedErr error
	}{
		{
			name: "success: host creates a listing",
			req:  validCreateRequest(),
			role: user.RoleHost,
			setupMock: func(m *propertyMocks) {
				m.expectWithin()
				m.properties.EXPECT().Create(gomock.Any(), gomock.Any()).Return(propertyID, nil)
			},
		},
		{
			name: "success: admin may create on behalf of a host",
			req:  validCreateRequest(),
			role: user.RoleAdmin,
			setupMock: func(m *propertyMocks) {
				m.expectWithin()
				m.properties.EXPECT().Create(gomock.Any(), gomock.Any()).Return(propertyID, nil)
			},
		},
		{
			name:        "error: guests may not create listings",
			req:         validCreateRequest(),
			role:        user.RoleGuest,
			setupMock:   func(m *propertyMocks) {},
			expectedErr: commands.ErrHostRoleRequired,
		},
		{
			name: "error: empty title fails validation",
			req: commands.CreatePropertyRequest{
				Title:             "",
				Location:          "Bergen",
				NightlyPriceCents: 15000,
				MaxGuests:         3,
			},
			role:        user.RoleHost,
			setupMock:   func(m *propertyMocks) {},
			expectedErr: commands.ErrDomainValidation,
		},
		{
			name: "error: non-positive price fails validation",
			req: commands.CreatePropertyRequest{
				Title:             "Harbour Loft",
				Location:          "Bergen",
				NightlyPriceCents: 0,
				MaxGuests:         3,
			},
			role:        user.RoleHost,
			setupMock:   func(m *propertyMocks) {},
			expectedErr: commands.ErrDomainValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newPropertyMocks(ctrl)
			tc.setupMock(m)
			uc := commands.NewPropertyUseCase(m.uow)

			id, err := uc.CreateProperty(ctx, tc.req, hostID, tc.role)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, propertyID, id)
		})
	}
}

func TestPropertyCommands_UpdateProperty(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	hostID := uuid.New()

	detail := func() *shared.PropertyDetailSnapshot {
		return &shared.PropertyDetailSnapshot{
			ID:                propertyID,
			HostID:            hostID,
			Title:             "Harbour Loft",
			Description:       "Bright loft near the harbour.",
			Location:          "Bergen",
			NightlyPriceCents: 15000,
			MaxGuests:         3,
			Amenities:         []string{"wifi"},
			ImageURLs:         []string{"https://img.example/1.jpg"},
			CreatedAt:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:         time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		}
	}

	newTitle := "Harbour Loft Deluxe"
	badPrice := int64(-1)

	testCases := []struct {
		name        string
		req         commands.UpdatePropertyRequest
		actorID     uuid.UUID
		actorRole   user.Role
		setupMock   func(m *propertyMocks)
		verify      func(t *testing.T, updated *property.Property)
		expectedErr error
	}{
		{
			name:      "success: owner changes the title, other fields survive",
			req:       commands.UpdatePropertyRequest{Title: &newTitle},
			actorID:   hostID,
			actorRole: user.RoleHost,
			setupMock: func(m *propertyMocks) {
				m.reads.EXPECT().PropertyDetailByID(ctx, propertyID).Return(detail(), nil)
				m.expectWithin()
			},
			verify: func(t *testing.T, updated *property.Property) {
				assert.Equal(t, propertyID, updated.ID())
				assert.Equal(t, newTitle, updated.Title())
				assert.Equal(t, "Bergen", updated.Location())
				assert.Equal(t, int64(15000), updated.NightlyPriceCents())
				assert.Equal(t, []string{"wifi"}, updated.Amenities())
			},
		},
		{
			name:      "success: admin may edit any listing",
			req:       commands.UpdatePropertyRequest{Title: &newTitle},
			actorID:   uuid.New(),
			actorRole: user.RoleAdmin,
			setupMock: func(m *propertyMocks) {
				m.reads.EXPECT().PropertyDetailByID(ctx, propertyID).Return(detail(), nil)
				m.expectWithin()
			},
			verify: func(t *testing.T, updated *property.Property) {
				assert.Equal(t, newTitle, updated.Title())
			},
		},
		{
			name:      "error: other hosts may not edit",
			req:       commands.UpdatePropertyRequest{Title: &newTitle},
			actorID:   uuid.New(),
			actorRole: user.RoleHost,
			setupMock: func(m *propertyMocks) {
				m.reads.EXPECT().PropertyDetailByID(ctx, propertyID).Return(detail(), nil)
			},
			expectedErr: commands.ErrNotAllowed,
		},
		{
			name:      "error: merged record fails validation",
			req:       commands.UpdatePropertyRequest{NightlyPriceCents: &badPrice},
			actorID:   hostID,
			actorRole: user.RoleHost,
			setupMock: func(m *propertyMocks) {
				m.reads.EXPECT().PropertyDetailByID(ctx, propertyID).Return(detail(), nil)
			},
			expectedErr: commands.ErrDomainValidation,
		},
		{
			name:      "error: listing does not exist",
			req:       commands.UpdatePropertyRequest{Title: &newTitle},
			actorID:   hostID,
			actorRole: user.RoleHost,
			setupMock: func(m *propertyMocks) {
				m.reads.EXPECT().PropertyDetailByID(ctx, propertyID).
					Return(nil, infra.NewRepoErr(infra.KindNotFound, "property not found", nil))
			},
			expectedErr: commands.ErrPropertyNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newPropertyMocks(ctrl)
			tc.setupMock(m)

			var captured *property.Property
			if tc.expectedErr == nil {
				m.properties.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *property.Property) error {
						captured = p
						return nil
					})
			}

			uc := commands.NewPropertyUseCase(m.uow)
			err := uc.UpdateProperty(ctx, propertyID, tc.req, tc.actorID, tc.actorRole)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, captured)
			tc.verify(t, captured)
		})
	}
}

func TestPropertyCommands_DeleteProperty(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	hostID := uuid.New()

	snap := &shared.PropertySnapshot{ID: propertyID, HostID: hostID, NightlyPriceCents: 15000, MaxGuests: 3}

	testCases := []struct {
		name        string
		actorID     uuid.UUID
		actorRole   user.Role
		setupMock   func(m *propertyMocks)
		expectedErr error
	}{
		{
			name:      "success: owner deletes listing",
			actorID:   hostID,
			actorRole: user.RoleHost,
			setupMock: func(m *propertyMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).Return(snap, nil)
				m.expectWithin()
				m.properties.EXPECT().Delete(gomock.Any(), propertyID).Return(nil)
			},
		},
		{
			name:      "error: unrelated host may not delete",
			actorID:   uuid.New(),
			actorRole: user.RoleHost,
			setupMock: func(m *propertyMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).Return(snap, nil)
			},
			expectedErr: commands.ErrNotAllowed,
		},
		{
			name:      "error: listing does not exist",
			actorID:   hostID,
			actorRole: user.RoleHost,
			setupMock: func(m *propertyMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).
					Return(nil, infra.NewRepoErr(infra.KindNotFound, "property not found", nil))
			},
			expectedErr: commands.ErrPropertyNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newPropertyMocks(ctrl)
			tc.setupMock(m)
			uc := commands.NewPropertyUseCase(m.uow)

			err := uc.DeleteProperty(ctx, propertyID, tc.actorID, tc.actorRole)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
