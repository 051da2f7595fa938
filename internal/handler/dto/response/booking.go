package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyTitle   string    `json:"propertyTitle"`
	HostID          uuid.UUID `json:"hostId"`
	GuestID         uuid.UUID `json:"guestId"`
	GuestEmail      string    `json:"guestEmail"`
	CustomerName    string    `json:"customerName"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int32     `json:"guests"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyTitle   string    `json:"propertyTitle"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int32     `json:"guests"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type BookingPageResponse struct {
	Items      []*BookingListResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

type PurgeExpiredResponse struct {
	Purged int64 `json:"purged"`
}

type CancelBookingResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func FromBookingView(bv *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, bv); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingPageResponse, error) {
	out := make([]*BookingListResponse, 0, len(items))
	if err := copier.Copy(&out, items); err != nil {
		return nil, err
	}

	page := &BookingPageResponse{Items: out}
	if next != nil {
		page.NextCursor = next.After
	}
	return page, nil
}
