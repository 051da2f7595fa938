package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID                uuid.UUID             `json:"id"`
	HostID            uuid.UUID             `json:"hostId"`
	HostName          string                `json:"hostName"`
	Title             string                `json:"title"`
	Description       string                `json:"description"`
	Location          string                `json:"location"`
	NightlyPriceCents int64                 `json:"nightlyPriceCents"`
	MaxGuests         int32                 `json:"maxGuests"`
	Amenities         []string              `json:"amenities"`
	ImageURLs         []string              `json:"imageUrls"`
	AverageRating     float64               `json:"averageRating"`
	ReviewCount       int32                 `json:"reviewCount"`
	BookedRanges      []BookedRangeResponse `json:"bookedRanges"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

type BookedRangeResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type PropertyListResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Location          string    `json:"location"`
	NightlyPriceCents int64     `json:"nightlyPriceCents"`
	MaxGuests         int32     `json:"maxGuests"`
	AverageRating     float64   `json:"averageRating"`
	ReviewCount       int32     `json:"reviewCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

type PropertyPageResponse struct {
	Items      []*PropertyListResponse `json:"items"`
	NextCursor string                  `json:"nextCursor,omitempty"`
}

func FromPropertyView(pv *queries.PropertyView) (*PropertyResponse, error) {
	var resp PropertyResponse
	if err := copier.Copy(&resp, pv); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromPropertyList(items []*queries.PropertyListItem, next *queries.Cursor) (*PropertyPageResponse, error) {
	out := make([]*PropertyListResponse, 0, len(items))
	if err := copier.Copy(&out, items); err != nil {
		return nil, err
	}

	page := &PropertyPageResponse{Items: out}
	if next != nil {
		page.NextCursor = next.After
	}
	return page, nil
}
