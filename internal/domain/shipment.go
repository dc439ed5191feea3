package domain

import "time"

type ShipmentStatus string

const (
	ShipmentPreparing ShipmentStatus = "preparing"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
)

type ShipmentEvent struct {
	ID          int64     `json:"id"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Shipment is looked up publicly by its tracking code, so the numeric ID
// never leaves the API.
type Shipment struct {
	ID           int64           `json:"-"`
	TrackingCode string          `json:"trackingCode"`
	Carrier      string          `json:"carrier"`
	Status       ShipmentStatus  `json:"status"`
	Events       []ShipmentEvent `json:"events"`
	CreatedAt    time.Time       `json:"createdAt"`
	Version      int32           `json:"-"`
}
