package domain

// FirstAgreementID is the id assigned to the first agreement ever created.
// Agreement ids are strictly increasing from here and never reused, even
// after an agreement is removed on return.
const FirstAgreementID int32 = 1001

type RentalAgreement struct {
	ID         int32  `json:"id"`
	VehicleID  string `json:"vehicle_id"`
	CustomerID string `json:"customer_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	RentalDays int32  `json:"rental_days"`
	// Price snapshot captured from the vehicle at agreement creation time.
	// Cost calculations use the snapshot, not the live vehicle price.
	PricePerDay int32  `json:"price_per_day"`
	TotalCost   int32  `json:"total_cost"`
	AddonKey    string `json:"addon_key,omitempty"`
	CreatedOn   string `json:"created_on"`
}
