// internal/domain/draft.go
package domain

import "fmt"

type PaymentAddress struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Zone      string `json:"zone"`
	Country   string `json:"country"`
	Postcode  string `json:"postcode"`
}

// PaymentAddressFields lists the form field names in display order.
var PaymentAddressFields = []string{"firstname", "lastname", "address_1", "city", "zone", "country", "postcode"}

// With returns a copy of the address with a single field replaced.
func (a PaymentAddress) With(field, value string) (PaymentAddress, error) {
	switch field {
	case "firstname":
		a.Firstname = value
	case "lastname":
		a.Lastname = value
	case "address_1":
		a.Address1 = value
	case "city":
		a.City = value
	case "zone":
		a.Zone = value
	case "country":
		a.Country = value
	case "postcode":
		a.Postcode = value
	default:
		return a, fmt.Errorf("unknown payment address field %q", field)
	}
	return a, nil
}

type ErrandDetails struct {
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
	Comment         string `json:"comment"`
}

var ErrandDetailsFields = []string{"pickup_location", "dropoff_location", "comment"}

// With returns a copy of the errand details with a single field replaced.
func (e ErrandDetails) With(field, value string) (ErrandDetails, error) {
	switch field {
	case "pickup_location":
		e.PickupLocation = value
	case "dropoff_location":
		e.DropoffLocation = value
	case "comment":
		e.Comment = value
	default:
		return e, fmt.Errorf("unknown errand field %q", field)
	}
	return e, nil
}

// DraftOrder is the unsubmitted order form.
type DraftOrder struct {
	Product        *Product
	PaymentAddress PaymentAddress
	ErrandDetails  ErrandDetails
}

// SeedNames copies the customer's name into the payment address.
func (d *DraftOrder) SeedNames(c Customer) {
	d.PaymentAddress.Firstname = c.Firstname
	d.PaymentAddress.Lastname = c.Lastname
}

// Payload builds the order body for the selected product. Quantity is always 1.
func (d DraftOrder) Payload(c Customer) (OrderPayload, error) {
	if d.Product == nil {
		return OrderPayload{}, fmt.Errorf("no product selected")
	}
	return OrderPayload{
		Products:       []OrderItem{{ProductID: d.Product.ProductID, Quantity: 1}},
		Customer:       c,
		PaymentAddress: d.PaymentAddress,
		ErrandDetails:  d.ErrandDetails,
	}, nil
}

// PickDefaultStore applies the default-selection policy.
func PickDefaultStore(stores []Store) (Store, bool) {
	for _, s := range stores {
		if s.Name == DefaultStoreName {
			return s, true
		}
	}
	for _, s := range stores {
		if s.StoreID == FallbackStoreID {
			return s, true
		}
	}
	return Store{}, false
}
