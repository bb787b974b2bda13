// internal/domain/models.go
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultStoreName is the store preferred by the default-selection policy.
const DefaultStoreName = "Weusifix Logistics"

// FallbackStoreID is picked when no store carries DefaultStoreName.
const FallbackStoreID NumericID = 2

// NumericID is an integer identifier the backend may encode as a number or a numeric string.
type NumericID int64

func (id *NumericID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric id %s: %w", string(b), err)
	}
	*id = NumericID(n)
	return nil
}

func (id NumericID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Text is a string field the backend may encode as a JSON number.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

// Customer is the profile returned by login. The client never edits it; the
// original payload is echoed back verbatim when an order is submitted.
type Customer struct {
	CustomerID Text   `json:"customer_id"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`

	raw json.RawMessage
}

func (c *Customer) UnmarshalJSON(b []byte) error {
	type plain Customer
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, b); err != nil {
		return err
	}
	*c = Customer(p)
	c.raw = compact.Bytes()
	return nil
}

func (c Customer) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	type plain Customer
	return json.Marshal(plain(c))
}

// Empty reports whether no customer payload was received.
func (c Customer) Empty() bool {
	return len(c.raw) == 0 && c.CustomerID == "" && c.Firstname == "" && c.Lastname == "" && c.Email == "" && c.Telephone == ""
}

type Store struct {
	StoreID NumericID `json:"store_id"`
	Name    string    `json:"name"`
	URL     string    `json:"url,omitempty"`
}

type Product struct {
	ProductID NumericID `json:"product_id"`
	Name      string    `json:"name"`
	Price     Text      `json:"price"`
}

type ProductPage struct {
	Items []Product
	Page  int
}

type OrderLine struct {
	ProductID Text   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  Text   `json:"quantity"`
	Price     Text   `json:"price"`
	Total     Text   `json:"total"`
}

type Order struct {
	OrderID   Text        `json:"order_id"`
	Name      string      `json:"name"`
	Status    string      `json:"status"`
	DateAdded string      `json:"date_added"`
	Total     Text        `json:"total"`
	Products  []OrderLine `json:"products"`
}

type OrderPage struct {
	Items       []Order
	CurrentPage int
	TotalPages  int
}

// Session is the authenticated identity. Token and Customer are always set together.
type Session struct {
	Token    string
	Customer Customer
}

type LoginResult struct {
	Token    string
	Customer Customer
}

// OrderItem is a product line of a submitted order.
type OrderItem struct {
	ProductID NumericID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderPayload is the body posted to the custom order endpoint.
type OrderPayload struct {
	Products       []OrderItem    `json:"products"`
	Customer       Customer       `json:"customer"`
	PaymentAddress PaymentAddress `json:"payment_address"`
	ErrandDetails  ErrandDetails  `json:"errand_details"`
}
