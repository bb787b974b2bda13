// internal/ui/view.go
package ui

import (
	"strconv"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/application"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
)

// Page is the render model for one controller snapshot. Exactly one of the
// screen fields is set.
type Page struct {
	Message   string
	LoggedOut *LoginForm
	Main      *MainView
	Order     *OrderForm
	Orders    *OrderList
}

type LoginForm struct {
	Email string
}

type MainView struct {
	Welcome  string
	Store    StoreInfo
	Stores   []StoreOption
	Products ProductList
}

type StoreInfo struct {
	Name     string
	URL      string
	Selected bool
}

type StoreOption struct {
	ID       string
	Name     string
	Selected bool
}

type ProductRow struct {
	ID    string
	Name  string
	Price string
}

type ProductList struct {
	Items   []ProductRow
	Loading bool
	Pager   Pager
}

type Pager struct {
	Show         bool
	Label        string
	Prev         int
	Next         int
	PrevDisabled bool
	NextDisabled bool
}

type Field struct {
	Group string
	Name  string
	Label string
	Value string
}

type OrderForm struct {
	Product ProductRow
	Address []Field
	Errand  []Field
}

type OrderLineRow struct {
	Name     string
	Quantity string
	Price    string
	Total    string
}

type OrderRow struct {
	ID        string
	Name      string
	Status    string
	DateAdded string
	Total     string
	Lines     []OrderLineRow
}

type OrderList struct {
	Orders  []OrderRow
	Loading bool
	Pager   Pager
}

const (
	GroupPaymentAddress = "payment_address"
	GroupErrandDetails  = "errand_details"
)

var fieldLabels = map[string]string{
	"firstname":        "First Name",
	"lastname":         "Last Name",
	"address_1":        "Address",
	"city":             "City",
	"zone":             "Zone",
	"country":          "Country",
	"postcode":         "Postcode",
	"pickup_location":  "Pickup Location",
	"dropoff_location": "Dropoff Location",
	"comment":          "Comment",
}

// Build maps a controller view onto the render model.
func Build(v application.View) Page {
	p := Page{Message: v.Message}
	switch s := v.Screen.(type) {
	case application.MainScreen:
		m := BuildMain(s)
		p.Main = &m
	case application.PlacingOrderScreen:
		f := BuildOrderForm(s)
		p.Order = &f
	case application.ViewingOrdersScreen:
		l := BuildOrderList(s.Orders, s.Loading)
		p.Orders = &l
	case application.LoggedOutScreen:
		p.LoggedOut = &LoginForm{Email: s.Email}
	default:
		p.LoggedOut = &LoginForm{}
	}
	return p
}

func BuildMain(s application.MainScreen) MainView {
	m := MainView{
		Welcome:  "Welcome, " + s.Customer.Firstname,
		Products: BuildProductList(s.Products, s.ProductsLoading),
	}
	if s.SelectedStore != nil {
		m.Store = StoreInfo{Name: s.SelectedStore.Name, URL: s.SelectedStore.URL, Selected: true}
	}
	for _, st := range s.Stores {
		m.Stores = append(m.Stores, StoreOption{
			ID:       st.StoreID.String(),
			Name:     st.Name,
			Selected: s.SelectedStore != nil && s.SelectedStore.StoreID == st.StoreID,
		})
	}
	return m
}

// BuildProductList disables Next once a page comes back empty, since the
// product endpoint reports no total.
func BuildProductList(page domain.ProductPage, loading bool) ProductList {
	n := page.Page
	if n < 1 {
		n = 1
	}
	l := ProductList{
		Loading: loading,
		Pager: Pager{
			Show:         len(page.Items) > 0 || n > 1,
			Label:        "Page " + strconv.Itoa(n),
			Prev:         n - 1,
			Next:         n + 1,
			PrevDisabled: n <= 1,
			NextDisabled: len(page.Items) == 0,
		},
	}
	for _, p := range page.Items {
		l.Items = append(l.Items, productRow(p))
	}
	return l
}

func BuildOrderForm(s application.PlacingOrderScreen) OrderForm {
	f := OrderForm{Product: productRow(s.Product)}
	addr := s.PaymentAddress
	values := map[string]string{
		"firstname": addr.Firstname,
		"lastname":  addr.Lastname,
		"address_1": addr.Address1,
		"city":      addr.City,
		"zone":      addr.Zone,
		"country":   addr.Country,
		"postcode":  addr.Postcode,
	}
	for _, name := range domain.PaymentAddressFields {
		f.Address = append(f.Address, Field{Group: GroupPaymentAddress, Name: name, Label: fieldLabels[name], Value: values[name]})
	}
	errand := map[string]string{
		"pickup_location":  s.ErrandDetails.PickupLocation,
		"dropoff_location": s.ErrandDetails.DropoffLocation,
		"comment":          s.ErrandDetails.Comment,
	}
	for _, name := range domain.ErrandDetailsFields {
		f.Errand = append(f.Errand, Field{Group: GroupErrandDetails, Name: name, Label: fieldLabels[name], Value: errand[name]})
	}
	return f
}

func BuildOrderList(page domain.OrderPage, loading bool) OrderList {
	cur, total := page.CurrentPage, page.TotalPages
	if cur < 1 {
		cur = 1
	}
	if total < 1 {
		total = 1
	}
	l := OrderList{
		Loading: loading,
		Pager: Pager{
			Show:         true,
			Label:        "Page " + strconv.Itoa(cur) + " of " + strconv.Itoa(total),
			Prev:         cur - 1,
			Next:         cur + 1,
			PrevDisabled: cur <= 1,
			NextDisabled: cur >= total,
		},
	}
	for _, o := range page.Items {
		row := OrderRow{
			ID:        string(o.OrderID),
			Name:      o.Name,
			Status:    o.Status,
			DateAdded: o.DateAdded,
			Total:     string(o.Total),
		}
		for _, line := range o.Products {
			row.Lines = append(row.Lines, OrderLineRow{
				Name:     line.Name,
				Quantity: string(line.Quantity),
				Price:    string(line.Price),
				Total:    string(line.Total),
			})
		}
		l.Orders = append(l.Orders, row)
	}
	return l
}

func productRow(p domain.Product) ProductRow {
	return ProductRow{ID: p.ProductID.String(), Name: p.Name, Price: string(p.Price)}
}
