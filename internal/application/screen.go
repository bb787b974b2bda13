// internal/application/screen.go
package application

import "github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"

// Screen is one of LoggedOutScreen, MainScreen, PlacingOrderScreen or ViewingOrdersScreen.
type Screen interface {
	screen()
}

type LoggedOutScreen struct {
	Email string
}

type MainScreen struct {
	Customer        domain.Customer
	SelectedStore   *domain.Store
	Stores          []domain.Store
	Products        domain.ProductPage
	ProductsLoading bool
}

type PlacingOrderScreen struct {
	Product        domain.Product
	PaymentAddress domain.PaymentAddress
	ErrandDetails  domain.ErrandDetails
}

type ViewingOrdersScreen struct {
	Orders  domain.OrderPage
	Loading bool
}

func (LoggedOutScreen) screen()     {}
func (MainScreen) screen()          {}
func (PlacingOrderScreen) screen()  {}
func (ViewingOrdersScreen) screen() {}

// View is a consistent snapshot of what to display.
type View struct {
	Message string
	Screen  Screen
}
