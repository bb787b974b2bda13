// internal/mockapi/data.go
package mockapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmptyOrder         = errors.New("No products in order")
)

type account struct {
	passwordHash []byte
	customer     domain.Customer
}

// Data is the in-memory backing store of the mock API.
type Data struct {
	mu          sync.RWMutex
	stores      []domain.Store
	products    map[domain.NumericID][]domain.Product
	accounts    map[string]*account
	orders      map[domain.Text][]domain.Order
	nextOrderID int64
	now         func() time.Time
}

func NewData() *Data {
	return &Data{
		products:    make(map[domain.NumericID][]domain.Product),
		accounts:    make(map[string]*account),
		orders:      make(map[domain.Text][]domain.Order),
		nextOrderID: 1000,
		now:         time.Now,
	}
}

// Seeded returns a data set with three stores, a paginated catalog and one customer.
func Seeded(email, password string) (*Data, error) {
	d := NewData()
	d.AddStore(domain.Store{StoreID: 1, Name: "Dexter Express", URL: "https://express.dexter.example"})
	d.AddStore(domain.Store{StoreID: 2, Name: domain.DefaultStoreName, URL: "https://weusifix.example"})
	d.AddStore(domain.Store{StoreID: 3, Name: "Soko Fresh"})

	for i := 1; i <= 23; i++ {
		d.AddProduct(2, domain.Product{
			ProductID: domain.NumericID(100 + i),
			Name:      fmt.Sprintf("Errand package %d", i),
			Price:     domain.Text(fmt.Sprintf("%d.00", 150+i*25)),
		})
	}
	d.AddProduct(1, domain.Product{ProductID: 11, Name: "Same-day courier", Price: "450.00"})
	d.AddProduct(1, domain.Product{ProductID: 12, Name: "Document pickup", Price: "200.00"})
	d.AddProduct(3, domain.Product{ProductID: 31, Name: "Grocery run", Price: "300.00"})

	err := d.AddCustomer(email, password, domain.Customer{
		CustomerID: "1",
		Firstname:  "Amina",
		Lastname:   "Njeri",
		Email:      email,
		Telephone:  "+254700000001",
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Data) AddStore(s domain.Store) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stores = append(d.stores, s)
}

func (d *Data) AddProduct(storeID domain.NumericID, p domain.Product) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.products[storeID] = append(d.products[storeID], p)
}

func (d *Data) AddCustomer(email, password string, c domain.Customer) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts[strings.ToLower(email)] = &account{passwordHash: hash, customer: c}
	return nil
}

func (d *Data) Authenticate(email, password string) (domain.Customer, error) {
	d.mu.RLock()
	acc, ok := d.accounts[strings.ToLower(strings.TrimSpace(email))]
	d.mu.RUnlock()
	if !ok {
		return domain.Customer{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return domain.Customer{}, ErrInvalidCredentials
	}
	return acc.customer, nil
}

func (d *Data) Stores() []domain.Store {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.Store{}, d.stores...)
}

// Products returns one page of a store's catalog. Pages past the end are empty.
func (d *Data) Products(storeID domain.NumericID, page, limit int) []domain.Product {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return pageOf(d.products[storeID], page, limit)
}

func (d *Data) findProduct(id domain.NumericID) (domain.Product, bool) {
	for _, list := range d.products {
		for _, p := range list {
			if p.ProductID == id {
				return p, true
			}
		}
	}
	return domain.Product{}, false
}

// PlaceOrder validates the payload and records the order under the customer.
func (d *Data) PlaceOrder(customerID domain.Text, payload domain.OrderPayload) (domain.Order, error) {
	if len(payload.Products) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var lines []domain.OrderLine
	var sum float64
	for _, item := range payload.Products {
		if item.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("Invalid quantity for product %d", item.ProductID)
		}
		p, ok := d.findProduct(item.ProductID)
		if !ok {
			return domain.Order{}, fmt.Errorf("Product %d not found", item.ProductID)
		}
		price, err := strconv.ParseFloat(string(p.Price), 64)
		if err != nil {
			return domain.Order{}, fmt.Errorf("Product %d has no valid price", item.ProductID)
		}
		total := price * float64(item.Quantity)
		sum += total
		lines = append(lines, domain.OrderLine{
			ProductID: domain.Text(item.ProductID.String()),
			Name:      p.Name,
			Quantity:  domain.Text(strconv.Itoa(item.Quantity)),
			Price:     p.Price,
			Total:     domain.Text(fmt.Sprintf("%.2f", total)),
		})
	}

	d.nextOrderID++
	order := domain.Order{
		OrderID:   domain.Text(strconv.FormatInt(d.nextOrderID, 10)),
		Name:      strings.TrimSpace(payload.PaymentAddress.Firstname + " " + payload.PaymentAddress.Lastname),
		Status:    "Pending",
		DateAdded: d.now().Format("2006-01-02 15:04:05"),
		Total:     domain.Text(fmt.Sprintf("%.2f", sum)),
		Products:  lines,
	}
	// newest first
	d.orders[customerID] = append([]domain.Order{order}, d.orders[customerID]...)
	return order, nil
}

// Orders returns one page of the customer's orders and the total count.
func (d *Data) Orders(customerID domain.Text, page, limit int) ([]domain.Order, int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	all := d.orders[customerID]
	return pageOf(all, page, limit), len(all)
}

func pageOf[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[start:end]...)
}
