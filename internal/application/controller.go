// internal/application/controller.go
package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
)

// Messages shown to the customer after an intent completes.
const (
	MsgLoginSuccess   = "Login successful!"
	MsgLoginFailed    = "Login failed: Invalid credentials"
	MsgLogoutSuccess  = "Logout successful!"
	MsgSessionExpired = "Your session has expired. Please log in again."
	MsgOrderPlaced    = "Order placed successfully!"
	MsgOrderFailed    = "Failed to place order"
)

type mode int

const (
	modeLoggedOut mode = iota
	modeMain
	modePlacingOrder
	modeViewingOrders
)

func (m mode) String() string {
	switch m {
	case modeMain:
		return "main"
	case modePlacingOrder:
		return "placing_order"
	case modeViewingOrders:
		return "viewing_orders"
	default:
		return "logged_out"
	}
}

type state struct {
	mode    mode
	message string

	email   string
	session *domain.Session

	stores          []domain.Store
	selectedStore   *domain.Store
	products        domain.ProductPage
	productsLoading bool

	orders        domain.OrderPage
	ordersLoading bool

	draft domain.DraftOrder
}

// Controller owns the client session and routes between screens.
//
// The mutex guards state only and is released across every gateway call, so
// concurrent intents race and whichever response lands last is displayed.
type Controller struct {
	auth    *AuthService
	catalog *CatalogService
	orders  *OrderService
	log     *logrus.Entry

	mu sync.Mutex
	st state
}

// NewController builds a logged-out controller. Call Start to restore a saved session.
func NewController(auth *AuthService, catalog *CatalogService, orders *OrderService, log *logrus.Entry) *Controller {
	return &Controller{
		auth:    auth,
		catalog: catalog,
		orders:  orders,
		log:     log.WithField("component", "controller"),
		st:      state{products: domain.ProductPage{Page: 1}, orders: domain.OrderPage{CurrentPage: 1, TotalPages: 1}},
	}
}

// Start restores the persisted session and store and loads the catalog.
func (c *Controller) Start(ctx context.Context) {
	sess := c.auth.Restore(ctx)
	store := c.catalog.RestoreSelection(ctx)

	if sess == nil {
		if store != nil {
			c.log.Debug("dropping selected store without a session")
			c.catalog.Forget(ctx)
		}
		return
	}

	c.mu.Lock()
	c.st.session = sess
	c.st.mode = modeMain
	c.st.draft.SeedNames(sess.Customer)
	c.st.selectedStore = store
	c.mu.Unlock()
	c.log.Info("session restored")

	picked := c.loadStores(ctx)
	if store != nil && !picked && c.loggedIn() {
		c.loadProducts(ctx, 1)
	}
}

// View returns a snapshot of the current screen.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{Message: c.st.message}
	switch c.st.mode {
	case modeMain:
		v.Screen = MainScreen{
			Customer:        c.st.session.Customer,
			SelectedStore:   copyStore(c.st.selectedStore),
			Stores:          append([]domain.Store(nil), c.st.stores...),
			Products:        domain.ProductPage{Items: append([]domain.Product(nil), c.st.products.Items...), Page: c.st.products.Page},
			ProductsLoading: c.st.productsLoading,
		}
	case modePlacingOrder:
		v.Screen = PlacingOrderScreen{
			Product:        *c.st.draft.Product,
			PaymentAddress: c.st.draft.PaymentAddress,
			ErrandDetails:  c.st.draft.ErrandDetails,
		}
	case modeViewingOrders:
		v.Screen = ViewingOrdersScreen{
			Orders: domain.OrderPage{
				Items:       append([]domain.Order(nil), c.st.orders.Items...),
				CurrentPage: c.st.orders.CurrentPage,
				TotalPages:  c.st.orders.TotalPages,
			},
			Loading: c.st.ordersLoading,
		}
	default:
		v.Screen = LoggedOutScreen{Email: c.st.email}
	}
	return v
}

// Session returns a copy of the live session, or nil.
func (c *Controller) Session() *domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.session == nil {
		return nil
	}
	s := *c.st.session
	return &s
}

// SelectedStore returns a copy of the active store, or nil.
func (c *Controller) SelectedStore() *domain.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyStore(c.st.selectedStore)
}

// SubmitLogin authenticates from the logged-out screen. On success the session
// is persisted and the store list fetched; on failure the backend's message is shown.
func (c *Controller) SubmitLogin(ctx context.Context, email, password string) {
	c.mu.Lock()
	if c.st.mode != modeLoggedOut {
		c.mu.Unlock()
		return
	}
	c.st.email = email
	c.mu.Unlock()

	sess, err := c.auth.Login(ctx, email, password)
	if err != nil {
		var apiErr *domain.APIError
		c.mu.Lock()
		if errors.As(err, &apiErr) {
			c.st.message = apiErr.Message
			if c.st.message == "" {
				c.st.message = MsgLoginFailed
			}
		} else {
			c.log.WithError(err).Error("error during login")
			c.st.message = fmt.Sprintf("Error during login: %v", err)
		}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.st.session = sess
	c.st.mode = modeMain
	c.st.message = MsgLoginSuccess
	c.st.draft.SeedNames(sess.Customer)
	c.mu.Unlock()

	c.loadStores(ctx)
}

// Logout tells the backend best-effort, then forgets the session and selected store.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	if c.st.session == nil {
		c.mu.Unlock()
		return
	}
	token := c.st.session.Token
	c.mu.Unlock()

	c.auth.Logout(ctx, token)

	c.mu.Lock()
	c.reset(MsgLogoutSuccess)
	c.mu.Unlock()
}

// SelectStore makes a store from the fetched list active and loads its first product page.
func (c *Controller) SelectStore(ctx context.Context, storeID domain.NumericID) error {
	c.mu.Lock()
	var found *domain.Store
	for i := range c.st.stores {
		if c.st.stores[i].StoreID == storeID {
			found = copyStore(&c.st.stores[i])
			break
		}
	}
	if found == nil || c.st.session == nil {
		c.mu.Unlock()
		return fmt.Errorf("store %d not available", storeID)
	}
	c.st.selectedStore = found
	c.mu.Unlock()

	c.catalog.Remember(ctx, *found)
	c.loadProducts(ctx, 1)
	return nil
}

// ChangeProductPage refetches the selected store's products at page.
func (c *Controller) ChangeProductPage(ctx context.Context, page int) {
	if page < 1 {
		return
	}
	c.loadProducts(ctx, page)
}

// SelectProduct opens the order form for a product on the current page.
func (c *Controller) SelectProduct(productID domain.NumericID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.mode != modeMain {
		return fmt.Errorf("cannot select a product from the %s screen", c.st.mode)
	}
	for _, p := range c.st.products.Items {
		if p.ProductID == productID {
			c.st.draft.Product = &p
			c.st.mode = modePlacingOrder
			return nil
		}
	}
	return fmt.Errorf("product %d not on the current page", productID)
}

// EditPaymentAddress replaces one payment address field in the draft.
func (c *Controller) EditPaymentAddress(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.st.draft.PaymentAddress.With(field, value)
	if err != nil {
		return err
	}
	c.st.draft.PaymentAddress = next
	return nil
}

// EditErrandDetails replaces one errand field in the draft.
func (c *Controller) EditErrandDetails(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.st.draft.ErrandDetails.With(field, value)
	if err != nil {
		return err
	}
	c.st.draft.ErrandDetails = next
	return nil
}

// SubmitOrder places the draft order. A rejected order keeps the form and its inputs.
func (c *Controller) SubmitOrder(ctx context.Context) {
	c.mu.Lock()
	if c.st.mode != modePlacingOrder || c.st.draft.Product == nil || c.st.session == nil {
		c.mu.Unlock()
		return
	}
	token := c.st.session.Token
	customer := c.st.session.Customer
	draft := c.st.draft
	c.mu.Unlock()

	err := c.orders.PlaceOrder(ctx, token, draft, customer)
	if err != nil {
		var apiErr *domain.APIError
		switch {
		case !c.current(token):
			c.log.WithError(err).Debug("dropping order result for a replaced session")
		case errors.Is(err, domain.ErrUnauthorized):
			c.expire(ctx, token)
		case errors.As(err, &apiErr):
			c.setMessage(orDefault(apiErr.Message, MsgOrderFailed))
		default:
			c.log.WithError(err).Error("error placing order")
			c.setMessage(fmt.Sprintf("Error placing order: %v", err))
		}
		return
	}

	c.log.WithField("product_id", draft.Product.ProductID).Info("order placed")
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLocked(token) {
		return
	}
	c.st.message = MsgOrderPlaced
	c.st.draft = domain.DraftOrder{}
	c.st.draft.SeedNames(c.st.session.Customer)
	if c.st.mode == modePlacingOrder {
		c.st.mode = modeMain
	}
}

// CancelOrder leaves the order form. Address and errand edits are kept for the next attempt.
func (c *Controller) CancelOrder() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.mode != modePlacingOrder {
		return
	}
	c.st.draft.Product = nil
	c.st.mode = modeMain
}

// ViewOrders switches to order history and loads its first page.
func (c *Controller) ViewOrders(ctx context.Context) {
	c.mu.Lock()
	if c.st.session == nil {
		c.mu.Unlock()
		return
	}
	c.st.mode = modeViewingOrders
	c.mu.Unlock()

	c.loadOrders(ctx, 1)
}

// ChangeOrderPage refetches order history at page.
func (c *Controller) ChangeOrderPage(ctx context.Context, page int) {
	if page < 1 {
		return
	}
	c.loadOrders(ctx, page)
}

// BackToMain leaves order history.
func (c *Controller) BackToMain() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.mode == modeViewingOrders {
		c.st.mode = modeMain
	}
}

// RefreshStores refetches the store list. The default-selection policy runs
// again and may replace the current store.
func (c *Controller) RefreshStores(ctx context.Context) {
	c.loadStores(ctx)
}

// loadStores refreshes the store list and applies the default-selection policy,
// which replaces any earlier selection. It reports whether a store was picked.
func (c *Controller) loadStores(ctx context.Context) bool {
	token, ok := c.token()
	if !ok {
		return false
	}

	stores, err := c.catalog.Stores(ctx, token)
	if err != nil {
		c.fail(ctx, token, err, "Error fetching stores")
		return false
	}

	c.mu.Lock()
	if !c.currentLocked(token) {
		c.mu.Unlock()
		return false
	}
	c.st.stores = stores
	pick, found := domain.PickDefaultStore(stores)
	if found {
		c.st.selectedStore = &pick
	}
	c.mu.Unlock()

	if !found {
		return false
	}
	c.log.WithField("store_id", pick.StoreID).Debug("default store selected")
	c.catalog.Remember(ctx, pick)
	c.loadProducts(ctx, 1)
	return true
}

func (c *Controller) loadProducts(ctx context.Context, page int) {
	c.mu.Lock()
	if c.st.session == nil || c.st.selectedStore == nil {
		c.mu.Unlock()
		return
	}
	token := c.st.session.Token
	storeID := c.st.selectedStore.StoreID
	c.st.productsLoading = true
	c.mu.Unlock()

	result, err := c.catalog.Products(ctx, token, storeID, page)

	c.mu.Lock()
	c.st.productsLoading = false
	if err == nil && c.currentLocked(token) {
		c.st.products = *result
	}
	c.mu.Unlock()

	if err != nil {
		c.fail(ctx, token, err, "Error fetching products")
	}
}

func (c *Controller) loadOrders(ctx context.Context, page int) {
	token, ok := c.token()
	if !ok {
		return
	}
	c.mu.Lock()
	c.st.ordersLoading = true
	c.mu.Unlock()

	result, err := c.orders.ListOrders(ctx, token, page)

	c.mu.Lock()
	c.st.ordersLoading = false
	if err == nil && c.currentLocked(token) {
		c.st.orders = *result
	}
	c.mu.Unlock()

	if err != nil {
		c.fail(ctx, token, err, "Error fetching orders")
	}
}

// fail turns a gateway error into a message; unauthorized responses end the session.
// Errors for a token that is no longer the live one are dropped.
func (c *Controller) fail(ctx context.Context, token string, err error, doing string) {
	if !c.current(token) {
		c.log.WithError(err).Debug("dropping result for a replaced session")
		return
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		c.expire(ctx, token)
		return
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		c.setMessage(apiErr.Message)
		return
	}
	c.log.WithError(err).Error(doing)
	c.setMessage(fmt.Sprintf("%s: %v", doing, err))
}

// expire ends the session that token belongs to. Storage is cleared after the
// lock is released.
func (c *Controller) expire(ctx context.Context, token string) {
	c.mu.Lock()
	if !c.currentLocked(token) {
		c.mu.Unlock()
		return
	}
	c.reset(MsgSessionExpired)
	c.mu.Unlock()

	c.auth.Expire(ctx)
}

// reset returns to the logged-out screen. Callers hold c.mu.
func (c *Controller) reset(message string) {
	email := c.st.email
	c.st = state{
		mode:     modeLoggedOut,
		message:  message,
		email:    email,
		products: domain.ProductPage{Page: 1},
		orders:   domain.OrderPage{CurrentPage: 1, TotalPages: 1},
	}
}

func (c *Controller) token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.session == nil {
		return "", false
	}
	return c.st.session.Token, true
}

// current reports whether token belongs to the live session.
func (c *Controller) current(token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked(token)
}

func (c *Controller) currentLocked(token string) bool {
	return c.st.session != nil && c.st.session.Token == token
}

func (c *Controller) loggedIn() bool {
	_, ok := c.token()
	return ok
}

func (c *Controller) setMessage(msg string) {
	c.mu.Lock()
	c.st.message = msg
	c.mu.Unlock()
}

func copyStore(s *domain.Store) *domain.Store {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
