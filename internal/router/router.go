// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/krishnasharma7/restaurant-management-system/internal/handler"
	"github.com/krishnasharma7/restaurant-management-system/internal/middleware"
)

// RegisterCore registers the reservation and order endpoints plus the
// public menu listing. These are the paths the dashboards call; none
// of them require authentication. cacheMW wraps GET /menu and may be
// a pass-through when Redis is unavailable.
func RegisterCore(e *echo.Echo, res *handler.ReservationHandler, orders *handler.OrderHandler, menu *handler.MenuHandler, cacheMW echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Reservation lifecycle: general surface.
	e.POST("/reservations", res.Create)
	e.GET("/reservations", res.List)
	e.PUT("/reservations/:id", res.Modify)
	e.DELETE("/reservations/:id", res.Cancel)

	// Order intake, unchecked variant, and the order book.
	e.POST("/order", orders.PlaceOrder)
	e.GET("/order/view", orders.ListOrders)

	// Menu catalog listing, served from the response cache when warm.
	if cacheMW != nil {
		e.GET("/menu", menu.ListMenu, cacheMW)
	} else {
		e.GET("/menu", menu.ListMenu)
	}

	// Customer surface: stricter order intake and per-user listing.
	g := e.Group("/customers")
	g.POST("/order", orders.PlaceOrderChecked)
	g.GET("/reservations/:user_id", res.ListByUser)
}

// RegisterAuth registers registration and login under /v1/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterUsers registers the legacy pass-through user endpoints.
// They perform no uniqueness checks and require no token, exactly as
// the collaborator they replace.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler) {
	e.POST("/users", u.CreateUser)
	e.PUT("/users/:id", u.UpdateUser)
	e.DELETE("/users/:id", u.DeleteUser)
}

// RegisterAdmin registers the admin surface: user management with
// uniqueness enforcement and menu catalog management. All routes
// require a valid JWT with the ADMIN role.
func RegisterAdmin(e *echo.Echo, u *handler.UserHandler, m *handler.MenuHandler, jwtSecret string) {
	g := e.Group("/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)
	g.GET("/users", u.ListUsers)
	g.POST("/users", u.AddUser)
	g.PUT("/users/:id", u.AdminUpdateUser)
	g.DELETE("/users/:id", u.DeleteUser)

	g.POST("/menu", m.CreateItem)
	g.PUT("/menu/:id", m.UpdateItem)
	g.DELETE("/menu/:id", m.DeleteItem)
}

// RegisterStaff registers the staff surface: restaurant details and
// the payment book. STAFF and ADMIN roles are both accepted. The
// unauthenticated /restaurant_details alias is kept for the legacy
// dashboard.
func RegisterStaff(e *echo.Echo, r *handler.RestaurantHandler, p *handler.PaymentHandler, jwtSecret string) {
	g := e.Group("/staff",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("STAFF", "ADMIN"),
	)
	g.GET("/restaurant", r.GetDetails)
	g.PUT("/restaurant", r.UpdateDetails)
	g.GET("/payments", p.ListPayments)
	g.POST("/payments", p.RecordPayment)

	e.GET("/restaurant_details", r.GetDetails)
	e.PUT("/restaurant_details", r.UpdateDetails)
}
