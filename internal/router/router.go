package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/restaurant-order-hub/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/restaurant-order-hub/internal/hub"        // import the websocket broadcast hub
	"github.com/iliyamo/restaurant-order-hub/internal/middleware" // import middleware for admin authentication
)

// Handlers bundles every handler the router needs.  All fields must be
// non-nil; the individual constructors already guard against nil
// stores.
type Handlers struct {
	Auth     *handler.AuthHandler
	Menu     *handler.MenuHandler
	Table    *handler.TableHandler
	Session  *handler.SessionHandler
	Order    *handler.OrderHandler
	Payment  *handler.PaymentHandler
	Event    *handler.EventHandler
	Settings *handler.SettingsHandler
}

// RegisterRoutes wires the full API surface onto the provided Echo
// instance.  The ordering and kitchen surfaces are unauthenticated
// (anonymous tablets in the venue); admin mutations sit behind the
// admin token middleware.  The optional limiter guards the public
// ordering surface.
func RegisterRoutes(e *echo.Echo, h Handlers, broadcast *hub.Hub, jwtSecret string, limiter echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Real-time broadcast subscription used by every surface.
	e.GET("/ws", hub.Handler(broadcast))

	// Operator login.
	e.POST("/api/auth/login", h.Auth.Login)

	// Public read surface: menus, tables, sessions, items, payments.
	e.GET("/api/menus", h.Menu.List)
	e.GET("/api/tables", h.Table.List)
	e.GET("/api/sessions", h.Session.Find)
	e.GET("/api/order-items", h.Order.ListItems)
	e.GET("/api/payments", h.Payment.List)
	e.GET("/api/events", h.Event.List)
	e.GET("/api/settings", h.Settings.Get)

	// Ordering and kitchen surface.  Stock reservation makes order
	// submission the one endpoint worth rate limiting.
	ordering := e.Group("")
	if limiter != nil {
		ordering.Use(limiter)
	}
	ordering.POST("/api/orders", h.Order.Submit)
	ordering.POST("/api/sessions", h.Session.Open)
	ordering.PATCH("/api/order-items/:id/status", h.Order.UpdateItemStatus)
	ordering.DELETE("/api/order-items/:id", h.Order.CancelItem)
	ordering.POST("/api/payments", h.Payment.Settle)
	ordering.PATCH("/api/sessions/:id", h.Session.Update)

	// Admin mutations require the operator token.
	admin := e.Group("/api", middleware.AdminAuth(jwtSecret))
	admin.POST("/menus", h.Menu.Create)
	admin.PATCH("/menus/:id", h.Menu.Update)
	admin.DELETE("/menus/:id", h.Menu.Delete)
	admin.POST("/tables", h.Table.Create)
	admin.PATCH("/tables/:id", h.Table.Update)
	admin.DELETE("/tables/:id", h.Table.Delete)
	admin.POST("/events", h.Event.Create)
	admin.POST("/events/:id/clone-menus", h.Event.CloneMenus)
	admin.PATCH("/settings", h.Settings.Update)
}
