package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// SessionHandler seats and releases parties.  The close transition is
// normally performed by the payment engine; the PATCH surface exists
// for manual corrections from the register.
type SessionHandler struct {
	Store *store.Store
}

// NewSessionHandler constructs a SessionHandler.  The store must be non-nil.
func NewSessionHandler(st *store.Store) *SessionHandler {
	if st == nil {
		panic("nil store passed to NewSessionHandler")
	}
	return &SessionHandler{Store: st}
}

// Open handles POST /api/sessions: seat a party at a table.
func (h *SessionHandler) Open(c echo.Context) error {
	var body struct {
		TableID   string `json:"tableId"`
		Headcount int    `json:"headcount"`
		EventID   string `json:"eventId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sess, err := h.Store.OpenSession(body.TableID, body.Headcount, body.EventID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, sess)
}

// Find handles GET /api/sessions.  With a tableId it returns that
// table's open session or null; otherwise it lists sessions, optionally
// filtered by eventId.
func (h *SessionHandler) Find(c echo.Context) error {
	tableID := c.QueryParam("tableId")
	eventID := c.QueryParam("eventId")
	if tableID != "" {
		sess, ok := h.Store.FindOpenSession(tableID, eventID)
		if !ok {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusOK, sess)
	}
	return c.JSON(http.StatusOK, h.Store.ListSessions(eventID))
}

// Update handles PATCH /api/sessions/:id with a partial patch.
func (h *SessionHandler) Update(c echo.Context) error {
	var patch store.SessionPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sess, err := h.Store.UpdateSession(c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}
