package handlers

import (
	"venuehub/internal/venues"

	"github.com/gofiber/fiber/v2"
)

// VenueHandler serves the static venue metadata endpoints: groups,
// invitations, and open submissions.
type VenueHandler struct {
	store *venues.Store
}

// NewVenueHandler creates a new VenueHandler.
func NewVenueHandler(store *venues.Store) *VenueHandler {
	return &VenueHandler{
		store: store,
	}
}

// RegisterRoutes registers the venue routes with the Fiber app.
func (h *VenueHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/groups", h.HandleGroups)
	router.Get("/invitations", h.HandleInvitations)
	router.Get("/api/open_submissions", h.HandleOpenSubmissions)
}

// HandleGroups returns the payload registered for the requested group id.
// Unknown ids yield an empty group list, not an error.
func (h *VenueHandler) HandleGroups(c *fiber.Ctx) error {
	if payload, ok := h.store.Group(c.Query("id")); ok {
		return c.JSON(payload)
	}
	return c.JSON(fiber.Map{
		"groups": []interface{}{},
	})
}

// HandleInvitations returns the active submission invitations, but only for
// the exact query the venue client sends: invitee "~", pastdue "false",
// type "all". Anything else gets an empty list.
func (h *VenueHandler) HandleInvitations(c *fiber.Ctx) error {
	if c.Query("invitee") == "~" && c.Query("pastdue") == "false" && c.Query("type") == "all" {
		return c.JSON(fiber.Map{
			"invitations": h.store.ActiveInvitations(),
		})
	}
	return c.JSON(fiber.Map{
		"invitations": []interface{}{},
	})
}

// HandleOpenSubmissions returns the open submission listing.
func (h *VenueHandler) HandleOpenSubmissions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"submissions": h.store.OpenSubmissions(),
	})
}
