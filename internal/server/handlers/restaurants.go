package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/agentstation/menumap/internal/server/response"
	"github.com/agentstation/menumap/pkg/errors"
	"github.com/agentstation/menumap/pkg/logging"
	"github.com/agentstation/menumap/pkg/menus"
)

// HandleListRestaurants handles GET /restaurants.
// @Summary List restaurants
// @Description Lists every restaurant, or the one matching ?id=N wrapped in an array
// @Tags restaurants
// @Produce json
// @Param id query string false "Restaurant id"
// @Success 200 {array} menus.Restaurant
// @Failure 404 {object} response.Error
// @Router /restaurants [get].
func (h *Handlers) HandleListRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has("id") {
		h.handleRestaurantByID(w, r, query.Get("id"))
		return
	}

	switch h.listMode.resolve(h.dataset.Layout()) {
	case ListSummary:
		response.OK(w, h.dataset.Summaries())
	default:
		response.OK(w, h.dataset.Restaurants())
	}
}

// handleRestaurantByID answers ?id=N. An id that is not an integer matches nothing.
func (h *Handlers) handleRestaurantByID(w http.ResponseWriter, r *http.Request, raw string) {
	raw = strings.TrimSpace(raw)
	ctx := logging.WithRestaurant(r.Context(), raw)

	id, err := strconv.Atoi(raw)
	if err != nil {
		logging.FromContext(ctx).Debug().Msg("Restaurant id is not an integer")
		response.ErrorFromType(w, errors.NewNotFoundError("restaurant", raw))
		return
	}

	restaurant, err := h.dataset.Restaurant(id)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("Restaurant lookup failed")
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, []menus.Restaurant{restaurant})
}

// HandleGetMenu handles GET /restaurants/{key}/menu.
// @Summary Get a restaurant's menu
// @Description Resolves key as a numeric id first, then as an exact name
// @Tags restaurants
// @Produce json
// @Param key path string true "Restaurant id or name"
// @Success 200 {array} menus.MenuItem
// @Failure 404 {object} response.Error
// @Router /restaurants/{key}/menu [get].
func (h *Handlers) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}
	ctx := logging.WithRestaurant(r.Context(), key)

	items, err := h.dataset.MenuFor(key)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("Menu lookup failed")
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, items)
}
