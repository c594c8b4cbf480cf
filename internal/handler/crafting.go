package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PocketGarden_Go/internal/crafting"
	"github.com/osse101/PocketGarden_Go/internal/domain"
)

type MakeRequest struct {
	RecipeID string `json:"recipeId" validate:"required,catalogid"`
	Times    int    `json:"times" validate:"omitempty,min=1,max=1000"`
}

// RecipeView is a recipe with what the current inventory allows
type RecipeView struct {
	domain.Recipe
	MaxCount    int                       `json:"maxCount"`
	Ingredients []domain.IngredientStatus `json:"ingredientStatus"`
}

// CraftingHandler serves the kitchen and workbench routes
type CraftingHandler struct {
	stations map[domain.RecipeKind]crafting.Station
}

// NewCraftingHandler creates a handler over the given stations, keyed by their kind
func NewCraftingHandler(stations ...crafting.Station) *CraftingHandler {
	h := &CraftingHandler{stations: make(map[domain.RecipeKind]crafting.Station, len(stations))}
	for _, s := range stations {
		if s != nil {
			h.stations[s.Kind()] = s
		}
	}
	return h
}

// HandleGetRecipes lists the recipes of the station named by {kind}
// @Summary List recipes
// @Tags crafting
// @Produce json
// @Param kind path string true "cooking or crafting"
// @Success 200 {array} RecipeView
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{kind} [get]
func (h *CraftingHandler) HandleGetRecipes(w http.ResponseWriter, r *http.Request) {
	st, ok := h.stations[domain.RecipeKind(chi.URLParam(r, "kind"))]
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgUnknownStation)
		return
	}

	recipes := st.Recipes()
	views := make([]RecipeView, 0, len(recipes))
	for _, rec := range recipes {
		status, err := st.IngredientStatus(rec.ID)
		if err != nil {
			respondServiceError(w, r, "Ingredient status", err)
			return
		}
		views = append(views, RecipeView{Recipe: rec, MaxCount: st.MaxCount(rec.ID), Ingredients: status})
	}
	respondJSON(w, http.StatusOK, views)
}

// HandleMake returns a handler that makes recipes at the station of the given kind
// @Summary Cook or craft a recipe
// @Description Mounted as /cook for the kitchen and /craft for the workbench
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body MakeRequest true "Recipe and times"
// @Success 201 {object} domain.CraftResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cook [post]
// @Router /craft [post]
func (h *CraftingHandler) HandleMake(kind domain.RecipeKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := h.stations[kind]
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgUnknownStation)
			return
		}

		var req MakeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Make "+string(kind)); err != nil {
			return
		}
		if req.Times == 0 {
			req.Times = 1
		}

		res, err := st.Make(r.Context(), req.RecipeID, req.Times)
		if err != nil {
			respondServiceError(w, r, ErrMsgMakeFailed, err)
			return
		}
		respondJSON(w, http.StatusCreated, res)
	}
}
