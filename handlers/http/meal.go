package httpHandler

import (
	"net/http"

	"diet-server/handlers"
	"diet-server/logging"
	"diet-server/usecases"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	useCase *usecases.MealUseCase
	log     logging.Logger
}

func NewMealHandler(useCase *usecases.MealUseCase, log logging.Logger) *MealHandler {
	return &MealHandler{useCase: useCase, log: log}
}

type mealRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	IsInDiet    *bool  `json:"isInDiet" binding:"required"`
}

func (r mealRequest) input() usecases.MealInput {
	return usecases.MealInput{
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		InDiet:      *r.IsInDiet,
	}
}

type mealURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// CreateMeal handles POST /meals
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	meal, err := h.useCase.CreateMeal(c.Request.Context(), handlers.OwnerID(c), req.input())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// ListMeals handles GET /meals
func (h *MealHandler) ListMeals(c *gin.Context) {
	meals, err := h.useCase.ListMeals(c.Request.Context(), handlers.OwnerID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GetMeal handles GET /meals/:id
func (h *MealHandler) GetMeal(c *gin.Context) {
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err)
		return
	}

	meal, err := h.useCase.GetMeal(c.Request.Context(), handlers.OwnerID(c), uri.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// UpdateMeal handles PUT /meals/:id
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err)
		return
	}
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	meal, err := h.useCase.UpdateMeal(c.Request.Context(), handlers.OwnerID(c), uri.ID, req.input())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// DeleteMeal handles DELETE /meals/:id
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.useCase.DeleteMeal(c.Request.Context(), handlers.OwnerID(c), uri.ID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

// GetSummary handles GET /meals/summary
func (h *MealHandler) GetSummary(c *gin.Context) {
	summary, err := h.useCase.Summary(c.Request.Context(), handlers.OwnerID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
