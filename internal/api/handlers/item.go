package handlers

import (
	"errors"
	"net/http"

	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ItemHandler handles HTTP requests for menu items
type ItemHandler struct {
	service         service.ItemServiceInterface
	businessService service.BusinessServiceInterface
}

// NewItemHandler creates a new item handler
func NewItemHandler(service service.ItemServiceInterface, businessService service.BusinessServiceInterface) *ItemHandler {
	return &ItemHandler{service: service, businessService: businessService}
}

// AvailabilityRequest toggles an item's public visibility
type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// ListItems lists the items of one category in display order
// @Summary List items by category
// @Description List a category's menu items ordered by position, including unavailable ones
// @Tags items
// @Accept json
// @Produce json
// @Param category_id query string true "Category ID (UUID)"
// @Success 200 {array} service.ItemResponse "Items"
// @Failure 400 {object} ErrorResponse "Missing or invalid category_id"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /admin/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(c.Query("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	items, err := h.service.ListByCategory(businessID, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem creates an item at the end of its category's display order
// @Summary Create a menu item
// @Description Create a menu item appended at the end of its category, available by default
// @Tags items
// @Accept json
// @Produce json
// @Param item body service.CreateItemRequest true "Item data"
// @Success 201 {object} service.ItemResponse "Successfully created item"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /admin/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Create(businessID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem updates a menu item
// @Summary Update a menu item
// @Description Update name, description, price or image of a menu item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param item body service.UpdateItemRequest true "Updated item data"
// @Success 200 {object} service.ItemResponse "Successfully updated item"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /admin/items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Update(businessID, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// SetAvailability toggles an item on or off the public menu
// @Summary Toggle item availability
// @Description Show or hide an item on the public menu without losing its position
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param availability body AvailabilityRequest true "Availability flag"
// @Success 200 {object} service.ItemResponse "Updated item"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /admin/items/{id}/availability [patch]
func (h *ItemHandler) SetAvailability(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.SetAvailability(businessID, id, *req.Available)
	if err != nil {
		if errors.Is(err, apperrors.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// MoveItem swaps an item with its neighbor within its category
// @Summary Move an item up or down
// @Description Swap an item's position with its neighbor in the same category; moving past the edge is a no-op. Returns the category's items in the new order
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param move body MoveRequest true "Move direction (up or down)"
// @Success 200 {array} service.ItemResponse "Items in the new order"
// @Failure 400 {object} ErrorResponse "Invalid direction"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /admin/items/{id}/move [post]
func (h *ItemHandler) MoveItem(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.service.Move(businessID, id, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidMoveDirection):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, items)
}

// DeleteItem deletes a menu item
// @Summary Delete a menu item
// @Description Delete a menu item from its category
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} map[string]string "Item deleted"
// @Failure 400 {object} ErrorResponse "Invalid item ID"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /admin/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	if err := h.service.Delete(businessID, id); err != nil {
		if errors.Is(err, apperrors.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
