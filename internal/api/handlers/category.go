package handlers

import (
	"errors"
	"net/http"

	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler handles HTTP requests for menu categories
type CategoryHandler struct {
	service         service.CategoryServiceInterface
	businessService service.BusinessServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service service.CategoryServiceInterface, businessService service.BusinessServiceInterface) *CategoryHandler {
	return &CategoryHandler{service: service, businessService: businessService}
}

// MoveRequest carries the direction of a reorder operation
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// ListCategories lists the caller's categories in display order
// @Summary List categories
// @Description List the caller's menu categories ordered by position
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} service.CategoryResponse "Categories"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "No business for this user"
// @Security BearerAuth
// @Router /admin/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	categories, err := h.service.List(businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a category at the end of the display order
// @Summary Create a category
// @Description Create a menu category appended at the end of the display order
// @Tags categories
// @Accept json
// @Produce json
// @Param category body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} service.CategoryResponse "Successfully created category"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.Create(businessID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory renames a category
// @Summary Update a category
// @Description Rename an existing menu category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body service.UpdateCategoryRequest true "Updated category data"
// @Success 200 {object} service.CategoryResponse "Successfully updated category"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var req service.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.Update(businessID, id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// MoveCategory swaps a category with its neighbor
// @Summary Move a category up or down
// @Description Swap a category's position with its neighbor; moving past the edge is a no-op. Returns the full list in the new order
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param move body MoveRequest true "Move direction (up or down)"
// @Success 200 {array} service.CategoryResponse "Categories in the new order"
// @Failure 400 {object} ErrorResponse "Invalid direction"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /admin/categories/{id}/move [post]
func (h *CategoryHandler) MoveCategory(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := h.service.Move(businessID, id, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidMoveDirection):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, categories)
}

// DeleteCategory deletes a category and its items
// @Summary Delete a category
// @Description Delete a menu category; its items are removed with it
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} map[string]string "Category deleted"
// @Failure 400 {object} ErrorResponse "Invalid category ID"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := h.service.Delete(businessID, id); err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
