package handlers

import (
	"net/http"
	"strconv"

	"menu-platform-backend/internal/cdn"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps menu image uploads at 10 MiB
const maxUploadSize = 10 << 20

// UploadHandler handles menu image uploads to the CDN
type UploadHandler struct {
	cdnClient       *cdn.Client
	businessService service.BusinessServiceInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(cdnClient *cdn.Client, businessService service.BusinessServiceInterface) *UploadHandler {
	return &UploadHandler{cdnClient: cdnClient, businessService: businessService}
}

// UploadResponse is the result of an image upload
type UploadResponse struct {
	PublicID     string `json:"public_id"`
	SecureURL    string `json:"secure_url"`
	OptimizedURL string `json:"optimized_url"`
}

// UploadImage uploads a menu image to the CDN
// @Summary Upload a menu image
// @Description Upload an image for a menu item or the business logo; returns the public ID to store and the optimized delivery URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param folder formData string false "CDN folder, defaults to menu-items"
// @Success 201 {object} UploadResponse "Uploaded image"
// @Failure 400 {object} ErrorResponse "Missing or oversized file"
// @Failure 503 {object} ErrorResponse "CDN not configured"
// @Security BearerAuth
// @Router /admin/upload [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if _, ok := callerBusinessID(c, h.businessService); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds " + strconv.Itoa(maxUploadSize>>20) + " MiB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "menu-items"
	}

	result, err := h.cdnClient.Upload(c.Request.Context(), file, fileHeader.Filename, folder)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{
		PublicID:     result.PublicID,
		SecureURL:    result.SecureURL,
		OptimizedURL: h.cdnClient.OptimizedURL(result.PublicID, 0),
	})
}
