package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/sneakersdealer/ds-admin-backend/internal/errors"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
	"github.com/sneakersdealer/ds-admin-backend/internal/storage"
)

// allowedImageTypes lists the content types the catalog accepts for
// billboard, brand and product imagery.
var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type UploadURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"`
}

// GetUploadURL hands out a short-lived presigned PUT URL so the admin
// console uploads images straight to the bucket
// POST /api/upload/image
func (ctrl *UploadController) GetUploadURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if _, ok := middleware.GetUserID(c); !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data: "+err.Error())
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedImageTypes); err != nil {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only image uploads are allowed")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "products"
	}

	presigned, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, folder)
	if err != nil {
		log.Error("[UPLOAD_POST]", err, map[string]interface{}{
			"filename": req.Filename,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to generate upload URL")
		return
	}

	c.JSON(http.StatusOK, presigned)
}
