package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/response"
	"blog-api/internal/service"
)

const uploadFormField = "file"

type ImageHandler struct {
	imageService service.ImageService
	logger       *zap.Logger
}

func NewImageHandler(imageService service.ImageService, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		logger:       logger,
	}
}

// UploadImage godoc
// @Summary      이미지 업로드
// @Description  이미지를 S3에 업로드하고 임시(TEMP) 상태로 기록합니다. 게시글에서 참조되면 확정됩니다
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "이미지 파일"
// @Success      200 {object} dto.UploadImageResponse "업로드 성공"
// @Failure      400 {object} response.ErrorResponse "파일 없음 또는 이미지가 아님"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /upload [post]
func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.String("file_name", fileHeader.Filename), zap.Error(err))
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.imageService.Upload(c.Request.Context(), currentUserID(c), &service.ImageUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
