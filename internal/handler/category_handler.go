package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/response"
	"blog-api/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// ListCategories godoc
// @Summary      카테고리 목록 조회
// @Tags         categories
// @Produce      json
// @Success      200 {array} dto.CategoryResponse "카테고리 목록"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, categories)
}

// GetCategoryStats godoc
// @Summary      카테고리별 게시글 수 조회
// @Tags         categories
// @Produce      json
// @Success      200 {array} dto.CategoryStatsResponse "카테고리별 발행 게시글 수"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /categories/stats [get]
func (h *CategoryHandler) GetCategoryStats(c *gin.Context) {
	stats, err := h.categoryService.GetCategoryStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}
