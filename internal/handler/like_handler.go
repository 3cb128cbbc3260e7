package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/response"
	"blog-api/internal/service"
)

type LikeHandler struct {
	likeService service.LikeService
	logger      *zap.Logger
}

func NewLikeHandler(likeService service.LikeService, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
		logger:      logger,
	}
}

// TogglePostLike godoc
// @Summary      게시글 좋아요 토글
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} dto.ToggleLikeResponse "토글 결과"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID 또는 인증 정보 없음"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{postId}/like [post]
func (h *LikeHandler) TogglePostLike(c *gin.Context) {
	postID, ok := parseUUIDParam(c, "postId", "Invalid post ID")
	if !ok {
		return
	}

	result, err := h.likeService.TogglePostLike(c.Request.Context(), postID, currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// ToggleCommentLike godoc
// @Summary      댓글 좋아요 토글
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} dto.ToggleLikeResponse "토글 결과"
// @Failure      400 {object} response.ErrorResponse "잘못된 Comment ID 또는 인증 정보 없음"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /comments/{commentId}/like [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	commentID, ok := parseUUIDParam(c, "commentId", "Invalid comment ID")
	if !ok {
		return
	}

	result, err := h.likeService.ToggleCommentLike(c.Request.Context(), commentID, currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
