package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/dto"
	"blog-api/internal/response"
	"blog-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
	logger         *zap.Logger
}

func NewCommentHandler(commentService service.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// GetComments godoc
// @Summary      게시글 댓글 스레드 조회
// @Description  최상위 댓글과 답글을 최신순으로 조회합니다. 로그인한 경우 isLiked가 채워집니다
// @Tags         comments
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {array} dto.CommentThreadResponse "댓글 스레드"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{postId}/comments [get]
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, ok := parseUUIDParam(c, "postId", "Invalid post ID")
	if !ok {
		return
	}

	thread, err := h.commentService.BuildThread(c.Request.Context(), postID, viewerID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, thread)
}

// CreateComment godoc
// @Summary      댓글 또는 답글 작성
// @Description  parentId를 지정하면 답글로 작성됩니다. 답글의 답글은 최상위 댓글 아래로 평탄화됩니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "댓글 작성 요청"
// @Success      201 {object} dto.CommentResponse "작성된 댓글"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{postId}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parseUUIDParam(c, "postId", "Invalid post ID")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), postID, currentUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}
