package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/dto"
	"blog-api/internal/response"
	"blog-api/internal/service"
)

type PostHandler struct {
	postService service.PostService
	logger      *zap.Logger
}

func NewPostHandler(postService service.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary      공개 게시글 목록 조회
// @Description  발행된 게시글을 최신순으로 댓글 수와 좋아요 수와 함께 조회합니다
// @Tags         posts
// @Produce      json
// @Success      200 {array} dto.PostSummaryResponse "게시글 목록"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPublished(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// GetPost godoc
// @Summary      게시글 상세 조회
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} dto.PostDetailResponse "게시글"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{postId} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseUUIDParam(c, "postId", "Invalid post ID")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), postID, viewerID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// CreatePost godoc
// @Summary      게시글 작성
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PostRequest true "게시글 작성 요청"
// @Success      201 {object} dto.PostDetailResponse "작성된 게시글"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      게시글 수정
// @Description  작성자 본인만 수정할 수 있습니다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID (UUID)"
// @Param        request body dto.PostRequest true "게시글 수정 요청"
// @Success      200 {object} dto.PostDetailResponse "수정된 게시글"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{postId} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parseUUIDParam(c, "postId", "Invalid post ID")
	if !ok {
		return
	}

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), postID, currentUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// DeletePost godoc
// @Summary      게시글 삭제
// @Description  작성자 본인만 삭제할 수 있으며 댓글과 좋아요도 함께 삭제됩니다
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} dto.DeletePostResponse "삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{postId} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parseUUIDParam(c, "postId", "Invalid post ID")
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), postID, currentUserID(c)); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.DeletePostResponse{
		Success: true,
		Message: "Post deleted successfully",
	})
}

// GetRelatedPosts godoc
// @Summary      관련 게시글 조회
// @Description  같은 카테고리의 발행된 게시글을 최대 3개 조회합니다
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {array} dto.PostSummaryResponse "관련 게시글"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{postId}/related [get]
func (h *PostHandler) GetRelatedPosts(c *gin.Context) {
	postID, ok := parseUUIDParam(c, "postId", "Invalid post ID")
	if !ok {
		return
	}

	posts, err := h.postService.GetRelated(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// GetMyPosts godoc
// @Summary      내 게시글 목록 조회
// @Description  임시 저장 글을 포함한 내 게시글 전체를 조회합니다
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.UserPostResponse "내 게시글"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/posts [get]
func (h *PostHandler) GetMyPosts(c *gin.Context) {
	posts, err := h.postService.ListByAuthor(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}
