package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"blog-api/internal/response"
	"blog-api/internal/service"
)

type ActivityHandler struct {
	activityService service.ActivityService
	logger          *zap.Logger
}

func NewActivityHandler(activityService service.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// GetActivities godoc
// @Summary      사용자 활동 피드 조회
// @Description  내 게시글에 달린 댓글과 좋아요, 내가 쓴 게시글을 최신순으로 최대 20개 조회합니다
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {array} dto.ActivityResponse "활동 피드"
// @Failure      400 {object} response.ErrorResponse "잘못된 User ID 또는 인증 정보 없음"
// @Failure      403 {object} response.ErrorResponse "다른 사용자의 피드"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/{userId}/activities [get]
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId", "Invalid user ID")
	if !ok {
		return
	}

	callerID := currentUserID(c)
	if callerID != uuid.Nil && callerID != userID {
		response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "You can only view your own activities")
		return
	}

	// anonymous callers reach the service with uuid.Nil and get a validation error
	activities, err := h.activityService.BuildActivityFeed(c.Request.Context(), callerID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, activities)
}
