package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/response"
	"blog-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetSession godoc
// @Summary      현재 세션 조회
// @Description  요청에 담긴 인증 정보로 식별된 사용자를 반환합니다. 인증 정보가 없으면 authenticated=false
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.SessionResponse "세션"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /auth/session [get]
func (h *UserHandler) GetSession(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendSuccess(c, http.StatusOK, dto.SessionResponse{})
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if response.IsCode(err, response.ErrCodeNotFound) {
			// identity resolved but no local account yet
			response.SendSuccess(c, http.StatusOK, dto.SessionResponse{})
			return
		}
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.SessionResponse{Authenticated: true, User: profile})
}

// GetProfile godoc
// @Summary      내 프로필 조회
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ProfileResponse "프로필"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      내 프로필 수정
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateProfileRequest true "프로필 수정 요청"
// @Success      200 {object} dto.UpdateProfileResponse "수정 결과"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      409 {object} response.ErrorResponse "이미 사용 중인 이메일"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.userService.UpdateProfile(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
