package response

import "github.com/gin-gonic/gin"

// ErrorResponse is the JSON envelope of every error answer
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendError writes an error envelope and aborts the chain
func SendError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// SendSuccess writes data as the bare JSON body
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
