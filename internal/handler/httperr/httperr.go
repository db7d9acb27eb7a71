package httperr

import "github.com/gin-gonic/gin"

// Response is the flat error envelope every endpoint returns.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Message: msg}
}

// Abort writes the envelope and, when err is non-nil, records it on the gin
// context so the error middleware can log the cause.
func Abort(c *gin.Context, status int, err error, msg string) {
	resp := New(status, msg)
	if err != nil {
		_ = c.Error(&gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
