package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const errMsgCap = 50

type errorResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(status, errorResponse{Message: message})
}

// trimErr keeps store failure details out of responses past a short prefix.
// Cuts on rune boundaries so multi-byte text stays valid UTF-8.
func trimErr(err error) string {
	msg := []rune(err.Error())
	if len(msg) > errMsgCap {
		msg = msg[:errMsgCap]
	}
	return string(msg)
}
