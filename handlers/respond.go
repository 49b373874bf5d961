package handlers

import (
	"idish-backend/rules"

	"github.com/gin-gonic/gin"
)

// fail writes the standard error response: a human-readable message plus
// a stable machine-readable code.
func fail(c *gin.Context, err *rules.Error) {
	c.JSON(err.Kind.HTTPStatus(), gin.H{
		"error": err.Message,
		"code":  string(err.Kind),
	})
}

func failValidation(c *gin.Context, msg string) {
	fail(c, rules.Validation(msg))
}
