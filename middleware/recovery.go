package middleware

import (
	"fmt"
	"net/http"

	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
)

// RecoveryLogger recovers from handler panics, logs them as access events
// and answers 500: JSON on API routes, the error page elsewhere.
func RecoveryLogger() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		util.LogPanic(c.ClientIP(), c.Request.UserAgent(), c.Request.URL.Path, recovered)
		util.RespondError(c, http.StatusInternalServerError, util.APIErrorParams{
			Msg: "Internal server error",
			Err: fmt.Errorf("%s", http.StatusText(http.StatusInternalServerError)),
		})
		c.Abort()
	})
}
