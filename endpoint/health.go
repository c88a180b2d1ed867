package endpoint

import (
	"context"
	"time"

	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
)

// Healthz pings the database.
func Healthz(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database handle not available",
			Err: err,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database unreachable",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "ok",
		Data: map[string]string{"database": "up"},
	})
}
