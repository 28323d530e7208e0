package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gamecollector/backend/internal/logging"
)

// RequestLogger logs every request once it has been served.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	log = logging.OrDiscard(log)
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.WithFields(logrus.Fields{
			logging.FieldMethod:     c.Request.Method,
			logging.FieldPath:       path,
			logging.FieldStatusCode: c.Writer.Status(),
			logging.FieldLatency:    time.Since(start).String(),
			logging.FieldClientIP:   c.ClientIP(),
		}).Info("request complete")
	}
}

// Recovery turns a panic inside a handler into the generic 500 response.
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		controller, method := handlerLabel(c.HandlerName())
		handleErrorResponse(c, log, controller, method, fmt.Errorf("panic: %v", recovered))
	})
}
