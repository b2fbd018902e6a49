package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SecurityHeaders adds the given headers to every response
func SecurityHeaders(headers map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for key, value := range headers {
			c.Header(key, value)
		}
		c.Next()
	}
}

// Recovery turns a panic into a logged error and hands the response to respond.
// Panic details stay in the log.
func Recovery(logger *logrus.Logger, respond gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithFields(logrus.Fields{
					"request_id": c.GetString(RequestIDKey),
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
					"panic":      r,
					"stack":      string(debug.Stack()),
				}).Error("Recovered from panic")

				respond(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}
