package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	AllowedMethods = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"}
	AllowedHeaders = []string{"Content-Type", "Authorization"}
)

// CORS allows every origin. The allow-headers and allow-methods headers are
// written on every response, not only on preflight.
func CORS() []gin.HandlerFunc {
	methods := strings.Join(AllowedMethods, ",")
	headers := strings.Join(AllowedHeaders, ",")

	return []gin.HandlerFunc{
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    AllowedMethods,
			AllowHeaders:    AllowedHeaders,
		}),
		func(c *gin.Context) {
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Allow-Methods", methods)
			c.Next()
		},
	}
}
