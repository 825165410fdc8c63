package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpointsJSON is the static documentation object served at GET /api
//
//go:embed endpoints.json
var endpointsJSON []byte

// docsHandler handles GET /api
func docsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": json.RawMessage(endpointsJSON)})
}
