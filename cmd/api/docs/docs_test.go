package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Birdfeeder Analytics API", parsed.Info.Title)

	for _, path := range []string{
		"/health", "/api/dashboard", "/api/dashboard/presets", "/api/dashboard/export",
		"/api/inventory", "/api/refresh", "/api/kpis",
	} {
		assert.Contains(t, parsed.Paths, path)
	}
}
