package servers_test

import (
	"net/http"
	"sort"
	"strings"
	"testing"

	"trading/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{"/api/orders", "/api/orders/{order_id}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.NotNil(t, doc.Paths.Find("/api/orders").Post)
	assert.NotNil(t, doc.Paths.Find("/api/orders/{order_id}").Delete)
	assert.NotEmpty(t, servers.RawSpec())
}

func TestRegisterHandlers_MatchesDocument(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	var documented []string
	for path, item := range doc.Paths.Map() {
		echoPath := strings.NewReplacer("{", ":", "}", "").Replace(path)
		for method := range item.Operations() {
			documented = append(documented, method+" "+echoPath)
		}
	}

	e := echo.New()
	servers.RegisterHandlers(e, nil)

	var registered []string
	for _, route := range e.Routes() {
		if route.Method == http.MethodGet || route.Method == http.MethodPost ||
			route.Method == http.MethodDelete || route.Method == http.MethodPut {
			registered = append(registered, route.Method+" "+route.Path)
		}
	}

	sort.Strings(documented)
	sort.Strings(registered)
	assert.Equal(t, documented, registered)
}
