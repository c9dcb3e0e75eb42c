package desk_test

import (
	"net/http"
	"testing"

	"github.com/stackdesk/stackdesk/pkg/desksdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupDeskContainer(t)
	defer cleanup()

	t.Run("livez", func(t *testing.T) {
		var health desksdk.HealthResponse
		status := doJSON(t, http.MethodGet, baseURL+"/livez", "", nil, &health)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Version)
	})

	t.Run("readyz reports database status", func(t *testing.T) {
		var health desksdk.HealthResponse
		status := doJSON(t, http.MethodGet, baseURL+"/readyz", "", nil, &health)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}
