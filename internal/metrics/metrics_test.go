package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrape returns the current Prometheus exposition of the provider.
func scrape(t *testing.T, provider *Provider) string {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	return w.Body.String()
}

// assertMetricLine matches a sample by name, partial labels and value. The exporter adds
// scope labels, so labels are matched loosely.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}
