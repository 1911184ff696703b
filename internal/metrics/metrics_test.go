package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/", http.MethodGet, 200, time.Millisecond)
		m.InquiryAccepted("Pro AI Suite")
		m.InquiryFailed()
		m.TabSelected("home")
		m.SectionRevealed("about")
		m.RegisterSessions(func() int { return 1 })
	})
}

func TestInquiryCounters(t *testing.T) {
	m := New()
	m.InquiryAccepted("Pro AI Suite")
	m.InquiryAccepted("Pro AI Suite")
	m.InquiryFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.inquiries.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inquiries.WithLabelValues("failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.packages.WithLabelValues("Pro AI Suite")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.TabSelected("contact")
	m.RegisterSessions(func() int { return 3 })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `gradientspace_tab_selections_total{tab="contact"} 1`)
	assert.Contains(t, body, "gradientspace_page_sessions 3")
}
