package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
	mockSvc "recipebook/internal/mocks/service"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/recipes/:id", "200", 0.01)
	m.ObserveRequest(http.MethodGet, "/api/recipes/:id", "200", 0.02)
	m.ObserveRequest(http.MethodGet, "/api/recipes/:id", "404", 0.01)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/recipes/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/recipes/:id", "404")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.EventConsumed(string(service.EventRecipeLiked))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `recipebook_events_consumed_total{type="recipe.liked"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestInstrumentPublisher(t *testing.T) {
	ctx := context.Background()
	m := New()
	next := mockSvc.NewMockEventPublisher(t)
	publisher := InstrumentPublisher(next, m)

	liked := &service.DomainEvent{ID: "1", Type: service.EventRecipeLiked}
	deleted := &service.DomainEvent{ID: "2", Type: service.EventRecipeDeleted}

	next.EXPECT().Publish(ctx, liked).Return(nil)
	next.EXPECT().Publish(ctx, deleted).Return(errors.New("unavailable"))
	next.EXPECT().Close().Return(nil)

	require.NoError(t, publisher.Publish(ctx, liked))
	require.Error(t, publisher.Publish(ctx, deleted))
	require.NoError(t, publisher.Close())

	assert.InDelta(t, 1, testutil.ToFloat64(m.eventsPublished.WithLabelValues("recipe.liked", outcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.eventsPublished.WithLabelValues("recipe.deleted", outcomeError)), 0)
}
