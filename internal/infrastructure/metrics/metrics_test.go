package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/metrics"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", metrics.Outcome(nil))
	assert.Equal(t, "manual_correction", metrics.Outcome(domain.ErrManualCorrection))
	assert.Equal(t, "invalid", metrics.Outcome(domain.Invalid("weight", "debe ser positivo")))
	assert.Equal(t, "rejected", metrics.Outcome(domain.ErrDuplicateItem))
	assert.Equal(t, "denied", metrics.Outcome(domain.ErrForbidden))
	assert.Equal(t, "store_error", metrics.Outcome(domain.NewStoreError("insert", errors.New("boom"))))
}

func TestRegistry_ObserveWorkflowAndExpose(t *testing.T) {
	reg := metrics.New("rollstock")
	reg.ObserveWorkflow("receive", entity.ClassPaperRoll, nil)
	reg.ObserveWorkflow("receive", entity.ClassPaperRoll, nil)
	reg.ObserveWorkflow("issue", entity.ClassFinishedGood, domain.ErrNotFound)

	n, err := testutil.GatherAndCount(reg.Gatherer(), "rollstock_ledger_workflows_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	app := fiber.New()
	app.Use(reg.Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", adaptor.HTTPHandler(reg.Handler()))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	text := string(body)
	assert.True(t, strings.Contains(text, `rollstock_ledger_workflows_total{class="PR",op="receive",outcome="ok"} 2`), text)
	assert.True(t, strings.Contains(text, `rollstock_http_requests_total{method="GET",route="/ping",status="200"} 1`), text)
}
