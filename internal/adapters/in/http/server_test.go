package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "workorder/internal/adapters/in/http"
	"workorder/internal/adapters/out/memory"
	"workorder/internal/core/application/usecases/commands"
	"workorder/internal/core/application/wizard"
	"workorder/internal/core/domain/model/workorder"
)

const testAccessPassword = "letmein"

type funcWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f funcWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type funcRetailerUoWFactory func() commands.RetailerUoW

func (f funcRetailerUoWFactory) Create() commands.RetailerUoW {
	return f()
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.NewStore()
	retailers, err := memory.SampleRetailers()
	require.NoError(t, err)
	require.NoError(t, store.Seed(retailers...))

	catalog, err := workorder.NewCatalog([]string{
		"Sphaerex - 2x2.5 gal",
		"Priaxor - 2x2.5 gal",
	})
	require.NoError(t, err)

	uowFactory := memory.NewUnitOfWorkFactory(store)
	workOrderUoWs := funcWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return uowFactory.Create()
	})
	retailerUoWs := funcRetailerUoWFactory(func() commands.RetailerUoW {
		return uowFactory.Create()
	})

	sessions := wizard.NewManager(func() *wizard.Wizard {
		return wizard.NewWizard(
			commands.NewCreateWorkOrderCommandHandler(workOrderUoWs, catalog),
			commands.NewUpdateWorkOrderCommandHandler(workOrderUoWs, catalog),
			commands.NewCreateRetailerCommandHandler(retailerUoWs),
			uowFactory,
			catalog,
		)
	}, time.Hour)

	server := httpadapter.NewServer(
		testAccessPassword,
		[]byte("test-secret"),
		time.Hour,
		sessions,
		commands.NewAdvanceWorkOrderCommandHandler(workOrderUoWs),
		memory.NewListWorkOrdersQueryHandler(store),
		memory.NewSearchRetailersQueryHandler(store),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "",
		fmt.Sprintf(`{"password":%q}`, testAccessPassword))
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

func validDetailsBody() string {
	return fmt.Sprintf(`{
		"retailerId": "retailer-1871-florida",
		"retailerName": "1871 Florida",
		"shippingAddress": "1871 Florida Street\nMemphis, TN 38106",
		"onSiteContactName": "Pat Doyle",
		"onSiteContactNumber": "+19015550142",
		"requesterName": "Jordan Smith",
		"requesterEmail": "jordan.smith@example.com",
		"requestedDeliveryDate": %q
	}`, time.Now().AddDate(0, 0, 7).Format(time.DateOnly))
}

func createWorkOrder(t *testing.T, e *echo.Echo, token string) string {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/wizard/start", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/wizard/details", token, validDetailsBody())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/wizard/products", token,
		`{"products":[{"name":"Sphaerex - 2x2.5 gal","quantity":"2"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var response struct {
		WorkOrderID string `json:"workOrderId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response.WorkOrderID
}

func TestServer_Health(t *testing.T) {
	t.Run("should answer without a token", func(t *testing.T) {
		e := newTestEcho(t)

		rec := doJSON(t, e, http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_Auth(t *testing.T) {
	t.Run("should reject a wrong access password", func(t *testing.T) {
		e := newTestEcho(t)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "", `{"password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should issue a token for the right password", func(t *testing.T) {
		e := newTestEcho(t)

		token := login(t, e)

		assert.NotEmpty(t, token)
	})

	t.Run("should reject protected endpoints without a token", func(t *testing.T) {
		e := newTestEcho(t)

		rec := doJSON(t, e, http.MethodGet, "/api/v1/work-orders", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should invalidate the session on logout", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/logout", token, "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, e, http.MethodGet, "/api/v1/wizard", token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_WizardFlow(t *testing.T) {
	t.Run("should create a pending work order through both phases", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		id := createWorkOrder(t, e, token)
		assert.Equal(t, "WO-001", id)

		rec := doJSON(t, e, http.MethodGet, "/api/v1/work-orders", token, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var orders []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		require.Len(t, orders, 1)
		assert.Equal(t, "WO-001", orders[0]["id"])
		assert.Equal(t, "Pending", orders[0]["status"])
		assert.Equal(t, float64(1), orders[0]["productCount"])
	})

	t.Run("should return field errors for an invalid details submit", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/wizard/start", token, "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, e, http.MethodPost, "/api/v1/wizard/details", token,
			`{"requesterEmail":"not-an-email"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var response struct {
			Errors []struct {
				Path string `json:"path"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		paths := make([]string, len(response.Errors))
		for i, fieldError := range response.Errors {
			paths[i] = fieldError.Path
		}
		assert.Contains(t, paths, "retailerId")
		assert.Contains(t, paths, "requesterEmail")
	})

	t.Run("should reject a products submit before the details phase", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/wizard/products", token,
			`{"products":[{"name":"Sphaerex - 2x2.5 gal","quantity":"1"}]}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should cancel the flow and keep the store unchanged", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/wizard/start", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		rec = doJSON(t, e, http.MethodPost, "/api/v1/wizard/details", token, validDetailsBody())
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, e, http.MethodPost, "/api/v1/wizard/cancel", token, "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, e, http.MethodGet, "/api/v1/work-orders", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var orders []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		assert.Empty(t, orders)
	})

	t.Run("should register an inline retailer and auto-select it", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/wizard/start", token, "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, e, http.MethodPost, "/api/v1/wizard/retailers", token, `{
			"retailerId": "retailer-delta-supply",
			"name": "Delta Supply",
			"street": "410 Levee Road",
			"city": "Clarksdale",
			"state": "MS",
			"zipCode": "38614"
		}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var response struct {
			Details struct {
				RetailerID      string `json:"retailerId"`
				RetailerName    string `json:"retailerName"`
				ShippingAddress string `json:"shippingAddress"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "retailer-delta-supply", response.Details.RetailerID)
		assert.Equal(t, "Delta Supply", response.Details.RetailerName)
		assert.Equal(t, "410 Levee Road\nClarksdale, MS 38614", response.Details.ShippingAddress)

		rec = doJSON(t, e, http.MethodGet, "/api/v1/retailers?q=delta", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var retailers []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &retailers))
		require.Len(t, retailers, 1)
		assert.Equal(t, "Delta Supply", retailers[0]["name"])
	})

	t.Run("should prefill the draft when editing", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)
		id := createWorkOrder(t, e, token)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/wizard/start", token,
			fmt.Sprintf(`{"workOrderId":%q}`, id))
		require.Equal(t, http.StatusOK, rec.Code)

		var response struct {
			State    string `json:"state"`
			Editing  bool   `json:"editing"`
			Products []struct {
				Name     string `json:"name"`
				Quantity string `json:"quantity"`
			} `json:"products"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "details", response.State)
		assert.True(t, response.Editing)
		require.Len(t, response.Products, 1)
		assert.Equal(t, "Sphaerex - 2x2.5 gal", response.Products[0].Name)
		assert.Equal(t, "2", response.Products[0].Quantity)
	})

	t.Run("should fail to edit an unknown work order", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/wizard/start", token,
			`{"workOrderId":"WO-042"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Listing(t *testing.T) {
	t.Run("should reject an unknown status filter", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodGet, "/api/v1/work-orders?status=Shipped", token, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should search retailers case-insensitively", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodGet, "/api/v1/retailers?q=HELENA", token, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var retailers []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &retailers))
		require.Len(t, retailers, 1)
		assert.Equal(t, "Helena Ag", retailers[0]["name"])
	})
}

func TestServer_AdvanceWorkOrder(t *testing.T) {
	t.Run("should walk an order to completed and then refuse", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)
		id := createWorkOrder(t, e, token)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/work-orders/"+id+"/advance", token, "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, e, http.MethodGet, "/api/v1/work-orders?status=Processing", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var orders []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		require.Len(t, orders, 1)

		rec = doJSON(t, e, http.MethodPost, "/api/v1/work-orders/"+id+"/advance", token, "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, e, http.MethodPost, "/api/v1/work-orders/"+id+"/advance", token, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should return not found for an unknown order", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/work-orders/WO-042/advance", token, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should reject a malformed id", func(t *testing.T) {
		e := newTestEcho(t)
		token := login(t, e)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/work-orders/banana/advance", token, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
