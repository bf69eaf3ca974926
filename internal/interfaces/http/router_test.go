package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rollstock-api/internal/application/account"
	"github.com/jhoicas/Rollstock-api/internal/application/auth"
	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/application/opname"
	"github.com/jhoicas/Rollstock-api/internal/application/report"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Rollstock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testAPI struct {
	app   *fiber.App
	store *memory.Store
	auth  *auth.AuthUseCase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	authUC := auth.NewAuthUseCase(store.Accounts(), memory.NewSessionStore(), memory.NewNotifier(), nil,
		auth.Config{Secret: "test-secret", ExpMinutes: 60, Issuer: "rollstock-test"}, nil)
	tx := store.TxRunner()
	ledgerUC := inventory.NewLedgerUseCase(tx, store.Items(), store.Events(), store.Schedules(), nil, nil)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		AccountUC: account.NewAccountUseCase(store.Accounts(), authUC, nil),
		LedgerUC:  ledgerUC,
		ReportUC:  report.NewReportUseCase(store.Items(), store.Events(), store.Opname(), report.Options{}, nil),
		OpnameUC:  opname.NewOpnameUseCase(store.Items(), store.Opname(), nil),
		ImportUC:  importer.NewImportUseCase(tx, store.Schedules(), nil, nil),
	})
	return &testAPI{app: app, store: store, auth: authUC}
}

// tokenFor registra una cuenta con plantas y permisos e inicia sesión.
func (a *testAPI) tokenFor(t *testing.T, email string, plants []string, perms ...string) string {
	t.Helper()
	ctx := context.Background()
	acc, err := a.auth.SignUp(ctx, dto.SignUpRequest{Email: email, Password: "secreto123", DisplayName: "Operador"})
	require.NoError(t, err)
	stored, err := a.store.Accounts().GetByID(ctx, acc.ID)
	require.NoError(t, err)
	stored.Plants = plants
	stored.Permissions = perms
	require.NoError(t, a.store.Accounts().Update(ctx, stored))
	res, err := a.auth.SignIn(ctx, dto.SignInRequest{Email: email, Password: "secreto123"})
	require.NoError(t, err)
	return "Bearer " + res.Token
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func receiveBody(code string) dto.ReceiveRequest {
	return dto.ReceiveRequest{
		Code: code, BinLocation: "A-01", Weight: 1000, Diameter: 1200, Length: 8000,
		Kind: "KL", GSM: 125, Width: 150,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken401(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuthMiddleware_FormatoInvalido401(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/auth/session", "Token abc", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuthMiddleware_TokenFalso401(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/auth/session", "Bearer no-es-un-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_AccessTokenEnQuery(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"})
	resp := api.do(t, http.MethodGet, "/api/auth/session?access_token="+strings.TrimPrefix(token, "Bearer "), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sess := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, []string{"P1"}, sess.Plants)
}

func TestSignOut_RevocaLaSesion(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"})

	resp := api.do(t, http.MethodPost, "/api/auth/signout", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_REVOKED", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos y plantas
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_SinPermiso403(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionFGStock)

	resp := api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", token, receiveBody("R1"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "PERMISSION_DENIED", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRequirePlantAccess_PlantaAjena403(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionPRStock)

	resp := api.do(t, http.MethodPost, "/api/plants/P2/pr/receive", token, receiveBody("R1"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "PLANT_FORBIDDEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAccounts_SoloGestor(t *testing.T) {
	api := newTestAPI(t)
	op := api.tokenFor(t, "op@planta.test", []string{"P1"}, entity.PermissionPRStock)
	admin := api.tokenFor(t, "admin@planta.test", nil, entity.PermissionUserManager)

	resp := api.do(t, http.MethodGet, "/api/accounts", op, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/accounts?email=planta", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.AccountListResponse](t, resp)
	assert.Len(t, list.Items, 2)
}

func TestAccounts_LimiteFueraDeRango400(t *testing.T) {
	api := newTestAPI(t)
	admin := api.tokenFor(t, "admin@planta.test", nil, entity.PermissionUserManager)

	resp := api.do(t, http.MethodGet, "/api/accounts?limit=1000000", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	resp = api.do(t, http.MethodGet, "/api/accounts?limit=100", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAccounts_CambiosAplicanATokensEmitidos(t *testing.T) {
	api := newTestAPI(t)
	op := api.tokenFor(t, "op@planta.test", []string{"P1", "P2"}, entity.PermissionPRStock)
	admin := api.tokenFor(t, "admin@planta.test", nil, entity.PermissionUserManager)
	acc, err := api.store.Accounts().GetByEmail(context.Background(), "op@planta.test")
	require.NoError(t, err)

	resp := api.do(t, http.MethodPut, "/api/accounts/"+acc.ID, admin, dto.UpdateAccountRequest{
		Plants: []string{"P2"}, Permissions: []string{entity.PermissionPRStock},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", op, receiveBody("R1"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "PLANT_FORBIDDEN", decode[dto.ErrorResponse](t, resp).Code)

	resp = api.do(t, http.MethodPut, "/api/accounts/"+acc.ID, admin, dto.UpdateAccountRequest{
		Plants: []string{}, Permissions: []string{}, Status: entity.AccountDisabled,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = api.do(t, http.MethodGet, "/api/auth/session", op, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestReceive_CreaYDuplicado409(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionPRStock)

	resp := api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", token, receiveBody("R1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	res := decode[dto.MovementResultResponse](t, resp)
	require.NotNil(t, res.Event)
	assert.Equal(t, "101", res.Event.Type)
	assert.Equal(t, "A-01", res.Event.DestinationLoc)
	require.NotNil(t, res.Item)
	assert.Equal(t, "PR", res.Item.Class)

	resp = api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", token, receiveBody("R1"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_ITEM", decode[dto.ErrorResponse](t, resp).Code)
}

func TestReceive_PesoCero400(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionPRStock)
	body := receiveBody("R1")
	body.Weight = 0

	resp := api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestGetItem_ExisteYNoExiste(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionPRStock)
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", token, receiveBody("R1")).StatusCode)

	resp := api.do(t, http.MethodGet, "/api/plants/P1/pr/items/R1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	item := decode[dto.StockItemResponse](t, resp)
	assert.Equal(t, "R1", item.Code)
	require.NotNil(t, item.AgingDays)
	assert.Equal(t, 0, *item.AgingDays)

	resp = api.do(t, http.MethodGet, "/api/plants/P1/pr/items/R9", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Las clases no se mezclan: R1 no es un pallet.
	fg := api.tokenFor(t, "fg@planta.test", []string{"P1"}, entity.PermissionFGStock)
	resp = api.do(t, http.MethodGet, "/api/plants/P1/fg/items/R1", fg, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIssueYCancelIssue(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionPRStock)
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", token, receiveBody("R1")).StatusCode)

	resp := api.do(t, http.MethodPost, "/api/plants/P1/pr/issue", token, dto.IssueRequest{Code: "R1", Machine: "M1", Unit: "U1", Group: "G1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[dto.MovementResultResponse](t, resp)
	assert.Equal(t, "PRODUCTION", res.Item.Batch)

	resp = api.do(t, http.MethodGet, "/api/plants/P1/pr/in-production", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.StockItemResponse](t, resp), 1)

	resp = api.do(t, http.MethodPost, "/api/plants/P1/pr/issue/cancel", token, dto.ItemCodeRequest{Code: "R1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res = decode[dto.MovementResultResponse](t, resp)
	assert.Equal(t, "A-01", res.Item.BinLocation)
}

func TestPreviewReturn_DiametroMayor422(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionPRStock)
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", token, receiveBody("R1")).StatusCode)

	resp := api.do(t, http.MethodGet, "/api/plants/P1/pr/return/preview?code=R1&return_diameter=1300", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "RETURN_EXCEEDS_INITIAL", decode[dto.ErrorResponse](t, resp).Code)

	resp = api.do(t, http.MethodGet, "/api/plants/P1/pr/return/preview?code=R1&return_diameter=600", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	prev := decode[dto.ReturnPreviewResponse](t, resp)
	assert.Greater(t, prev.NewWeight, 0.0)
	assert.Less(t, prev.NewWeight, 1000.0)
}

func TestRutasSoloPR_NoExistenEnFG(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionFGStock)
	resp := api.do(t, http.MethodPost, "/api/plants/P1/fg/return", token, dto.ReturnRequest{Code: "X", ReturnDiameter: 100, BinLocation: "A"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes, opname y cargas
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementsXML(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionPRStock, entity.PermissionReports)
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/plants/P1/pr/receive", token, receiveBody("R1")).StatusCode)

	resp := api.do(t, http.MethodGet, "/api/plants/P1/pr/movements.xml", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "xml")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `<movement id=`)
	assert.Contains(t, string(body), `<itemCode>R1</itemCode>`)
}

func TestMovements_FechaInvalida400(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionReports)
	resp := api.do(t, http.MethodGet, "/api/plants/P1/pr/movements?from=19-10-2026", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOpnameScan_IdDesconocidoSinVincular(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionOpname)

	resp := api.do(t, http.MethodPost, "/api/plants/P1/fg/opname", token, dto.OpnameScanRequest{ScannedID: "LMG-1", BinLocation: "B-02"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	row := decode[dto.OpnameRowResponse](t, resp)
	assert.False(t, row.Linked)
	assert.Nil(t, row.Item)

	resp = api.do(t, http.MethodDelete, "/api/plants/P1/fg/opname/"+row.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = api.do(t, http.MethodDelete, "/api/plants/P1/fg/opname/"+row.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSyncStock_Multipart(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionUploads, entity.PermissionPRStock)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "stock.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("roll_id,weight,bin_location\nR1,900,A-01\nR2,abc,A-02\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/plants/P1/pr/stock/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", token)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sum := decode[dto.ImportSummaryResponse](t, resp)
	assert.Equal(t, 1, sum.Upserted)
	require.Len(t, sum.Errors, 1)
	assert.Equal(t, 3, sum.Errors[0].Row)

	resp = api.do(t, http.MethodGet, "/api/plants/P1/pr/items/R1", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSyncStock_SinArchivo400(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "ana@planta.test", []string{"P1"}, entity.PermissionUploads)
	resp := api.do(t, http.MethodPost, "/api/plants/P1/pr/stock/import", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
