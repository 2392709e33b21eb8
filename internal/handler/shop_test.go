package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iurnickita/reviewme/internal/code"
	"github.com/iurnickita/reviewme/internal/issuance"
	issuanceConfig "github.com/iurnickita/reviewme/internal/issuance/config"
	"github.com/iurnickita/reviewme/internal/ledger"
	"github.com/iurnickita/reviewme/internal/model"
)

func newShopTestHandler(mem *ledger.MemLedger) *shopHandler {
	cfg := issuanceConfig.Config{
		HostVersion:            "4.7",
		HostVersionRequired:    "3.8",
		RuntimeVersionRequired: "1.0",
	}
	return newShopHandler(issuance.NewIssuance(cfg, mem), zap.NewNop())
}

func postDiscount(t *testing.T, h *shopHandler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.PostDiscount(w, req)
	return w
}

func TestPostDiscountSuccess(t *testing.T) {
	mem := ledger.NewMemLedger()
	h := newShopTestHandler(mem)

	form := url.Values{}
	form.Set(model.FieldEmail, "a@example.com")
	form.Set(model.FieldDiscountType, model.DiscountTypePercentage)
	form.Set(model.FieldDiscountAmount, "20")
	form.Set(model.FieldDiscountValidity, "30")

	w := postDiscount(t, h, "/?wrm_action=discount", form)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result model.IssueResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, model.IssueResultSuccess, result.Result)
	require.Equal(t, code.Derive("a@example.com"), result.Message)

	record, ok := mem.Get(result.Message)
	require.True(t, ok)
	require.Equal(t, 20, record.Data.Amount)
	require.Equal(t, 30, int(record.Data.Expiration.Sub(record.Data.Start).Hours()/24))
}

func TestPostDiscountNoMarker(t *testing.T) {
	mem := ledger.NewMemLedger()
	h := newShopTestHandler(mem)

	form := url.Values{}
	form.Set(model.FieldEmail, "a@example.com")

	// без маркера операции до сервиса выдачи дело не доходит
	w := postDiscount(t, h, "/", form)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, 0, mem.Len())
}

func TestPostDiscountMissingEmail(t *testing.T) {
	mem := ledger.NewMemLedger()
	h := newShopTestHandler(mem)

	form := url.Values{}
	form.Set(model.FieldDiscountAmount, "20")

	// бизнес-ошибка уходит со статусом 200
	w := postDiscount(t, h, "/?wrm_action=discount", form)
	require.Equal(t, http.StatusOK, w.Code)

	var result model.IssueResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, model.IssueResultError, result.Result)
	require.Equal(t, issuance.ErrMissingIdentity.Error(), result.Message)
	require.Equal(t, 0, mem.Len())
}

func TestPostDiscountDuplicate(t *testing.T) {
	mem := ledger.NewMemLedger()
	h := newShopTestHandler(mem)

	form := url.Values{}
	form.Set(model.FieldEmail, "a@example.com")

	w := postDiscount(t, h, "/?wrm_action=discount", form)
	require.Equal(t, http.StatusOK, w.Code)

	// повторный запрос того же адреса: отказ, запись одна
	w = postDiscount(t, h, "/?wrm_action=discount", form)
	require.Equal(t, http.StatusOK, w.Code)

	var result model.IssueResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, model.IssueResultError, result.Result)
	require.Equal(t, issuance.ErrDuplicateCode.Error(), result.Message)
	require.Equal(t, 1, mem.Len())
}

func TestPostDiscountFlatFields(t *testing.T) {
	// плоские имена полей разбираются так же, как обернутые
	mem := ledger.NewMemLedger()
	h := newShopTestHandler(mem)

	form := url.Values{}
	form.Set(model.FieldEmail, "a@example.com")
	form.Set(model.FieldFlatDiscountType, model.DiscountTypeFlat)
	form.Set(model.FieldFlatDiscountAmount, "15")
	form.Set(model.FieldFlatDiscountValidity, "7")

	w := postDiscount(t, h, "/?wrm_action=discount", form)

	var result model.IssueResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, model.IssueResultSuccess, result.Result)

	record, ok := mem.Get(result.Message)
	require.True(t, ok)
	require.Equal(t, model.DiscountTypeFlat, record.Data.Type)
	require.Equal(t, 15, record.Data.Amount)
	require.Equal(t, 7, int(record.Data.Expiration.Sub(record.Data.Start).Hours()/24))
}

func TestPostDiscountBadNumbers(t *testing.T) {
	// нечисловые значения приводятся к нулю и заменяются умолчаниями
	mem := ledger.NewMemLedger()
	h := newShopTestHandler(mem)

	form := url.Values{}
	form.Set(model.FieldEmail, "a@example.com")
	form.Set(model.FieldDiscountAmount, "a lot")
	form.Set(model.FieldDiscountValidity, "forever")

	w := postDiscount(t, h, "/?wrm_action=discount", form)

	var result model.IssueResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, model.IssueResultSuccess, result.Result)

	record, ok := mem.Get(result.Message)
	require.True(t, ok)
	require.Equal(t, 20, record.Data.Amount)
	require.Equal(t, 30, int(record.Data.Expiration.Sub(record.Data.Start).Hours()/24))
}

func TestPostDiscountExtensionUnavailable(t *testing.T) {
	cfg := issuanceConfig.Config{HostVersion: "4.7", HostVersionRequired: "3.8"}
	h := newShopHandler(issuance.NewIssuance(cfg, nil), zap.NewNop())

	form := url.Values{}
	form.Set(model.FieldEmail, "a@example.com")

	w := postDiscount(t, h, "/?wrm_action=discount", form)
	require.Equal(t, http.StatusOK, w.Code)

	var result model.IssueResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, model.IssueResultError, result.Result)
	require.Equal(t, issuance.ErrExtensionUnavailable.Error(), result.Message)
}
