package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/iurnickita/reviewme/internal/handler/config"
	"github.com/iurnickita/reviewme/internal/issuance"
	"github.com/iurnickita/reviewme/internal/logger"
	"github.com/iurnickita/reviewme/internal/model"
)

// Сторона магазина: единственная операция выдачи кода

func ServeShop(cfg config.Config, issuance issuance.Issuance, zaplog *zap.Logger) error {
	h := newShopHandler(issuance, zaplog)
	router := h.newRouter()

	srv := &http.Server{
		Addr:    cfg.ShopAddr,
		Handler: router,
	}

	return srv.ListenAndServe()
}

type shopHandler struct {
	issuance issuance.Issuance
	zaplog   *zap.Logger
}

func newShopHandler(issuance issuance.Issuance, zaplog *zap.Logger) *shopHandler {
	return &shopHandler{
		issuance: issuance,
		zaplog:   zaplog,
	}
}

func (h *shopHandler) newRouter() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /", logger.RequestLogMdlw(h.PostDiscount, h.zaplog))

	return mux
}

func (h *shopHandler) PostDiscount(w http.ResponseWriter, r *http.Request) {
	// запрос без маркера операции адресован не мосту
	if r.URL.Query().Get(model.FieldAction) != model.ActionDiscount {
		http.Error(w, "unknown action", http.StatusNotFound)
		return
	}

	err := r.ParseForm()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	email := r.PostForm.Get(model.FieldEmail)
	discount := parseDiscount(r.PostForm)

	result := h.issuance.Issue(email, discount)

	// бизнес-ошибки уходят со статусом 200 в теле ответа,
	// чтобы разбор на той стороне был единообразным
	responseJSON, err := json.Marshal(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(responseJSON)
}

// Поля скидки принимаются в обертке wrm_discount[...] либо плоско.
// Числа только приводятся к типу, границы не проверяются
func parseDiscount(form url.Values) model.DiscountConfig {
	var discount model.DiscountConfig

	discount.Type = formValue(form, model.FieldDiscountType, model.FieldFlatDiscountType)
	discount.Amount, _ = strconv.Atoi(formValue(form, model.FieldDiscountAmount, model.FieldFlatDiscountAmount))
	discount.Validity, _ = strconv.Atoi(formValue(form, model.FieldDiscountValidity, model.FieldFlatDiscountValidity))

	return discount
}

func formValue(form url.Values, key string, flatKey string) string {
	if form.Has(key) {
		return form.Get(key)
	}
	return form.Get(flatKey)
}
