package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/iurnickita/reviewme/internal/handler/config"
	"github.com/iurnickita/reviewme/internal/logger"
	"github.com/iurnickita/reviewme/internal/service"
)

// Сторона-проситель: триггер из браузера после отзыва

const (
	TriggerActionKey = "action"
	TriggerAction    = "wrm_discount"
	TriggerLinkIDKey = "link_id"
)

func ServeRequester(cfg config.Config, service service.Service, zaplog *zap.Logger) error {
	h := newRequesterHandler(service, zaplog)
	router := h.newRouter()

	srv := &http.Server{
		Addr:    cfg.RequesterAddr,
		Handler: router,
	}

	return srv.ListenAndServe()
}

type requesterHandler struct {
	service service.Service
	zaplog  *zap.Logger
}

func newRequesterHandler(service service.Service, zaplog *zap.Logger) *requesterHandler {
	return &requesterHandler{
		service: service,
		zaplog:  zaplog,
	}
}

func (h *requesterHandler) newRouter() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /wrm/review", logger.RequestLogMdlw(h.PostReview, h.zaplog))

	return mux
}

func (h *requesterHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.PostForm.Get(TriggerActionKey) != TriggerAction {
		w.Write([]byte("unknown action"))
		return
	}

	linkID := r.PostForm.Get(TriggerLinkIDKey)
	if linkID == "" {
		w.Write([]byte("missing link id"))
		return
	}

	message, err := h.service.QueryDiscount(r.Context(), linkID)
	if err != nil {
		// чужой или неизвестный идентификатор: короткая диагностика
		if errors.Is(err, service.ErrNotThisInstance) {
			w.Write([]byte(service.ErrNotThisInstance.Error()))
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// сообщение отдается как есть, без интерпретации
	w.Write([]byte(message))
}
