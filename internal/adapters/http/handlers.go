package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"svw.info/gridcheck/internal/domain"
	"svw.info/gridcheck/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/validate/board", h.handleValidateBoard)
	mux.HandleFunc("/api/validate/ipv4", h.handleValidateAddr)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// ---- Validate board ----

type validateBoardReq struct {
	Rows []string `json:"rows"`
}
type validateBoardResp struct {
	OK         bool   `json:"ok"`
	Cells      int    `json:"cells,omitempty"`
	DurationMs int64  `json:"durationMs"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleValidateBoard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateBoardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateBoardResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Rows: req.Rows}
	ok, st, err := h.UC.ValidateBoard(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateBoardResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateBoardResp{
		OK:         ok,
		Cells:      st.Cells,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate IPv4 ----

type validateAddrReq struct {
	Addr string `json:"addr"`
}
type validateAddrResp struct {
	OK         bool   `json:"ok"`
	DurationMs int64  `json:"durationMs"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleValidateAddr(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateAddrReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateAddrResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, st, err := h.UC.ValidateAddr(r.Context(), req.Addr)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateAddrResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateAddrResp{OK: ok, DurationMs: st.Duration.Milliseconds()})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var sub domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	// Re-validate on save so the stored record reflects the current input.
	switch sub.Kind {
	case domain.KindIPv4:
		ok, _, err := h.UC.ValidateAddr(r.Context(), sub.Addr)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
			return
		}
		sub.Valid = ok
	default:
		ok, _, err := h.UC.ValidateBoard(r.Context(), sub.Board)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
			return
		}
		sub.Valid = ok
	}
	if sub.ID == "" {
		sub.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if sub.CreatedAt == 0 {
		sub.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &sub); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: sub.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Submission *domain.Submission `json:"submission,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	sub, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Submission: sub})
}

type listResp struct {
	Submissions []domain.SubmissionMeta `json:"submissions"`
	Error       string                  `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	subs, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Submissions: subs})
}
