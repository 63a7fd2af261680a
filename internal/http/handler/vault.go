package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/emerice12-oss/Exit-Dapp/internal/core"
	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"
	"github.com/emerice12-oss/Exit-Dapp/internal/http/handler/middleware"
	"github.com/emerice12-oss/Exit-Dapp/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Dashboard   = "GET /{$}"
	Connect     = "POST /vault/connect"
	Disconnect  = "POST /vault/disconnect"
	GetSession  = "GET /vault/session"
	GetBalance  = "GET /vault/balance"
	Invest      = "POST /vault/invest"
	Withdraw    = "POST /vault/withdraw"
	GetActivity = "GET /vault/activity"
	GetStatus   = "GET /vault/status"
)

type VaultHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	vault            VaultService
}

func NewVaultHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, vaultService VaultService) *VaultHandler {
	return &VaultHandler{
		logs:             logger,
		requestValidator: requestValidator,
		vault:            vaultService,
	}
}

func (h *VaultHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	session, err := h.vault.Connect(r.Context())
	if err != nil {
		resp := Response{Message: "Could not connect wallet"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, ethereum.ErrWalletNotFound) {
			httpCode = http.StatusServiceUnavailable
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("wallet connection failed",
			"error", err,
			"handler", Connect,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"account":      session.Account.Hex(),
		"explorerBase": session.ExplorerBase,
	}
	if session.ChainID != nil {
		resp["chainId"] = session.ChainID.String()
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	h.vault.Disconnect()

	h.respond(w, Response{Message: "Disconnected"}, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	h.respond(w, h.vault.Snapshot(), http.StatusOK, requestId)
}

func (h *VaultHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	balance, err := h.vault.RefreshBalance(r.Context())
	if err != nil {
		resp := Response{Message: "Could not fetch balance"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrNoSession) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("balance refresh failed",
			"error", err,
			"handler", GetBalance,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"balance": balance,
		"unit":    "ETH",
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleInvest(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var investPayload payload.InvestRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &investPayload); err != nil {
		h.respond(w, Response{
			Message: "Invest failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Invest,
			"request_id", requestId)
		return
	}

	result, err := h.vault.Invest(r.Context(), investPayload.Amount)
	if err != nil {
		h.respondActionError(w, "Invest failed", err, Invest, requestId)
		return
	}

	h.logs.Infow("invest action finished",
		"status", result.Status,
		"tx_hash", result.TxHash,
		"handler", Invest,
		"request_id", requestId)

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var withdrawPayload payload.WithdrawRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &withdrawPayload); err != nil {
		h.respond(w, Response{
			Message: "Withdraw failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Withdraw,
			"request_id", requestId)
		return
	}

	result, err := h.vault.Withdraw(r.Context(), withdrawPayload.Amount)
	if err != nil {
		h.respondActionError(w, "Withdraw failed", err, Withdraw, requestId)
		return
	}

	h.logs.Infow("withdraw action finished",
		"status", result.Status,
		"tx_hash", result.TxHash,
		"handler", Withdraw,
		"request_id", requestId)

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleGetActivity(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	resp := map[string][]core.ActivityEntry{
		"activity": h.vault.Activity(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	state := h.vault.Snapshot()

	resp := map[string]string{
		"status": string(state.Status),
	}
	if state.TxHash != "" {
		resp["txHash"] = state.TxHash
		resp["explorerUrl"] = state.ExplorerURL
	}
	if state.Message != "" {
		resp["message"] = state.Message
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *VaultHandler) respondActionError(w http.ResponseWriter, message string, err error, route, requestId string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, ethereum.ErrInvalidAmount):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	case errors.Is(err, core.ErrNoSession):
		httpCode = http.StatusConflict
		resp.Error = err.Error()
	case errors.Is(err, core.ErrActionInFlight):
		httpCode = http.StatusConflict
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("vault action failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *VaultHandler) requestID(r *http.Request) string {
	if val := r.Context().Value(middleware.RequestIDKey); val != nil {
		return val.(string)
	}
	return ""
}

func (h *VaultHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
