package handler

import (
	"encoding/json"
	"errors"
	"finledger/internal/core"
	"finledger/internal/http/handler/middleware"
	"finledger/internal/http/payload"
	"finledger/internal/ledger"
	tokenIssuer "finledger/pkg/jwt"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Authenticate        = "POST /platform/authenticate"
	RegisterUser        = "POST /platform/users"
	GetUser             = "GET /platform/users/{address}"
	UpdateUserRole      = "PUT /platform/users/{address}/role"
	CreateTransaction   = "POST /platform/transactions"
	GetTransaction      = "GET /platform/transactions/{id}"
	GetAllTransactions  = "GET /platform/transactions"
	GetMyTransactions   = "GET /platform/transactions/my"
	CompleteTransaction = "POST /platform/transactions/{id}/complete"
	RequestApproval     = "POST /platform/transactions/{id}/approval"
	GetApproval         = "GET /platform/approvals/{id}"
	ProcessApproval     = "POST /platform/approvals/{id}/decision"
	GetPendingApprovals = "GET /platform/approvals/pending"
	GetMetrics          = "GET /platform/metrics"
)

const authTokenHeader = "AUTH_TOKEN"

type PlatformHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	platform         PlatformService
}

func NewPlatformHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, platform PlatformService) *PlatformHandler {
	return &PlatformHandler{
		logs:             logger,
		requestValidator: requestValidator,
		platform:         platform,
	}
}

func (h *PlatformHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authPayload)
	if err != nil {
		h.respondInvalidPayload(w, r, Authenticate, "Could not authenticate", err)
		return
	}

	token, err := h.platform.Authenticate(r.Context(), authPayload.ToMessage())
	if err != nil {
		resp := Response{Message: "Login failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode)
		h.logs.Errorw("authentication failed", "error", err, "handler", Authenticate, "request_id", requestID)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK)
}

func (h *PlatformHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var registerPayload payload.RegisterUserRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &registerPayload)
	if err != nil {
		h.respondInvalidPayload(w, r, RegisterUser, "Could not register user", err)
		return
	}

	user, err := h.platform.RegisterUser(r.Context(), r.Header.Get(authTokenHeader), registerPayload.ToMessage())
	if err != nil {
		// the user exists even though the credential write failed; report
		// the partial success instead of a failed registration
		if errors.Is(err, core.ErrCredentialNotSaved) {
			h.respond(w, Response{
				Message: "User registered, login credential not saved",
				Data:    userView(user),
				Error:   core.ErrCredentialNotSaved.Error(),
			}, http.StatusCreated)
			h.logs.Errorw("credential not saved during registration",
				"error", err,
				"handler", RegisterUser,
				"request_id", requestID(r))
			return
		}
		h.respondError(w, r, RegisterUser, "Could not register user", err)
		return
	}

	h.respond(w, Response{Message: "User registered", Data: userView(user)}, http.StatusCreated)
}

func (h *PlatformHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.platform.User(r.Context(), r.PathValue("address"))
	if err != nil {
		h.respondError(w, r, GetUser, "Could not retrieve user", err)
		return
	}

	h.respond(w, Response{Data: userView(user)}, http.StatusOK)
}

func (h *PlatformHandler) HandleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var rolePayload payload.UpdateRoleRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &rolePayload)
	if err != nil {
		h.respondInvalidPayload(w, r, UpdateUserRole, "Could not update role", err)
		return
	}

	user, err := h.platform.UpdateUserRole(r.Context(),
		r.Header.Get(authTokenHeader),
		r.PathValue("address"),
		ledger.RoleFromInt(rolePayload.Role))
	if err != nil {
		h.respondError(w, r, UpdateUserRole, "Could not update role", err)
		return
	}

	h.respond(w, Response{Message: "Role updated", Data: userView(user)}, http.StatusOK)
}

func (h *PlatformHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var txPayload payload.CreateTransactionRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &txPayload)
	if err != nil {
		h.respondInvalidPayload(w, r, CreateTransaction, "Could not create transaction", err)
		return
	}

	msg, err := txPayload.ToMessage()
	if err != nil {
		h.respondInvalidPayload(w, r, CreateTransaction, "Could not create transaction", err)
		return
	}

	tx, err := h.platform.CreateTransaction(r.Context(), r.Header.Get(authTokenHeader), msg)
	if err != nil {
		h.respondError(w, r, CreateTransaction, "Could not create transaction", err)
		return
	}

	h.respond(w, Response{Message: "Transaction created", Data: transactionView(tx)}, http.StatusCreated)
}

func (h *PlatformHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondInvalidPayload(w, r, GetTransaction, "Could not retrieve transaction", err)
		return
	}

	tx, err := h.platform.Transaction(r.Context(), id)
	if err != nil {
		h.respondError(w, r, GetTransaction, "Could not retrieve transaction", err)
		return
	}

	h.respond(w, Response{Data: transactionView(tx)}, http.StatusOK)
}

func (h *PlatformHandler) HandleGetAllTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.platform.AllTransactions(r.Context())
	if err != nil {
		h.respondError(w, r, GetAllTransactions, "Could not retrieve transactions", err)
		return
	}

	h.respond(w, Response{Data: transactionViews(transactions)}, http.StatusOK)
}

func (h *PlatformHandler) HandleGetMyTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.platform.UserTransactions(r.Context(), r.Header.Get(authTokenHeader))
	if err != nil {
		h.respondError(w, r, GetMyTransactions, "Could not retrieve transactions", err)
		return
	}

	h.respond(w, Response{Data: transactionViews(transactions)}, http.StatusOK)
}

func (h *PlatformHandler) HandleCompleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondInvalidPayload(w, r, CompleteTransaction, "Could not complete transaction", err)
		return
	}

	tx, err := h.platform.CompleteTransaction(r.Context(), r.Header.Get(authTokenHeader), id)
	if err != nil {
		h.respondError(w, r, CompleteTransaction, "Could not complete transaction", err)
		return
	}

	h.respond(w, Response{Message: "Transaction completed", Data: transactionView(tx)}, http.StatusOK)
}

func (h *PlatformHandler) HandleRequestApproval(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondInvalidPayload(w, r, RequestApproval, "Could not request approval", err)
		return
	}

	var approvalPayload payload.RequestApprovalRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &approvalPayload); err != nil {
		h.respondInvalidPayload(w, r, RequestApproval, "Could not request approval", err)
		return
	}

	approval, err := h.platform.RequestApproval(r.Context(), r.Header.Get(authTokenHeader), id, approvalPayload.Reason)
	if err != nil {
		h.respondError(w, r, RequestApproval, "Could not request approval", err)
		return
	}

	h.respond(w, Response{Message: "Approval requested", Data: approvalView(approval)}, http.StatusCreated)
}

func (h *PlatformHandler) HandleGetApproval(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondInvalidPayload(w, r, GetApproval, "Could not retrieve approval", err)
		return
	}

	approval, err := h.platform.Approval(r.Context(), id)
	if err != nil {
		h.respondError(w, r, GetApproval, "Could not retrieve approval", err)
		return
	}

	h.respond(w, Response{Data: approvalView(approval)}, http.StatusOK)
}

func (h *PlatformHandler) HandleProcessApproval(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondInvalidPayload(w, r, ProcessApproval, "Could not process approval", err)
		return
	}

	var decisionPayload payload.ProcessApprovalRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &decisionPayload); err != nil {
		h.respondInvalidPayload(w, r, ProcessApproval, "Could not process approval", err)
		return
	}

	approval, err := h.platform.ProcessApproval(r.Context(),
		r.Header.Get(authTokenHeader),
		id,
		*decisionPayload.Approved,
		decisionPayload.Reason)
	if err != nil {
		h.respondError(w, r, ProcessApproval, "Could not process approval", err)
		return
	}

	h.respond(w, Response{Message: "Approval processed", Data: approvalView(approval)}, http.StatusOK)
}

func (h *PlatformHandler) HandleGetPendingApprovals(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.platform.PendingApprovals(r.Context())
	if err != nil {
		h.respondError(w, r, GetPendingApprovals, "Could not retrieve approvals", err)
		return
	}

	h.respond(w, Response{Data: approvalViews(approvals)}, http.StatusOK)
}

func (h *PlatformHandler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.platform.Metrics(r.Context())
	if err != nil {
		h.respondError(w, r, GetMetrics, "Could not retrieve metrics", err)
		return
	}

	h.respond(w, Response{Data: MetricsView(metrics)}, http.StatusOK)
}

func (h *PlatformHandler) respond(w http.ResponseWriter, resp any, httpCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response", "error", err)
	}
}

func (h *PlatformHandler) respondInvalidPayload(w http.ResponseWriter, r *http.Request, route, message string, err error) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestID(r))
}

func (h *PlatformHandler) respondError(w http.ResponseWriter, r *http.Request, route, message string, err error) {
	httpCode := statusFromError(err)

	resp := Response{Message: message, Error: err.Error()}
	if httpCode == http.StatusInternalServerError {
		// internal detail stays in the logs
		resp.Error = oopsErr
	}

	h.respond(w, resp, httpCode)
	h.logs.Errorw("request failed",
		"error", err,
		"status", httpCode,
		"handler", route,
		"request_id", requestID(r))
}

// statusFromError maps the ledger error taxonomy onto HTTP codes: expired or
// invalid tokens are 401, role and ownership failures 403, missing entities
// 404, transitions attempted in the wrong state 409.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, tokenIssuer.ErrTokenNotValid),
		errors.Is(err, tokenIssuer.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ledger.ErrUnauthorized),
		errors.Is(err, ledger.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrUserNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrApprovalNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateAddress),
		errors.Is(err, ledger.ErrInvalidState),
		errors.Is(err, core.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidRecipient),
		errors.Is(err, ledger.ErrReasonRequired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func requestID(r *http.Request) string {
	if reqIDCtx := r.Context().Value(middleware.RequestIDKey); reqIDCtx != nil {
		return reqIDCtx.(string)
	}
	return ""
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id path value: %w", err)
	}
	return id, nil
}
