package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mark1979smith/farmison/internal/models/dto"
	"github.com/mark1979smith/farmison/internal/nvp"
	"github.com/mark1979smith/farmison/internal/service"
	"github.com/sirupsen/logrus"
)

const SessionIDHeader = "X-Session-ID"

type CheckoutService interface {
	Initiate(ctx context.Context, session *service.CheckoutSession, orderAmount float64, currencyCode, returnURL, cancelURL string) (service.Result, error)
	RedirectURL(token string) string
	FetchDetails(ctx context.Context, session *service.CheckoutSession) (service.CheckoutDetails, error)
	Authorize(ctx context.Context, session *service.CheckoutSession, orderAmount float64, currencyCode string) (service.AuthorizationResult, error)
}

type CheckoutHandler struct {
	Service CheckoutService
}

func NewCheckoutHandler(s CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		Service: s,
	}
}

// POST /checkout/paypal
func (h *CheckoutHandler) Initiate(c *gin.Context) {
	var req dto.InitiateCheckout
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Sanitize()

	session, err := service.NewCheckoutSession(req.TransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Initiate(c.Request.Context(), session, req.Amount, req.Currency, req.ReturnURL, req.CancelURL)
	if err != nil {
		h.fail(c, "initiate", err)
		return
	}

	if !result.Success {
		c.JSON(http.StatusPaymentRequired, dto.GatewayError{ErrorCode: result.ErrorCode, Message: result.ErrorMessage})
		return
	}

	c.JSON(http.StatusOK, dto.InitiateCheckoutResponse{
		Token:       session.Token,
		RedirectURL: h.Service.RedirectURL(session.Token),
	})
}

// POST /checkout/paypal/details
func (h *CheckoutHandler) FetchDetails(c *gin.Context) {
	var req dto.FetchDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Sanitize()

	session, err := service.ResumeCheckoutSession(req.TransactionID, req.Token, "")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := h.Service.FetchDetails(c.Request.Context(), session)
	if err != nil {
		h.fail(c, "fetch details", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCheckoutDetailsResponse(details))
}

// POST /checkout/paypal/authorize
func (h *CheckoutHandler) Authorize(c *gin.Context) {
	var req dto.AuthorizeCheckout
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Sanitize()

	session, err := service.ResumeCheckoutSession(req.TransactionID, req.Token, req.PayerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session.Customer = req.ToOrderContext(clientInfo(c))

	result, err := h.Service.Authorize(c.Request.Context(), session, req.Amount, req.Currency)
	if err != nil {
		h.fail(c, "authorize", err)
		return
	}

	if !result.Success {
		c.JSON(http.StatusPaymentRequired, dto.AuthorizeResponse{
			Success:   false,
			ErrorCode: result.ErrorCode,
			Message:   result.ErrorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.AuthorizeResponse{Success: true})
}

func (h *CheckoutHandler) fail(c *gin.Context, step string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logrus.Errorf("Error during PayPal %s: %s", step, err.Error())
	} else {
		logrus.Warnf("PayPal %s rejected: %s", step, err.Error())
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrPreconditionFailed), errors.Is(err, service.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, nvp.ErrTransportFailure), errors.Is(err, nvp.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func clientInfo(c *gin.Context) dto.ClientInfo {
	forwarded := c.GetHeader("X-Forwarded-For")
	if first, _, found := strings.Cut(forwarded, ","); found {
		forwarded = first
	}
	return dto.ClientInfo{
		IPAddress:      c.RemoteIP(),
		ForwardedIP:    strings.TrimSpace(forwarded),
		UserAgent:      c.GetHeader("User-Agent"),
		AcceptLanguage: c.GetHeader("Accept-Language"),
		SessionID:      c.GetHeader(SessionIDHeader),
	}
}
