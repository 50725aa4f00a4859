package service

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/mark1979smith/farmison/internal/metrics"
	"github.com/mark1979smith/farmison/internal/models"
	"github.com/mark1979smith/farmison/internal/nvp"
	"github.com/sirupsen/logrus"
)

const (
	AckSuccess = "Success"

	MethodSetExpressCheckout        = "SetExpressCheckout"
	MethodGetExpressCheckoutDetails = "GetExpressCheckoutDetails"
	MethodDoExpressCheckoutPayment  = "DoExpressCheckoutPayment"

	paymentActionSale               = "Sale"
	allowedPaymentMethodInstantOnly = "InstantPaymentOnly"
	amountTolerance                 = 0.005
)

// ExpressCheckoutConfig holds the merchant credentials sent with every NVP call.
type ExpressCheckoutConfig struct {
	User       string
	Password   string
	Signature  string
	APIVersion string

	// RedirectURL is the hosted approval page; the token is appended to it.
	RedirectURL string

	// NotifyURL receives PayPal instant payment notifications. Optional.
	NotifyURL string
}

// CheckoutDetails is what GetExpressCheckoutDetails tells us about the buyer.
type CheckoutDetails struct {
	PayerID     string
	PayerStatus string
	Email       string
	FirstName   string
	LastName    string
	CountryCode string
	Fields      nvp.Response
}

// ExpressCheckoutService drives the PayPal Express Checkout flow:
// SetExpressCheckout, GetExpressCheckoutDetails, DoExpressCheckoutPayment.
type ExpressCheckoutService struct {
	Config    ExpressCheckoutConfig
	Gateway   Gateway
	Orders    OrderStore
	Attempts  AttemptStore
	Audit     GatewayAuditStore
	Notifier  Notifier
	Fraud     FraudEvaluator
	Formatter OrderNumberFormatter
}

func NewExpressCheckoutService(
	cfg ExpressCheckoutConfig,
	gateway Gateway,
	orders OrderStore,
	attempts AttemptStore,
	audit GatewayAuditStore,
	notifier Notifier,
	fraud FraudEvaluator,
	formatter OrderNumberFormatter,
) *ExpressCheckoutService {
	return &ExpressCheckoutService{
		Config:    cfg,
		Gateway:   gateway,
		Orders:    orders,
		Attempts:  attempts,
		Audit:     audit,
		Notifier:  notifier,
		Fraud:     fraud,
		Formatter: formatter,
	}
}

// Initiate calls SetExpressCheckout and stores the returned token on the session.
//
// The gateway reply is written to the audit log whatever the outcome. A refusal
// is returned as an unsuccessful Result and moves the session to FAILED.
func (s *ExpressCheckoutService) Initiate(ctx context.Context, session *CheckoutSession, orderAmount float64, currencyCode, returnURL, cancelURL string) (Result, error) {
	if session == nil {
		return Result{}, fmt.Errorf("%w: checkout session is not set", ErrPreconditionFailed)
	}
	if session.State != StateNew {
		return Result{}, fmt.Errorf("%w: checkout already %s", ErrPreconditionFailed, session.State)
	}
	if orderAmount <= 0 {
		return Result{}, fmt.Errorf("%w: order amount must be greater than zero", ErrPreconditionFailed)
	}
	if currencyCode == "" {
		return Result{}, fmt.Errorf("%w: currency is not set", ErrPreconditionFailed)
	}

	params := s.baseParams(MethodSetExpressCheckout)
	params["PAYMENTREQUEST_0_PAYMENTACTION"] = paymentActionSale
	params["PAYMENTREQUEST_0_AMT"] = nvp.FormatAmount(orderAmount)
	params["PAYMENTREQUEST_0_CURRENCYCODE"] = currencyCode
	params["RETURNURL"] = returnURL
	params["CANCELURL"] = cancelURL
	params["NOSHIPPING"] = 1
	params["ALLOWNOTE"] = 0

	response, err := s.call(ctx, MethodSetExpressCheckout, params)
	if err != nil {
		session.State = StateFailed
		return Result{}, err
	}

	record := &models.PaypalAPIResponse{
		Method:        MethodSetExpressCheckout,
		Token:         response.Get("TOKEN"),
		Ack:           response.Get("ACK"),
		CorrelationID: response.Get("CORRELATIONID"),
		ErrorCode:     response.Get("L_ERRORCODE0"),
		LongMessage:   response.Get("L_LONGMESSAGE0"),
		Response:      toJSON(response),
	}
	recordCtx, cancel := persistContext(ctx)
	err = s.Audit.RecordGatewayResponse(recordCtx, record)
	cancel()
	if err != nil {
		session.State = StateFailed
		return Result{}, fmt.Errorf("record %s response: %w", MethodSetExpressCheckout, err)
	}

	if !isAck(response, "ACK") || response.Get("TOKEN") == "" {
		session.State = StateFailed
		result := refusal(response)
		logrus.WithFields(logrus.Fields{
			"transaction_id": session.TransactionID(),
			"error_code":     result.ErrorCode,
		}).Warnf("SetExpressCheckout refused: %s", result.ErrorMessage)
		return result, nil
	}

	session.Token = response.Get("TOKEN")
	session.State = StateInitiated

	return Result{Success: true}, nil
}

// RedirectURL is where the buyer approves the payment for token.
func (s *ExpressCheckoutService) RedirectURL(token string) string {
	return s.Config.RedirectURL + url.QueryEscape(token)
}

// FetchDetails calls GetExpressCheckoutDetails for the session token and stores the payer id.
// A reply without a successful ACK or without PAYERID is an ErrInvalidToken error.
func (s *ExpressCheckoutService) FetchDetails(ctx context.Context, session *CheckoutSession) (CheckoutDetails, error) {
	if session == nil || session.Token == "" {
		return CheckoutDetails{}, fmt.Errorf("%w: token is not supplied", ErrPreconditionFailed)
	}
	if session.State.IsTerminal() {
		return CheckoutDetails{}, fmt.Errorf("%w: checkout already %s", ErrPreconditionFailed, session.State)
	}

	params := s.baseParams(MethodGetExpressCheckoutDetails)
	params["TOKEN"] = session.Token

	response, err := s.call(ctx, MethodGetExpressCheckoutDetails, params)
	if err != nil {
		session.State = StateFailed
		return CheckoutDetails{}, err
	}

	if !isAck(response, "ACK") || response.Get("PAYERID") == "" {
		session.State = StateFailed
		return CheckoutDetails{}, fmt.Errorf("%w: %s", ErrInvalidToken, refusal(response).Message())
	}

	session.PayerID = response.Get("PAYERID")
	session.State = StateDetailsFetched

	return CheckoutDetails{
		PayerID:     session.PayerID,
		PayerStatus: response.Get("PAYERSTATUS"),
		Email:       response.Get("EMAIL"),
		FirstName:   response.Get("FIRSTNAME"),
		LastName:    response.Get("LASTNAME"),
		CountryCode: response.Get("COUNTRYCODE"),
		Fields:      response,
	}, nil
}

// Authorize takes the payment with DoExpressCheckoutPayment.
//
// The amount charged is the payable total held by the order store; orderAmount is
// only compared against it. When nothing is payable the call succeeds without
// contacting the gateway. Every attempt gets its own invoice number and is
// recorded. A successful charge on an order that was already paid raises a
// duplicate payment alert, and every successful charge is scored for fraud.
//
// A gateway refusal is an unsuccessful result, not an error.
func (s *ExpressCheckoutService) Authorize(ctx context.Context, session *CheckoutSession, orderAmount float64, currencyCode string) (AuthorizationResult, error) {
	if err := checkAuthorizable(session); err != nil {
		return Result{}, err
	}
	if currencyCode == "" {
		return Result{}, fmt.Errorf("%w: currency is not set", ErrPreconditionFailed)
	}

	transactionID := session.TransactionID()
	orderID, err := s.Formatter.Unformat(transactionID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrPreconditionFailed, err)
	}

	logger := logrus.WithFields(logrus.Fields{
		"order_id":       orderID,
		"transaction_id": transactionID,
	})

	total, err := s.Orders.GetPayableTotal(ctx, orderID)
	if err != nil {
		return Result{}, fmt.Errorf("get payable total for order %d: %w", orderID, err)
	}

	if total <= 0 {
		logger.Info("nothing payable on order, skipping PayPal payment")
		session.State = StateAuthorized
		metrics.AuthorizationsTotal.WithLabelValues("nothing_due").Inc()
		return Result{Success: true}, nil
	}

	if orderAmount > 0 && math.Abs(orderAmount-total) > amountTolerance {
		logger.Warnf("requested amount %.2f differs from payable total %.2f, charging the payable total", orderAmount, total)
	}

	attempts, err := s.Attempts.CountAttempts(ctx, orderID)
	if err != nil {
		return Result{}, fmt.Errorf("count attempts for order %d: %w", orderID, err)
	}
	authorized, err := s.Attempts.CountSuccessfulAttempts(ctx, orderID)
	if err != nil {
		return Result{}, fmt.Errorf("count successful attempts for order %d: %w", orderID, err)
	}

	invoiceNumber := InvoiceNumber(transactionID, attempts+1)
	logger = logger.WithField("invoice_number", invoiceNumber)

	params := s.baseParams(MethodDoExpressCheckoutPayment)
	params["TOKEN"] = session.Token
	params["PAYERID"] = session.PayerID
	params["PAYMENTREQUEST_0_PAYMENTACTION"] = paymentActionSale
	params["PAYMENTREQUEST_0_AMT"] = nvp.FormatAmount(total)
	params["PAYMENTREQUEST_0_CURRENCYCODE"] = currencyCode
	params["PAYMENTREQUEST_0_INVNUM"] = invoiceNumber
	params["PAYMENTREQUEST_0_ALLOWEDPAYMENTMETHOD"] = allowedPaymentMethodInstantOnly
	params["L_PAYMENTREQUEST_0_NAME0"] = fmt.Sprintf("Website Order (%s)", transactionID)
	params["L_PAYMENTREQUEST_0_AMT0"] = nvp.FormatAmount(total)
	if s.Config.NotifyURL != "" {
		params["PAYMENTREQUEST_0_NOTIFYURL"] = s.Config.NotifyURL
	}

	attempt := &models.PaypalAttempt{
		OrderID:       orderID,
		InvoiceNumber: invoiceNumber,
		Request:       toJSON(redactParams(params)),
	}

	// Past this point the payment may be taken, so the buyer disconnecting must not
	// abort the call or its bookkeeping.
	paymentCtx := context.WithoutCancel(ctx)

	response, err := s.call(paymentCtx, MethodDoExpressCheckoutPayment, params)
	if err != nil {
		// The gateway may still have processed the payment, so the invoice number is burnt.
		session.State = StateFailed
		attempt.Response = toJSON(map[string]string{"error": err.Error()})
		if recErr := s.recordAttempt(paymentCtx, attempt); recErr != nil {
			logger.Errorf("Error recording failed attempt: %s", recErr.Error())
		}
		metrics.AuthorizationsTotal.WithLabelValues("error").Inc()
		return Result{}, err
	}

	success := isAck(response, "ACK") && isAck(response, "PAYMENTINFO_0_ACK")

	if success && authorized > 0 {
		metrics.DuplicatePaymentsTotal.Inc()
		logger.Warnf("order already had %d authorized payment(s), notifying office", authorized)
		if err := s.Notifier.NotifyDuplicatePayment(paymentCtx, orderID); err != nil {
			logger.Errorf("Error sending duplicate payment notification: %s", err.Error())
		}
	}

	attempt.Status = success
	attempt.Response = toJSON(response)
	if err := s.recordAttempt(paymentCtx, attempt); err != nil {
		if !success {
			session.State = StateFailed
			return Result{}, fmt.Errorf("record attempt %s: %w", invoiceNumber, err)
		}
		// The buyer has been charged; failing here would invite a second payment.
		logger.Errorf("Error recording authorized attempt: %s", err.Error())
	}

	if !success {
		session.State = StateFailed
		result := refusal(response)
		metrics.AuthorizationsTotal.WithLabelValues("failed").Inc()
		logger.WithField("error_code", result.ErrorCode).Warnf("DoExpressCheckoutPayment refused: %s", result.ErrorMessage)
		return result, nil
	}

	session.State = StateAuthorized
	metrics.AuthorizationsTotal.WithLabelValues("success").Inc()
	logger.Info("PayPal payment authorized")

	if s.Fraud != nil {
		request := NewFraudScoreRequest(session.Customer, transactionID, total, currencyCode, TxnTypePaypal)
		if _, err := s.Fraud.Evaluate(paymentCtx, request); err != nil {
			logger.Errorf("Error evaluating fraud score: %s", err.Error())
		}
	}

	return Result{Success: true}, nil
}

func (s *ExpressCheckoutService) recordAttempt(ctx context.Context, attempt *models.PaypalAttempt) error {
	ctx, cancel := persistContext(ctx)
	defer cancel()
	return s.Attempts.RecordAttempt(ctx, attempt)
}

// InvoiceNumber is unique per payment attempt: the transaction id plus the
// attempt ordinal padded to four digits.
func InvoiceNumber(transactionID string, ordinal int64) string {
	return fmt.Sprintf("%s-%04d", transactionID, ordinal)
}

func checkAuthorizable(session *CheckoutSession) error {
	switch {
	case session == nil || session.TransactionID() == "":
		return fmt.Errorf("%w: transaction id is not set", ErrPreconditionFailed)
	case session.Token == "":
		return fmt.Errorf("%w: token is not supplied", ErrPreconditionFailed)
	case session.PayerID == "":
		return fmt.Errorf("%w: payer id is not provided", ErrPreconditionFailed)
	case session.State.IsTerminal():
		return fmt.Errorf("%w: checkout already %s", ErrPreconditionFailed, session.State)
	}
	return nil
}

func (s *ExpressCheckoutService) baseParams(method string) nvp.Request {
	return nvp.Request{
		"USER":      s.Config.User,
		"PWD":       s.Config.Password,
		"SIGNATURE": s.Config.Signature,
		"VERSION":   s.Config.APIVersion,
		"METHOD":    method,
	}
}

func (s *ExpressCheckoutService) call(ctx context.Context, method string, params nvp.Request) (nvp.Response, error) {
	response, err := s.Gateway.Call(ctx, params)
	if err != nil {
		metrics.GatewayCallsTotal.WithLabelValues(method, "error").Inc()
		logrus.Errorf("Error calling PayPal %s: %s", method, err.Error())
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	outcome := "failure"
	if isAck(response, "ACK") {
		outcome = "success"
	}
	metrics.GatewayCallsTotal.WithLabelValues(method, outcome).Inc()

	return response, nil
}

func isAck(response nvp.Response, field string) bool {
	return response.Get(field) == AckSuccess
}

func refusal(response nvp.Response) Result {
	return Result{
		Success:      false,
		ErrorCode:    response.Get("L_ERRORCODE0"),
		ErrorMessage: response.Get("L_LONGMESSAGE0"),
	}
}
