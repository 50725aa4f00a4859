package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mark1979smith/farmison/internal/metrics"
	"github.com/mark1979smith/farmison/internal/models"
	"github.com/mark1979smith/farmison/internal/nvp"
	"github.com/sirupsen/logrus"
)

const DefaultHighRiskThreshold = 5.0

type FraudServiceConfig struct {
	LicenseKey        string
	HighRiskThreshold float64
	Production        bool
}

// FraudService scores orders against minFraud and alerts the office about risky ones.
// It never holds or cancels an order; the score is advisory.
type FraudService struct {
	Config    FraudServiceConfig
	Gateway   Gateway
	Audit     FraudAuditStore
	Notifier  Notifier
	Formatter OrderNumberFormatter
}

func NewFraudService(cfg FraudServiceConfig, gateway Gateway, audit FraudAuditStore, notifier Notifier, formatter OrderNumberFormatter) *FraudService {
	if cfg.HighRiskThreshold <= 0 {
		cfg.HighRiskThreshold = DefaultHighRiskThreshold
	}
	return &FraudService{
		Config:    cfg,
		Gateway:   gateway,
		Audit:     audit,
		Notifier:  notifier,
		Formatter: formatter,
	}
}

// Evaluate queries the fraud service and returns the risk score.
//
// The query and its result are stored with the measured round trip time. A score
// at or above the high risk threshold triggers an operator alert. Failing to store
// the check or to send the alert is reported in the returned error together with
// the score, which is still valid.
func (s *FraudService) Evaluate(ctx context.Context, request FraudScoreRequest) (float64, error) {
	orderID, err := s.Formatter.Unformat(request.TxnID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPreconditionFailed, err)
	}

	params := request.Params(s.Config.LicenseKey)

	start := time.Now()
	response, err := s.Gateway.Call(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		return 0, fmt.Errorf("fraud score query for order %d: %w", orderID, err)
	}
	metrics.FraudQueryDuration.Observe(elapsed.Seconds())

	score, err := parseRiskScore(response)
	if err != nil {
		return 0, err
	}
	metrics.FraudScores.Observe(score)

	logger := logrus.WithFields(logrus.Fields{
		"order_id":   orderID,
		"score":      score,
		"maxmind_id": response.Get("maxmindID"),
	})
	logger.Info("fraud score received")

	var errs []error

	check := &models.FraudCheck{
		ID:             response.Get("maxmindID"),
		OrderID:        orderID,
		IPAddress:      request.IPAddress,
		Score:          score,
		Request:        toJSON(redactParams(params)),
		Results:        toJSON(response),
		ElapsedSeconds: elapsed.Seconds(),
	}
	if check.ID == "" {
		check.ID = uuid.New().String()
	}
	recordCtx, cancel := persistContext(ctx)
	err = s.Audit.RecordFraudCheck(recordCtx, check)
	cancel()
	if err != nil {
		logger.Errorf("Error storing fraud check: %s", err.Error())
		errs = append(errs, fmt.Errorf("record fraud check: %w", err))
	}

	if score >= s.Config.HighRiskThreshold {
		metrics.FraudHighRiskTotal.Inc()
		logger.Warn("high risk order detected")
		if err := s.Notifier.NotifyHighFraudScore(ctx, score, s.Formatter.Format(orderID), response, !s.Config.Production); err != nil {
			logger.Errorf("Error sending high fraud score notification: %s", err.Error())
			errs = append(errs, fmt.Errorf("notify high fraud score: %w", err))
		}
	}

	return score, errors.Join(errs...)
}

func parseRiskScore(response nvp.Response) (float64, error) {
	if !response.Has("riskScore") {
		if msg := response.Get("err"); msg != "" {
			return 0, fmt.Errorf("%w: fraud service error %s", nvp.ErrMalformedResponse, msg)
		}
		return 0, fmt.Errorf("%w: riskScore missing", nvp.ErrMalformedResponse)
	}

	score, err := strconv.ParseFloat(response.Get("riskScore"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: riskScore %q", nvp.ErrMalformedResponse, response.Get("riskScore"))
	}
	return score, nil
}
