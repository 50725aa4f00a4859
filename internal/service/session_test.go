package service_test

import (
	"testing"

	"github.com/mark1979smith/farmison/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutSession(t *testing.T) {
	s, err := service.NewCheckoutSession(" FM000042 ")

	require.NoError(t, err)
	assert.Equal(t, "FM000042", s.TransactionID())
	assert.Equal(t, service.StateNew, s.State)

	_, err = service.NewCheckoutSession("  ")
	assert.ErrorIs(t, err, service.ErrPreconditionFailed)
}

func TestResumeCheckoutSession(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		payerID string
		want    service.CheckoutState
		wantErr bool
	}{
		{name: "fresh", want: service.StateNew},
		{name: "token only", token: "EC-1", want: service.StateInitiated},
		{name: "token and payer", token: "EC-1", payerID: "P1", want: service.StateDetailsFetched},
		{name: "payer without token", payerID: "P1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := service.ResumeCheckoutSession("FM000042", tt.token, tt.payerID)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrPreconditionFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.State)
		})
	}
}

func TestCheckoutState_IsTerminal(t *testing.T) {
	assert.False(t, service.StateNew.IsTerminal())
	assert.False(t, service.StateInitiated.IsTerminal())
	assert.False(t, service.StateDetailsFetched.IsTerminal())
	assert.True(t, service.StateAuthorized.IsTerminal())
	assert.True(t, service.StateFailed.IsTerminal())
}

func TestResult_Message(t *testing.T) {
	assert.Equal(t, "", service.Result{Success: true}.Message())
	assert.Equal(t, "(10001) Internal Error", service.Result{ErrorCode: "10001", ErrorMessage: "Internal Error"}.Message())
}
