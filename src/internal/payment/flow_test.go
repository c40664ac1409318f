package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rideTarget() Target {
	return Target{Kind: TargetRide, RideID: "ride-1", Amount: 25, PayerID: "client-1"}
}

func TestOpenStartsAtMethods(t *testing.T) {
	s := Open(rideTarget())
	assert.Equal(t, StepMethods, s.Step)
	assert.Nil(t, s.Method)
	assert.Empty(t, s.TransactionID)
}

func TestSelectMethodBranches(t *testing.T) {
	mobile := Method{ID: "airtel_money", Type: MethodTypeMobileMoney}
	card := Method{ID: "visa_card", Type: MethodTypeCard}

	s, err := Open(rideTarget()).SelectMethod(mobile)
	require.NoError(t, err)
	assert.Equal(t, StepMobileForm, s.Step)

	s, err = Open(rideTarget()).SelectMethod(card)
	require.NoError(t, err)
	assert.Equal(t, StepProcessing, s.Step)
}

func TestSelectMethodRejectsWrongStep(t *testing.T) {
	mobile := Method{ID: "mpesa", Type: MethodTypeMobileMoney}

	s, err := Open(rideTarget()).SelectMethod(mobile)
	require.NoError(t, err)

	_, err = s.SelectMethod(mobile)
	assert.ErrorIs(t, err, ErrWrongStep)

	closed := s.Close()
	_, err = closed.SelectMethod(mobile)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSubmitPhone(t *testing.T) {
	mobile := Method{ID: "orange_money", Type: MethodTypeMobileMoney}
	s, err := Open(rideTarget()).SelectMethod(mobile)
	require.NoError(t, err)

	_, err = s.SubmitPhone("   ")
	assert.ErrorIs(t, err, ErrPhoneRequired)

	s, err = s.SubmitPhone(" +243 812 000 111 ")
	require.NoError(t, err)
	assert.Equal(t, StepProcessing, s.Step)
	assert.Equal(t, "+243 812 000 111", s.PhoneNumber)

	_, err = Open(rideTarget()).SubmitPhone("+243 812 000 111")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestWithInitiated(t *testing.T) {
	s := Open(rideTarget())

	withURL := s.WithInitiated("txn_1", "https://sandbox-payment.example.com/pay?token=abc")
	assert.Equal(t, StepCardPayment, withURL.Step)
	assert.Equal(t, "txn_1", withURL.TransactionID)

	withoutURL := s.WithInitiated("txn_2", "")
	assert.Equal(t, s.Step, withoutURL.Step)
	assert.Equal(t, "txn_2", withoutURL.TransactionID)
}

func TestObserveNavigation(t *testing.T) {
	card := Method{ID: "visa_card", Type: MethodTypeCard}
	s, err := Open(rideTarget()).SelectMethod(card)
	require.NoError(t, err)
	s = s.WithInitiated("txn_1", "https://sandbox-payment.example.com/pay")

	next, signal := s.ObserveNavigation("https://sandbox-payment.example.com/return?status=success")
	assert.Equal(t, SignalVerify, signal)
	assert.Equal(t, StepProcessing, next.Step)

	next, signal = s.ObserveNavigation("https://sandbox-payment.example.com/return?status=cancel")
	assert.Equal(t, SignalAbort, signal)
	assert.Equal(t, StepMethods, next.Step)
	assert.Empty(t, next.TransactionID)

	next, signal = s.ObserveNavigation("https://sandbox-payment.example.com/pay/step2")
	assert.Equal(t, SignalNone, signal)
	assert.Equal(t, StepCardPayment, next.Step)

	// navigation outside the card sheet is ignored
	_, signal = Open(rideTarget()).ObserveNavigation("https://anything/success")
	assert.Equal(t, SignalNone, signal)
}

func TestFailClearsTransientsButKeepsTarget(t *testing.T) {
	mobile := Method{ID: "airtel_money", Type: MethodTypeMobileMoney}
	s, err := Open(rideTarget()).SelectMethod(mobile)
	require.NoError(t, err)
	s, err = s.SubmitPhone("+243 812 000 111")
	require.NoError(t, err)
	s = s.WithInitiated("txn_1", "")

	failed := s.Fail()
	assert.Equal(t, StepMethods, failed.Step)
	assert.Nil(t, failed.Method)
	assert.Empty(t, failed.PhoneNumber)
	assert.Empty(t, failed.TransactionID)
	assert.Equal(t, rideTarget(), failed.Target)
}

func TestClose(t *testing.T) {
	s := Open(rideTarget()).Close()
	assert.Equal(t, StepClosed, s.Step)
}
