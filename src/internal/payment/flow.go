package payment

import (
	"errors"
	"strings"
)

// Step is the payment sheet's position: method selection, input collection,
// external confirmation, then verification.
type Step string

const (
	StepMethods     Step = "methods"
	StepMobileForm  Step = "mobile_form"
	StepCardPayment Step = "card_payment"
	StepProcessing  Step = "processing"
	StepClosed      Step = "closed"
)

const (
	MethodTypeMobileMoney = "mobile_money"
	MethodTypeCard        = "card"
)

const (
	TargetRide         = "ride"
	TargetSubscription = "subscription"
)

var (
	ErrClosed        = errors.New("payment: session is closed")
	ErrWrongStep     = errors.New("payment: operation not valid at this step")
	ErrPhoneRequired = errors.New("payment: phone number is required")
)

type Method struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Target is what the sheet is paying for: a completed ride or a subscription
// plan.
type Target struct {
	Kind          string  `json:"kind"`
	RideID        string  `json:"ride_id,omitempty"`
	PlanID        string  `json:"plan_id,omitempty"`
	Amount        float64 `json:"amount"`
	PayerID       string  `json:"payer_id"`
	TransporterID string  `json:"transporter_id,omitempty"`
}

// Session is one in-flight payment attempt. At most one exists per sheet;
// opening resets every transient field.
type Session struct {
	Step          Step    `json:"step"`
	Target        Target  `json:"target"`
	Method        *Method `json:"method,omitempty"`
	PhoneNumber   string  `json:"phone_number,omitempty"`
	PaymentURL    string  `json:"payment_url,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

// Open starts a fresh session at method selection.
func Open(target Target) Session {
	return Session{Step: StepMethods, Target: target}
}

// SelectMethod moves mobile-money methods to the phone form; card methods go
// straight to processing while the redirect URL is obtained.
func (s Session) SelectMethod(m Method) (Session, error) {
	if s.Step == StepClosed {
		return s, ErrClosed
	}
	if s.Step != StepMethods {
		return s, ErrWrongStep
	}
	s.Method = &m
	if m.Type == MethodTypeMobileMoney {
		s.Step = StepMobileForm
	} else {
		s.Step = StepProcessing
	}
	return s, nil
}

// SubmitPhone records the mobile-money number and moves to processing.
func (s Session) SubmitPhone(phone string) (Session, error) {
	if s.Step != StepMobileForm {
		return s, ErrWrongStep
	}
	if strings.TrimSpace(phone) == "" {
		return s, ErrPhoneRequired
	}
	s.PhoneNumber = strings.TrimSpace(phone)
	s.Step = StepProcessing
	return s, nil
}

// WithInitiated records the gateway's transaction. A redirect URL puts the
// card sheet on screen, otherwise the session stays in processing awaiting
// confirmation.
func (s Session) WithInitiated(transactionID, paymentURL string) Session {
	s.TransactionID = transactionID
	s.PaymentURL = paymentURL
	if paymentURL != "" {
		s.Step = StepCardPayment
	}
	return s
}

// NavigationSignal is what a watched redirect URL means for the session.
type NavigationSignal int

const (
	SignalNone NavigationSignal = iota
	SignalVerify
	SignalAbort
)

// ObserveNavigation watches card-redirect URLs. The mock gateway signals
// completion through literal substrings, so a substring match is the
// contract here, not a shortcut.
func (s Session) ObserveNavigation(url string) (Session, NavigationSignal) {
	if s.Step != StepCardPayment {
		return s, SignalNone
	}
	if strings.Contains(url, "success") || strings.Contains(url, "completed") {
		s.Step = StepProcessing
		return s, SignalVerify
	}
	if strings.Contains(url, "cancel") || strings.Contains(url, "error") {
		return s.Fail(), SignalAbort
	}
	return s, SignalNone
}

// Fail returns to method selection with transient fields cleared.
func (s Session) Fail() Session {
	return Session{Step: StepMethods, Target: s.Target}
}

// Close ends the session after a confirmed payment or an explicit dismissal.
func (s Session) Close() Session {
	s.Step = StepClosed
	return s
}
