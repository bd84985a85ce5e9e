package payment

import (
	"fmt"
	"strings"

	"lunchbox/internal/pkg/errs"
)

type Status int

const (
	UnknownStatus Status = iota
	Pending
	Confirmed
	Refused
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus has no wire form
	return map[Status]string{
		Pending:   "PENDENTE",
		Confirmed: "CONFIRMADO",
		Refused:   "RECUSADO",
	}
}

func ParseStatus(s string) (Status, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for st, name := range getStatusStrings() {
		if name == want {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Method is how the customer pays.
type Method int

const (
	UnknownMethod Method = iota
	Pix
	Card
	Cash
)

func getMethodStrings() map[Method]string {
	//nolint:exhaustive // UnknownMethod has no wire form
	return map[Method]string{
		Pix:  "PIX",
		Card: "CARTAO",
		Cash: "DINHEIRO",
	}
}

func ParseMethod(s string) (Method, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for m, name := range getMethodStrings() {
		if name == want {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not one of PIX, CARTAO, DINHEIRO", s))
}

func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
