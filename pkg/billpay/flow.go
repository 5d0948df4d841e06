package billpay

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/obsbank/obsctl/pkg/api"
)

// Step is the state of an interactive bill-payment flow. Transitions are
// explicit and validated so step ordering and back-navigation can be
// tested without driving any prompts.
type Step int

const (
	StepSelectAccount Step = iota
	StepSelectBiller
	StepEnterAmount
	StepConfirm
	StepSubmitted
	StepAborted
)

func (s Step) String() string {
	switch s {
	case StepSelectAccount:
		return "select-account"
	case StepSelectBiller:
		return "select-biller"
	case StepEnterAmount:
		return "enter-amount"
	case StepConfirm:
		return "confirm"
	case StepSubmitted:
		return "submitted"
	case StepAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Biller categories offered by the wizard. Mobile recharges have no
// fetchable bill amount, so the wizard always asks for one.
var Categories = []string{"Electricity", "Water", "Gas", "Mobile", "Broadband"}

// Flow collects the inputs for one bill payment, one step at a time.
type Flow struct {
	step Step

	accountNumber  string
	category       string
	provider       string
	consumerNumber string
	amount         float64
}

func NewFlow() *Flow {
	return &Flow{step: StepSelectAccount}
}

func (f *Flow) Step() Step {
	return f.step
}

func (f *Flow) SelectAccount(accountNumber string) error {
	if f.step != StepSelectAccount {
		return f.wrongStep(StepSelectAccount)
	}
	if accountNumber == "" {
		return errors.New("an account number is required")
	}

	f.accountNumber = accountNumber
	f.step = StepSelectBiller
	return nil
}

func (f *Flow) SelectBiller(category string, provider string, consumerNumber string) error {
	if f.step != StepSelectBiller {
		return f.wrongStep(StepSelectBiller)
	}
	if !validCategory(category) {
		return errors.Errorf("unknown biller category %q", category)
	}
	if provider == "" || consumerNumber == "" {
		return errors.New("provider and consumer number are required")
	}

	f.category = category
	f.provider = provider
	f.consumerNumber = consumerNumber
	f.step = StepEnterAmount
	return nil
}

func (f *Flow) SetAmount(amount float64) error {
	if f.step != StepEnterAmount {
		return f.wrongStep(StepEnterAmount)
	}
	if amount <= 0 {
		return errors.New("amount must be greater than zero")
	}

	f.amount = amount
	f.step = StepConfirm
	return nil
}

// Confirm seals the flow and hands back the request to submit. It fires
// at most once; a confirmed flow cannot be confirmed or edited again.
func (f *Flow) Confirm() (api.BillPayRequest, error) {
	if f.step != StepConfirm {
		return api.BillPayRequest{}, f.wrongStep(StepConfirm)
	}

	f.step = StepSubmitted
	return api.BillPayRequest{
		AccountNumber: f.accountNumber,
		BillerName:    f.BillerName(),
		Amount:        f.amount,
	}, nil
}

// Back returns to the previous collecting step. The value gathered at
// the abandoned step is dropped so re-entering it starts clean.
func (f *Flow) Back() error {
	switch f.step {
	case StepSelectBiller:
		f.accountNumber = ""
		f.step = StepSelectAccount
	case StepEnterAmount:
		f.category = ""
		f.provider = ""
		f.consumerNumber = ""
		f.step = StepSelectBiller
	case StepConfirm:
		f.amount = 0
		f.step = StepEnterAmount
	default:
		return errors.Errorf("cannot go back from step %s", f.step)
	}
	return nil
}

// Abort ends the flow from any collecting step. Submitted flows cannot
// be aborted after the fact.
func (f *Flow) Abort() error {
	if f.step == StepSubmitted || f.step == StepAborted {
		return errors.Errorf("cannot abort from step %s", f.step)
	}
	f.step = StepAborted
	return nil
}

// BillerName is the biller string recorded in transaction history, e.g.
// "Electricity - BESCOM (CN12345)".
func (f *Flow) BillerName() string {
	return fmt.Sprintf("%s - %s (%s)", f.category, f.provider, f.consumerNumber)
}

func (f *Flow) AccountNumber() string {
	return f.accountNumber
}

func (f *Flow) Amount() float64 {
	return f.amount
}

func (f *Flow) wrongStep(want Step) error {
	return errors.Errorf("step %s is not valid here, currently at %s", want, f.step)
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
