package billpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advanceToConfirm(t *testing.T) *Flow {
	t.Helper()
	req := require.New(t)

	flow := NewFlow()
	req.NoError(flow.SelectAccount("1001"))
	req.NoError(flow.SelectBiller("Electricity", "BESCOM", "CN12345"))
	req.NoError(flow.SetAmount(1250.50))
	return flow
}

func Test_HappyPath(t *testing.T) {
	req := require.New(t)

	flow := advanceToConfirm(t)
	assert.Equal(t, StepConfirm, flow.Step())

	payReq, err := flow.Confirm()
	req.NoError(err)
	assert.Equal(t, StepSubmitted, flow.Step())
	assert.Equal(t, "1001", payReq.AccountNumber)
	assert.Equal(t, "Electricity - BESCOM (CN12345)", payReq.BillerName)
	assert.Equal(t, 1250.50, payReq.Amount)
}

func Test_StepsOutOfOrder(t *testing.T) {
	flow := NewFlow()

	assert.Error(t, flow.SetAmount(100))
	_, err := flow.Confirm()
	assert.Error(t, err)
	assert.Error(t, flow.SelectBiller("Water", "BWSSB", "CN9"))
	assert.Equal(t, StepSelectAccount, flow.Step())
}

func Test_InvalidInputsDoNotAdvance(t *testing.T) {
	req := require.New(t)

	flow := NewFlow()
	assert.Error(t, flow.SelectAccount(""))
	req.NoError(flow.SelectAccount("1001"))

	assert.Error(t, flow.SelectBiller("Cable TV", "Acme", "CN1"))
	assert.Equal(t, StepSelectBiller, flow.Step())
	req.NoError(flow.SelectBiller("Mobile", "Airtel", "5550100"))

	assert.Error(t, flow.SetAmount(0))
	assert.Error(t, flow.SetAmount(-10))
	assert.Equal(t, StepEnterAmount, flow.Step())
}

func Test_BackNavigation(t *testing.T) {
	req := require.New(t)

	flow := advanceToConfirm(t)

	req.NoError(flow.Back())
	assert.Equal(t, StepEnterAmount, flow.Step())

	req.NoError(flow.Back())
	assert.Equal(t, StepSelectBiller, flow.Step())

	req.NoError(flow.Back())
	assert.Equal(t, StepSelectAccount, flow.Step())

	// nothing earlier to go back to
	assert.Error(t, flow.Back())

	// re-entering a step starts clean
	req.NoError(flow.SelectAccount("2002"))
	req.NoError(flow.SelectBiller("Gas", "GAIL", "CN77"))
	req.NoError(flow.SetAmount(400))

	payReq, err := flow.Confirm()
	req.NoError(err)
	assert.Equal(t, "2002", payReq.AccountNumber)
	assert.Equal(t, "Gas - GAIL (CN77)", payReq.BillerName)
}

func Test_ConfirmFiresOnce(t *testing.T) {
	flow := advanceToConfirm(t)

	_, err := flow.Confirm()
	require.NoError(t, err)

	_, err = flow.Confirm()
	assert.Error(t, err)
	assert.Error(t, flow.Back())
	assert.Error(t, flow.Abort())
	assert.Equal(t, StepSubmitted, flow.Step())
}

func Test_Abort(t *testing.T) {
	req := require.New(t)

	flow := NewFlow()
	req.NoError(flow.SelectAccount("1001"))
	req.NoError(flow.Abort())
	assert.Equal(t, StepAborted, flow.Step())

	// an aborted flow is inert
	assert.Error(t, flow.SelectBiller("Water", "BWSSB", "CN9"))
	assert.Error(t, flow.Abort())
}
