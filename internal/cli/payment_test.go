package cli_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/cli"
)

func TestPaymentStubs(t *testing.T) {
	amount := decimal.RequireFromString("90.00")

	t.Run("BankPayment_FormatsConfirmation", func(t *testing.T) {
		out := &bytes.Buffer{}
		cli.ProcessBankPayment(out, "123456", "KES", amount)
		require.Equal(t, "Processing bank payment of KES 90.00 from account 123456\n", out.String())
	})

	t.Run("MpesaPayment_FormatsConfirmation", func(t *testing.T) {
		out := &bytes.Buffer{}
		cli.ProcessMpesaPayment(out, "0712345678", "1234", "KES", amount)
		require.Equal(t, "Processing M-PESA payment of KES 90.00 from phone number 0712345678\nPIN verified. Payment successful.\n", out.String())
	})
}

func TestSelfCheck(t *testing.T) {
	require.NoError(t, cli.SelfCheck(t.Context()))
}
