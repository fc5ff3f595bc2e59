package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Payment stubs: pure presentation over a final amount the core already
// computed. Nothing here feeds back into the checkout.

func ProcessBankPayment(w io.Writer, accountNumber, currency string, amount decimal.Decimal) {
	fmt.Fprintf(w, "Processing bank payment of %s %s from account %s\n",
		currency, amount.StringFixed(2), accountNumber)
}

func ProcessMpesaPayment(w io.Writer, phoneNumber, pin, currency string, amount decimal.Decimal) {
	_ = pin // the stub verifies nothing
	fmt.Fprintf(w, "Processing M-PESA payment of %s %s from phone number %s\n",
		currency, amount.StringFixed(2), phoneNumber)
	fmt.Fprintln(w, "PIN verified. Payment successful.")
}
