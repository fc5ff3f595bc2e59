package domain

// PurchaseHistory maps a user id to the ordered sequence of product names
// that user bought this session. It grows monotonically: purchases recorded
// at add-to-cart time are never rolled back, even if the checkout is later
// abandoned.
type PurchaseHistory map[string][]string
