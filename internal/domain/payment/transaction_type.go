package payment

import "fmt"

// TransactionType is the two-digit code of a gateway transaction.
type TransactionType int

// Transaction types supported by the gateway
const (
	Authorization                    TransactionType = 10
	DeferredAuthorization            TransactionType = 21
	DeferredAuthorizationPerformance TransactionType = 22
	DeferredAuthorizationReversal    TransactionType = 23
	SubscriptionPayment              TransactionType = 31
	SubscriptionPaymentAuthorization TransactionType = 32
	SubscriptionPaymentReversal      TransactionType = 33
	SubscriptionPaymentClosing       TransactionType = 34
	Reversal                         TransactionType = 40
)

var transactionTypeNames = map[TransactionType]string{
	Authorization:                    "Authorization",
	DeferredAuthorization:            "DeferredAuthorization",
	DeferredAuthorizationPerformance: "DeferredAuthorizationPerformance",
	DeferredAuthorizationReversal:    "DeferredAuthorizationReversal",
	SubscriptionPayment:              "SubscriptionPayment",
	SubscriptionPaymentAuthorization: "SubscriptionPaymentAuthorization",
	SubscriptionPaymentReversal:      "SubscriptionPaymentReversal",
	SubscriptionPaymentClosing:       "SubscriptionPaymentClosing",
	Reversal:                         "Reversal",
}

// Known reports whether t is one of the gateway's transaction types.
func (t TransactionType) Known() bool {
	_, ok := transactionTypeNames[t]
	return ok
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TransactionType(%d)", int(t))
}
