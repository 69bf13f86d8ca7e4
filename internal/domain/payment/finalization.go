package payment

// FinalizationSuccess is the finalization code of a normally executed authorization.
const FinalizationSuccess = "00"

const unknownFinalizationMessage = "Unknown error!"

var finalizationMessages = map[string]string{
	FinalizationSuccess: "Normally executed authorization",
	"85":                "Reversal transaction with these parameters has already been registered by the system",
	"86":                "A transaction with these parameters has already been registered by the system",
	"87":                "Wrong protocol version",
	"88":                "For managing transactions. No BOReq parameter has been submitted",
	"89":                "For managing transactions. Initial transaction not found. (Example: in reversal – the initial transaction on which reversal should be performed has not been found)",
	"90":                "The card is not registered with the Directory server",
	"91":                "Authorization system timeout",
	"92":                "During ‘Check of the status of a transaction’ operation. The sent eBorica parameter is in invalid format.",
	"93":                "Unsuccessful 3 D authentication by the ACS",
	"94":                "Cancelled transaction",
	"95":                "Invalid merchant signature",
	"96":                "Technical error during transaction processing",
	"97":                "Reversal rejected",
	"98":                "During ‘Check of the status of a transaction’ operation. For this BOReq, no registration of a BOResp is registered on the BORICA-BANKSERVICE site",
	"99":                "Authorization rejected by the TPSS",
}

// FinalizationMessage returns the human-readable text for a finalization code.
func FinalizationMessage(code string) string {
	if msg, ok := finalizationMessages[code]; ok {
		return msg
	}
	return unknownFinalizationMessage
}
