package payment

// ProtocolVersion is the literal version token carried by every request and response.
const ProtocolVersion = "1.1"

// DateTimeLayout is the YYYYMMDDHHmmss layout of the Date/Time field.
const DateTimeLayout = "20060102150405"

// Field widths of the BOReq and BOResp layouts
const (
	TransactionTypeWidth  = 2
	DateTimeWidth         = 14
	AmountWidth           = 12
	TerminalIDWidth       = 8
	OrderNumberWidth      = 15
	DescriptionWidth      = 125
	LanguageWidth         = 2
	ProtocolVersionWidth  = 3
	CurrencyWidth         = 3
	FinalizationCodeWidth = 2
)

// RequestLength is the length of a BOReq message before signing.
const RequestLength = TransactionTypeWidth + DateTimeWidth + AmountWidth + TerminalIDWidth +
	OrderNumberWidth + DescriptionWidth + LanguageWidth + ProtocolVersionWidth + CurrencyWidth

// ResponseLength is the length of a BOResp message before its signature.
const ResponseLength = TransactionTypeWidth + DateTimeWidth + AmountWidth + TerminalIDWidth +
	OrderNumberWidth + FinalizationCodeWidth + ProtocolVersionWidth

// SignatureLength is the length of the appended signature (1024-bit RSA).
const SignatureLength = 128

// MaxAmount is the largest amount that fits the N[12] amount field.
const MaxAmount int64 = 999999999999

// Interface languages accepted by the gateway
const (
	LanguageBG = "BG"
	LanguageEN = "EN"
)

// Currencies accepted by the gateway
const (
	CurrencyBGN = "BGN"
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
)

// AllowedLanguages lists the accepted interface languages.
var AllowedLanguages = []string{LanguageBG, LanguageEN}

// AllowedCurrencies lists the accepted currencies.
var AllowedCurrencies = []string{CurrencyBGN, CurrencyEUR, CurrencyUSD}
