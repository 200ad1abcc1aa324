package currency

// decimalDigits lists the supported ISO-4217 codes with their minor-unit
// digit counts.
var decimalDigits = map[string]int{
	"AED": 2,
	"AUD": 2,
	"BGN": 2,
	"BHD": 3,
	"BRL": 2,
	"CAD": 2,
	"CHF": 2,
	"CLF": 4,
	"CLP": 0,
	"CNY": 2,
	"CZK": 2,
	"DKK": 2,
	"EUR": 2,
	"GBP": 2,
	"HKD": 2,
	"HUF": 2,
	"IDR": 2,
	"ILS": 2,
	"INR": 2,
	"ISK": 0,
	"JOD": 3,
	"JPY": 0,
	"KRW": 0,
	"KWD": 3,
	"MXN": 2,
	"MYR": 2,
	"NOK": 2,
	"NZD": 2,
	"OMR": 3,
	"PHP": 2,
	"PLN": 2,
	"RON": 2,
	"SAR": 2,
	"SEK": 2,
	"SGD": 2,
	"THB": 2,
	"TND": 3,
	"TRY": 2,
	"TWD": 2,
	"USD": 2,
	"VND": 0,
	"ZAR": 2,
}

// Codes returns the supported currency codes in unspecified order.
func Codes() []string {
	codes := make([]string, 0, len(decimalDigits))
	for c := range decimalDigits {
		codes = append(codes, c)
	}
	return codes
}
