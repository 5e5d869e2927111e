package boq

import "fmt"

// MeasurementStandard names the method of measurement an estimate is
// prepared to.
type MeasurementStandard string

const (
	NRM1   MeasurementStandard = "NRM1 (RICS New Rules of Measurement)"
	NRM2   MeasurementStandard = "NRM2 (RICS New Rules of Measurement)"
	SMM7   MeasurementStandard = "SMM7 (Standard Method of Measurement)"
	CESMM4 MeasurementStandard = "CESMM4 (Civil Engineering)"
	POMI   MeasurementStandard = "POMI (Principles of Measurement International)"
)

// MeasurementStandards lists the supported standards in display order.
var MeasurementStandards = []MeasurementStandard{NRM1, NRM2, SMM7, CESMM4, POMI}

// ParseMeasurementStandard resolves a standard from its short code (e.g.
// "NRM2") or its full display name.
func ParseMeasurementStandard(s string) (MeasurementStandard, error) {
	for _, m := range MeasurementStandards {
		if string(m) == s || shortStandard(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown measurement standard: %q", s)
}

func shortStandard(m MeasurementStandard) string {
	for i := 0; i < len(m); i++ {
		if m[i] == ' ' {
			return string(m[:i])
		}
	}
	return string(m)
}

// Country is a pricing locale: it fixes the market the rates are gathered
// for and the currency the estimate is expressed in.
type Country struct {
	Code           string
	Name           string
	Currency       string
	CurrencySymbol string
}

// Countries lists the supported pricing locales.
var Countries = []Country{
	{Code: "LK", Name: "Sri Lanka", Currency: "LKR", CurrencySymbol: "LKR"},
	{Code: "UK", Name: "United Kingdom", Currency: "GBP", CurrencySymbol: "£"},
	{Code: "US", Name: "United States", Currency: "USD", CurrencySymbol: "$"},
	{Code: "AE", Name: "United Arab Emirates", Currency: "AED", CurrencySymbol: "AED"},
	{Code: "SA", Name: "Saudi Arabia", Currency: "SAR", CurrencySymbol: "SAR"},
	{Code: "AU", Name: "Australia", Currency: "AUD", CurrencySymbol: "A$"},
	{Code: "CA", Name: "Canada", Currency: "CAD", CurrencySymbol: "C$"},
	{Code: "IN", Name: "India", Currency: "INR", CurrencySymbol: "₹"},
	{Code: "SG", Name: "Singapore", Currency: "SGD", CurrencySymbol: "S$"},
	{Code: "ZA", Name: "South Africa", Currency: "ZAR", CurrencySymbol: "R"},
	{Code: "QA", Name: "Qatar", Currency: "QAR", CurrencySymbol: "QAR"},
}

// CountryByCode looks a country up by its two-letter code.
func CountryByCode(code string) (Country, error) {
	for _, c := range Countries {
		if c.Code == code {
			return c, nil
		}
	}
	return Country{}, fmt.Errorf("unknown country code: %q", code)
}
