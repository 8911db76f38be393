package agency

// RTI application fees in rupees. Most states follow the central schedule
// of Rs. 10; the table carries the exceptions alongside for completeness.
var stateFees = map[string]int{
	"central":          10,
	"andhra_pradesh":   10,
	"bihar":            10,
	"chhattisgarh":     10,
	"delhi":            10,
	"goa":              10,
	"gujarat":          20,
	"haryana":          10,
	"himachal_pradesh": 10,
	"jharkhand":        10,
	"karnataka":        10,
	"kerala":           10,
	"madhya_pradesh":   10,
	"maharashtra":      10,
	"odisha":           10,
	"punjab":           10,
	"rajasthan":        10,
	"tamil_nadu":       10,
	"telangana":        10,
	"uttar_pradesh":    10,
	"uttarakhand":      10,
	"west_bengal":      10,
}

const defaultFee = 10

// ResolveFee returns the application fee for a request. BPL applicants are
// exempt under Section 7(5). A state override wins over the agency's fee
// category; unknown states and categories fall back to the central Rs. 10.
func ResolveFee(a Agency, state string, bplExempt bool) int {
	if bplExempt {
		return 0
	}
	if state != "" {
		if fee, ok := stateFees[state]; ok {
			return fee
		}
	}
	if fee, ok := stateFees[a.FeeCategory]; ok {
		return fee
	}
	return defaultFee
}
