// Package agency holds the static directory of public authorities that
// accept RTI applications, the fee schedule, and the statutory deadline
// arithmetic. All tables are initialized once and never mutated.
package agency

// Agency describes a public authority and its RTI contact points.
type Agency struct {
	Code               string
	Name               string
	NameHindi          string
	PIODesignation     string
	Address            string
	ParentMinistry     string
	FeeCategory        string
	AppellateAuthority string
	SecondAppealForum  string
}

// codes preserves directory insertion order for listing.
var codes = []string{"awbi", "fssai", "cpcb", "dahd", "nlm", "rgm"}

var directory = map[string]Agency{
	"awbi": {
		Code:               "awbi",
		Name:               "Animal Welfare Board of India",
		NameHindi:          "भारतीय पशु कल्याण बोर्ड",
		PIODesignation:     "Public Information Officer",
		Address:            "13/1, Third Seaward Road, Valmiki Nagar, Thiruvanmiyur, Chennai - 600041",
		ParentMinistry:     "Ministry of Fisheries, Animal Husbandry and Dairying",
		FeeCategory:        "central",
		AppellateAuthority: "First Appellate Authority, AWBI",
		SecondAppealForum:  "Central Information Commission, New Delhi",
	},
	"fssai": {
		Code:               "fssai",
		Name:               "Food Safety and Standards Authority of India",
		NameHindi:          "भारतीय खाद्य सुरक्षा और मानक प्राधिकरण",
		PIODesignation:     "Central Public Information Officer",
		Address:            "FDA Bhawan, Kotla Road, New Delhi - 110002",
		ParentMinistry:     "Ministry of Health and Family Welfare",
		FeeCategory:        "central",
		AppellateAuthority: "First Appellate Authority, FSSAI",
		SecondAppealForum:  "Central Information Commission, New Delhi",
	},
	"cpcb": {
		Code:               "cpcb",
		Name:               "Central Pollution Control Board",
		NameHindi:          "केंद्रीय प्रदूषण नियंत्रण बोर्ड",
		PIODesignation:     "Central Public Information Officer",
		Address:            "Parivesh Bhawan, East Arjun Nagar, Delhi - 110032",
		ParentMinistry:     "Ministry of Environment, Forest and Climate Change",
		FeeCategory:        "central",
		AppellateAuthority: "First Appellate Authority, CPCB",
		SecondAppealForum:  "Central Information Commission, New Delhi",
	},
	"dahd": {
		Code:               "dahd",
		Name:               "Department of Animal Husbandry and Dairying",
		NameHindi:          "पशुपालन और डेयरी विभाग",
		PIODesignation:     "Central Public Information Officer",
		Address:            "Krishi Bhawan, Dr. Rajendra Prasad Road, New Delhi - 110001",
		ParentMinistry:     "Ministry of Fisheries, Animal Husbandry and Dairying",
		FeeCategory:        "central",
		AppellateAuthority: "First Appellate Authority, DAHD",
		SecondAppealForum:  "Central Information Commission, New Delhi",
	},
	"nlm": {
		Code:               "nlm",
		Name:               "National Livestock Mission",
		NameHindi:          "राष्ट्रीय पशुधन मिशन",
		PIODesignation:     "Central Public Information Officer",
		Address:            "Department of Animal Husbandry and Dairying, Krishi Bhawan, New Delhi - 110001",
		ParentMinistry:     "Ministry of Fisheries, Animal Husbandry and Dairying",
		FeeCategory:        "central",
		AppellateAuthority: "First Appellate Authority, DAHD",
		SecondAppealForum:  "Central Information Commission, New Delhi",
	},
	"rgm": {
		Code:               "rgm",
		Name:               "Rashtriya Gokul Mission",
		NameHindi:          "राष्ट्रीय गोकुल मिशन",
		PIODesignation:     "Central Public Information Officer",
		Address:            "Department of Animal Husbandry and Dairying, Krishi Bhawan, New Delhi - 110001",
		ParentMinistry:     "Ministry of Fisheries, Animal Husbandry and Dairying",
		FeeCategory:        "central",
		AppellateAuthority: "First Appellate Authority, DAHD",
		SecondAppealForum:  "Central Information Commission, New Delhi",
	},
}

// Lookup returns the agency for code. The second return is false when the
// code is not in the directory; callers degrade to placeholders rather than
// treating this as a hard failure.
func Lookup(code string) (Agency, bool) {
	a, ok := directory[code]
	return a, ok
}

// Codes returns all known agency codes in directory order.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
