package mapping

// Operator is a major animal agriculture company tracked for facility
// attribution and corporate research.
type Operator struct {
	Name            string   `json:"name"`
	CIN             string   `json:"cin,omitempty"`
	Headquarters    string   `json:"headquarters"`
	Type            string   `json:"type"`
	Scale           string   `json:"scale,omitempty"`
	RevenueCrore    float64  `json:"revenue_2024_crore,omitempty"`
	KeyStates       []string `json:"key_states,omitempty"`
	Brands          []string `json:"brands,omitempty"`
	Model           string   `json:"model,omitempty"`
	Subsidiaries    []string `json:"subsidiaries,omitempty"`
	MemberUnions    []string `json:"member_unions,omitempty"`
	WelfareConcerns []string `json:"welfare_concerns,omitempty"`
}

// majorOperators covers the largest poultry, dairy, meat and aquaculture
// companies. Revenue figures are approximate, FY2023-24.
var majorOperators = map[string]Operator{
	"suguna_foods": {
		Name:         "Suguna Foods Private Limited",
		CIN:          "U01222TZ1984PTC001395",
		Headquarters: "Coimbatore, Tamil Nadu",
		Type:         "Poultry (integrated)",
		Scale: "India's largest poultry integrator. ~16 million birds/day capacity. " +
			"Contract farming model across 25+ states.",
		RevenueCrore: 18000,
		KeyStates: []string{"Tamil Nadu", "Andhra Pradesh", "Telangana", "Karnataka",
			"Maharashtra", "Odisha", "West Bengal", "Assam"},
		Brands: []string{"Suguna", "Suguna Daily Fresh"},
		Model: "Contract farming — company provides chicks, feed, medicines; " +
			"farmer provides land and labour. Farmer bears mortality risk.",
		WelfareConcerns: []string{
			"Broiler chickens reach slaughter weight in 35-40 days (accelerated growth)",
			"Contract farmers have no control over breed, feed, or medicines",
			"High stocking density in broiler sheds",
			"Antibiotic growth promoters used until recent FSSAI restrictions",
			"Dead bird disposal often inadequate",
		},
	},
	"venkys": {
		Name:         "Venky's (India) Limited",
		CIN:          "L15100PN1976PLC020926",
		Headquarters: "Pune, Maharashtra",
		Type:         "Poultry (integrated, publicly listed BSE: 523261)",
		Scale: "Second-largest poultry company. Breeder farms, hatcheries, " +
			"feed plants, processing plants across India.",
		RevenueCrore: 8500,
		KeyStates: []string{"Maharashtra", "Madhya Pradesh", "Rajasthan", "Gujarat",
			"Karnataka", "Chhattisgarh"},
		Brands: []string{"Venky's", "Venky's Xprs"},
		Model:  "Combination of own farms and contract farming.",
		WelfareConcerns: []string{
			"Intensive broiler operations with standard industry practices",
			"Large-scale breeder operations for genetic stock",
			"Processing plants handle millions of birds annually",
		},
	},
	"ib_group": {
		Name:         "IB Group (Indodan Hatcheries)",
		CIN:          "U01223RJ1993PLC007410",
		Headquarters: "Rajnandgaon, Chhattisgarh",
		Type:         "Poultry (integrated)",
		Scale:        "Third-largest poultry integrator. Major presence in central and eastern India.",
		RevenueCrore: 7000,
		KeyStates: []string{"Chhattisgarh", "Madhya Pradesh", "Rajasthan", "Odisha",
			"Jharkhand", "West Bengal", "Bihar"},
		Brands: []string{"IB"},
		Model:  "Contract farming and own operations.",
	},
	"godrej_agrovet": {
		Name:         "Godrej Agrovet Limited",
		CIN:          "L15410MH1991PLC135359",
		Headquarters: "Mumbai, Maharashtra",
		Type:         "Diversified (poultry, dairy, aqua feed, crop protection). BSE: 543318",
		Scale: "Part of Godrej Group. Animal feed, oil palm, dairy (Creamline Dairy), " +
			"poultry (Godrej Tyson JV until 2021, now Real Good Chicken).",
		RevenueCrore: 9500,
		KeyStates: []string{"Maharashtra", "Andhra Pradesh", "Telangana", "Tamil Nadu",
			"Karnataka", "Madhya Pradesh"},
		Brands: []string{"Real Good Chicken", "Creamline Dairy"},
		Subsidiaries: []string{
			"Creamline Dairy Products Ltd (dairy processing)",
			"Astec LifeSciences (crop protection, not animal ag)",
		},
	},
	"gcmmf_amul": {
		Name:         "Gujarat Cooperative Milk Marketing Federation Ltd (GCMMF/Amul)",
		Headquarters: "Anand, Gujarat",
		Type:         "Dairy (cooperative federation)",
		Scale: "World's largest dairy cooperative. 3.6 million+ farmer members. " +
			"~26 million litres milk/day collection. 90+ products.",
		RevenueCrore: 72000,
		KeyStates:    []string{"Gujarat"},
		Brands:       []string{"Amul"},
		MemberUnions: []string{
			"Kaira District Co-operative Milk Producers' Union (original Amul)",
			"Banaskantha District Co-operative Milk Producers' Union (largest union)",
			"Surat District Co-operative Milk Producers' Union",
			"Mehsana District Co-operative Milk Producers' Union",
			"Sabarkantha District Co-operative Milk Producers' Union",
		},
		WelfareConcerns: []string{
			"Cooperative model marketed as farmer-friendly obscures industrial scale",
			"Male calf abandonment/sale to informal slaughter — systematic issue",
			"Artificial insemination drives with imported semen (Holstein/Jersey crossbreeding)",
			"Oxytocin injection for milk let-down (banned 2018 but enforcement weak)",
			"Antibiotic use for mastitis treatment — residues detected in milk samples",
			"Water footprint: 1000+ litres per litre of milk produced",
		},
	},
	"hatsun_agro": {
		Name:         "Hatsun Agro Product Limited",
		CIN:          "L15200TN1986PLC012747",
		Headquarters: "Chennai, Tamil Nadu",
		Type:         "Dairy (private, publicly listed BSE: 531531)",
		Scale: "Largest private dairy company in India by milk procurement. " +
			"~7.5 million litres/day procurement.",
		RevenueCrore: 8500,
		KeyStates:    []string{"Tamil Nadu", "Andhra Pradesh", "Telangana", "Karnataka", "Maharashtra"},
		Brands:       []string{"Arun Ice Creams", "Arokya", "Hatsun", "Ibaco"},
	},
	"heritage_foods": {
		Name:         "Heritage Foods Limited",
		CIN:          "L15209AP1992PLC014953",
		Headquarters: "Hyderabad, Telangana",
		Type:         "Dairy (private, publicly listed BSE: 519552)",
		Scale:        "~3.5 million litres/day procurement. Founded by N. Chandrababu Naidu.",
		RevenueCrore: 3500,
		KeyStates: []string{"Andhra Pradesh", "Telangana", "Karnataka", "Tamil Nadu",
			"Maharashtra", "Rajasthan", "Haryana", "Punjab"},
		Brands: []string{"Heritage"},
	},
	"parag_milk_foods": {
		Name:         "Parag Milk Foods Limited",
		CIN:          "L15204PN2012PLC142830",
		Headquarters: "Pune, Maharashtra",
		Type:         "Dairy (private, publicly listed BSE: 539889)",
		Scale:        "Known for Gowardhan and Go brands. Cheese and whey focus.",
		RevenueCrore: 3200,
		KeyStates:    []string{"Maharashtra", "Andhra Pradesh", "Karnataka"},
		Brands:       []string{"Gowardhan", "Go Cheese", "Pride of Cows"},
	},
	"skm_group": {
		Name:         "SKM Animal Feeds & Foods (India) Pvt Ltd",
		Headquarters: "Erode, Tamil Nadu",
		Type:         "Poultry & Eggs (integrated)",
		Scale:        "Major egg and poultry producer in South India. Large layer operations.",
		KeyStates:    []string{"Tamil Nadu", "Andhra Pradesh", "Karnataka"},
		Brands:       []string{"SKM"},
	},
	"allana_group": {
		Name:         "Allana Group (Frigerio Conserva Allana)",
		Headquarters: "Mumbai, Maharashtra",
		Type:         "Meat processing and export (buffalo meat)",
		Scale: "India's largest buffalo meat exporter. Multiple APEDA-approved " +
			"processing plants. Major markets: Vietnam, Malaysia, Egypt, Saudi Arabia.",
		RevenueCrore: 15000,
		KeyStates:    []string{"Maharashtra", "Uttar Pradesh", "Andhra Pradesh"},
		Brands:       []string{"Allana", "Frigerio"},
		WelfareConcerns: []string{
			"Buffalo sourcing from dairy industry — spent/unproductive buffaloes",
			"Transport conditions from rural areas to processing plants",
			"Scale of operation — one of largest meat processors globally",
		},
	},
	"avanti_feeds": {
		Name:         "Avanti Feeds Limited",
		CIN:          "L16001AP1993PLC015890",
		Headquarters: "Hyderabad, Telangana",
		Type:         "Aquaculture (shrimp feed and processing, BSE: 512573)",
		Scale:        "Largest shrimp feed producer in India. JV with Thai Union Group.",
		RevenueCrore: 5500,
		KeyStates:    []string{"Andhra Pradesh", "Gujarat", "Tamil Nadu", "Odisha"},
		Brands:       []string{"Avanti"},
	},
}

// OperatorInfo looks up a major operator by its key, e.g. "suguna_foods".
func OperatorInfo(key string) (Operator, bool) {
	op, ok := majorOperators[key]
	return op, ok
}

// OperatorSummary is one line of the operator listing.
type OperatorSummary struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func ListOperators() []OperatorSummary {
	out := make([]OperatorSummary, 0, len(majorOperators))
	for _, key := range sortedKeys(majorOperators) {
		op := majorOperators[key]
		out = append(out, OperatorSummary{Key: key, Name: op.Name, Type: op.Type})
	}
	return out
}
