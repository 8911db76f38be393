// Package research holds the GCMMF/Amul counter-narrative database:
// sourced research points on the gap between cooperative branding and
// industrial-scale dairy, plus prebuilt bilingual narratives.
//
// All claims are sourced and designed to withstand scrutiny. The goal is
// factual counter-narrative, not propaganda.
package research

import (
	"fmt"
	"strings"
)

// Profile is the GCMMF corporate profile.
type Profile struct {
	FullName             string `json:"full_name"`
	Brand                string `json:"brand"`
	Headquarters         string `json:"headquarters"`
	ManagingDirector     string `json:"managing_director"`
	Chairman             string `json:"chairman"`
	Founded              int    `json:"founded"`
	GCMMFFormed          int    `json:"gcmmf_formed"`
	MemberUnions         int    `json:"member_unions"`
	VillageCooperatives  int    `json:"village_cooperatives"`
	FarmerMembers        int    `json:"farmer_members"`
	DailyMilkCollectionL int    `json:"daily_milk_collection_litres"`
	RevenueFY2024Crore   int    `json:"revenue_fy2024_crore"`
	Products             int    `json:"products"`
	Plants               int    `json:"plants"`
	OperationFlood       string `json:"operation_flood"`
}

var gcmmfProfile = Profile{
	FullName:             "Gujarat Cooperative Milk Marketing Federation Ltd (GCMMF)",
	Brand:                "Amul (Anand Milk Union Limited)",
	Headquarters:         "Amul Dairy Road, Anand - 388001, Gujarat",
	ManagingDirector:     "Jayen Mehta (as of 2024)",
	Chairman:             "Shamalbhai Patel (as of 2024)",
	Founded:              1946,
	GCMMFFormed:          1973,
	MemberUnions:         18,
	VillageCooperatives:  18_700,
	FarmerMembers:        3_600_000,
	DailyMilkCollectionL: 26_000_000,
	RevenueFY2024Crore:   72_000,
	Products:             90,
	Plants:               90,
	OperationFlood: "Amul model was replicated nationally through Operation Flood (1970-1996), " +
		"funded by World Bank and European dairy surplus. Dr. Verghese Kurien led this.",
}

// GCMMFProfile returns the corporate profile.
func GCMMFProfile() Profile {
	return gcmmfProfile
}

// Point is a single research finding with its source and, where Amul has a
// predictable response, a prepared rebuttal.
type Point struct {
	Claim            string `json:"claim"`
	Evidence         string `json:"evidence"`
	Source           string `json:"source"`
	SourceYear       int    `json:"source_year,omitempty"`
	CounterNarrative string `json:"counter_narrative,omitempty"`
	AmulResponse     string `json:"amul_response,omitempty"`
	Rebuttal         string `json:"rebuttal,omitempty"`
}

// topicKeys fixes iteration order for listings and the fact sheet.
var topicKeys = []string{
	"cooperative_vs_industrial",
	"male_calf_crisis",
	"artificial_insemination",
	"antibiotic_use",
	"water_footprint",
	"oxytocin_use",
	"operation_flood_legacy",
}

var database = map[string]Point{
	"cooperative_vs_industrial": {
		Claim: "Amul markets itself as a small-farmer cooperative but operates at " +
			"industrial scale with 3.6 million members, 26 million litres/day " +
			"collection, and Rs. 72,000 crore annual revenue.",
		Evidence: "GCMMF Annual Report and press releases consistently cite these figures. " +
			"This makes Amul larger than many Fortune 500 companies. The cooperative " +
			"structure does not mean the operations are small-scale — milk collection, " +
			"chilling, processing, and distribution are fully industrialized.",
		Source:     "GCMMF Annual Report, FY2023-24",
		SourceYear: 2024,
		CounterNarrative: "Amul is not your grandmother's gaushala. It's a Rs. 72,000 crore " +
			"industrial operation with 26 million litres of milk flowing through " +
			"its system every single day. The cooperative label is real — but the " +
			"scale is industrial.",
		AmulResponse: "We are a cooperative owned by 3.6 million farmers. Every paisa goes back to them.",
		Rebuttal: "The cooperative structure means profits are distributed, yes. But the " +
			"production model — continuous impregnation cycles, high-yield crossbreeds, " +
			"intensive feeding regimes — is no different from any industrial dairy. " +
			"The animals don't experience 'cooperative' differently from 'corporate.'",
	},
	"male_calf_crisis": {
		Claim: "The Amul dairy system produces millions of male calves annually who " +
			"cannot produce milk and are economically unviable. These calves are " +
			"abandoned, sold to informal slaughter, or left to starve.",
		Evidence: "With 3.6 million member farmers and continuous breeding cycles, the " +
			"Amul system generates an estimated 4-5 million calves per year in " +
			"Gujarat alone. Male calves (roughly 50%) have no economic value in a " +
			"dairy system. AWBI and animal welfare organizations have documented " +
			"widespread male calf abandonment in Gujarat's dairy belt. " +
			"The 20th Livestock Census (2019) shows Gujarat has 10.4 million cattle " +
			"but the male:female ratio in dairy breeds is severely skewed — " +
			"indicating systematic removal of males.",
		Source:     "20th Livestock Census 2019; AWBI reports; field investigations by animal welfare groups",
		SourceYear: 2019,
		CounterNarrative: "For every litre of Amul milk, a calf was separated from its mother. " +
			"Half of those calves are male. Where do millions of male calves go " +
			"in a system that has no use for them? Amul's marketing shows happy " +
			"cows. It never shows the missing calves.",
		AmulResponse: "We encourage farmers to raise male calves for draught purposes. " +
			"Rashtriya Gokul Mission supports indigenous breed conservation.",
		Rebuttal: "Draught animal use has collapsed with mechanization. Male crossbred calves " +
			"(HF/Jersey crosses that Amul's AI programme produces) have no draught value. " +
			"RGM's own data (available via RTI) would show what happens to these calves. " +
			"The economics are clear: feeding a male calf costs Rs. 50-80/day, and the " +
			"farmer earns nothing from it. The calf disappears.",
	},
	"artificial_insemination": {
		Claim: "Amul's model depends on artificial insemination (AI) to continuously " +
			"impregnate cows and buffaloes, often with imported Holstein-Friesian " +
			"or Jersey semen to increase milk yield.",
		Evidence: "GCMMF actively promotes AI through its village cooperatives. Gujarat " +
			"has one of the highest AI coverage rates in India. The Rashtriya Gokul " +
			"Mission subsidizes AI infrastructure. DAHD data shows Gujarat performs " +
			"millions of AIs annually. Crossbreeding with exotic breeds (HF, Jersey) " +
			"is explicitly promoted for higher milk yield.",
		Source: "DAHD Annual Report; RGM progress reports; GCMMF promotional materials",
		CounterNarrative: "Amul's 'Taste of India' runs on artificial insemination — forcibly " +
			"impregnating cows and buffaloes on a schedule dictated by milk demand, " +
			"not animal welfare. The cows are breeding machines.",
		AmulResponse: "AI is a scientific advancement that benefits farmers by improving breed quality.",
		Rebuttal: "AI eliminates the cow's choice entirely. It serves milk production targets, " +
			"not animal welfare. Combined with crossbreeding, it creates animals optimized " +
			"for yield but prone to health issues — lameness, mastitis, metabolic disorders. " +
			"The animal pays the price for human efficiency.",
	},
	"antibiotic_use": {
		Claim: "The intensive dairy system that Amul depends on involves significant " +
			"antibiotic use, particularly for treating mastitis, a painful udder " +
			"infection caused by intensive milking.",
		Evidence: "Mastitis is the most common disease in Indian dairy cattle. Studies " +
			"in Gujarat dairy farms have found antibiotic residues in milk samples. " +
			"The Indian Network for Surveillance of Antimicrobial Resistance (INSAR) " +
			"has flagged agricultural antibiotic use as a contributor to AMR. " +
			"FSSAI has set MRLs (Maximum Residue Limits) for antibiotics in milk, " +
			"implicitly acknowledging the problem.",
		Source: "INSAR reports; FSSAI regulations on antibiotic MRLs; published veterinary studies in Indian Journal of Animal Sciences",
		CounterNarrative: "India's dairy cows are pumped with antibiotics to keep producing milk " +
			"despite infections caused by the production system itself. These " +
			"antibiotics end up in your glass. WHO calls antibiotic resistance " +
			"'one of the biggest threats to global health.'",
	},
	"water_footprint": {
		Claim: "The Amul dairy system in Gujarat contributes significantly to " +
			"groundwater depletion in one of India's most water-stressed states.",
		Evidence: "Gujarat's Banaskantha district (largest Amul union, Banas Dairy) " +
			"shows severe groundwater depletion. CGWB data indicates falling water " +
			"tables across dairy-intensive districts. Fodder production (lucerne, " +
			"maize, bajra) for dairy is water-intensive. Processing plants (Amul " +
			"has 90+) also consume significant water.",
		Source: "CGWB monitoring data; Gujarat State Water Data Centre; NITI Aayog Composite Water Management Index",
		CounterNarrative: "Banaskantha is Gujarat's biggest milk district and also one of its " +
			"most water-stressed. The water that goes into growing fodder, feeding " +
			"cattle, and running Amul's 90+ plants is water that communities need " +
			"for drinking. At 1000+ litres per litre of milk, is this sustainable?",
	},
	"oxytocin_use": {
		Claim: "Oxytocin injection for milk let-down has been widespread in Indian " +
			"dairy, causing health issues in animals and potential residues in milk.",
		Evidence: "Government of India banned retail sale of oxytocin in 2018 " +
			"(restricted to registered hospitals and vet clinics) specifically " +
			"because of widespread misuse in dairy. Prior to the ban, oxytocin " +
			"was freely available and routinely injected to force milk let-down. " +
			"Enforcement of the ban remains weak, per FSSAI and CDSCO reports.",
		Source:     "CDSCO notification 2018; Parliamentary Committee on Agriculture reports; investigative journalism (various)",
		SourceYear: 2018,
		CounterNarrative: "The government had to ban oxytocin retail sales because dairy farmers " +
			"were injecting it into cows to force milk production. The ban exists — " +
			"but enforcement is minimal. The practice continues.",
	},
	"operation_flood_legacy": {
		Claim: "Operation Flood (1970-1996), which replicated the Amul model nationally, " +
			"was funded by European dairy surplus (donated milk powder and butter oil) " +
			"and World Bank loans. It created India's dairy dependency.",
		Evidence: "Operation Flood received EEC (European Economic Community) dairy surplus " +
			"worth hundreds of crores, monetized through domestic sale to fund " +
			"cooperative infrastructure. World Bank provided loans of $150 million+ " +
			"across three phases. Critics (Shanti George, Claude Alvares) argued it " +
			"made India dependent on dairy, undermined traditional food systems, and " +
			"primarily benefited middle-to-large farmers.",
		Source: "World Bank project documents; Shanti George, 'Operation Flood' (1985); Claude Alvares critiques",
		CounterNarrative: "India's dairy revolution wasn't organic — it was engineered by European " +
			"dairy surplus and World Bank loans. Operation Flood took Europe's excess " +
			"butter and created India's dairy dependency. It was an export of the " +
			"European production model, not a grassroots movement.",
	},
}

// GetPoint looks up a research point by topic key.
func GetPoint(key string) (Point, bool) {
	p, ok := database[key]
	return p, ok
}

// Topics returns research topic keys in presentation order.
func Topics() []string {
	return topicKeys
}

// Search returns topic keys whose claim, evidence or counter-narrative
// contains the query, case insensitively.
func Search(query string) []string {
	q := strings.ToLower(query)
	var out []string
	for _, key := range topicKeys {
		p := database[key]
		if strings.Contains(strings.ToLower(p.Claim), q) ||
			strings.Contains(strings.ToLower(p.Evidence), q) ||
			strings.Contains(strings.ToLower(p.CounterNarrative), q) {
			out = append(out, key)
		}
	}
	return out
}

// CounterNarratives returns every topic's counter-narrative text.
func CounterNarratives() map[string]string {
	out := make(map[string]string)
	for key, p := range database {
		if p.CounterNarrative != "" {
			out[key] = p.CounterNarrative
		}
	}
	return out
}

// PreparedRebuttal pairs a claim with Amul's likely response and the
// rebuttal to that response.
type PreparedRebuttal struct {
	Topic              string `json:"topic"`
	Claim              string `json:"claim"`
	AmulLikelyResponse string `json:"amul_likely_response"`
	OurRebuttal        string `json:"our_rebuttal"`
	Source             string `json:"source"`
}

// Rebuttals returns every research point that anticipates Amul's response.
func Rebuttals() []PreparedRebuttal {
	var out []PreparedRebuttal
	for _, key := range topicKeys {
		p := database[key]
		if p.AmulResponse == "" || p.Rebuttal == "" {
			continue
		}
		out = append(out, PreparedRebuttal{
			Topic:              key,
			Claim:              p.Claim,
			AmulLikelyResponse: p.AmulResponse,
			OurRebuttal:        p.Rebuttal,
			Source:             p.Source,
		})
	}
	return out
}

// FactSheet renders the profile and key issues as plain text for
// advocacy use.
func FactSheet() string {
	var b strings.Builder
	b.WriteString("AMUL / GCMMF FACT SHEET\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Full Name: %s\n", gcmmfProfile.FullName)
	fmt.Fprintf(&b, "Brand: %s\n", gcmmfProfile.Brand)
	fmt.Fprintf(&b, "HQ: %s\n", gcmmfProfile.Headquarters)
	fmt.Fprintf(&b, "Founded: %d\n", gcmmfProfile.Founded)
	fmt.Fprintf(&b, "GCMMF Formed: %d\n", gcmmfProfile.GCMMFFormed)
	fmt.Fprintf(&b, "Revenue (FY24): Rs. %d crore\n", gcmmfProfile.RevenueFY2024Crore)
	fmt.Fprintf(&b, "Member Unions: %d\n", gcmmfProfile.MemberUnions)
	fmt.Fprintf(&b, "Farmer Members: %d\n", gcmmfProfile.FarmerMembers)
	fmt.Fprintf(&b, "Daily Collection: %d litres\n", gcmmfProfile.DailyMilkCollectionL)
	fmt.Fprintf(&b, "Processing Plants: %d+\n", gcmmfProfile.Plants)
	fmt.Fprintf(&b, "Products: %d+\n\n", gcmmfProfile.Products)
	b.WriteString("KEY ISSUES:\n\n")

	for _, key := range topicKeys {
		p := database[key]
		fmt.Fprintf(&b, "--- %s ---\n", titleFromKey(key))
		fmt.Fprintf(&b, "Claim: %s\n", p.Claim)
		fmt.Fprintf(&b, "Source: %s\n", p.Source)
		if p.CounterNarrative != "" {
			fmt.Fprintf(&b, "Narrative: %s\n", p.CounterNarrative)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func titleFromKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
