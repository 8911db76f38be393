package content

import (
	"fmt"
	"strings"
)

// Frame is a cultural framing approach for advocacy content: what it
// argues, who it reaches, and what it must never do.
type Frame struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	KeyMessages    []string `json:"key_messages"`
	TargetAudience string   `json:"target_audience"`
	DoUse          []string `json:"do_use"`
	DoNotUse       []string `json:"do_not_use"`
	ExampleContent string   `json:"example_content"`
}

// frameKeys fixes the listing order.
var frameKeys = []string{
	"ahimsa",
	"health_adulteration",
	"water_crisis",
	"economics",
	"dalit_bahujan_solidarity",
}

var frames = map[string]Frame{
	"ahimsa": {
		Name: "Ahimsa (Non-violence)",
		Description: "Non-violence as a core Indian value across traditions: Jain, Buddhist, " +
			"Gandhian, and broader Indian philosophy. Frame factory farming as a " +
			"violation of ahimsa that all traditions agree on.",
		KeyMessages: []string{
			"Factory farming is organized violence. Ahimsa demands we confront it.",
			"Gandhi said: 'The greatness of a nation can be judged by the way its animals are treated.'",
			"Ahimsa is not just not-killing. It is actively preventing suffering.",
			"Every Indian tradition values compassion for animals. Factory farms betray all of them.",
			"Jain ahimsa teaches that even indirect violence (through consumption) matters.",
		},
		TargetAudience: "General Indian audience, especially those who identify with ahimsa traditions",
		DoUse: []string{
			"Gandhi quotes on animals and non-violence (well-sourced)",
			"Jain tradition of animal protection and sanctuaries (panjrapoles)",
			"Buddhist first precept (do not harm living beings)",
			"Cross-traditional consensus on compassion",
			"Modern interpretation: ahimsa as active resistance to industrial cruelty",
		},
		DoNotUse: []string{
			"Hindu nationalist cow rhetoric",
			"Framing vegetarianism as 'Hindu' or 'upper caste'",
			"Using ahimsa to shame meat-eaters (especially Dalit/Adivasi/Muslim communities)",
			"Implying that those who eat meat are 'less Indian'",
			"Sanskrit-heavy language that alienates non-Hindi speakers",
		},
		ExampleContent: "Gandhi ji ne kaha tha: 'Kisi desh ki mahanata aur uski tarakki ka andaaza " +
			"is baat se lagaaya ja sakta hai ki woh apne janwaron ke saath kaisa " +
			"bartaav karta hai.' Aaj factory farms mein janwaron ke saath jo ho raha " +
			"hai — woh ahimsa ke bilkul khilaf hai. Ye sirf Hindu ya Jain ka maamla " +
			"nahi hai. Har insaan jaanta hai ki berahmi galat hai.",
	},
	"health_adulteration": {
		Name: "Health & Food Adulteration",
		Description: "Food safety and adulteration concerns resonate across all communities. " +
			"FSSAI data consistently shows milk adulteration (urea, detergent, " +
			"synthetic milk), antibiotic residues, and aflatoxin M1 contamination. " +
			"This is a health argument, not a moral one.",
		KeyMessages: []string{
			"FSSAI ki jaanch mein doodh mein milaawat paai gayi — urea, detergent, starch.",
			"Dairy industry mein antibiotics ka bharee istemaal hota hai. Ye doodh ke zariye aapke sharir mein aata hai.",
			"Antibiotic resistance duniya ki sabse badi health crisis ban rahi hai. Dairy ek bada kaaran hai.",
			"India mein har saal hazaaron log milaawati doodh se beemar hote hain.",
			"Aapke bachche kya pee rahe hain? Jaaniye, phir faisla kijiye.",
		},
		TargetAudience: "Parents, health-conscious consumers, urban middle class",
		DoUse: []string{
			"FSSAI survey data (National Milk Quality Survey)",
			"WHO reports on antibiotic resistance",
			"Specific adulteration incidents (named, dated)",
			"Health impact data: cancer, antibiotic resistance, hormonal disruption",
			"Economic framing: you pay for pure milk, you get chemicals",
		},
		DoNotUse: []string{
			"Shaming milk drinkers",
			"Claiming all milk is 'poison' (be specific and evidence-based)",
			"Targeting specific communities' food practices",
			"Unverified health claims",
		},
		ExampleContent: "Kya aap jaante hain? FSSAI ki 2018 National Milk Quality Survey " +
			"mein paaya gaya ki 41% doodh ke samples standards ke mutaabiq " +
			"nahi the. Aflatoxin M1 (ek carcinogen), antibiotic residues, " +
			"aur pesticides paaye gaye. Aapke ghar ka doodh kitna safe hai?",
	},
	"water_crisis": {
		Name: "Water Crisis",
		Description: "India faces a genuine water emergency. NITI Aayog reported that 21 " +
			"major cities will run out of groundwater by 2025-2030. Connecting " +
			"dairy and poultry's enormous water footprint to this crisis is " +
			"powerful and non-controversial.",
		KeyMessages: []string{
			"1 litre doodh = 1000+ litre paani. Jab gaanvon mein peene ka paani nahi, toh ye sahi hai?",
			"NITI Aayog: 2030 tak paani ki maang supply se doguni ho jaayegi.",
			"Poultry farming mein bhi karodon litre paani lagta hai — feed ugaane aur processing mein.",
			"Gujarat ke dairy belt (Banaskantha) mein groundwater khatarnaak level tak gir gaya hai.",
			"Plant-based khaane mein 80% kam paani lagta hai.",
		},
		TargetAudience: "Everyone — water scarcity affects all classes and communities",
		DoUse: []string{
			"NITI Aayog water crisis report (Composite Water Management Index)",
			"Central Ground Water Board data on groundwater depletion",
			"Water footprint comparisons (milk vs. plant milk, chicken vs. dal)",
			"District-level water stress data for agricultural areas",
			"Summer water tanker images — visceral and real",
		},
		DoNotUse: []string{
			"Blaming farmers individually",
			"Ignoring industrial water use (textiles, mining) — be fair",
			"Overstating claims without data",
		},
		ExampleContent: "Banaskantha, Gujarat — desh ka sabse bada doodh utpaadak zila. " +
			"CGWB ke data ke mutaabiq, yahan groundwater level har saal 1-2 " +
			"metre neeche gir raha hai. Hazaron bore wells sukh chuke hain. " +
			"Lekin har roz 3 crore litre se zyada doodh ka utpaadan jaari hai. " +
			"Paani pehle ya doodh pehle?",
	},
	"economics": {
		Name: "Economics & Corporate Power",
		Description: "Follow the money. Factory farming consolidates profit with corporations " +
			"while squeezing small farmers. Contract farming models (Suguna, Venky's) " +
			"transfer all risk to farmers while extracting profit. Amul's cooperative " +
			"model is increasingly industrialized.",
		KeyMessages: []string{
			"Suguna ka contract farming model: company ka munafa, kisaan ka nuqsaan.",
			"Murgi paalne wale kisaan ko 2-3 rupaye milte hain. Company ko 20-30.",
			"Factory farming se bade kisaan aur corporations ameer hote hain. Chhote kisaan barbad.",
			"Dairy industry Rs 10 lakh crore ki hai. Kitna paisa gaay paalne wale ko milta hai?",
			"Amul cooperative hai ya corporate? Rs 72,000 crore revenue — kisaan ko kitna?",
		},
		TargetAudience: "Farmers, rural communities, economically aware audiences",
		DoUse: []string{
			"Company annual reports (publicly available for listed companies)",
			"Contract farming terms — risk-reward imbalance",
			"Milk procurement prices vs. retail prices (farmer share)",
			"Subsidy data (NLM, RGM) — who benefits?",
			"Small farmer displacement data",
		},
		DoNotUse: []string{
			"Anti-business rhetoric without data",
			"Ignoring that farmers need income (always propose alternatives)",
			"Romanticizing subsistence farming",
		},
		ExampleContent: "Suguna Foods — India ki sabse badi poultry company. Revenue: " +
			"Rs 18,000 crore+. Contract farmer ko milta hai: har murge " +
			"par Rs 3-5 ka margin. Agar murgi mar jaaye (mortality risk) " +
			"toh nuqsaan kisaan ka. Company sirf munafe mein. " +
			"Ye hai 'kisaan ke saath' ka matlab?",
	},
	"dalit_bahujan_solidarity": {
		Name: "Dalit-Bahujan Solidarity & Food Sovereignty",
		Description: "Animal advocacy in India must engage with caste. " +
			"The dominant narrative equates vegetarianism with upper-caste purity " +
			"and meat-eating with 'impurity'. This is casteist violence. " +
			"This frame centers food sovereignty and economic justice, " +
			"not dietary policing.",
		KeyMessages: []string{
			"Har insaan ko ye haq hai ki woh decide kare ki kya khaaye. Food sovereignty sabka haq hai.",
			"Factory farming se sabse zyada nuqsaan Dalit aur garib communities ko hota hai — " +
				"slaughterhouse workers, poultry farm mazdoor, leather workers.",
			"Hum vegetarianism ko upper-caste purity se nahi jodte. " +
				"Hum factory farming ke corporate zulm ke khilaf hain.",
			"Contract poultry farming mein mazdoori karne wale — unki sehat, unka haq, " +
				"unki suraksha — ye hamara masla hai.",
			"Occupational hazards: slaughterhouse workers face respiratory disease, " +
				"injuries, mental health impacts — and no safety protections.",
		},
		TargetAudience: "Social justice communities, labor movements, progressive organizations",
		DoUse: []string{
			"Worker safety data from slaughterhouses and poultry farms",
			"Economic exploitation of contract farming laborers",
			"Environmental racism: factory farms located near marginalized communities",
			"Solidarity framing: factory farming harms animals AND workers",
			"Quote Dalit-Bahujan thinkers who have written on food sovereignty",
			"Center the voices and agency of affected communities",
		},
		DoNotUse: []string{
			"NEVER: 'go vegetarian' messaging aimed at Dalit/Muslim communities",
			"NEVER: purity/pollution language about food",
			"NEVER: cow protection rhetoric (deeply entangled with anti-Dalit violence)",
			"NEVER: assume that all Dalits eat meat or that diet defines caste identity",
			"NEVER: speak FOR communities instead of amplifying their own voices",
			"NEVER: ignore that cow vigilantism has killed Dalits and Muslims",
		},
		ExampleContent: "Factory farming ka sabse bada nuqsaan un logon ko hota hai jo " +
			"ismein kaam karte hain. Poultry farm workers ko din mein 12-14 " +
			"ghante kaam karna padta hai — ammonia gas, dust, bimariyon ka " +
			"khatra. Minimum wages nahi milta. Safety equipment nahi milta. " +
			"Ye workers' rights ka masla hai. Ye jaati ka masla hai. " +
			"Ye insaaf ka masla hai.",
	},
}

// GetFrame looks up a cultural frame by key, e.g. "water_crisis".
func GetFrame(key string) (Frame, bool) {
	f, ok := frames[key]
	return f, ok
}

// ListFrames returns the frame keys in presentation order.
func ListFrames() []string {
	return frameKeys
}

// RecommendFrames picks appropriate frames for a topic and audience.
// Ahimsa plus health is the fallback when nothing matches.
func RecommendFrames(topic, audience string) []string {
	topic = strings.ToLower(topic)
	audience = strings.ToLower(audience)

	var recs []string
	if containsAny(topic, "dairy", "milk", "cow", "buffalo", "amul") {
		recs = append(recs, "health_adulteration", "water_crisis", "economics")
		if containsAny(audience, "farmer", "rural") {
			recs = append(recs, "economics")
		}
		if containsAny(audience, "health", "parent") {
			recs = append(recs, "health_adulteration")
		}
	}
	if containsAny(topic, "poultry", "chicken", "egg", "factory") {
		recs = append(recs, "economics", "health_adulteration")
	}
	if containsAny(topic, "slaughter", "meat", "worker") {
		recs = append(recs, "dalit_bahujan_solidarity")
	}
	if containsAny(topic, "water", "pollution", "environment") {
		recs = append(recs, "water_crisis")
	}
	if containsAny(topic, "tradition", "culture", "values") {
		recs = append(recs, "ahimsa")
	}
	if len(recs) == 0 {
		recs = []string{"ahimsa", "health_adulteration"}
	}

	seen := make(map[string]bool)
	unique := recs[:0]
	for _, r := range recs {
		if !seen[r] {
			seen[r] = true
			unique = append(unique, r)
		}
	}
	return unique
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ContentBrief generates a content creation brief with framing guidance.
// Pass nil frameKeys to use RecommendFrames.
func ContentBrief(topic, audience, platform string, frameList []string) string {
	if frameList == nil {
		frameList = RecommendFrames(topic, audience)
	}

	var b strings.Builder
	b.WriteString("CONTENT BRIEF\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Audience: %s\n", audience)
	fmt.Fprintf(&b, "Platform: %s\n", platform)
	fmt.Fprintf(&b, "Recommended Frames: %s\n\n", strings.Join(frameList, ", "))

	for _, key := range frameList {
		f, ok := frames[key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "--- %s ---\n", f.Name)
		b.WriteString("Key messages:\n")
		for _, msg := range head(f.KeyMessages, 3) {
			b.WriteString("  - " + msg + "\n")
		}
		b.WriteString("DO NOT:\n")
		for _, dont := range head(f.DoNotUse, 3) {
			b.WriteString("  - " + dont + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("UNIVERSAL GUIDELINES:\n" +
		"- Use accessible Hindustani (see glossary)\n" +
		"- Include specific data/citations\n" +
		"- End with a clear call to action\n" +
		"- Do not shame individuals for food choices\n" +
		"- Center compassion, not superiority\n" +
		"- Always provide alternatives, not just criticism\n")
	return b.String()
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// casteSensitivityTerms maps problematic phrases to warnings. Ordered so
// the check output is deterministic.
var casteSensitivityTerms = []struct {
	term    string
	warning string
}{
	{"gau mata", "Avoid 'gau mata' — entangled with Hindutva cow vigilantism"},
	{"gau raksha", "Avoid 'gau raksha' — associated with violence against Dalits and Muslims"},
	{"pure vegetarian", "Avoid 'pure vegetarian' — implies impurity of meat-eaters (casteist)"},
	{"shuddh shakahari", "Avoid 'shuddh shakahari' — purity language is casteist"},
	{"satvik", "Caution with 'satvik' — can reinforce caste hierarchy through food"},
	{"tamsik", "Avoid 'tamsik' — designating foods as 'impure' reinforces caste hierarchy"},
	{"rajsik", "Caution with Ayurvedic food classification — often maps to caste hierarchy"},
	{"beef ban", "Handle carefully — beef bans have been weaponized against Dalits and Muslims"},
	{"cow slaughter", "Handle carefully — cow protection movement has caused lynchings"},
	{"vegan nation", "Avoid nationalist framing of veganism — exclusionary"},
	{"ancient wisdom", "Caution — 'ancient Indian wisdom' rhetoric often means upper-caste Brahminical texts"},
}

// SensitivityCheck scans content for potentially casteist framing and
// returns warnings. An automated pass is never sufficient on its own;
// content should still be reviewed by Dalit-Bahujan advocates.
func SensitivityCheck(content string) []string {
	lower := strings.ToLower(content)

	var warnings []string
	for _, entry := range casteSensitivityTerms {
		if strings.Contains(lower, entry.term) {
			warnings = append(warnings, entry.warning)
		}
	}

	if containsAny(lower, "slaughter", "meat plant", "processing") &&
		!containsAny(lower, "worker", "labour", "labor", "mazdoor") {
		warnings = append(warnings,
			"Content about slaughterhouses/meat processing should include "+
				"worker welfare perspective — omitting it risks framing that "+
				"dehumanizes workers (who are predominantly Dalit/Muslim).")
	}

	if len(warnings) == 0 {
		warnings = append(warnings,
			"No automated issues detected. IMPORTANT: This check is NOT sufficient. "+
				"Always have content reviewed by Dalit-Bahujan advocates before publishing.")
	}
	return warnings
}
