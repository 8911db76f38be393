// Package content produces Hindi and bilingual advocacy content in
// accessible Hindustani, optimized for WhatsApp distribution, and checks
// drafts against cultural framing guidelines.
package content

import (
	"sort"
	"strings"
)

// Term is the Hindustani equivalent of an English advocacy term, in both
// Roman and Devanagari script.
type Term struct {
	Roman      string
	Devanagari string
}

// glossary prefers the common Hindustani word over the Sanskrit-derived
// register: paani not jal, doodh not dugdh, janwar not pashu. Technical
// terms understood across language boundaries stay in English.
var glossary = map[string]Term{
	"water":        {"paani", "पानी"},
	"milk":         {"doodh", "दूध"},
	"animal":       {"janwar", "जानवर"},
	"cow":          {"gaay", "गाय"},
	"buffalo":      {"bhains", "भैंस"},
	"chicken":      {"murgi/murga", "मुर्गी/मुर्गा"},
	"egg":          {"anda", "अंडा"},
	"meat":         {"gosht/maas", "गोश्त/मांस"},
	"fish":         {"machhli", "मछली"},
	"farmer":       {"kisaan", "किसान"},
	"factory farm": {"factory farm", "फ़ैक्ट्री फ़ार्म"},
	"pollution":    {"pradushan", "प्रदूषण"},
	"disease":      {"bimari", "बीमारी"},
	"health":       {"sehat", "सेहत"},
	"medicine":     {"dawai", "दवाई"},
	"food":         {"khaana", "खाना"},
	"cruelty":      {"zulm", "ज़ुल्म"},
	"suffering":    {"takleef", "तकलीफ़"},
	"right":        {"haq", "हक़"},
	"government":   {"sarkaar", "सरकार"},
	"law":          {"qaanoon", "क़ानून"},
	"truth":        {"sach/sachai", "सच/सचाई"},
	"lie":          {"jhooth", "झूठ"},
	"money":        {"paisa", "पैसा"},
	"profit":       {"munafa/faayda", "मुनाफ़ा/फ़ायदा"},
	"company":      {"company", "कंपनी"},
	"antibiotic":   {"antibiotic", "एंटीबायोटिक"},
	"hormone":      {"hormone", "हॉर्मोन"},
	"cancer":       {"cancer", "कैंसर"},
	"environment":  {"maahol/vaatavaran", "माहौल/वातावरण"},
	"poison":       {"zahar", "ज़हर"},
}

// WhatsApp delivery constraints: text only, no attachments.
const (
	WhatsAppMaxWords = 300
	WhatsAppMaxChars = 1500
)

// Translated is a bilingual content piece ready for a channel.
type Translated struct {
	English         string `json:"english,omitempty"`
	HindiDevanagari string `json:"hindi_devanagari"`
	Format          string `json:"format_type"`
	WordCountHindi  int    `json:"word_count_hindi"`
	CharacterCount  int    `json:"character_count"`
}

// LookupTerm returns the glossary entry for an English term, case
// insensitively. Terms not in the glossary come back unchanged.
func LookupTerm(english string) Term {
	if t, ok := glossary[strings.ToLower(english)]; ok {
		return t
	}
	return Term{Roman: english, Devanagari: english}
}

// GlossaryTerms returns the English keys of the glossary, sorted.
func GlossaryTerms() []string {
	keys := make([]string, 0, len(glossary))
	for k := range glossary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WhatsAppMessage builds a bilingual WhatsApp message: Hindi first, a
// divider, then English if provided.
func WhatsAppMessage(hindiText, englishText string) Translated {
	hindi := tidyLines(hindiText)
	combined := hindi
	if englishText != "" {
		combined = hindi + "\n\n---\n\n" + englishText
	}
	return Translated{
		English:         englishText,
		HindiDevanagari: hindi,
		Format:          "whatsapp",
		WordCountHindi:  len(strings.Fields(hindiText)),
		CharacterCount:  len([]rune(combined)),
	}
}

var platformLimits = map[string]int{
	"twitter":   280,
	"instagram": 2200,
	"facebook":  63206,
}

// SocialMediaPost truncates Hindi content to the platform's character
// limit. Unknown platforms get the instagram limit.
func SocialMediaPost(hindiText, englishText, platform string) Translated {
	limit, ok := platformLimits[platform]
	if !ok {
		limit = platformLimits["instagram"]
	}
	hindi := []rune(hindiText)
	if len(hindi) > limit {
		hindi = hindi[:limit]
	}
	return Translated{
		English:         englishText,
		HindiDevanagari: string(hindi),
		Format:          "social_media_" + platform,
		WordCountHindi:  len(strings.Fields(hindiText)),
		CharacterCount:  len(hindi),
	}
}

func tidyLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// DairyFactsHindi is a prebuilt WhatsApp message on dairy industry facts
// in accessible Hindustani.
func DairyFactsHindi() string {
	return "*दूध की सचाई जो आपको कोई नहीं बताता* 🐄\n" +
		"\n" +
		"1️⃣ भारत में हर साल 4 करोड़ से ज़्यादा बछड़े पैदा होते हैं। " +
		"नर बछड़ों को दूध नहीं दे सकते, इसलिए उन्हें छोड़ दिया जाता है या " +
		"कसाई को बेच दिया जाता है।\n" +
		"\n" +
		"2️⃣ गाय और भैंस को बार-बार गर्भवती किया जाता है ताकि दूध मिलता रहे। " +
		"जब दूध कम हो जाता है, तो उन्हें भी बेच दिया जाता है।\n" +
		"\n" +
		"3️⃣ FSSAI की जाँच में दूध में मिलावट पाई गई है — " +
		"यूरिया, डिटर्जेंट, स्टार्च, और पानी। ये आपकी सेहत के लिए " +
		"ख़तरनाक है।\n" +
		"\n" +
		"4️⃣ एक लीटर दूध बनाने में 1000 लीटर से ज़्यादा पानी लगता है। " +
		"जब हमारे गाँवों में पीने का पानी नहीं है, तो क्या ये सही है?\n" +
		"\n" +
		"5️⃣ Dairy industry में antibiotics का भारी इस्तेमाल होता है। " +
		"ये दूध के ज़रिए आपके शरीर में आते हैं और antibiotic resistance " +
		"बढ़ाते हैं।\n" +
		"\n" +
		"*सोचिए। जानिए। बदलिए।* 🌱\n" +
		"\n" +
		"आगे भेजें ➡️"
}

// WaterCrisisHindi is a prebuilt WhatsApp message connecting the dairy
// industry to India's water emergency.
func WaterCrisisHindi() string {
	return "*पानी का संकट और dairy industry का कनेक्शन* 💧\n" +
		"\n" +
		"भारत दुनिया का सबसे बड़ा दूध उत्पादक है — 23 करोड़ टन/साल।\n" +
		"\n" +
		"लेकिन इसकी क़ीमत:\n" +
		"\n" +
		"💧 1 लीटर दूध = 1000+ लीटर पानी\n" +
		"(चारा उगाने, जानवरों को पिलाने, सफ़ाई, processing)\n" +
		"\n" +
		"💧 भारत के 23 करोड़ टन दूध के लिए सालाना ~230 अरब लीटर पानी चाहिए\n" +
		"\n" +
		"💧 NITI Aayog की रिपोर्ट: 2030 तक भारत में पानी की माँग " +
		"उपलब्धता से दोगुनी हो जाएगी\n" +
		"\n" +
		"💧 21 बड़े शहरों का groundwater 2025-2030 तक ख़त्म होने की आशंका\n" +
		"\n" +
		"💧 Dairy farming वाले इलाक़ों (बनासकांठा, आणंद, नामक्कल) में " +
		"groundwater level तेज़ी से गिर रहा है\n" +
		"\n" +
		"हम पानी की बर्बादी को रोक सकते हैं:\n" +
		"🌱 Plant-based दूध (सोया, बादाम, नारियल) में 80% कम पानी लगता है\n" +
		"🌱 दालों और सब्ज़ियों से protein मिलता है, बिना पानी बर्बाद किए\n" +
		"\n" +
		"*पानी बचाएँ। भविष्य बचाएँ।* 🌍\n" +
		"\n" +
		"आगे भेजें ➡️"
}

// LanguageGuide returns guidelines for writing accessible Hindi advocacy
// content.
func LanguageGuide() string {
	return "LANGUAGE GUIDE: Writing Accessible Hindi for Animal Advocacy\n" +
		strings.Repeat("=", 60) + "\n\n" +
		"1. USE HINDUSTANI, NOT SANSKRITIZED HINDI\n" +
		"   - paani, not jal\n" +
		"   - doodh, not dugdh\n" +
		"   - janwar, not pashu (except in legal contexts)\n" +
		"   - dawai, not aushadhi\n" +
		"   - sehat, not swasthya (casual register)\n" +
		"   - zulm/berahmi, not kroorta (casual register)\n" +
		"   - haq, not adhikar (both acceptable)\n" +
		"   - sarkaar, not shaasan\n" +
		"   - qaanoon, not vidhi\n\n" +
		"2. RETAIN ENGLISH FOR TECHNICAL TERMS\n" +
		"   - antibiotic, hormone, cancer, pollution, factory farm\n" +
		"   - These are understood across language boundaries\n\n" +
		"3. SHORT SENTENCES\n" +
		"   - Max 15-20 words per sentence\n" +
		"   - One idea per paragraph\n" +
		"   - Use numbered lists\n\n" +
		"4. AVOID\n" +
		"   - Religious framing (no 'gau mata' rhetoric)\n" +
		"   - Caste-based food shaming\n" +
		"   - Assumptions about diet\n" +
		"   - Dense academic language\n\n" +
		"5. WHATSAPP SPECIFICS\n" +
		"   - Max 300 words per message\n" +
		"   - Use *bold* for emphasis\n" +
		"   - Use emoji as visual anchors (sparingly)\n" +
		"   - End with 'Forward kijiye' / 'आगे भेजें'\n" +
		"   - No attachments — text only for maximum reach\n"
}
