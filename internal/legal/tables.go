package legal

var constitutionalProvisions = map[string]Provision{
	"article_48": {
		Identifier: "Article 48",
		Title:      "Organisation of Agriculture and Animal Husbandry",
		Source:     "Constitution of India, Part IV (Directive Principles)",
		Text: "The State shall endeavour to organise agriculture and animal husbandry " +
			"on modern and scientific lines and shall, in particular, take steps for " +
			"preserving and improving the breeds, and prohibiting the slaughter, of " +
			"cows and calves and other milch and draught cattle.",
		Relevance: "Directive Principle. Not directly enforceable but guides state policy. " +
			"Used in conjunction with Article 51A(g) to establish constitutional " +
			"concern for animal welfare. Supreme Court has increasingly given " +
			"weight to DPSPs in animal welfare matters.",
		AdvocacyUse: "Cite in PILs to establish constitutional mandate for animal protection. " +
			"Useful for challenging inadequate implementation of welfare standards. " +
			"Note: This article has been used both by animal welfare advocates AND " +
			"by cow protection movements — frame carefully to avoid entanglement " +
			"with communal politics.",
		RelatedCases: []string{
			"State of Gujarat v. Mirzapur Moti Kureshi Kassab Jamat (2005) 8 SCC 534",
			"AWBI v. A. Nagaraja (2014) 7 SCC 547",
		},
	},
	"article_48a": {
		Identifier: "Article 48A",
		Title:      "Protection and Improvement of Environment",
		Source:     "Constitution of India, Part IV (Directive Principles)",
		Text: "The State shall endeavour to protect and improve the environment and " +
			"to safeguard the forests and wild life of the country.",
		Relevance: "Environmental DPSP. Basis for challenging pollution from factory farms " +
			"and industrial animal agriculture operations.",
		AdvocacyUse: "Pair with Article 21 (right to clean environment) in PILs against " +
			"polluting poultry farms, dairy operations, and slaughterhouses. " +
			"Especially effective when combined with PCB data from RTI responses.",
		RelatedCases: []string{"M.C. Mehta v. Union of India (1987) 1 SCC 395"},
	},
	"article_51a_g": {
		Identifier: "Article 51A(g)",
		Title:      "Fundamental Duty — Compassion for Living Creatures",
		Source:     "Constitution of India, Part IVA (Fundamental Duties)",
		Text: "It shall be the duty of every citizen of India to protect and improve " +
			"the natural environment including forests, lakes, rivers and wild life, " +
			"and to have compassion for living creatures.",
		Relevance: "The only explicit constitutional reference to compassion for animals. " +
			"Supreme Court in AWBI v. Nagaraja elevated this from mere duty to a " +
			"source of animal rights. 'Compassion for living creatures' has been " +
			"interpreted to include a duty to prevent unnecessary suffering.",
		AdvocacyUse: "CRITICAL provision. The Nagaraja court used this to derive animal " +
			"rights from the Constitution. Cite in every PIL. This is the " +
			"constitutional anchor for the argument that animals have rights " +
			"under Indian law, not merely that humans have duties toward them.",
		RelatedCases: []string{
			"AWBI v. A. Nagaraja (2014) 7 SCC 547",
			"People for Animals v. State of Goa (1997)",
		},
	},
	"article_21": {
		Identifier: "Article 21",
		Title:      "Right to Life and Personal Liberty",
		Source:     "Constitution of India, Part III (Fundamental Rights)",
		Text: "No person shall be deprived of his life or personal liberty except " +
			"according to procedure established by law.",
		Relevance: "The Supreme Court in Nagaraja expanded 'life' under Article 21 to " +
			"include animal life, holding that animals have a right to live with " +
			"dignity. Also relevant for human right to clean environment (pollution " +
			"from factory farms) and right to safe food (adulteration).",
		AdvocacyUse: "Use for dual-track arguments: (1) animals' own right to life with " +
			"dignity, and (2) human communities' right to clean environment " +
			"impacted by factory farm pollution.",
		RelatedCases: []string{
			"AWBI v. A. Nagaraja (2014) 7 SCC 547",
			"M.C. Mehta v. Union of India (1987) 1 SCC 395",
		},
	},
}

var statutes = map[string]Provision{
	"pca_act_1960": {
		Identifier: "Prevention of Cruelty to Animals Act, 1960",
		Title:      "PCA Act, 1960",
		Source:     "Act No. 59 of 1960, Parliament of India",
		Text: `Primary animal welfare legislation. Defines cruelty (Section 11), establishes AWBI (Section 4), regulates experimentation (Chapter IV), and provides for penalties. Key sections:
- Section 3: Duty of persons having charge of animals
- Section 11: Treating animals cruelly (defines 12 forms of cruelty)
- Section 11(1)(a): Beating, kicking, overloading, torturing
- Section 11(1)(d): Carrying in a vehicle causing unnecessary suffering
- Section 11(1)(e): Keeping in a cage not adequate in size
- Section 11(1)(h): Neglecting to provide food, water, shelter
- Section 38: Power to make rules (basis for Transport Rules, Slaughter Rules)
- Penalty: First offence Rs. 10-50, subsequent Rs. 25-100 (woefully inadequate)`,
		Relevance: "Primary statute. Penalties are pathetically low (max Rs. 100 for repeat " +
			"offence). Amendment bills to increase penalties have been pending for years. " +
			"The inadequacy of penalties is itself an advocacy point. However, the Act " +
			"combined with IPC Sections 428/429 (mischief by killing/maiming animals, " +
			"up to 5 years imprisonment) provides stronger enforcement tools.",
		AdvocacyUse: "File FIRs under Section 11 read with IPC 428/429 for serious cruelty. " +
			"Use Section 11(1)(d) and (e) for transport and housing conditions. " +
			"Challenge the Rs. 50/100 penalty ceiling in PIL as violating Article 21 " +
			"rights of animals. Cite Nagaraja for constitutional backing.",
		RelatedCases: []string{
			"AWBI v. A. Nagaraja (2014) 7 SCC 547",
			"N.R. Nair v. Union of India (2001) 6 SCC 84",
		},
	},
	"transport_rules_1978": {
		Identifier: "Prevention of Cruelty to Animals (Transport of Livestock) Rules, 1978",
		Title:      "Livestock Transport Rules, 1978",
		Source:     "Notified under Section 38 of PCA Act, 1960",
		Text: `Regulates transport of cattle, sheep, goats, and poultry. Key rules:
- Rule 4: Certificate of fitness from veterinary doctor required
- Rule 5: Animals must be provided with adequate food and water
- Rule 6: Diseased/blind/emaciated/about-to-give-birth animals cannot be transported
- Rule 7: Vehicle specifications — adequate ventilation, non-slip flooring
- Rule 8: Maximum number of animals per vehicle
- Rule 9: Animals not to be transported for more than 36 hours without rest/feed
- Rule 47: Poultry specific — max 4 birds per coop of 60x45x30 cm`,
		Relevance: "Widely violated across India. Transport conditions for poultry (legs tied, " +
			"crammed in baskets, driven in open trucks) and cattle (overcrowded, no water) " +
			"routinely violate these rules. Key enforcement tool.",
		AdvocacyUse: "Document transport violations with video/photo evidence. File complaints " +
			"under PCA Act Section 11(1)(d). RTI for enforcement data. PIL for " +
			"systemic non-compliance.",
	},
	"transport_rules_2001": {
		Identifier: "Prevention of Cruelty to Animals (Transport of Animals on Foot) Rules, 2001",
		Title:      "Transport on Foot Rules, 2001",
		Source:     "Notified under Section 38 of PCA Act, 1960",
		Text: `Regulates transport of animals on foot (drove/walking). Key rules:
- Rule 3: Animals must be fit for transport, certified by veterinarian
- Rule 5: Maximum distance 25 km per day
- Rule 6: Rest at intervals not exceeding 5 hours
- Rule 7: Adequate feed, water, and rest at halting places
- Rule 9: Animals not to be tied with nose ropes that cause pain
- Rule 11: Branding prohibited (only ear-tagging permitted)`,
		Relevance: "Still relevant for rural livestock markets (haats) and transport " +
			"from markets to slaughterhouses. Violations common at weekly cattle " +
			"markets across India.",
		AdvocacyUse: "Monitor weekly cattle/livestock markets for violations. Document " +
			"and file complaints. Useful for challenging the claim that " +
			"traditional markets are 'humane.'",
	},
	"slaughter_house_rules_2001": {
		Identifier: "Prevention of Cruelty to Animals (Slaughter House) Rules, 2001",
		Title:      "Slaughter House Rules, 2001",
		Source:     "Notified under Section 38 of PCA Act, 1960",
		Text: `Regulates conditions at slaughterhouses. Key rules:
- Rule 3: Registration/license mandatory from local authority
- Rule 3(2): Space, ventilation, water, drainage requirements
- Rule 3(3): Separate areas for stunning, bleeding, dressing
- Rule 4: Ante-mortem inspection by qualified veterinarian
- Rule 5: Post-mortem examination of each carcass
- Rule 6: Animals must be stunned before slaughter (humane killing)
- Rule 6(2): No animal should be slaughtered in sight of another
- Rule 7: Sick/pregnant/animals under 3 months not to be slaughtered
- Rule 8: No slaughter between sunset and sunrise`,
		Relevance: "Massively non-compliant. Most slaughterhouses in India, particularly " +
			"in smaller towns, do not meet even basic requirements. Stunning is " +
			"rarely practiced. Ante-mortem inspection is often absent.",
		AdvocacyUse: "RTI for compliance data. PIL for enforcement. Document conditions " +
			"at specific facilities. Push for modernization and consolidation " +
			"of illegal slaughter facilities into compliant ones.",
	},
	"fss_act_2006": {
		Identifier: "Food Safety and Standards Act, 2006",
		Title:      "FSS Act, 2006",
		Source:     "Act No. 34 of 2006, Parliament of India",
		Text: `Consolidated food safety law. Relevant sections:
- Section 3(1)(n): Defines 'food safety' — assurance that food is acceptable
- Section 26: Standards for articles of food (includes meat, dairy)
- Section 31: Licensing and registration of food business operators
- Section 32: Improvement notices
- Section 38: Power of Food Safety Officers to inspect
- Section 59: Punishment for unsafe food (6 months to life imprisonment)
- Section 63: Operating without license — Rs. 5 lakhs fine
- Schedule 4, Part V: Specific standards for slaughterhouses`,
		Relevance: "Provides stronger penalties than PCA Act. Unlicensed operation alone " +
			"carries Rs. 5 lakh fine. Unsafe food can mean life imprisonment. " +
			"Powerful tool for meat and dairy advocacy.",
		AdvocacyUse: "Use food safety angle to access facilities that resist welfare " +
			"inspections. RTI for FSSAI inspection and violation data. " +
			"File complaints about unlicensed meat/dairy operations.",
	},
	"environment_protection_act_1986": {
		Identifier: "Environment (Protection) Act, 1986",
		Title:      "EPA, 1986",
		Source:     "Act No. 29 of 1986, Parliament of India",
		Text: `Umbrella environmental legislation. Relevant provisions:
- Section 3: Power to take measures for environmental protection
- Section 5: Power to issue directions (closure, prohibition)
- Section 7: No person shall carry on industry causing environmental pollution
- Section 15: Penalty — imprisonment up to 5 years and fine up to Rs. 1 lakh, continuing offence Rs. 5,000 per day
- EIA Notification, 2006: Environmental clearance requirements`,
		Relevance: "Factory farms and slaughterhouses are industrial operations with " +
			"significant environmental impact. CPCB classifies slaughterhouses as " +
			"'Red' category and large poultry farms as 'Orange' category.",
		AdvocacyUse: "File complaints with NGT (National Green Tribunal) for polluting " +
			"animal agriculture. Use EIA requirements to challenge new factory " +
			"farm approvals. Combine with RTI pollution data.",
	},
}

var landmarkCases = map[string]Case{
	"nagaraja_2014": {
		Citation: "(2014) 7 SCC 547",
		Name:     "Animal Welfare Board of India v. A. Nagaraja & Ors.",
		Court:    "Supreme Court of India",
		Year:     2014,
		Judges:   []string{"K.S. Radhakrishnan", "Pinaki Chandra Ghose"},
		FactsSummary: "Challenge to jallikattu (bull-taming) in Tamil Nadu and bullock-cart " +
			"races in Maharashtra. AWBI argued these practices cause suffering " +
			"and violate the PCA Act.",
		Holding: "Banned jallikattu and bullock-cart races. Held that animals have " +
			"constitutional rights — the right to live with dignity, a right " +
			"to their lives, and the right not to be tortured. This is the " +
			"most significant animal rights judgment in Indian legal history.",
		KeyPrinciples: []string{
			"Animals are not merely property; they have intrinsic worth.",
			"Article 51A(g) casts a duty on every citizen to have compassion for living creatures.",
			"The five freedoms (from hunger, discomfort, pain, fear, and to express normal behaviour) are to be read into the PCA Act.",
			"Article 21 protection of life extends to animal life.",
			"Every species has a right to life and security, subject to the law of the land.",
			"Parliament must consider amending PCA Act penalties (currently too low).",
		},
		Relevance: "THE foundational case. Every PIL should cite Nagaraja. It establishes " +
			"that animals have constitutional rights under Articles 21 and 51A(g). " +
			"Use the five freedoms framework from this judgment as the standard " +
			"against which all animal agriculture practices should be measured.",
		FullCitation: "Animal Welfare Board of India v. A. Nagaraja & Ors., (2014) 7 SCC 547, decided on 07.05.2014",
	},
	"people_for_animals_goa": {
		Citation: "1997 (unreported), Bombay High Court (Goa Bench)",
		Name:     "People for Animals v. State of Goa",
		Court:    "Bombay High Court, Goa Bench",
		Year:     1997,
		FactsSummary: "Challenge to bull fights (dhirio) organized in Goa. People for Animals " +
			"filed petition arguing the practice violated PCA Act.",
		Holding: "Banned bull fights in Goa, holding that the practice constituted " +
			"cruelty under the PCA Act and violated Article 51A(g).",
		KeyPrinciples: []string{
			"Traditional/cultural practices do not override statutory prohibition of cruelty.",
			"Article 51A(g) duty of compassion applies to all entertainment involving animals.",
		},
		Relevance: "Establishes that cultural/traditional framing does not excuse cruelty. " +
			"Applicable to arguments that dairy farming is 'traditional' or 'Indian culture.'",
		FullCitation: "People for Animals v. State of Goa, Bombay High Court (Goa Bench), 1997",
	},
	"nr_nair_2001": {
		Citation: "(2001) 6 SCC 84",
		Name:     "N.R. Nair & Ors v. Union of India & Ors",
		Court:    "Supreme Court of India (Kerala High Court affirmed)",
		Year:     2001,
		FactsSummary: "Challenge to use of animals in circuses. AWBI and animal welfare " +
			"organizations argued circus conditions violated PCA Act.",
		Holding: "Upheld restrictions on use of certain animals in circuses. Held that " +
			"animals performing in circuses suffer cruelty and the state has duty " +
			"to protect them. Led to eventual prohibition of wild animals in circuses.",
		KeyPrinciples: []string{
			"Animals are entitled to be treated with dignity even in captivity.",
			"State has positive obligation to prevent animal cruelty.",
			"Commercial use of animals must comply with welfare standards.",
		},
		Relevance: "Establishes state's positive obligation to prevent cruelty. Applicable " +
			"to factory farming — if the state must protect circus animals, it must " +
			"protect farm animals.",
		FullCitation: "N.R. Nair & Ors v. Union of India & Ors, (2001) 6 SCC 84",
	},
	"gauri_maulekhi_2016": {
		Citation: "W.P.(C) No. 881/2014",
		Name:     "Gauri Maulekhi v. Union of India",
		Court:    "Supreme Court of India",
		Year:     2016,
		FactsSummary: "PIL challenging illegal cattle transport from India to Nepal for " +
			"Gadhimai festival sacrifice. Sought enforcement of Transport Rules.",
		Holding: "Directed strict enforcement of Transport of Livestock Rules, 1978 " +
			"and 2001. Directed state governments to ensure no illegal transport " +
			"of cattle across the India-Nepal border.",
		KeyPrinciples: []string{
			"Transport of livestock rules must be strictly enforced at border checkpoints.",
			"State governments bear responsibility for preventing illegal cattle transport.",
			"Inter-state movement of cattle requires compliance with transport rules.",
		},
		Relevance: "Key case for transport enforcement. Use to argue for stricter " +
			"enforcement of transport rules for all livestock, not just cross-border.",
		FullCitation: "Gauri Maulekhi v. Union of India & Ors, W.P.(C) No. 881/2014, Supreme Court of India",
	},
	"laxmi_narain_modi_2013": {
		Citation: "SLP (Criminal) No. 5765 of 2008",
		Name:     "Laxmi Narain Modi v. Union of India",
		Court:    "Supreme Court of India",
		Year:     2013,
		FactsSummary: "Challenge to slaughter of animals for food, specifically the " +
			"practice at slaughterhouses operating without proper licenses.",
		Holding: "Directed all state governments to ensure that slaughterhouses " +
			"comply with the Food Safety and Standards Act, 2006 and PCA " +
			"Slaughter House Rules, 2001. Directed closure of illegal/unlicensed " +
			"slaughterhouses.",
		KeyPrinciples: []string{
			"All slaughterhouses must be licensed under both FSS Act and municipal laws.",
			"State governments must take action against illegal slaughterhouses.",
			"Compliance with Slaughter House Rules 2001 is mandatory, not advisory.",
		},
		Relevance: "Direct authority for demanding closure of unlicensed slaughterhouses. " +
			"Use RTI data on licensing to file enforcement petitions citing this case.",
		FullCitation: "Laxmi Narain Modi v. Union of India, SLP (Criminal) No. 5765/2008, Supreme Court of India, 2013",
	},
	"mirzapur_2005": {
		Citation: "(2005) 8 SCC 534",
		Name:     "State of Gujarat v. Mirzapur Moti Kureshi Kassab Jamat & Ors",
		Court:    "Supreme Court of India",
		Year:     2005,
		Judges: []string{
			"R.C. Lahoti (CJI)", "B.N. Agrawal", "A.R. Lakshmanan",
			"Arijit Pasayat", "S.H. Kapadia", "C.K. Thakker", "P.K. Balasubramanyan",
		},
		FactsSummary: "Constitutional challenge to Gujarat's total ban on cow slaughter " +
			"(including bulls and bullocks). Seven-judge bench.",
		Holding: "Upheld the total ban on slaughter of cows, bulls, and bullocks. " +
			"Held that Article 48 read with Articles 48A and 51A(g) provides " +
			"sufficient constitutional basis. Overruled the earlier 1958 " +
			"Mohd. Hanif Quareshi decision (which allowed slaughter of " +
			"economically useless cattle).",
		KeyPrinciples: []string{
			"Total ban on cow/bull/bullock slaughter is constitutionally valid.",
			"DPSPs (Article 48) have become increasingly significant and can restrict fundamental rights.",
			"Cattle have economic utility throughout their lives (dung, biogas, etc.).",
		},
		Relevance: "CAUTION: This case has been heavily used by cow vigilante groups. " +
			"Animal welfare advocates should cite it carefully and always distinguish " +
			"genuine animal welfare from communal violence. The welfare principles are " +
			"sound; the political weaponization is dangerous. Best used for its DPSP " +
			"analysis rather than its specific slaughter ban holding.",
		FullCitation: "State of Gujarat v. Mirzapur Moti Kureshi Kassab Jamat & Ors, (2005) 8 SCC 534, decided on 26.10.2005",
	},
}
