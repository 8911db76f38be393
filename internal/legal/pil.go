package legal

import (
	"fmt"
	"strings"
	"time"
)

// Draft is a PIL petition draft. Drafts are starting points and must be
// reviewed by a qualified advocate before filing.
type Draft struct {
	Title          string
	Court          string
	Petitioner     string
	Respondents    []string
	Grounds        []string
	Prayers        []string
	Constitutional []string
	Statutory      []string
	CaseCitations  []string
	Facts          string
}

// DairyExpansionParams describes a PIL against industrial dairy expansion.
type DairyExpansionParams struct {
	PetitionerName        string
	PetitionerDescription string
	State                 string
	District              string
	FacilityDetails       string
	EnvironmentalData     string
	WelfareConcerns       string
	HighCourt             string
}

// AgainstDairyExpansion drafts a PIL against expansion of industrial dairy
// operations on environmental, cruelty, and transport grounds.
func AgainstDairyExpansion(p DairyExpansionParams) *Draft {
	court := p.HighCourt
	if court == "" {
		court = "High Court of " + p.State
	}

	return &Draft{
		Title:      fmt.Sprintf("PIL Against Industrial Dairy Expansion in %s, %s", p.District, p.State),
		Court:      court,
		Petitioner: p.PetitionerName,
		Respondents: []string{
			fmt.Sprintf("State of %s, through its Chief Secretary", p.State),
			"Union of India, through Secretary, Ministry of Environment, Forest and Climate Change",
			"Union of India, through Secretary, Department of Animal Husbandry and Dairying",
			fmt.Sprintf("State Pollution Control Board, %s", p.State),
			fmt.Sprintf("District Collector, %s", p.District),
			"Animal Welfare Board of India, Chennai",
		},
		Grounds: []string{
			"That the impugned dairy expansion violates the fundamental rights " +
				"of animals to live with dignity as recognized by the Hon'ble Supreme " +
				"Court in Animal Welfare Board of India v. A. Nagaraja, (2014) 7 SCC 547, " +
				"which held that the five freedoms are to be read into the PCA Act, 1960.",
			"That industrial dairy operations involve systematic cruelty including " +
				"continuous forced impregnation, separation of calves from mothers within " +
				"hours of birth, confinement in spaces inadequate for natural behaviour, " +
				"and abandonment or sale of male calves — all violating Section 11 of " +
				"the Prevention of Cruelty to Animals Act, 1960.",
			"That the expansion will cause environmental pollution in violation of " +
				"the Water (Prevention and Control of Pollution) Act, 1974, the Air " +
				"(Prevention and Control of Pollution) Act, 1981, and Article 48A of " +
				"the Constitution of India.",
			"That the State Pollution Control Board has failed to enforce " +
				"environmental standards, including Consent to Operate conditions, " +
				"effluent treatment requirements, and groundwater protection norms.",
			"That the expansion threatens the right to clean environment of " +
				"residents under Article 21 of the Constitution, as recognized in " +
				"M.C. Mehta v. Union of India, (1987) 1 SCC 395.",
			"That transport of cattle to and from the facility violates the " +
				"Prevention of Cruelty to Animals (Transport of Livestock) Rules, 1978 " +
				"and the Transport of Animals on Foot Rules, 2001.",
			"That the fundamental duty of compassion for living creatures under " +
				"Article 51A(g) of the Constitution requires the State to prevent the " +
				"industrialization of animal suffering for commercial profit.",
		},
		Prayers: []string{
			"Direct the Respondent State to conduct an independent environmental " +
				"and animal welfare assessment of the impugned dairy expansion before " +
				"granting any further approvals.",
			"Direct the State Pollution Control Board to strictly enforce " +
				"environmental standards at all dairy operations in the district " +
				"and take action against violators.",
			fmt.Sprintf("Direct the AWBI to conduct inspections of all commercial dairy "+
				"operations in %s and report on compliance with animal "+
				"welfare standards including the five freedoms.", p.District),
			"Direct the Respondent State to formulate guidelines for maximum " +
				"herd size, minimum space per animal, veterinary care standards, " +
				"and calf welfare in commercial dairy operations.",
			"Pass any other order or direction as this Hon'ble Court may " +
				"deem fit and proper in the facts and circumstances of the case.",
		},
		Constitutional: []string{
			"Article 21 — Right to Life (extended to animals, Nagaraja)",
			"Article 48 — Protection of cows and cattle",
			"Article 48A — Protection of environment",
			"Article 51A(g) — Duty of compassion for living creatures",
		},
		Statutory: []string{
			"Prevention of Cruelty to Animals Act, 1960 — Sections 3, 11",
			"Water (Prevention and Control of Pollution) Act, 1974",
			"Air (Prevention and Control of Pollution) Act, 1981",
			"Environment (Protection) Act, 1986",
			"PCA (Transport of Livestock) Rules, 1978",
			"PCA (Slaughter House) Rules, 2001",
		},
		CaseCitations: []string{
			"AWBI v. A. Nagaraja, (2014) 7 SCC 547",
			"M.C. Mehta v. Union of India, (1987) 1 SCC 395",
			"N.R. Nair v. Union of India, (2001) 6 SCC 84",
		},
		Facts: fmt.Sprintf(
			"1. The Petitioner is %s.\n\n"+
				"2. The present Petition is being filed in public interest concerning "+
				"the welfare of animals and the environment in %s, %s.\n\n"+
				"3. Facility details: %s\n\n"+
				"4. Environmental data: %s\n\n"+
				"5. Animal welfare concerns: %s\n\n"+
				"6. The Petitioner has no personal interest in the present matter and "+
				"is filing this Petition solely in the interest of animal welfare and "+
				"environmental protection.",
			p.PetitionerDescription, p.District, p.State,
			p.FacilityDetails, p.EnvironmentalData, p.WelfareConcerns),
	}
}

// SlaughterhouseParams describes a PIL against unlicensed slaughterhouses.
type SlaughterhouseParams struct {
	PetitionerName        string
	PetitionerDescription string
	State                 string
	District              string
	EvidenceSummary       string
	RTIData               string
	HighCourt             string
}

// AgainstUnlicensedSlaughterhouses drafts a PIL seeking enforcement of the
// Laxmi Narain Modi directions on unlicensed slaughterhouses.
func AgainstUnlicensedSlaughterhouses(p SlaughterhouseParams) *Draft {
	court := p.HighCourt
	if court == "" {
		court = "High Court of " + p.State
	}

	grounds := []string{
		"That the Hon'ble Supreme Court in Laxmi Narain Modi v. Union of India, " +
			"SLP (Criminal) No. 5765/2008 (2013), directed all state governments to " +
			"ensure closure of unlicensed slaughterhouses and compliance with " +
			"Slaughter House Rules, 2001. The Respondent State has failed to comply.",
		"That unlicensed slaughterhouses violate Section 31 of the Food Safety " +
			"and Standards Act, 2006, which mandates licensing of all food business " +
			"operators, with penalty of up to Rs. 5 lakhs under Section 63.",
		"That unlicensed slaughterhouses routinely violate the Prevention of " +
			"Cruelty to Animals (Slaughter House) Rules, 2001, including mandatory " +
			"ante-mortem inspection (Rule 4), humane stunning (Rule 6), and prohibition " +
			"on slaughter in sight of other animals (Rule 6(2)).",
		"That the absence of proper effluent treatment at unlicensed " +
			"slaughterhouses causes pollution of water bodies and groundwater " +
			"in violation of the Water Act, 1974 and Environment Protection Act, 1986.",
		"That the right to life of animals under Article 21, as recognized in " +
			"AWBI v. Nagaraja (2014) 7 SCC 547, includes the right to be free from " +
			"unnecessary suffering during slaughter.",
	}
	if p.RTIData != "" {
		grounds = append(grounds, fmt.Sprintf(
			"That RTI responses reveal: %s. This data demonstrates "+
				"systemic failure of the Respondent authorities to enforce slaughter "+
				"regulations.", p.RTIData))
	}

	facts := fmt.Sprintf(
		"1. The Petitioner is %s.\n\n"+
			"2. This Petition concerns the operation of unlicensed slaughterhouses "+
			"in %s, %s, in violation of food safety, environmental, "+
			"and animal welfare laws.\n\n"+
			"3. Evidence summary: %s\n\n",
		p.PetitionerDescription, p.District, p.State, p.EvidenceSummary)
	if p.RTIData != "" {
		facts += fmt.Sprintf("4. RTI data obtained: %s\n\n", p.RTIData)
	}
	facts += fmt.Sprintf(
		"5. Despite the clear mandate of the Supreme Court in Laxmi Narain Modi "+
			"(2013), the Respondent authorities have failed to enforce slaughter "+
			"regulations in %s.", p.District)

	return &Draft{
		Title:      fmt.Sprintf("PIL Against Unlicensed Slaughterhouses in %s, %s", p.District, p.State),
		Court:      court,
		Petitioner: p.PetitionerName,
		Respondents: []string{
			fmt.Sprintf("State of %s, through its Chief Secretary", p.State),
			fmt.Sprintf("District Collector / District Magistrate, %s", p.District),
			fmt.Sprintf("Commissioner, Municipal Corporation / Nagar Palika, %s", p.District),
			fmt.Sprintf("State Food Safety Commissioner, %s", p.State),
			fmt.Sprintf("Member Secretary, State Pollution Control Board, %s", p.State),
			"Animal Welfare Board of India, Chennai",
		},
		Grounds: grounds,
		Prayers: []string{
			fmt.Sprintf("Direct the Respondent State to conduct an immediate survey of all "+
				"slaughterhouses in %s and identify those operating without "+
				"valid licenses under the FSS Act, 2006 and municipal laws.", p.District),
			"Direct closure of all unlicensed slaughterhouses in compliance with " +
				"the Supreme Court's direction in Laxmi Narain Modi (2013).",
			"Direct the State Food Safety Commissioner to take action under " +
				"Section 63 of the FSS Act, 2006 against all unlicensed operators.",
			"Direct the AWBI to inspect all operational slaughterhouses for " +
				"compliance with the PCA (Slaughter House) Rules, 2001.",
			"Direct the State Pollution Control Board to assess and address " +
				"pollution from slaughterhouse operations in the district.",
			"Pass any other order as this Hon'ble Court deems fit.",
		},
		Constitutional: []string{
			"Article 21 — Right to Life (animals and humans)",
			"Article 48 — Protection of cattle",
			"Article 51A(g) — Duty of compassion for living creatures",
		},
		Statutory: []string{
			"Prevention of Cruelty to Animals Act, 1960 — Section 11",
			"PCA (Slaughter House) Rules, 2001 — Rules 3, 4, 5, 6",
			"Food Safety and Standards Act, 2006 — Sections 31, 59, 63",
			"Water (Prevention and Control of Pollution) Act, 1974",
			"Environment (Protection) Act, 1986",
		},
		CaseCitations: []string{
			"Laxmi Narain Modi v. Union of India, SLP (Crl) No. 5765/2008 (2013)",
			"AWBI v. A. Nagaraja, (2014) 7 SCC 547",
			"Akhil Bharat Goseva Sangh v. State of A.P., (2006) 4 SCC 162",
		},
		Facts: facts,
	}
}

// TransportViolationsParams describes a PIL against transport violations.
type TransportViolationsParams struct {
	PetitionerName        string
	PetitionerDescription string
	State                 string
	EvidenceSummary       string
	Species               string
	HighCourt             string
}

// AgainstTransportViolations drafts a PIL against systematic violations of
// the livestock transport rules.
func AgainstTransportViolations(p TransportViolationsParams) *Draft {
	court := p.HighCourt
	if court == "" {
		court = "High Court of " + p.State
	}
	species := p.Species
	if species == "" {
		species = "cattle"
	}

	return &Draft{
		Title:      fmt.Sprintf("PIL Against Livestock Transport Violations in %s", p.State),
		Court:      court,
		Petitioner: p.PetitionerName,
		Respondents: []string{
			fmt.Sprintf("State of %s, through its Chief Secretary", p.State),
			fmt.Sprintf("Director General of Police, %s", p.State),
			fmt.Sprintf("Transport Commissioner, %s", p.State),
			"Union of India, through Secretary, DAHD",
			"Animal Welfare Board of India, Chennai",
		},
		Grounds: []string{
			fmt.Sprintf("That the transport of %s in %s routinely violates the "+
				"Prevention of Cruelty to Animals (Transport of Livestock) Rules, 1978 "+
				"including Rule 4 (fitness certificate), Rule 6 (prohibition on "+
				"transporting unfit animals), Rule 7 (vehicle standards), Rule 8 "+
				"(maximum numbers), and Rule 9 (36-hour rest requirement).", species, p.State),
			"That the Hon'ble Supreme Court in Gauri Maulekhi v. Union of India, " +
				"W.P.(C) No. 881/2014, directed strict enforcement of transport rules. " +
				"The Respondent State has failed to implement these directions.",
			fmt.Sprintf("That transport violations cause immense suffering to %s, "+
				"violating their right to live with dignity as recognized in "+
				"AWBI v. Nagaraja, (2014) 7 SCC 547.", species),
			"That the failure to enforce transport rules constitutes a violation " +
				"of Section 11(1)(d) of the PCA Act, 1960 (conveying or carrying an " +
				"animal in a manner that subjects it to unnecessary suffering).",
		},
		Prayers: []string{
			"Direct the Respondent State to establish checkpoints at major " +
				"livestock transport routes to ensure compliance with Transport Rules.",
			"Direct the DGP to issue standing orders to all police stations " +
				"for enforcement of livestock transport rules.",
			"Direct the Transport Commissioner to cancel registrations of " +
				"vehicles found repeatedly violating transport rules.",
			fmt.Sprintf("Direct installation of CCTV cameras at major livestock markets "+
				"(mandis) in %s to monitor loading and transport practices.", p.State),
			"Pass any other order as this Hon'ble Court deems fit.",
		},
		Constitutional: []string{
			"Article 21 — Right to Life (animals)",
			"Article 51A(g) — Duty of compassion for living creatures",
		},
		Statutory: []string{
			"PCA Act, 1960 — Section 11(1)(d)",
			"PCA (Transport of Livestock) Rules, 1978 — Rules 4-9, 47",
			"PCA (Transport of Animals on Foot) Rules, 2001",
			"Motor Vehicles Act, 1988 — Section 177 (general violations)",
		},
		CaseCitations: []string{
			"Gauri Maulekhi v. Union of India, W.P.(C) No. 881/2014",
			"AWBI v. A. Nagaraja, (2014) 7 SCC 547",
		},
		Facts: fmt.Sprintf(
			"1. The Petitioner is %s.\n\n"+
				"2. Evidence of transport violations: %s\n\n"+
				"3. The Petitioner has documented systematic violations affecting "+
				"%s across %s.",
			p.PetitionerDescription, p.EvidenceSummary, species, p.State),
	}
}

// CAFOPollutionParams describes a PIL against pollution from a
// concentrated animal feeding operation.
type CAFOPollutionParams struct {
	PetitionerName        string
	PetitionerDescription string
	State                 string
	District              string
	FacilityName          string
	FacilityType          string // "poultry", "dairy", "piggery"
	PollutionData         string
	AffectedCommunities   string
	HighCourt             string
}

// AgainstCAFOPollution drafts a PIL against pollution from an industrial
// animal feeding operation.
func AgainstCAFOPollution(p CAFOPollutionParams) *Draft {
	court := p.HighCourt
	if court == "" {
		court = "High Court of " + p.State
	}

	return &Draft{
		Title: fmt.Sprintf("PIL Against Pollution from %s CAFO in %s, %s",
			titleCase(p.FacilityType), p.District, p.State),
		Court:      court,
		Petitioner: p.PetitionerName,
		Respondents: []string{
			fmt.Sprintf("State of %s, through its Chief Secretary", p.State),
			fmt.Sprintf("Member Secretary, State Pollution Control Board, %s", p.State),
			fmt.Sprintf("District Collector, %s", p.District),
			fmt.Sprintf("%s, through its Managing Director/Proprietor", p.FacilityName),
			"Central Pollution Control Board, Delhi",
			"Union of India, through Secretary, MoEFCC",
		},
		Grounds: []string{
			fmt.Sprintf("That the %s operation at %s in %s "+
				"is causing severe environmental pollution affecting air, water, and "+
				"soil quality in the surrounding area, violating the fundamental right "+
				"to clean environment under Article 21 of the Constitution.",
				p.FacilityType, p.FacilityName, p.District),
			fmt.Sprintf("That the facility is operating in violation of the Water (Prevention "+
				"and Control of Pollution) Act, 1974 and the Air (Prevention and "+
				"Control of Pollution) Act, 1981, specifically: %s", p.PollutionData),
			fmt.Sprintf("That %s are directly impacted by the pollution, "+
				"suffering from contaminated water, respiratory issues from ammonia "+
				"and particulate matter, and unbearable odour.", p.AffectedCommunities),
			"That the CPCB classifies slaughterhouses as 'Red' category and " +
				"large poultry operations (>5000 birds) as 'Orange' category " +
				"industries, requiring strict pollution control measures.",
			"That the Respondent Pollution Control Board has failed in its " +
				"statutory duty to enforce environmental standards and protect " +
				"the health of communities near the facility.",
			"That the Precautionary Principle and Polluter Pays Principle, " +
				"recognized by the Supreme Court as part of Indian environmental " +
				"law (Vellore Citizens Welfare Forum v. UoI, AIR 1996 SC 2715), " +
				"require immediate action.",
		},
		Prayers: []string{
			fmt.Sprintf("Direct the State Pollution Control Board to conduct a comprehensive "+
				"environmental assessment of %s and all similar operations "+
				"within %s.", p.FacilityName, p.District),
			fmt.Sprintf("Direct immediate remedial measures to prevent further pollution "+
				"of water bodies and groundwater from %s.", p.FacilityName),
			"Direct the Respondent facility to install and operate adequate " +
				"effluent treatment, solid waste management, and air pollution " +
				"control systems within a specified timeframe, failing which " +
				"operations should be suspended.",
			"Direct compensation to affected communities under the Polluter " +
				"Pays Principle.",
			fmt.Sprintf("Direct the State to formulate setback/buffer zone regulations "+
				"for %s operations near residential areas and water bodies.", p.FacilityType),
			"Pass any other order as this Hon'ble Court deems fit.",
		},
		Constitutional: []string{
			"Article 21 — Right to Life (clean environment)",
			"Article 48A — Protection of environment",
			"Article 51A(g) — Compassion for living creatures",
		},
		Statutory: []string{
			"Water (Prevention and Control of Pollution) Act, 1974",
			"Air (Prevention and Control of Pollution) Act, 1981",
			"Environment (Protection) Act, 1986",
			"PCA Act, 1960 — Sections 3, 11",
			"EIA Notification, 2006",
		},
		CaseCitations: []string{
			"Vellore Citizens Welfare Forum v. Union of India, AIR 1996 SC 2715",
			"M.C. Mehta v. Union of India, (1987) 1 SCC 395",
			"AWBI v. A. Nagaraja, (2014) 7 SCC 547",
			"Indian Council for Enviro-Legal Action v. UoI, (1996) 3 SCC 212",
		},
		Facts: fmt.Sprintf(
			"1. The Petitioner is %s.\n\n"+
				"2. %s operates a %s facility in %s, %s.\n\n"+
				"3. Pollution data: %s\n\n"+
				"4. Affected communities: %s\n\n"+
				"5. The Petitioner seeks intervention of this Hon'ble Court to "+
				"protect both the environment and the welfare of animals confined "+
				"in the facility.",
			p.PetitionerDescription, p.FacilityName, p.FacilityType, p.District, p.State,
			p.PollutionData, p.AffectedCommunities),
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Format renders a draft as an Article 226 writ petition skeleton.
func (d *Draft) Format() string {
	banner := strings.Repeat("=", 70)
	dots := strings.Repeat(".", 50)

	lines := []string{
		"IN THE " + strings.ToUpper(d.Court),
		"",
		"WRIT PETITION (CIVIL) NO. _____ OF ______",
		"(PUBLIC INTEREST LITIGATION)",
		"",
		"IN THE MATTER OF:",
		"",
		d.Petitioner,
		dots + " PETITIONER",
		"",
		"VERSUS",
		"",
	}

	for i, resp := range d.Respondents {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, resp))
	}
	lines = append(lines, dots+" RESPONDENTS", "")

	lines = append(lines,
		"PETITION UNDER ARTICLE 226 OF THE CONSTITUTION OF INDIA",
		"",
		"TO,",
		"THE HON'BLE CHIEF JUSTICE AND OTHER COMPANION JUDGES OF THE "+strings.ToUpper(d.Court),
		"",
		"THE HUMBLE PETITION OF THE PETITIONER ABOVE-NAMED",
		"",
		"MOST RESPECTFULLY SHOWETH:",
		"",
		banner,
		"FACTS",
		banner,
		"",
		d.Facts,
		"",
		banner,
		"GROUNDS",
		banner,
		"",
	)

	for i, ground := range d.Grounds {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, ground), "")
	}

	lines = append(lines,
		banner,
		"LEGAL PROVISIONS RELIED UPON",
		banner,
		"",
		"Constitutional Provisions:",
	)
	for _, prov := range d.Constitutional {
		lines = append(lines, "  - "+prov)
	}
	lines = append(lines, "", "Statutory Provisions:")
	for _, stat := range d.Statutory {
		lines = append(lines, "  - "+stat)
	}
	lines = append(lines, "", "Case Law Relied Upon:")
	for _, c := range d.CaseCitations {
		lines = append(lines, "  - "+c)
	}

	lines = append(lines,
		"",
		banner,
		"PRAYER",
		banner,
		"",
		"In the light of the facts and circumstances set out above, it is "+
			"most respectfully prayed that this Hon'ble Court may be pleased to:",
		"",
	)
	for i, prayer := range d.Prayers {
		lines = append(lines, fmt.Sprintf("(%c) %s", 'a'+i, prayer), "")
	}

	lines = append(lines,
		"AND FOR THIS ACT OF KINDNESS, THE PETITIONER SHALL EVER PRAY.",
		"",
		"PETITIONER: "+d.Petitioner,
		"DATE: "+time.Now().Format("02/01/2006"),
		"PLACE: ________________",
		"",
		"THROUGH ADVOCATE: ________________",
		"(Name, Enrolment No.)",
		"",
		"---",
		"DISCLAIMER: This is a template for educational and advocacy purposes.",
		"It must be reviewed, customized, and signed by an Advocate-on-Record",
		"before filing. PIL procedures vary between High Courts.",
	)

	return strings.Join(lines, "\n")
}
