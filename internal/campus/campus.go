// Package campus holds advocacy materials for premier Indian campuses:
// workshop modules, hackathon problem statements, a club constitution
// template, and CSR proposal templates for placement companies.
//
// The approach frames animal advocacy as a technology and innovation
// challenge alongside the moral argument, meeting students where they
// are: AI ethics, sustainability, entrepreneurship, social impact.
package campus

import "strings"

// WorkshopSession is one session of a campus workshop module.
type WorkshopSession struct {
	Title    string   `json:"title"`
	Outline  []string `json:"outline"`
	Readings []string `json:"readings,omitempty"`
	HandsOn  string   `json:"hands_on,omitempty"`
}

// Workshop is a multi-session campus workshop module.
type Workshop struct {
	Title           string            `json:"title"`
	Duration        string            `json:"duration"`
	Target          string            `json:"target"`
	Sessions        []WorkshopSession `json:"sessions"`
	ResourcesNeeded []string          `json:"resources_needed"`
}

// AIEthicsWorkshop connects the AI sentience debate to animal sentience:
// if we debate rights for systems that might be sentient, the beings we
// know are sentient deserve at least that attention.
func AIEthicsWorkshop() Workshop {
	return Workshop{
		Title:    "AI Ethics Workshop: Sentience, Rights, and the Beings We Overlook",
		Duration: "3 hours (2 sessions)",
		Target:   "CS/AI students, ethics course participants",
		Sessions: []WorkshopSession{
			{
				Title: "Machine Sentience and Animal Sentience",
				Outline: []string{
					"The sentience debate in AI: What would make an AI 'sentient'?",
					"Scientific consensus on animal sentience: Cambridge Declaration on " +
						"Consciousness (2012), New York Declaration on Animal Consciousness (2024, ~480 signatories)",
					"Neuroscience of animal cognition: pain, emotions, social bonds",
					"The inconsistency: We debate whether future AI needs rights while " +
						"ignoring beings we know are sentient",
					"Case study: India's AWBI v. Nagaraja (2014) — Supreme Court recognized " +
						"animal right to life with dignity",
				},
				Readings: []string{
					"Cambridge Declaration on Consciousness (2012)",
					"New York Declaration on Animal Consciousness (2024)",
					"Butlin et al., 'Consciousness in Artificial Intelligence: Insights from the Science of Consciousness' (November 2025)",
					"AWBI v. A. Nagaraja, (2014) 7 SCC 547 — full text",
				},
			},
			{
				Title: "Technology for Animal Welfare: What Can Engineers Build?",
				Outline: []string{
					"Computer vision for monitoring factory farm conditions",
					"NLP for analyzing corporate disclosures and greenwashing",
					"Satellite imagery for mapping factory farms",
					"Blockchain for supply chain transparency",
					"AI for accelerating alternative protein R&D",
					"Open-source tools for advocacy (RTI automation, legal research)",
				},
				HandsOn: "RTI generator demo — file an RTI for your district's " +
					"poultry farm data using the CLI",
			},
		},
		ResourcesNeeded: []string{
			"Projector and laptop",
			"WiFi for live demos",
			"Printed copies of Cambridge and New York Declarations",
			"Toolkit installed for demo",
		},
	}
}

// HackathonProblem is a problem statement for a campus tech event.
type HackathonProblem struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Background           string   `json:"background"`
	DataSources          []string `json:"data_sources"`
	EvaluationCriteria   []string `json:"evaluation_criteria"`
	TechStackSuggestions []string `json:"tech_stack_suggestions"`
	ImpactMetric         string   `json:"impact_metric"`
	Difficulty           string   `json:"difficulty"`
}

// HackathonProblems returns problem statements for campus tech events.
func HackathonProblems() []HackathonProblem {
	return []HackathonProblem{
		{
			Title: "Factory Farm Finder: Satellite-Based Detection",
			Description: "Build a system that identifies potential factory farm locations " +
				"from satellite imagery. Use Sentinel-2 or Landsat data to detect " +
				"large poultry sheds, dairy operations, and aquaculture ponds.",
			Background: "India has no public registry of factory farms. Pollution Control " +
				"Boards maintain Consent to Operate records but these are not " +
				"digitized or public. Satellite imagery can fill this data gap.",
			DataSources: []string{
				"Sentinel-2 (Copernicus Open Access Hub — free)",
				"Google Earth Engine (free for research)",
				"OpenStreetMap building footprints",
				"20th Livestock Census district-level data (for ground truth)",
			},
			EvaluationCriteria: []string{
				"Detection accuracy (precision/recall)",
				"Scalability to state/national level",
				"User interface for non-technical advocates",
				"Integration with existing mapping tools",
			},
			TechStackSuggestions: []string{
				"Python, TensorFlow/PyTorch for image classification",
				"Google Earth Engine API",
				"Leaflet.js or Mapbox for visualization",
				"PostGIS for spatial data",
			},
			ImpactMetric: "Number of previously unknown facilities identified",
			Difficulty:   "advanced",
		},
		{
			Title: "RTI Auto-Tracker: Deadline Management System",
			Description: "Build a web/mobile app that helps advocates track multiple " +
				"RTI applications, sends deadline reminders, auto-generates " +
				"first appeal drafts when response deadlines pass, and " +
				"aggregates response data for analysis.",
			Background: "Animal advocacy organizations file hundreds of RTIs annually. " +
				"Tracking deadlines (30-day response, appeal windows) across " +
				"multiple agencies is error-prone. Missed deadlines = lost data.",
			DataSources: []string{
				"RTI Act, 2005 (deadline rules)",
				"PIO directory (available in this toolkit)",
				"Previous RTI responses (for training NLP models)",
			},
			EvaluationCriteria: []string{
				"User experience (simplicity for non-technical users)",
				"Notification reliability",
				"Auto-generation quality for appeal drafts",
				"Data visualization (trends, response rates)",
			},
			TechStackSuggestions: []string{
				"React Native or Flutter for mobile",
				"FastAPI or Django backend",
				"PostgreSQL database",
				"Twilio/WhatsApp API for notifications",
			},
			ImpactMetric: "Percentage reduction in missed RTI deadlines",
			Difficulty:   "intermediate",
		},
		{
			Title: "Milk Adulteration Citizen Reporter",
			Description: "Build a platform where citizens can report suspected milk " +
				"adulteration, upload test results, and see a heatmap of " +
				"adulteration reports in their area. Include simple at-home " +
				"testing guides.",
			Background: "FSSAI's 2018 survey found 41% of milk samples failed quality " +
				"standards. Most consumers have no way to know if their milk " +
				"is adulterated. Simple tests (lactometer, starch test) can be " +
				"done at home.",
			DataSources: []string{
				"FSSAI National Milk Quality Survey data",
				"At-home milk testing protocols (FSSAI published)",
				"User-submitted reports",
			},
			EvaluationCriteria: []string{
				"Ease of reporting",
				"Accuracy of testing guides",
				"Visualization quality",
				"Privacy protection for reporters",
			},
			TechStackSuggestions: []string{
				"Progressive Web App (works on low-end phones)",
				"Firebase or Supabase backend",
				"Mapbox for heatmap",
				"Hindi/English bilingual UI",
			},
			ImpactMetric: "Number of reports leading to FSSAI action",
			Difficulty:   "beginner",
		},
		{
			Title: "Supply Chain Transparency: Farm to Table Tracker",
			Description: "Build a system that traces animal products from farm to " +
				"retail. Use FSSAI license numbers, transport permits, and " +
				"company filings to map supply chains of major operators.",
			Background: "Consumers cannot trace where their dairy/poultry comes from. " +
				"Major integrators (Suguna, Venky's) operate complex supply " +
				"chains through contract farmers. Traceability = accountability.",
			DataSources: []string{
				"FSSAI license registry",
				"MCA company filings (CIN lookup)",
				"Company annual reports",
				"RTI data on transport permits",
			},
			EvaluationCriteria: []string{
				"Supply chain mapping depth",
				"Data accuracy and sourcing",
				"User-facing visualization",
				"Scalability",
			},
			TechStackSuggestions: []string{
				"Neo4j or graph database for supply chain mapping",
				"Python scrapers for public data",
				"D3.js for visualization",
				"OCR for processing RTI response documents",
			},
			ImpactMetric: "Number of supply chains fully mapped",
			Difficulty:   "advanced",
		},
	}
}

// ClubConstitution is a template for founding a campus advocacy club.
type ClubConstitution struct {
	NameSuggestions         []string `json:"name_suggestions"`
	Mission                 string   `json:"mission"`
	Objectives              []string `json:"objectives"`
	Activities              []string `json:"activities"`
	OrganizationalStructure string   `json:"organizational_structure"`
	MembershipCriteria      string   `json:"membership_criteria"`
	AffiliationNotes        string   `json:"affiliation_notes"`
}

func Constitution() ClubConstitution {
	return ClubConstitution{
		NameSuggestions: []string{
			"Ahimsa Tech Collective",
			"Sentient Rights Forum",
			"Students for Animal Welfare",
			"The Compassion Project",
			"Zero Cruelty Initiative",
		},
		Mission: "To advance animal welfare and rights through technology, research, " +
			"and education, using evidence-based advocacy and cross-disciplinary " +
			"collaboration.",
		Objectives: []string{
			"Research: Investigate animal agriculture practices in India using " +
				"RTI, data analysis, and field documentation.",
			"Technology: Build open-source tools for animal advocacy (mapping, " +
				"tracking, content generation).",
			"Education: Host workshops on animal sentience, AI ethics, food " +
				"systems, and environmental impact of animal agriculture.",
			"Outreach: Create accessible content in Hindi and English for " +
				"campus and public audiences.",
			"Policy: Engage with campus administration on food procurement, " +
				"lab animal policies, and sustainability goals.",
			"Solidarity: Partner with environmental, labor, and social justice " +
				"groups on campus. Never work in isolation.",
		},
		Activities: []string{
			"Weekly meetings / reading group",
			"Monthly film screenings (documentaries on animal agriculture)",
			"Semester hackathon with animal welfare problem statements",
			"RTI filing workshops",
			"Guest lectures (animal welfare lawyers, scientists, activists)",
			"Plant-based food tastings and cooking workshops",
			"Campus sustainability audits (food procurement analysis)",
			"Open-source coding sprints (contributing to advocacy tools)",
			"Annual report: 'State of Animals' for your campus district",
		},
		OrganizationalStructure: "President, Vice-President, Secretary, Treasurer, and up to 5 " +
			"coordinators (Research, Tech, Content, Outreach, Events). " +
			"All positions elected annually. Decisions by simple majority. " +
			"No single-person veto.",
		MembershipCriteria: "Open to all students regardless of dietary choices, religious " +
			"background, or caste. We do not police personal food choices. " +
			"We focus on systemic change, not individual guilt. " +
			"Members must agree to the cultural sensitivity guidelines " +
			"(no casteist framing, no communal rhetoric, no diet-shaming).",
		AffiliationNotes: "Potential affiliations: FIAPO (Federation of Indian Animal Protection " +
			"Organisations), HSI/India, PFA (People for Animals — research local " +
			"chapter reputation first), CUPA (Compassion Unlimited Plus Action, Bangalore).\n" +
			"International: The Good Food Institute India (GFI India) for alt-protein, " +
			"Animal Equality India, Mercy for Animals India.",
	}
}

// CSRProposal is a corporate social responsibility proposal template.
// Under Companies Act 2013 Section 135, qualifying companies must spend
// 2% of average net profits on CSR; Schedule VII eligible activities
// include environmental sustainability and animal welfare.
type CSRProposal struct {
	Title               string   `json:"title"`
	ExecutiveSummary    string   `json:"executive_summary"`
	ProblemStatement    string   `json:"problem_statement"`
	ProposedSolution    string   `json:"proposed_solution"`
	BudgetOutline       string   `json:"budget_outline"`
	ImpactMetrics       []string `json:"impact_metrics"`
	AlignmentWithCSRAct string   `json:"alignment_with_csr_act"`
}

// CSRFocusAreas lists the supported proposal templates.
var CSRFocusAreas = []string{"food_safety", "tech_for_good"}

// CSRProposalFor builds a proposal for the named focus area, with the
// company name substituted in. Unknown focus areas fall back to
// food_safety; an empty company name becomes a placeholder.
func CSRProposalFor(companyName, focusArea string) CSRProposal {
	if companyName == "" {
		companyName = "[COMPANY]"
	}
	switch focusArea {
	case "tech_for_good":
		return techForGoodProposal(companyName)
	default:
		return foodSafetyProposal(companyName)
	}
}

func foodSafetyProposal(company string) CSRProposal {
	return CSRProposal{
		Title: "Proposal to " + company + ": Community Food Safety and Animal Welfare Initiative",
		ExecutiveSummary: "We propose that " + company + " fund a community food safety " +
			"monitoring programme combined with animal welfare auditing " +
			"in [DISTRICT]. This addresses Schedule VII items (i) health, " +
			"(iv) environmental sustainability, and animal welfare.",
		ProblemStatement: "FSSAI's 2018 National Milk Quality Survey found 41% of samples " +
			"failed quality standards. Consumers in tier-2/3 cities have no " +
			"access to food quality information. Simultaneously, animals in " +
			"the dairy supply chain face welfare violations with no monitoring.",
		ProposedSolution: "1. Establish a community milk testing lab (capital cost: Rs. 5-10 lakh)\n" +
			"2. Train 10 community food safety monitors\n" +
			"3. Quarterly testing and public reporting\n" +
			"4. Animal welfare auditing at supply chain level\n" +
			"5. Open-source data dashboard for community access",
		BudgetOutline: "Year 1: Rs. 20-30 lakh\n" +
			"- Lab equipment: Rs. 8 lakh\n" +
			"- Training: Rs. 3 lakh\n" +
			"- Operations (12 months): Rs. 10 lakh\n" +
			"- Technology platform: Rs. 5 lakh\n" +
			"- Documentation and reporting: Rs. 4 lakh",
		ImpactMetrics: []string{
			"Number of milk samples tested",
			"Adulteration incidents detected and reported",
			"Community members with access to food safety data",
			"Animal welfare improvements documented",
			"FSSAI actions triggered by community monitoring",
		},
		AlignmentWithCSRAct: "Eligible under Companies Act 2013, Section 135, Schedule VII:\n" +
			"- Item (i): Promoting health care including preventive health care\n" +
			"- Item (iv): Ensuring environmental sustainability\n" +
			"- Animal welfare: Explicitly mentioned in Schedule VII\n" +
			"- Item (x): Rural development projects",
	}
}

func techForGoodProposal(company string) CSRProposal {
	return CSRProposal{
		Title: "Proposal to " + company + ": Open-Source Technology for Animal Welfare",
		ExecutiveSummary: "We propose that " + company + " sponsor development of open-source " +
			"technology tools for animal welfare monitoring and advocacy in India.",
		ProblemStatement: "India has 535 million livestock and 851 million poultry (Livestock " +
			"Census 2019) but minimal technology infrastructure for monitoring " +
			"animal welfare, tracking regulatory compliance, or enabling " +
			"citizen reporting.",
		ProposedSolution: "1. Fund a team of 3-5 developers for 12 months\n" +
			"2. Build and deploy: factory farm mapping tool, RTI automation " +
			"system, citizen reporting platform\n" +
			"3. All code open-source (MIT license)\n" +
			"4. Partner with animal welfare NGOs for deployment\n" +
			"5. Campus ambassador programme for ongoing development",
		BudgetOutline: "Year 1: Rs. 40-50 lakh\n" +
			"- Developer salaries (3-5 people, 12 months): Rs. 30 lakh\n" +
			"- Cloud infrastructure: Rs. 5 lakh\n" +
			"- Data acquisition and RTI filing: Rs. 3 lakh\n" +
			"- Campus events and outreach: Rs. 5 lakh\n" +
			"- Administration: Rs. 5 lakh",
		ImpactMetrics: []string{
			"Number of tools deployed",
			"GitHub stars and community contributors",
			"RTIs filed using the system",
			"Facilities mapped",
			"Citizen reports processed",
		},
		AlignmentWithCSRAct: "Eligible under Companies Act 2013, Section 135, Schedule VII:\n" +
			"- Item (iv): Environmental sustainability (factory farm monitoring)\n" +
			"- Item (ix): Technology incubation (open-source development)\n" +
			"- Animal welfare: Explicitly mentioned in Schedule VII\n" +
			"- Item (ii): Education (campus programme)",
	}
}

// talkingPointKeys fixes the listing order for talking point audiences.
var talkingPointKeys = []string{
	"mess_committee",
	"research_ethics_board",
	"sustainability_cell",
	"placement_cell",
}

var talkingPoints = map[string][]string{
	"mess_committee": {
		"Request transparent sourcing information for dairy and eggs in campus mess",
		"Propose weekly plant-based menu options (not 'vegan day' — that's alienating)",
		"Request FSSAI test reports for milk supplied to campus",
		"Cite IIT Bombay, IIT Delhi examples of expanded plant-based options",
		"Cost argument: plant protein (dal, soy) is CHEAPER than animal protein",
	},
	"research_ethics_board": {
		"Review of animal testing protocols in research labs",
		"Propose alignment with CPCSEA (Committee for the Purpose of Control and " +
			"Supervision of Experiments on Animals) guidelines",
		"Advocate for 3Rs: Replacement, Reduction, Refinement",
		"Highlight computational alternatives available in 2026",
	},
	"sustainability_cell": {
		"Carbon footprint audit of campus food procurement",
		"Water footprint analysis: dairy vs. plant-based in campus kitchen",
		"Align with campus sustainability goals (most IITs have these)",
		"Propose pilot: one semester tracking environmental impact of food choices",
	},
	"placement_cell": {
		"CSR proposal templates for visiting companies",
		"Frame animal welfare tech as a career opportunity (GFI India, alt-protein startups)",
		"Highlight companies with animal welfare commitments for placement talks",
	},
}

// TalkingPoints returns points for meeting the named campus body, or
// false for an unknown audience. Audience keys are matched case
// insensitively.
func TalkingPoints(audience string) ([]string, bool) {
	pts, ok := talkingPoints[strings.ToLower(audience)]
	return pts, ok
}

// TalkingPointAudiences lists the campus bodies with prepared points.
func TalkingPointAudiences() []string {
	return talkingPointKeys
}
