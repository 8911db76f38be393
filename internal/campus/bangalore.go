package campus

// MeetupTemplate is a ready-to-run tech community event.
type MeetupTemplate struct {
	Title               string   `json:"title"`
	Format              string   `json:"format"`
	Duration            string   `json:"duration"`
	Description         string   `json:"description"`
	Agenda              []string `json:"agenda"`
	TargetAudience      string   `json:"target_audience"`
	VenueSuggestions    []string `json:"venue_suggestions"`
	PromotionChannels   []string `json:"promotion_channels"`
	EstimatedAttendance string   `json:"estimated_attendance"`
}

// StartupProfile is a startup relevant to animal advocacy in Bangalore.
type StartupProfile struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
	Relevance   string `json:"relevance,omitempty"`
}

// EcosystemOrg is an established organization in the Bangalore ecosystem.
type EcosystemOrg struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Focus    string `json:"focus"`
	Website  string `json:"website,omitempty"`
}

// Ecosystem maps the Bangalore alt-protein and animal welfare landscape.
// Bangalore is the natural hub: India's startup capital, home to IISc and
// IIM-B, GFI India's office, several plant-based startups, and CUPA.
type Ecosystem struct {
	Organizations      []EcosystemOrg   `json:"organizations"`
	AltProteinStartups []StartupProfile `json:"alt_protein_startups"`
	RelevantVCs        []string         `json:"relevant_vcs"`
	TechCampuses       []string         `json:"tech_campuses"`
}

func BangaloreEcosystem() Ecosystem {
	return Ecosystem{
		Organizations: []EcosystemOrg{
			{
				Name:     "CUPA (Compassion Unlimited Plus Action)",
				Type:     "Animal welfare NGO",
				Location: "Bangalore",
				Focus:    "Rescue, rehabilitation, advocacy. One of Bangalore's oldest animal welfare orgs.",
				Website:  "https://www.cupabangalore.org",
			},
			{
				Name:     "Good Food Institute India",
				Type:     "Alternative protein think tank",
				Location: "Bangalore",
				Focus:    "Smart protein (plant-based, cultivated, fermentation). Policy, science, industry.",
				Website:  "https://gfi.org.in",
			},
			{
				Name:     "Humane Society International / India",
				Type:     "Animal welfare NGO",
				Location: "Multiple offices including Bangalore region",
				Focus:    "Farm animals, street animals, wildlife, disaster response.",
			},
			{
				Name:     "FIAPO (Federation of Indian Animal Protection Organisations)",
				Type:     "Federation",
				Location: "Delhi (national), but Bangalore members active",
				Focus:    "Farm animals, LivKind campaign. Policy advocacy.",
			},
		},
		AltProteinStartups: []StartupProfile{
			{
				Name:        "Imagine Meats",
				Category:    "Plant-based meat",
				Description: "Founded by Genelia and Riteish Deshmukh. Plant-based meat products.",
				Relevance:   "Celebrity backing brings mainstream visibility.",
			},
			{
				Name:        "Blue Tribe Foods",
				Category:    "Plant-based meat",
				Description: "Plant-based chicken, mutton, keema. YC-backed.",
				Relevance:   "Well-funded, aggressive expansion in Indian market.",
			},
			{
				Name:        "Shaka Harry",
				Category:    "Plant-based meat",
				Description: "Bangalore-based. Plant-based kebabs, nuggets, burgers.",
				Relevance:   "Local to Bangalore. Good partnership potential.",
			},
			{
				Name:        "Alt Foods",
				Category:    "Plant-based dairy",
				Description: "Oat milk and plant-based dairy products.",
				Relevance:   "Direct competition to dairy. Based in India.",
			},
			{
				Name:        "Piper Leaf (One Good)",
				Category:    "Plant-based dairy",
				Description: "Oat-based curd and dairy alternatives.",
				Relevance:   "Indian-first products: curd, paneer alternatives.",
			},
			{
				Name:        "ClearMeat",
				Category:    "Cultivated meat",
				Description: "India's first cultivated meat startup. IIT Delhi origins.",
				Relevance:   "R&D stage. Potential for campus partnerships.",
			},
			{
				Name:        "Myoworks",
				Category:    "Cultivated meat",
				Description: "Whole-cut cultivated meat using scaffold technology.",
				Relevance:   "Deep tech. Interesting for IISc/engineering collaborations.",
			},
			{
				Name:        "String Bio",
				Category:    "Fermentation / gas fermentation",
				Description: "Converting methane to protein. Bangalore-based.",
				Relevance:   "Novel approach, combining sustainability and tech angles.",
			},
		},
		RelevantVCs: []string{
			"Omnivore (agri-food VC, has invested in alt-protein)",
			"Fireside Ventures (consumer brands, invested in plant-based)",
			"NABVENTURES (NABARD VC arm, agri focus)",
			"Beyond Next Ventures (deep tech, Japan-India)",
			"Better Bite Ventures (dedicated alt-protein VC, global)",
		},
		TechCampuses: []string{
			"IISc (Indian Institute of Science) — Bangalore",
			"IIM Bangalore",
			"IIIT Bangalore",
			"PES University",
			"RV College of Engineering",
			"BMS College of Engineering",
			"MSRIT (M.S. Ramaiah Institute of Technology)",
			"Christ University",
			"Bangalore University",
		},
	}
}

// BangaloreMeetups returns pre-designed meetup templates for the Bangalore
// tech community.
func BangaloreMeetups() []MeetupTemplate {
	return []MeetupTemplate{
		{
			Title:    "AI for Animal Welfare: What Engineers Can Build",
			Format:   "Lightning talks + hackathon kickoff",
			Duration: "3 hours (Saturday afternoon)",
			Description: "5-minute lightning talks on technology applications for animal " +
				"welfare, followed by team formation for a weekend hackathon. " +
				"Problems include factory farm detection from satellite imagery, " +
				"RTI automation, and supply chain transparency.",
			Agenda: []string{
				"0:00-0:15 — Welcome and context setting",
				"0:15-0:45 — Lightning talks (5 min each, 6 speakers)",
				"  - Computer vision for animal welfare monitoring",
				"  - NLP for RTI response analysis",
				"  - Satellite imagery for factory farm mapping",
				"  - Blockchain for supply chain transparency",
				"  - AI for alternative protein R&D",
				"  - Open data for advocacy",
				"0:45-1:15 — Problem statement presentation and Q&A",
				"1:15-1:30 — Break and networking",
				"1:30-3:00 — Team formation and initial hacking",
			},
			TargetAudience: "Software engineers, data scientists, ML engineers",
			VenueSuggestions: []string{
				"91springboard (Koramangala or Indiranagar)",
				"WeWork (multiple Bangalore locations)",
				"Cobalt (BTP or Outer Ring Road)",
				"IISc campus (if partnering with student org)",
				"GFI India office (for smaller events)",
			},
			PromotionChannels: []string{
				"Meetup.com (Bangalore tech groups)",
				"HasGeek (Bangalore tech community hub)",
				"LinkedIn (tech professional networks)",
				"Twitter/X (Bangalore tech community)",
				"Dev.to and Hacker News (Show HN for tools built)",
				"College tech club mailing lists",
			},
			EstimatedAttendance: "30-60 people",
		},
		{
			Title:    "The Future of Protein: Tech, Science, and India's Food System",
			Format:   "Panel discussion + tasting",
			Duration: "2.5 hours (weekday evening)",
			Description: "Panel discussion with founders from alt-protein startups, " +
				"food scientists, and animal welfare advocates. Followed by " +
				"a tasting of plant-based and fermentation-derived products.",
			Agenda: []string{
				"0:00-0:10 — Welcome",
				"0:10-1:00 — Panel: 'Can technology end factory farming?'",
				"  Panelists: Alt-protein founder, food scientist, animal welfare advocate, VC",
				"1:00-1:20 — Audience Q&A",
				"1:20-1:40 — Product tasting (partner with local plant-based brands)",
				"1:40-2:30 — Open networking",
			},
			TargetAudience: "Startup ecosystem, VCs, food industry, curious techies",
			VenueSuggestions: []string{
				"Startup incubator (NSRCEL at IIM-B, CIE at IIIT-B)",
				"Co-working space with event area",
				"GFI India office",
				"Cafe with private area (Matteo Coffea, Third Wave Coffee event space)",
			},
			PromotionChannels: []string{
				"LinkedIn (startup and VC networks)",
				"HasGeek",
				"YourStory events calendar",
				"GFI India mailing list",
				"Bangalore Startups WhatsApp/Telegram groups",
			},
			EstimatedAttendance: "40-80 people",
		},
		{
			Title:    "RTI for Transparency: Using India's Most Powerful Law",
			Format:   "Workshop (hands-on)",
			Duration: "2 hours (weekend morning)",
			Description: "Hands-on workshop on filing RTI applications targeting animal " +
				"agriculture bodies. Participants will draft and optionally file " +
				"a real RTI by the end of the session.",
			Agenda: []string{
				"0:00-0:20 — RTI Act 101: Your right to know",
				"0:20-0:40 — Animal agriculture: What the government knows but won't tell you",
				"0:40-1:00 — Demo: drafting an RTI with the CLI generator",
				"1:00-1:40 — Hands-on: Draft your own RTI (guided)",
				"1:40-2:00 — Filing options and tracking your RTI",
			},
			TargetAudience: "Anyone — no technical skills required",
			VenueSuggestions: []string{
				"Community library or cultural centre",
				"Co-working space",
				"University campus (any Bangalore college)",
			},
			PromotionChannels: []string{
				"WhatsApp community groups",
				"Instagram (Bangalore activism accounts)",
				"Local animal welfare org networks (CUPA, PFA Bangalore)",
			},
			EstimatedAttendance: "15-30 people",
		},
	}
}

// Partnership is a concrete outreach opportunity in the Bangalore ecosystem.
type Partnership struct {
	Partner       string `json:"partner"`
	Type          string `json:"type"`
	Opportunity   string `json:"opportunity"`
	ContactMethod string `json:"contact_method"`
}

func PartnershipOpportunities() []Partnership {
	return []Partnership{
		{
			Partner: "Good Food Institute India",
			Type:    "Research + events",
			Opportunity: "Co-host alt-protein events, contribute to their " +
				"open-access research, connect with their startup network.",
			ContactMethod: "Through website or LinkedIn",
		},
		{
			Partner: "CUPA Bangalore",
			Type:    "Advocacy + volunteering",
			Opportunity: "Joint campaigns on street animals and farm animals. " +
				"CUPA has legal expertise for PIL work.",
			ContactMethod: "Through website",
		},
		{
			Partner: "IISc Centre for Sustainable Technologies",
			Type:    "Research collaboration",
			Opportunity: "Environmental impact assessment of factory farms. " +
				"Water and air quality monitoring near facilities.",
			ContactMethod: "Through department website or faculty contact",
		},
		{
			Partner: "HasGeek (tech community platform)",
			Type:    "Event hosting",
			Opportunity: "List events on HasGeek for Bangalore tech audience reach. " +
				"Potentially co-brand with their sustainability track.",
			ContactMethod: "hasgeek.com event submission",
		},
		{
			Partner: "Alt-protein startups (Shaka Harry, Blue Tribe, etc.)",
			Type:    "Event sponsorship + tasting",
			Opportunity: "Startups provide product samples for events. " +
				"We provide audience of potential customers and talent.",
			ContactMethod: "Direct outreach via LinkedIn founders",
		},
	}
}

// CalendarMonth is one month of the quarterly hub plan, week by week.
type CalendarMonth struct {
	Month int      `json:"month"`
	Weeks []string `json:"weeks"`
}

// ContentCalendar returns the quarterly content and event calendar template
// for the Bangalore hub.
func ContentCalendar() []CalendarMonth {
	return []CalendarMonth{
		{Month: 1, Weeks: []string{
			"Planning meeting. Set quarterly goals.",
			"Social media launch — 'Did You Know' series (Bangalore-specific data)",
			"RTI Workshop (weekend)",
			"Campus visit — IISc or IIM-B outreach",
		}},
		{Month: 2, Weeks: []string{
			"AI for Animal Welfare meetup",
			"Blog post: 'Bangalore's Water and the Dairy Connection'",
			"Alt-protein tasting event (partner with startup)",
			"RTI follow-up session (track filed RTIs)",
		}},
		{Month: 3, Weeks: []string{
			"Panel: 'Future of Protein' with startup founders",
			"Open-source coding sprint (weekend hackathon)",
			"Campus club outreach (2-3 campuses)",
			"Quarterly review. Document impact. Plan next quarter.",
		}},
	}
}
