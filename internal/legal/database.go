// Package legal holds a searchable reference database of Indian animal
// welfare law (constitutional provisions, statutes, landmark cases) and a
// PIL draft generator built on top of it.
package legal

import "strings"

// Provision is a constitutional provision, statute section, or rule.
type Provision struct {
	Identifier   string
	Title        string
	Source       string
	Text         string
	Relevance    string
	AdvocacyUse  string
	RelatedCases []string
}

// Case is a landmark judicial decision.
type Case struct {
	Citation      string
	Name          string
	Court         string
	Year          int
	Judges        []string
	FactsSummary  string
	Holding       string
	KeyPrinciples []string
	Relevance     string
	FullCitation  string
}

// SearchResult groups matching keys by category.
type SearchResult struct {
	Provisions []string
	Statutes   []string
	Cases      []string
}

// Citations is the recommended authority set for a PIL topic.
type Citations struct {
	Constitutional []Provision
	Statutory      []Provision
	CaseLaw        []Case
}

// Database is a read-only index over the legal reference tables.
type Database struct {
	provisions map[string]Provision
	statutes   map[string]Provision
	cases      map[string]Case

	provisionKeys []string
	statuteKeys   []string
	caseKeys      []string
}

// NewDatabase builds the database from the static tables.
func NewDatabase() *Database {
	return &Database{
		provisions:    constitutionalProvisions,
		statutes:      statutes,
		cases:         landmarkCases,
		provisionKeys: []string{"article_48", "article_48a", "article_51a_g", "article_21"},
		statuteKeys: []string{
			"pca_act_1960", "transport_rules_1978", "transport_rules_2001",
			"slaughter_house_rules_2001", "fss_act_2006", "environment_protection_act_1986",
		},
		caseKeys: []string{
			"nagaraja_2014", "people_for_animals_goa", "nr_nair_2001",
			"gauri_maulekhi_2016", "laxmi_narain_modi_2013", "mirzapur_2005",
		},
	}
}

// Provision returns a constitutional provision by key.
func (d *Database) Provision(key string) (Provision, bool) {
	p, ok := d.provisions[key]
	return p, ok
}

// Statute returns a statute by key.
func (d *Database) Statute(key string) (Provision, bool) {
	s, ok := d.statutes[key]
	return s, ok
}

// Case returns a landmark case by key.
func (d *Database) Case(key string) (Case, bool) {
	c, ok := d.cases[key]
	return c, ok
}

// ProvisionKeys lists constitutional provision keys in table order.
func (d *Database) ProvisionKeys() []string { return append([]string(nil), d.provisionKeys...) }

// StatuteKeys lists statute keys in table order.
func (d *Database) StatuteKeys() []string { return append([]string(nil), d.statuteKeys...) }

// CaseKeys lists landmark case keys in table order.
func (d *Database) CaseKeys() []string { return append([]string(nil), d.caseKeys...) }

// Search looks for a keyword across all materials, case-insensitively.
func (d *Database) Search(query string) SearchResult {
	q := strings.ToLower(query)
	var res SearchResult

	for _, key := range d.provisionKeys {
		p := d.provisions[key]
		if containsFold(q, p.Text, p.Relevance, p.Title) {
			res.Provisions = append(res.Provisions, key)
		}
	}
	for _, key := range d.statuteKeys {
		s := d.statutes[key]
		if containsFold(q, s.Text, s.Relevance, s.Title) {
			res.Statutes = append(res.Statutes, key)
		}
	}
	for _, key := range d.caseKeys {
		c := d.cases[key]
		fields := append([]string{c.Holding, c.FactsSummary, c.Name}, c.KeyPrinciples...)
		if containsFold(q, fields...) {
			res.Cases = append(res.Cases, key)
		}
	}
	return res
}

func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// CitationsFor returns the recommended authorities for a PIL topic. The
// core provisions (51A(g), Article 21) and Nagaraja are always included;
// topic keywords pull in the specific statutes and cases.
func (d *Database) CitationsFor(topic string) Citations {
	t := strings.ToLower(topic)
	c := Citations{
		Constitutional: []Provision{d.provisions["article_51a_g"], d.provisions["article_21"]},
	}

	if anyWord(t, "transport", "vehicle", "road") {
		c.Statutory = append(c.Statutory, d.statutes["transport_rules_1978"], d.statutes["transport_rules_2001"])
		c.CaseLaw = append(c.CaseLaw, d.cases["gauri_maulekhi_2016"])
	}
	if anyWord(t, "slaughter", "meat", "killing") {
		c.Statutory = append(c.Statutory, d.statutes["slaughter_house_rules_2001"], d.statutes["fss_act_2006"])
		c.CaseLaw = append(c.CaseLaw, d.cases["laxmi_narain_modi_2013"])
	}
	if anyWord(t, "pollution", "environment", "water", "effluent") {
		c.Constitutional = append(c.Constitutional, d.provisions["article_48a"])
		c.Statutory = append(c.Statutory, d.statutes["environment_protection_act_1986"])
	}
	if anyWord(t, "cruelty", "welfare", "suffering", "dairy", "poultry") {
		c.Statutory = append(c.Statutory, d.statutes["pca_act_1960"])
	}

	c.CaseLaw = append(c.CaseLaw, d.cases["nagaraja_2014"])
	return c
}

func anyWord(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
