package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openpaws/adhikar/internal/legal"
)

var legalCmd = &cobra.Command{
	Use:   "legal",
	Short: "Search animal welfare law and draft PILs",
}

var legalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List everything in the legal database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := legal.NewDatabase()

		fmt.Println(colorize(colorBold, "Constitutional provisions"))
		for _, key := range db.ProvisionKeys() {
			p, _ := db.Provision(key)
			fmt.Printf("  %-28s %s\n", key, p.Title)
		}
		fmt.Println(colorize(colorBold, "Statutes and rules"))
		for _, key := range db.StatuteKeys() {
			s, _ := db.Statute(key)
			fmt.Printf("  %-28s %s\n", key, s.Title)
		}
		fmt.Println(colorize(colorBold, "Landmark cases"))
		for _, key := range db.CaseKeys() {
			c, _ := db.Case(key)
			fmt.Printf("  %-28s %s (%d)\n", key, c.Name, c.Year)
		}
		return nil
	},
}

var legalShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show a provision, statute, or case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := legal.NewDatabase()
		key := args[0]

		if p, ok := db.Provision(key); ok {
			printProvision(p)
			return nil
		}
		if s, ok := db.Statute(key); ok {
			printProvision(s)
			return nil
		}
		if c, ok := db.Case(key); ok {
			printCase(c)
			return nil
		}

		fmt.Printf("No entry named %q. Try: adhikar legal search %s\n", key, key)
		return nil
	},
}

func printProvision(p legal.Provision) {
	fmt.Printf("%s — %s\n", colorize(colorBold, p.Identifier), p.Title)
	fmt.Printf("Source: %s\n\n", p.Source)
	fmt.Println(p.Text)
	if p.Relevance != "" {
		fmt.Printf("\nRelevance: %s\n", p.Relevance)
	}
	if p.AdvocacyUse != "" {
		fmt.Printf("Advocacy use: %s\n", p.AdvocacyUse)
	}
	if len(p.RelatedCases) > 0 {
		fmt.Printf("Related cases: %s\n", strings.Join(p.RelatedCases, "; "))
	}
}

func printCase(c legal.Case) {
	fmt.Printf("%s\n", colorize(colorBold, c.Name))
	fmt.Printf("%s, %s (%d)\n\n", c.Citation, c.Court, c.Year)
	fmt.Printf("Facts: %s\n\n", c.FactsSummary)
	fmt.Printf("Holding: %s\n", c.Holding)
	if len(c.KeyPrinciples) > 0 {
		fmt.Println("\nKey principles:")
		for _, p := range c.KeyPrinciples {
			fmt.Printf("  - %s\n", p)
		}
	}
	if c.Relevance != "" {
		fmt.Printf("\nRelevance: %s\n", c.Relevance)
	}
}

var legalSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search provisions, statutes, and cases",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := legal.NewDatabase()
		result := db.Search(strings.Join(args, " "))

		total := len(result.Provisions) + len(result.Statutes) + len(result.Cases)
		if total == 0 {
			fmt.Println("No matches.")
			return nil
		}

		for _, key := range result.Provisions {
			p, _ := db.Provision(key)
			fmt.Printf("provision  %-28s %s\n", key, p.Title)
		}
		for _, key := range result.Statutes {
			s, _ := db.Statute(key)
			fmt.Printf("statute    %-28s %s\n", key, s.Title)
		}
		for _, key := range result.Cases {
			c, _ := db.Case(key)
			fmt.Printf("case       %-28s %s (%d)\n", key, c.Name, c.Year)
		}
		return nil
	},
}

var legalCitationsCmd = &cobra.Command{
	Use:   "citations <topic>",
	Short: "Recommended authorities for a PIL topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := legal.NewDatabase()
		cites := db.CitationsFor(strings.Join(args, " "))

		fmt.Println(colorize(colorBold, "Constitutional"))
		for _, p := range cites.Constitutional {
			fmt.Printf("  %s — %s\n", p.Identifier, p.Title)
		}
		fmt.Println(colorize(colorBold, "Statutory"))
		for _, p := range cites.Statutory {
			fmt.Printf("  %s — %s\n", p.Identifier, p.Title)
		}
		fmt.Println(colorize(colorBold, "Case law"))
		for _, c := range cites.CaseLaw {
			fmt.Printf("  %s, %s\n", c.Name, c.Citation)
		}
		return nil
	},
}

var legalPILCmd = &cobra.Command{
	Use:   "pil <kind>",
	Short: "Draft a PIL petition skeleton",
	Long: `Draft a PIL petition skeleton. Kinds:

  dairy-expansion   against industrial dairy expansion
  slaughterhouse    against unlicensed slaughterhouses
  transport         against livestock transport violations
  pollution         against pollution from a factory farm

Drafts are starting points and must be reviewed by an advocate.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		petitioner, _ := cmd.Flags().GetString("petitioner")
		description, _ := cmd.Flags().GetString("description")
		state, _ := cmd.Flags().GetString("state")
		district, _ := cmd.Flags().GetString("district")
		court, _ := cmd.Flags().GetString("court")
		facility, _ := cmd.Flags().GetString("facility")
		facilityType, _ := cmd.Flags().GetString("facility-type")
		evidence, _ := cmd.Flags().GetString("evidence")
		species, _ := cmd.Flags().GetString("species")

		var draft *legal.Draft
		switch args[0] {
		case "dairy-expansion":
			draft = legal.AgainstDairyExpansion(legal.DairyExpansionParams{
				PetitionerName:        petitioner,
				PetitionerDescription: description,
				State:                 state,
				District:              district,
				FacilityDetails:       facility,
				EnvironmentalData:     evidence,
				HighCourt:             court,
			})
		case "slaughterhouse":
			draft = legal.AgainstUnlicensedSlaughterhouses(legal.SlaughterhouseParams{
				PetitionerName:        petitioner,
				PetitionerDescription: description,
				State:                 state,
				District:              district,
				EvidenceSummary:       evidence,
				HighCourt:             court,
			})
		case "transport":
			draft = legal.AgainstTransportViolations(legal.TransportViolationsParams{
				PetitionerName:        petitioner,
				PetitionerDescription: description,
				State:                 state,
				EvidenceSummary:       evidence,
				Species:               species,
				HighCourt:             court,
			})
		case "pollution":
			draft = legal.AgainstCAFOPollution(legal.CAFOPollutionParams{
				PetitionerName:        petitioner,
				PetitionerDescription: description,
				State:                 state,
				District:              district,
				FacilityName:          facility,
				FacilityType:          facilityType,
				PollutionData:         evidence,
				HighCourt:             court,
			})
		default:
			return fmt.Errorf("unknown PIL kind %q", args[0])
		}

		printWarning("This draft must be reviewed by a qualified advocate before filing")
		output, _ := cmd.Flags().GetString("output")
		return writeDocument(output, draft.Format())
	},
}

func init() {
	f := legalPILCmd.Flags()
	f.String("petitioner", "", "petitioner name")
	f.String("description", "", "petitioner description")
	f.String("state", "", "state")
	f.String("district", "", "district")
	f.String("court", "", "High Court (default derived from state)")
	f.String("facility", "", "facility details")
	f.String("facility-type", "", "poultry, dairy, or piggery (pollution)")
	f.String("evidence", "", "summary of evidence / RTI data")
	f.String("species", "", "species transported (transport)")
	f.String("output", "", "write the draft to a file instead of stdout")

	legalCmd.AddCommand(legalListCmd)
	legalCmd.AddCommand(legalShowCmd)
	legalCmd.AddCommand(legalSearchCmd)
	legalCmd.AddCommand(legalCitationsCmd)
	legalCmd.AddCommand(legalPILCmd)
}
