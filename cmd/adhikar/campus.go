package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openpaws/adhikar/internal/campus"
)

var campusCmd = &cobra.Command{
	Use:   "campus",
	Short: "Materials for campus organizing",
}

var campusWorkshopCmd = &cobra.Command{
	Use:   "workshop",
	Short: "AI ethics and animal sentience workshop module",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := campus.AIEthicsWorkshop()
		fmt.Printf("%s\n", colorize(colorBold, w.Title))
		fmt.Printf("%s | %s\n\n", w.Duration, w.Target)
		for i, s := range w.Sessions {
			fmt.Printf("Session %d: %s\n", i+1, s.Title)
			for _, item := range s.Outline {
				fmt.Printf("  - %s\n", item)
			}
			if len(s.Readings) > 0 {
				fmt.Println("  Readings:")
				for _, r := range s.Readings {
					fmt.Printf("    %s\n", r)
				}
			}
			if s.HandsOn != "" {
				fmt.Printf("  Hands-on: %s\n", s.HandsOn)
			}
			fmt.Println()
		}
		if len(w.ResourcesNeeded) > 0 {
			fmt.Printf("Resources: %s\n", strings.Join(w.ResourcesNeeded, ", "))
		}
		return nil
	},
}

var campusHackathonCmd = &cobra.Command{
	Use:   "hackathon",
	Short: "Hackathon problem statements",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		problems := campus.HackathonProblems()
		if asJSON {
			return writeJSON(os.Stdout, problems)
		}
		for _, p := range problems {
			fmt.Printf("%s [%s]\n", colorize(colorBold, p.Title), p.Difficulty)
			fmt.Printf("  %s\n", p.Description)
			fmt.Printf("  Impact metric: %s\n\n", p.ImpactMetric)
		}
		return nil
	},
}

var campusClubCmd = &cobra.Command{
	Use:   "club",
	Short: "Animal welfare club constitution template",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeJSON(os.Stdout, campus.Constitution())
	},
}

var campusCSRCmd = &cobra.Command{
	Use:   "csr",
	Short: "Draft a CSR funding proposal",
	Long: "Draft a CSR funding proposal. Focus areas: " +
		strings.Join(campus.CSRFocusAreas, ", ") + ".",
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		focus, _ := cmd.Flags().GetString("focus")
		return writeJSON(os.Stdout, campus.CSRProposalFor(company, focus))
	},
}

var campusTalkingPointsCmd = &cobra.Command{
	Use:   "talking-points [audience]",
	Short: "Talking points for campus bodies",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, a := range campus.TalkingPointAudiences() {
				fmt.Println(a)
			}
			return nil
		}
		points, ok := campus.TalkingPoints(args[0])
		if !ok {
			fmt.Printf("No talking points for %q. Try: adhikar campus talking-points\n", args[0])
			return nil
		}
		for _, p := range points {
			fmt.Printf("- %s\n", p)
		}
		return nil
	},
}

var campusBangaloreCmd = &cobra.Command{
	Use:   "bangalore [section]",
	Short: "Bangalore tech community hub materials",
	Long: `Bangalore tech community hub materials. Sections:

  meetups     pre-designed meetup templates
  ecosystem   alt-protein startups, VCs, and organizations
  campuses    tech campuses for outreach
  partners    partnership opportunities
  calendar    quarterly content/event calendar

With no section, a short overview of each is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		section := ""
		if len(args) == 1 {
			section = args[0]
		}

		switch section {
		case "meetups":
			for _, m := range campus.BangaloreMeetups() {
				fmt.Printf("%s\n", colorize(colorBold, m.Title))
				fmt.Printf("%s | %s | %s\n", m.Format, m.Duration, m.EstimatedAttendance)
				fmt.Printf("Audience: %s\n\n%s\n\n", m.TargetAudience, m.Description)
				fmt.Println("Agenda:")
				for _, item := range m.Agenda {
					fmt.Printf("  %s\n", item)
				}
				fmt.Printf("Venues: %s\n", strings.Join(m.VenueSuggestions, "; "))
				fmt.Printf("Promotion: %s\n\n", strings.Join(m.PromotionChannels, "; "))
			}
		case "ecosystem":
			return writeJSON(os.Stdout, campus.BangaloreEcosystem())
		case "campuses":
			for _, c := range campus.BangaloreEcosystem().TechCampuses {
				fmt.Println(c)
			}
		case "partners":
			for _, p := range campus.PartnershipOpportunities() {
				fmt.Printf("%s [%s]\n", colorize(colorBold, p.Partner), p.Type)
				fmt.Printf("  %s\n", p.Opportunity)
				fmt.Printf("  Contact: %s\n\n", p.ContactMethod)
			}
		case "calendar":
			for _, m := range campus.ContentCalendar() {
				fmt.Printf("%s\n", colorize(colorBold, fmt.Sprintf("Month %d", m.Month)))
				for i, w := range m.Weeks {
					fmt.Printf("  Week %d: %s\n", i+1, w)
				}
			}
		case "":
			eco := campus.BangaloreEcosystem()
			fmt.Printf("Meetup templates:          %d\n", len(campus.BangaloreMeetups()))
			fmt.Printf("Alt-protein startups:      %d\n", len(eco.AltProteinStartups))
			fmt.Printf("Organizations:             %d\n", len(eco.Organizations))
			fmt.Printf("Relevant VCs:              %d\n", len(eco.RelevantVCs))
			fmt.Printf("Tech campuses:             %d\n", len(eco.TechCampuses))
			fmt.Printf("Partnership opportunities: %d\n", len(campus.PartnershipOpportunities()))
			fmt.Println("\nSections: meetups, ecosystem, campuses, partners, calendar")
		default:
			return fmt.Errorf("unknown section %q (want meetups, ecosystem, campuses, partners, or calendar)", section)
		}
		return nil
	},
}

func init() {
	campusHackathonCmd.Flags().Bool("json", false, "emit JSON")
	campusCSRCmd.Flags().String("company", "", "company the proposal targets")
	campusCSRCmd.Flags().String("focus", "food_safety", "focus area")

	campusCmd.AddCommand(campusWorkshopCmd)
	campusCmd.AddCommand(campusHackathonCmd)
	campusCmd.AddCommand(campusClubCmd)
	campusCmd.AddCommand(campusCSRCmd)
	campusCmd.AddCommand(campusTalkingPointsCmd)
	campusCmd.AddCommand(campusBangaloreCmd)
}
