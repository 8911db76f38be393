package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openpaws/adhikar/internal/research"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Counter-narrative research on the dairy industry",
}

var researchProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "GCMMF (Amul) corporate profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeJSON(os.Stdout, research.GCMMFProfile())
	},
}

var researchFactSheetCmd = &cobra.Command{
	Use:   "fact-sheet",
	Short: "Print the full research fact sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(research.FactSheet())
		return nil
	},
}

var researchTopicCmd = &cobra.Command{
	Use:   "topic [key]",
	Short: "Show one research point, or list the topics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, key := range research.Topics() {
				fmt.Println(key)
			}
			return nil
		}

		point, ok := research.GetPoint(args[0])
		if !ok {
			fmt.Printf("No topic %q. Try: adhikar research topic\n", args[0])
			return nil
		}
		fmt.Printf("%s\n\n", colorize(colorBold, point.Claim))
		fmt.Printf("Evidence: %s\n", point.Evidence)
		fmt.Printf("Source: %s (%d)\n\n", point.Source, point.SourceYear)
		fmt.Printf("Counter-narrative: %s\n", point.CounterNarrative)
		if point.AmulResponse != "" {
			fmt.Printf("\nLikely industry response: %s\n", point.AmulResponse)
			fmt.Printf("Rebuttal: %s\n", point.Rebuttal)
		}
		return nil
	},
}

var researchSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the research database",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := research.Search(strings.Join(args, " "))
		if len(keys) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, key := range keys {
			point, _ := research.GetPoint(key)
			fmt.Printf("%-28s %s\n", key, point.Claim)
		}
		return nil
	},
}

var researchRebuttalsCmd = &cobra.Command{
	Use:   "rebuttals",
	Short: "Prepared rebuttals to likely industry responses",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range research.Rebuttals() {
			fmt.Printf("%s\n", colorize(colorBold, r.Topic))
			fmt.Printf("  They will say: %s\n", r.AmulLikelyResponse)
			fmt.Printf("  Answer:        %s\n\n", r.OurRebuttal)
		}
		return nil
	},
}

var researchNarrativeCmd = &cobra.Command{
	Use:   "narrative [kind]",
	Short: "Generate a bilingual campaign narrative",
	Long: "Generate a bilingual campaign narrative. Kinds: " +
		strings.Join(research.NarrativeKinds, ", ") + ".\nWith no kind, all narratives are generated.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, _ := cmd.Flags().GetString("platform")

		var narratives []research.Narrative
		if len(args) == 1 {
			n, ok := research.Generate(args[0], platform)
			if !ok {
				return fmt.Errorf("unknown narrative kind %q", args[0])
			}
			narratives = []research.Narrative{n}
		} else {
			narratives = research.GenerateAll(platform)
		}

		for _, n := range narratives {
			fmt.Printf("%s\n", colorize(colorBold, n.Title))
			fmt.Printf("Angle: %s | Audience: %s | Platform: %s\n\n", n.Angle, n.TargetAudience, n.Platform)
			fmt.Println(n.ContentHindi)
			fmt.Println()
			fmt.Println(n.ContentEnglish)
			if len(n.Sources) > 0 {
				fmt.Println("\nSources:")
				for _, s := range n.Sources {
					fmt.Printf("  - %s\n", s)
				}
			}
			if n.CasteCheckNotes != "" {
				printStep("Framing note: %s", n.CasteCheckNotes)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	researchNarrativeCmd.Flags().String("platform", "whatsapp", "target platform")

	researchCmd.AddCommand(researchProfileCmd)
	researchCmd.AddCommand(researchFactSheetCmd)
	researchCmd.AddCommand(researchTopicCmd)
	researchCmd.AddCommand(researchSearchCmd)
	researchCmd.AddCommand(researchRebuttalsCmd)
	researchCmd.AddCommand(researchNarrativeCmd)
}
