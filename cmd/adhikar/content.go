package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openpaws/adhikar/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Hindi content helpers and cultural framing",
}

var contentGlossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Show the accessible Hindustani glossary",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, english := range content.GlossaryTerms() {
			t := content.LookupTerm(english)
			fmt.Printf("%-18s %-22s %s\n", english, t.Roman, t.Devanagari)
		}
		return nil
	},
}

var contentTermCmd = &cobra.Command{
	Use:   "term <english>",
	Short: "Look up one term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		english := strings.Join(args, " ")
		t := content.LookupTerm(english)
		fmt.Printf("%s → %s (%s)\n", english, t.Roman, t.Devanagari)
		return nil
	},
}

var contentMessageCmd = &cobra.Command{
	Use:   "message",
	Short: "Build a shareable message with length accounting",
	RunE: func(cmd *cobra.Command, args []string) error {
		hindi, _ := cmd.Flags().GetString("hindi")
		english, _ := cmd.Flags().GetString("english")
		platform, _ := cmd.Flags().GetString("platform")
		if hindi == "" && english == "" {
			return fmt.Errorf("at least one of --hindi or --english is required")
		}

		var msg content.Translated
		if platform == "" || platform == "whatsapp" {
			msg = content.WhatsAppMessage(hindi, english)
			if msg.CharacterCount > content.WhatsAppMaxChars {
				printWarning("Message is %d characters; WhatsApp forwards work best under %d",
					msg.CharacterCount, content.WhatsAppMaxChars)
			}
		} else {
			msg = content.SocialMediaPost(hindi, english, platform)
		}

		printStatus("Format", "%s", msg.Format)
		printStatus("Characters", "%d", msg.CharacterCount)
		if msg.WordCountHindi > 0 {
			printStatus("Hindi words", "%d", msg.WordCountHindi)
		}
		fmt.Println(msg.HindiDevanagari)
		if msg.English != "" {
			fmt.Print("\n---\n\n")
			fmt.Println(msg.English)
		}
		return nil
	},
}

var contentDairyFactsCmd = &cobra.Command{
	Use:   "dairy-facts",
	Short: "Prebuilt dairy facts message (Hindi)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(content.DairyFactsHindi())
		return nil
	},
}

var contentWaterCrisisCmd = &cobra.Command{
	Use:   "water-crisis",
	Short: "Prebuilt water crisis message (Hindi)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(content.WaterCrisisHindi())
		return nil
	},
}

var contentGuideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Language register guide for writers",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(content.LanguageGuide())
		return nil
	},
}

var contentFramesCmd = &cobra.Command{
	Use:   "frames [key]",
	Short: "Show the cultural framing playbook",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			frame, ok := content.GetFrame(args[0])
			if !ok {
				fmt.Printf("No frame %q. Try: adhikar content frames\n", args[0])
				return nil
			}
			return writeJSON(os.Stdout, frame)
		}
		for _, key := range content.ListFrames() {
			frame, _ := content.GetFrame(key)
			fmt.Printf("%-28s %s\n", key, frame.Name)
		}
		return nil
	},
}

var contentBriefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Generate a content brief for a topic and audience",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		audience, _ := cmd.Flags().GetString("audience")
		platform, _ := cmd.Flags().GetString("platform")
		frames, _ := cmd.Flags().GetStringArray("frame")

		fmt.Println(content.ContentBrief(topic, audience, platform, frames))
		return nil
	},
}

var contentCheckCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Check draft content for casteist or communal framing",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			text = string(data)
		}
		if text == "" {
			return fmt.Errorf("pass text as an argument or use --file")
		}

		for _, warning := range content.SensitivityCheck(text) {
			fmt.Println(warning)
		}
		return nil
	},
}

func init() {
	contentMessageCmd.Flags().String("hindi", "", "Hindi (Devanagari) text")
	contentMessageCmd.Flags().String("english", "", "English text")
	contentMessageCmd.Flags().String("platform", "", "whatsapp (default), twitter, instagram, facebook")

	contentBriefCmd.Flags().String("topic", "", "what the content is about")
	contentBriefCmd.Flags().String("audience", "", "who it is for")
	contentBriefCmd.Flags().String("platform", "whatsapp", "where it will run")
	contentBriefCmd.Flags().StringArray("frame", nil, "frame key to use (repeatable; default: recommended)")

	contentCheckCmd.Flags().String("file", "", "read the draft from a file")

	contentCmd.AddCommand(contentGlossaryCmd)
	contentCmd.AddCommand(contentTermCmd)
	contentCmd.AddCommand(contentMessageCmd)
	contentCmd.AddCommand(contentDairyFactsCmd)
	contentCmd.AddCommand(contentWaterCrisisCmd)
	contentCmd.AddCommand(contentGuideCmd)
	contentCmd.AddCommand(contentFramesCmd)
	contentCmd.AddCommand(contentBriefCmd)
	contentCmd.AddCommand(contentCheckCmd)
}
