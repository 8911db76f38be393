package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openpaws/adhikar/internal/config"
	"github.com/openpaws/adhikar/internal/mapping"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Facility registry, operators, census data, pollution overlays",
}

// facilityRegistryPath is where the facility register lives inside the
// data dir.
func facilityRegistryPath() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.Storage.DataDir, "facilities.json"), nil
}

func loadMapper() (*mapping.Mapper, string, error) {
	path, err := facilityRegistryPath()
	if err != nil {
		return nil, "", err
	}
	m := mapping.NewMapper()
	if _, err := m.LoadJSON(path); err != nil {
		return nil, "", fmt.Errorf("loading facility register: %w", err)
	}
	return m, path, nil
}

// --- add ---

var mapAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a facility to the register",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, path, err := loadMapper()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		ftype, _ := cmd.Flags().GetString("type")
		operator, _ := cmd.Flags().GetString("operator")
		state, _ := cmd.Flags().GetString("state")
		district, _ := cmd.Flags().GetString("district")
		address, _ := cmd.Flags().GetString("address")
		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")
		category, _ := cmd.Flags().GetString("pcb-category")
		cto, _ := cmd.Flags().GetString("cto")
		capacity, _ := cmd.Flags().GetString("capacity")
		animals, _ := cmd.Flags().GetInt("animals")
		parent, _ := cmd.Flags().GetString("parent-company")
		sources, _ := cmd.Flags().GetStringArray("source")

		f := mapping.Facility{
			Name:          name,
			Type:          mapping.FacilityType(ftype),
			Operator:      operator,
			State:         state,
			District:      district,
			Address:       address,
			Latitude:      lat,
			Longitude:     lon,
			PCBCategory:   mapping.PCBCategory(category),
			CTONumber:     cto,
			Capacity:      capacity,
			AnimalCount:   animals,
			ParentCompany: parent,
			DataSources:   sources,
		}
		if err := m.Add(f); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := m.SaveJSON(path); err != nil {
			return err
		}
		printSuccess("Added %q (%d facilities in register)", name, len(m.Facilities()))
		return nil
	},
}

func init() {
	f := mapAddCmd.Flags()
	f.String("name", "", "facility name")
	f.String("type", "", "facility type (e.g. poultry_broiler, dairy_processing)")
	f.String("operator", "", "operating company")
	f.String("state", "", "state")
	f.String("district", "", "district")
	f.String("address", "", "address")
	f.Float64("lat", 0, "latitude")
	f.Float64("lon", 0, "longitude")
	f.String("pcb-category", "", "pollution control board category (red, orange, green, white)")
	f.String("cto", "", "consent to operate number")
	f.String("capacity", "", "stated capacity")
	f.Int("animals", 0, "animal count")
	f.String("parent-company", "", "parent company")
	f.StringArray("source", nil, "data source (repeatable)")
}

// --- facilities / stats / geojson ---

var mapFacilitiesCmd = &cobra.Command{
	Use:   "facilities",
	Short: "List facilities, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadMapper()
		if err != nil {
			return err
		}

		state, _ := cmd.Flags().GetString("state")
		district, _ := cmd.Flags().GetString("district")
		ftype, _ := cmd.Flags().GetString("type")
		operator, _ := cmd.Flags().GetString("operator")

		facilities := m.Facilities()
		switch {
		case district != "":
			facilities = m.FilterByDistrict(district, state)
		case state != "":
			facilities = m.FilterByState(state)
		case ftype != "":
			facilities = m.FilterByType(mapping.FacilityType(ftype))
		case operator != "":
			facilities = m.FilterByOperator(operator)
		}

		if len(facilities) == 0 {
			fmt.Println("No facilities found.")
			return nil
		}
		for _, f := range facilities {
			fmt.Printf("%-40s %-20s %s, %s", f.Name, f.Type, f.District, f.State)
			if f.Operator != "" {
				fmt.Printf("  [%s]", f.Operator)
			}
			fmt.Println()
		}
		return nil
	},
}

var mapStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the facility register",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadMapper()
		if err != nil {
			return err
		}
		return writeJSON(os.Stdout, m.Stats())
	},
}

var mapGeoJSONCmd = &cobra.Command{
	Use:   "geojson",
	Short: "Export facilities with coordinates as GeoJSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadMapper()
		if err != nil {
			return err
		}

		fc := m.GeoJSON()
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return writeJSON(os.Stdout, fc)
		}
		data, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
			return err
		}
		printSuccess("GeoJSON written to %s (%d features)", output, len(fc.Features))
		return nil
	},
}

func init() {
	mapFacilitiesCmd.Flags().String("state", "", "filter by state")
	mapFacilitiesCmd.Flags().String("district", "", "filter by district")
	mapFacilitiesCmd.Flags().String("type", "", "filter by facility type")
	mapFacilitiesCmd.Flags().String("operator", "", "filter by operator (substring)")
	mapGeoJSONCmd.Flags().String("output", "", "output file path (default: stdout)")
}

// --- operators / census / hotspots ---

var mapOperatorsCmd = &cobra.Command{
	Use:   "operators [key]",
	Short: "Show the major animal agriculture operators",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			op, ok := mapping.OperatorInfo(args[0])
			if !ok {
				fmt.Printf("No operator %q. Try: adhikar map operators\n", args[0])
				return nil
			}
			return writeJSON(os.Stdout, op)
		}
		for _, s := range mapping.ListOperators() {
			fmt.Printf("%-20s %-45s %s\n", s.Key, s.Name, s.Type)
		}
		return nil
	},
}

var mapCensusCmd = &cobra.Command{
	Use:   "census [state]",
	Short: "Livestock census context, nationally or for a state",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state := ""
		if len(args) == 1 {
			state = args[0]
		}
		return writeJSON(os.Stdout, mapping.LivestockCensus(state))
	},
}

var mapHotspotsCmd = &cobra.Command{
	Use:   "hotspots",
	Short: "Known industrial animal agriculture clusters",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, h := range mapping.KnownHotspots() {
			fmt.Printf("%s\n", colorize(colorBold, h.Area))
			fmt.Printf("  %s: %s\n", h.Type, h.Description)
			if len(h.Operators) > 0 {
				fmt.Printf("  Operators: %s\n", strings.Join(h.Operators, ", "))
			}
		}
		return nil
	},
}

// --- assess ---

var mapAssessCmd = &cobra.Command{
	Use:   "assess <profile.json>",
	Short: "Assess pollution risk for a facility profile",
	Long: `Assess pollution risk for a facility profile.

The profile file describes the facility plus nearby water bodies,
settlements, and groundwater samples:

  {
    "facility_name": "Suguna Broiler Unit 14",
    "latitude": 11.2196, "longitude": 78.167,
    "water_bodies": [{"name": "Cauvery canal", "type": "canal", "distance_km": 0.4}],
    "settlements": [{"name": "Pallipalayam", "type": "village", "distance_km": 0.8, "population": 2400}],
    "groundwater": [{"monitoring_well_id": "TN-NMK-014", "location": "site boundary", "nitrate_mg_l": 62.0}]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading profile: %w", err)
		}
		var profile mapping.Profile
		if err := json.Unmarshal(data, &profile); err != nil {
			return fmt.Errorf("parsing profile: %w", err)
		}

		level, assessment := profile.AssessRisk()
		switch level {
		case mapping.RiskHigh:
			printError("Risk level: %s", level)
		case mapping.RiskMedium:
			printWarning("Risk level: %s", level)
		default:
			printSuccess("Risk level: %s", level)
		}
		fmt.Println(assessment)

		if report, _ := cmd.Flags().GetBool("report"); report {
			fmt.Println()
			fmt.Println(profile.Report())
		}
		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := mapping.ExportProfiles(output, []*mapping.Profile{&profile}); err != nil {
				return err
			}
			printSuccess("Assessed profile written to %s", output)
		}
		return nil
	},
}

func init() {
	mapAssessCmd.Flags().Bool("report", false, "also print the full site report")
	mapAssessCmd.Flags().String("output", "", "write the assessed profile JSON to a file")

	mapCmd.AddCommand(mapAddCmd)
	mapCmd.AddCommand(mapFacilitiesCmd)
	mapCmd.AddCommand(mapStatsCmd)
	mapCmd.AddCommand(mapGeoJSONCmd)
	mapCmd.AddCommand(mapOperatorsCmd)
	mapCmd.AddCommand(mapCensusCmd)
	mapCmd.AddCommand(mapHotspotsCmd)
	mapCmd.AddCommand(mapAssessCmd)
}
