package rti

import "fmt"

// Prebuilt applications for the request types filed most often. Each
// returns a ready Application the caller can still adjust before rendering
// or tracking.

// AWBIInspectionRequest asks AWBI for inspection and compliance records on
// a specific facility.
func AWBIInspectionRequest(facilityName, facilityLocation, applicantName, applicantAddress string) *Application {
	return &Application{
		AgencyCode: "awbi",
		Questions: []string{
			fmt.Sprintf("Please provide copies of all inspection reports for %s located at %s "+
				"conducted by AWBI or its representatives in the last 3 years.", facilityName, facilityLocation),
			fmt.Sprintf("What is the current registration/recognition status of %s under the "+
				"Prevention of Cruelty to Animals Act, 1960?", facilityName),
			"How many complaints have been received against the said facility in the " +
				"last 3 years, and what action was taken on each complaint?",
			"Please provide the latest compliance report for the facility with respect " +
				"to the Animal Welfare Board of India guidelines.",
			"What is the animal capacity approved for this facility, and what is the " +
				"current animal population as per the last inspection?",
		},
		ApplicantName:    applicantName,
		ApplicantAddress: applicantAddress,
		Subject:          fmt.Sprintf("Inspection reports and compliance status of %s", facilityName),
	}
}

// FSSAIViolationsRequest asks FSSAI for food safety inspection and
// violation data at meat and dairy establishments in a district.
func FSSAIViolationsRequest(state, district, applicantName, applicantAddress string, year int) *Application {
	return &Application{
		AgencyCode: "fssai",
		Questions: []string{
			fmt.Sprintf("How many food safety inspections were conducted at slaughterhouses, "+
				"meat processing plants, and dairy processing units in %s district, %s during the year %d?",
				district, state, year),
			fmt.Sprintf("How many violations of the Food Safety and Standards (Licensing and "+
				"Registration of Food Businesses) Regulations, 2011 were detected at "+
				"meat and dairy establishments in %s, %s during %d?", district, state, year),
			fmt.Sprintf("Please provide details of all penalties, fines, and license suspensions "+
				"imposed on meat and dairy establishments in %s during %d.", district, year),
			"How many meat and dairy establishments in the district currently hold " +
				"valid FSSAI licenses, and how many are operating without licenses?",
			fmt.Sprintf("What testing has been done for antibiotic residues, aflatoxin M1, "+
				"adulterants (urea, detergent, starch), and pesticide residues in "+
				"milk and dairy products in %s during %d?", district, year),
		},
		ApplicantName:    applicantName,
		ApplicantAddress: applicantAddress,
		Subject:          fmt.Sprintf("Food safety violations at meat/dairy units in %s, %s", district, state),
		State:            state,
		District:         district,
	}
}

// PollutionBoardRequest asks the pollution control board for consent,
// effluent, and groundwater data on animal agriculture in a district.
func PollutionBoardRequest(state, district, applicantName, applicantAddress string) *Application {
	return &Application{
		AgencyCode: "cpcb",
		Questions: []string{
			fmt.Sprintf("How many poultry farms, dairy farms, piggeries, and slaughterhouses "+
				"in %s district, %s hold valid Consent to Operate (CTO) "+
				"from the State Pollution Control Board?", district, state),
			fmt.Sprintf("Please provide data on effluent discharge, BOD levels, COD levels, "+
				"and solid waste generation from all animal agriculture operations in "+
				"%s for the last 2 years.", district),
			fmt.Sprintf("How many complaints regarding pollution from poultry farms, dairy farms, "+
				"piggeries, and slaughterhouses have been received in %s in the "+
				"last 3 years? What action was taken?", district),
			fmt.Sprintf("Please provide details of all Consent to Operate applications received "+
				"from animal agriculture operations in %s, and how many were "+
				"approved, rejected, or are pending.", district),
			fmt.Sprintf("What is the groundwater quality data for areas within 1 km of large "+
				"poultry and dairy operations in %s? Please provide nitrate, "+
				"ammonia, and coliform levels.", district),
		},
		ApplicantName:    applicantName,
		ApplicantAddress: applicantAddress,
		Subject:          fmt.Sprintf("Pollution data from animal agriculture in %s, %s", district, state),
		State:            state,
		District:         district,
	}
}

// SubsidyDataRequest asks for NLM and/or Rashtriya Gokul Mission spending
// data in a state. Scheme is "nlm", "rgm", or "both"; "both" routes to the
// parent department.
func SubsidyDataRequest(state, applicantName, applicantAddress, scheme string) *Application {
	code := "dahd"
	switch scheme {
	case "nlm":
		code = "nlm"
	case "rgm":
		code = "rgm"
	}

	var questions []string
	if scheme == "nlm" || scheme == "both" {
		questions = append(questions,
			fmt.Sprintf("What is the total funds allocated and disbursed under the National "+
				"Livestock Mission (NLM) to %s for each year from 2019-20 to "+
				"2024-25? Please provide scheme-wise and component-wise breakup.", state),
			fmt.Sprintf("How many beneficiaries have received subsidies under NLM in %s "+
				"for poultry, dairy, piggery, and goat rearing? Provide year-wise data.", state),
			fmt.Sprintf("What is the total subsidy amount disbursed for establishment of new "+
				"commercial poultry farms and dairy units in %s under NLM?", state),
		)
	}
	if scheme == "rgm" || scheme == "both" {
		questions = append(questions,
			fmt.Sprintf("What is the total expenditure under the Rashtriya Gokul Mission (RGM) "+
				"in %s from 2019-20 to 2024-25? Provide component-wise breakup "+
				"including Gokul Grams, IVF centres, and AI coverage.", state),
			fmt.Sprintf("How many Gokul Grams have been established in %s and what is "+
				"the animal housing capacity and current occupancy of each?", state),
			fmt.Sprintf("What is the total expenditure on artificial insemination under RGM "+
				"in %s, and what are the conception success rates reported?", state),
		)
	}
	questions = append(questions,
		fmt.Sprintf("Please provide copies of any audit reports, utilization certificates, "+
			"or evaluation studies for the above schemes in %s.", state),
	)

	return &Application{
		AgencyCode:       code,
		Questions:        questions,
		ApplicantName:    applicantName,
		ApplicantAddress: applicantAddress,
		Subject:          fmt.Sprintf("Expenditure and outcomes under NLM/RGM in %s", state),
		State:            state,
	}
}

// SlaughterhouseLicenseRequest asks FSSAI for district slaughterhouse
// licensing and compliance data.
func SlaughterhouseLicenseRequest(district, state, applicantName, applicantAddress string) *Application {
	return &Application{
		AgencyCode: "fssai",
		Questions: []string{
			fmt.Sprintf("How many slaughterhouses are licensed/registered in %s district, "+
				"%s as of date? Provide name, location, and license validity.", district, state),
			fmt.Sprintf("How many slaughterhouses in %s comply with the Slaughter House "+
				"and Meat Inspection Rules (Food Safety and Standards Authority of India), "+
				"and the Slaughtering Rules, 2001?", district),
			fmt.Sprintf("How many unlicensed/unregistered slaughterhouses have been identified "+
				"in %s in the last 3 years, and what action was taken?", district),
			fmt.Sprintf("What is the approved daily slaughter capacity of each licensed "+
				"slaughterhouse in %s, and what are the actual daily slaughter numbers?", district),
			fmt.Sprintf("Please provide inspection reports for all slaughterhouses in %s "+
				"for the last 2 years, including veterinary inspection records.", district),
			fmt.Sprintf("Do the slaughterhouses in %s have operational effluent treatment "+
				"plants as required under environmental regulations? Provide status.", district),
		},
		ApplicantName:    applicantName,
		ApplicantAddress: applicantAddress,
		Subject:          fmt.Sprintf("Slaughterhouse licensing and compliance in %s, %s", district, state),
		State:            state,
		District:         district,
	}
}
