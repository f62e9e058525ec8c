package catalog

import "weup-connect/internal/domain"

// seedResources is the built-in resource directory. Four categories: crisis,
// housing, education, legal. Every entry must be actionable (phone, link or
// address) -- catalog_test.go enforces this.
var seedResources = []domain.Resource{
	// crisis
	{
		ResourceID:       "crisis-988",
		Category:         domain.ResourceCategoryCrisis,
		Name:             "Suicide & Crisis Lifeline 988",
		Description:      "Free, confidential support 24/7 for people in distress.",
		Phone:            "988",
		ActionLabel:      "Call 988",
		IsEmergency:      true,
		IsCrisisLifeline: true,
	},
	{
		ResourceID:  "crisis-text-line",
		Category:    domain.ResourceCategoryCrisis,
		Name:        "Crisis Text Line",
		Description: "Text HOME to 741741 to reach a trained crisis counselor.",
		Phone:       "741741",
		ActionLabel: "Text HOME",
		IsEmergency: true,
	},
	{
		ResourceID:  "crisis-samhsa",
		Category:    domain.ResourceCategoryCrisis,
		Name:        "SAMHSA National Helpline",
		Description: "Treatment referral and information for substance use and mental health.",
		Phone:       "1-800-662-4357",
		ActionLabel: "Call Helpline",
		IsEmergency: false,
	},

	// housing
	{
		ResourceID:  "housing-project-home",
		Category:    domain.ResourceCategoryHousing,
		Name:        "Project HOME Engagement Center",
		Description: "Walk-in engagement center with housing placement and daytime refuge.",
		Phone:       "215-232-1984",
		Address:     "1515 Fairmount Ave, Philadelphia, PA",
		ActionLabel: "Get Directions",
		IsEmergency: false,
		IsSafeHaven: true,
	},
	{
		ResourceID:  "housing-why-not-prosper",
		Category:    domain.ResourceCategoryHousing,
		Name:        "Why Not Prosper",
		Description: "Transitional housing and mentoring for women returning from incarceration.",
		Phone:       "215-843-4022",
		Link:        "https://whynotprosper.org",
		ActionLabel: "Call Intake",
		IsEmergency: false,
	},
	{
		ResourceID:  "housing-oheh",
		Category:    domain.ResourceCategoryHousing,
		Name:        "Office of Homeless Services Intake",
		Description: "City intake line for emergency and transitional housing placement.",
		Phone:       "215-686-7150",
		ActionLabel: "Call Intake",
		IsEmergency: false,
	},

	// education
	{
		ResourceID:  "education-ccp",
		Category:    domain.ResourceCategoryEducation,
		Name:        "Community College of Philadelphia Reentry Support Project",
		Description: "Enrollment help, scholarships and advising for returning citizens.",
		Link:        "https://ccp.edu/reentry",
		ActionLabel: "Learn More",
		IsEmergency: false,
	},
	{
		ResourceID:  "education-ged",
		Category:    domain.ResourceCategoryEducation,
		Name:        "Free Library GED Prep",
		Description: "No-cost GED preparation classes and practice testing.",
		Link:        "https://freelibrary.org/ged",
		Address:     "1901 Vine St, Philadelphia, PA",
		ActionLabel: "See Schedule",
		IsEmergency: false,
	},

	// legal
	{
		ResourceID:  "legal-cls",
		Category:    domain.ResourceCategoryLegal,
		Name:        "Community Legal Services",
		Description: "Free civil legal aid: housing, benefits, employment barriers.",
		Phone:       "215-981-3700",
		Link:        "https://clsphila.org",
		ActionLabel: "Call CLS",
		IsEmergency: false,
	},
	{
		ResourceID:  "legal-plse",
		Category:    domain.ResourceCategoryLegal,
		Name:        "Philadelphia Lawyers for Social Equity",
		Description: "Pardon and expungement clinics for criminal records.",
		Phone:       "267-519-5323",
		Link:        "https://plsephilly.org",
		ActionLabel: "Book Clinic",
		IsEmergency: false,
	},
}
