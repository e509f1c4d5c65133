package domain

// First-boot defaults. The admin account and the seed content below are only
// ever written when the corresponding records are absent; an existing
// deployment is never touched.

const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@odonlab.com"
	DefaultAdminPassword = "admin123" // first-run convenience, change after login
)

func strptr(s string) *string { return &s }

// SeedPages returns the default page set for an empty deployment.
func SeedPages() []PageContent {
	return []PageContent{
		{
			PageName: "home",
			Title:    "Welcome to Odon Lab",
			Subtitle: strptr("Advancing virology and immunology research at the University of Strathclyde"),
			Content: map[string]any{
				"hero_title":    "Welcome to Odon Lab",
				"hero_subtitle": "Advancing virology and immunology research at the University of Strathclyde under the leadership of Dr. Valerie Odon",
				"hero_image":    "https://images.pexels.com/photos/8532850/pexels-photo-8532850.jpeg",
				"about_dr_odon": "Dr. Valerie Odon is a distinguished virologist and lecturer in Immunology at the Strathclyde Institute of Pharmacy and Biomedical Sciences, University of Strathclyde. With extensive expertise in viral immunology, she leads groundbreaking research initiatives that bridge fundamental virology with clinical applications.",
				"research_interests": []any{
					"Virus-host cell interactions",
					"Innate and adaptive immune responses",
					"Viral pathogenesis mechanisms",
					"Antiviral therapeutics development",
					"Vaccine development and immunology",
				},
			},
			MetaDescription: strptr("Dr. Valerie Odon's Virology Research Lab at the University of Strathclyde - Advancing immunology and virus research"),
			MetaKeywords:    strptr("virology, immunology, research, University of Strathclyde, Dr. Valerie Odon"),
			IsPublished:     true,
		},
		{
			PageName: "odonai",
			Title:    "OdonAI",
			Subtitle: strptr("Artificial Intelligence Applications in Virology and Immunology Research"),
			Content: map[string]any{
				"title":       "OdonAI",
				"subtitle":    "Artificial Intelligence Applications in Virology and Immunology Research",
				"description": "OdonAI represents our commitment to integrating artificial intelligence and machine learning technologies into virology and immunology research. We leverage computational approaches to accelerate discovery and enhance our understanding of complex biological systems.",
			},
			IsPublished: true,
		},
		{
			PageName: "contact",
			Title:    "Contact Us",
			Subtitle: strptr("Get in touch with the Odon Lab team"),
			Content: map[string]any{
				"contact_email": "valerie.odon@strath.ac.uk",
				"contact_phone": "+44 (0)141 548 2000",
				"address":       "161 Cathedral Street, Glasgow G4 0RE, Scotland, UK",
				"institution":   "University of Strathclyde",
				"department":    "Strathclyde Institute of Pharmacy and Biomedical Sciences",
			},
			IsPublished: true,
		},
	}
}

// SeedProjects returns the default project listing for an empty deployment.
func SeedProjects() []Project {
	return []Project{
		{
			Title:        "Viral Pathogenesis Studies",
			Description:  "Investigating the molecular mechanisms underlying viral infection and disease progression. Our research focuses on understanding how viruses interact with host cells and evade immune responses.",
			KeyAreas:     "Viral entry mechanisms, replication strategies, immune evasion, and pathogenesis pathways.",
			Icon:         "🧬",
			DisplayOrder: 1,
			IsPublished:  true,
		},
		{
			Title:        "Antiviral Drug Development",
			Description:  "Developing novel therapeutic approaches to combat viral infections. We utilize cutting-edge techniques to identify and characterize potential antiviral compounds.",
			KeyAreas:     "Small molecule inhibitors, immunomodulatory agents, and combination therapies.",
			Icon:         "🛡️",
			DisplayOrder: 2,
			IsPublished:  true,
		},
		{
			Title:        "Vaccine Immunology",
			Description:  "Studying immune responses to vaccines and developing improved vaccination strategies. Our work contributes to understanding vaccine efficacy and safety.",
			KeyAreas:     "Adjuvant development, immune memory formation, and vaccine delivery systems.",
			Icon:         "💉",
			DisplayOrder: 3,
			IsPublished:  true,
		},
		{
			Title:        "Host-Pathogen Interactions",
			Description:  "Examining the complex interplay between viruses and their hosts at the cellular and molecular level. This research informs our understanding of disease susceptibility and resistance mechanisms.",
			KeyAreas:     "Advanced microscopy, proteomics, genomics, and systems biology approaches.",
			Icon:         "🔬",
			DisplayOrder: 4,
			IsPublished:  true,
		},
	}
}

// DefaultSettings returns the singleton row created on first settings read.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SiteName:        "Odon Lab",
		SiteDescription: "Advancing virology and immunology research at the University of Strathclyde",
		ContactEmail:    "valerie.odon@strath.ac.uk",
		ContactPhone:    "+44 (0)141 548 2000",
		Address:         "161 Cathedral Street, Glasgow G4 0RE, Scotland, UK",
		ThemeColors: map[string]string{
			"primary":   "#3b82f6",
			"secondary": "#8b5cf6",
			"accent":    "#10b981",
		},
		SocialLinks: map[string]string{},
	}
}
