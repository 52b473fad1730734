// Package seed holds the fixed job catalog used to bootstrap an empty
// deployment. Static data only; embedding happens at seed time.
package seed

type CatalogJob struct {
	ExternalID      string
	Title           string
	Company         string
	Location        string
	Salary          string
	JobType         string
	ExperienceLevel string
	RequiredSkills  []string
	Description     string
}

func Catalog() []CatalogJob {
	return []CatalogJob{
		{
			ExternalID:      "seed-frontend-dev-001",
			Title:           "Frontend Developer",
			Company:         "Brightlane Labs",
			Location:        "Remote",
			Salary:          "$95,000 - $120,000",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			RequiredSkills:  []string{"React", "TypeScript", "CSS", "HTML", "REST APIs"},
			Description:     "Build and maintain customer-facing web applications with React and TypeScript, collaborating closely with design and backend teams.",
		},
		{
			ExternalID:      "seed-backend-eng-002",
			Title:           "Backend Engineer",
			Company:         "Northwind Systems",
			Location:        "Austin, TX",
			Salary:          "$110,000 - $140,000",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			RequiredSkills:  []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "gRPC"},
			Description:     "Design and operate high-throughput services in Go backed by PostgreSQL, owning features from schema design through deployment.",
		},
		{
			ExternalID:      "seed-data-scientist-003",
			Title:           "Data Scientist",
			Company:         "Helios Analytics",
			Location:        "New York, NY",
			Salary:          "$120,000 - $155,000",
			JobType:         "Full-time",
			ExperienceLevel: "Senior",
			RequiredSkills:  []string{"Python", "SQL", "Machine Learning", "Pandas", "Statistics"},
			Description:     "Build predictive models and experimentation pipelines that drive product decisions across the analytics platform.",
		},
		{
			ExternalID:      "seed-devops-eng-004",
			Title:           "DevOps Engineer",
			Company:         "Cloudmere",
			Location:        "Remote",
			Salary:          "$115,000 - $145,000",
			JobType:         "Full-time",
			ExperienceLevel: "Senior",
			RequiredSkills:  []string{"AWS", "Terraform", "CI/CD", "Docker", "Linux"},
			Description:     "Own infrastructure as code, deployment pipelines and observability for a multi-region SaaS platform.",
		},
		{
			ExternalID:      "seed-mobile-dev-005",
			Title:           "Mobile Developer",
			Company:         "Pocketworks",
			Location:        "San Francisco, CA",
			Salary:          "$105,000 - $135,000",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			RequiredSkills:  []string{"Swift", "Kotlin", "React Native", "REST APIs"},
			Description:     "Ship native and cross-platform mobile features for a consumer app with millions of installs.",
		},
		{
			ExternalID:      "seed-ux-designer-006",
			Title:           "UX Designer",
			Company:         "Fernwheel Studio",
			Location:        "Remote",
			Salary:          "$85,000 - $110,000",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			RequiredSkills:  []string{"Figma", "User Research", "Prototyping", "Design Systems"},
			Description:     "Run discovery research and translate findings into flows, wireframes and high-fidelity prototypes.",
		},
		{
			ExternalID:      "seed-product-manager-007",
			Title:           "Product Manager",
			Company:         "Arcline",
			Location:        "Seattle, WA",
			Salary:          "$125,000 - $160,000",
			JobType:         "Full-time",
			ExperienceLevel: "Senior",
			RequiredSkills:  []string{"Product Strategy", "Roadmapping", "Agile", "SQL", "Stakeholder Management"},
			Description:     "Define the roadmap for the core platform, balancing customer discovery with delivery against quarterly goals.",
		},
		{
			ExternalID:      "seed-ml-engineer-008",
			Title:           "Machine Learning Engineer",
			Company:         "Quanta Forge",
			Location:        "Remote",
			Salary:          "$135,000 - $175,000",
			JobType:         "Full-time",
			ExperienceLevel: "Senior",
			RequiredSkills:  []string{"Python", "PyTorch", "MLOps", "Docker", "AWS"},
			Description:     "Productionize models end to end: feature pipelines, training infrastructure, serving and monitoring.",
		},
		{
			ExternalID:      "seed-qa-engineer-009",
			Title:           "QA Automation Engineer",
			Company:         "Verisculpt",
			Location:        "Chicago, IL",
			Salary:          "$90,000 - $115,000",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			RequiredSkills:  []string{"Selenium", "Cypress", "JavaScript", "API Testing", "CI/CD"},
			Description:     "Expand automated coverage across web and API surfaces and keep the regression suite fast and trustworthy.",
		},
		{
			ExternalID:      "seed-security-analyst-010",
			Title:           "Security Analyst",
			Company:         "Bastion Grid",
			Location:        "Washington, DC",
			Salary:          "$100,000 - $130,000",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			RequiredSkills:  []string{"SIEM", "Incident Response", "Network Security", "Python"},
			Description:     "Monitor, triage and respond to security events while hardening detection rules and runbooks.",
		},
		{
			ExternalID:      "seed-tech-writer-011",
			Title:           "Technical Writer",
			Company:         "Docufield",
			Location:        "Remote",
			Salary:          "$70,000 - $95,000",
			JobType:         "Contract",
			ExperienceLevel: "Entry-level",
			RequiredSkills:  []string{"Technical Writing", "Markdown", "API Documentation", "Git"},
			Description:     "Write and maintain developer documentation, tutorials and API references for a growing platform.",
		},
		{
			ExternalID:      "seed-data-engineer-012",
			Title:           "Data Engineer",
			Company:         "Rivermark Data",
			Location:        "Denver, CO",
			Salary:          "$115,000 - $150,000",
			JobType:         "Full-time",
			ExperienceLevel: "Senior",
			RequiredSkills:  []string{"Python", "Airflow", "Spark", "SQL", "dbt"},
			Description:     "Build and operate batch and streaming pipelines feeding the warehouse and downstream ML workloads.",
		},
	}
}
