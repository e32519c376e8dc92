// Package seed holds the literal dataset loaded by the admin reseed
// operation. Functions return fresh values so callers can never mutate the
// seed content between runs.
package seed

import "go-portfolio-backend/internal/domain"

func strptr(s string) *string { return &s }

func PersonalInfoData() domain.PersonalInfo {
	return domain.PersonalInfo{
		Name:     "Alex Mercer",
		Title:    "Backend Engineer & Distributed Systems Enthusiast",
		Email:    "alex.mercer.dev@example.com",
		Github:   "https://github.com/alexmercer-dev",
		Linkedin: "https://www.linkedin.com/in/alexmercer-dev",
		Location: "Seattle, WA",
		Bio:      "Backend engineer building data-intensive services in Go and Python. Experienced with event-driven architectures, storage engines, and shipping production systems end to end. Currently pursuing an MS in Computer Science.",
	}
}

func EducationData() []domain.Education {
	return []domain.Education{
		{
			Degree:      "M.S. Computer Science",
			Institution: "University of Washington",
			Location:    "Seattle, WA, USA",
			Period:      "Sep 2024 – Jun 2026",
			GPA:         "3.8/4.0",
			Type:        "masters",
			Order:       1,
		},
		{
			Degree:      "B.S. Computer Engineering",
			Institution: "Oregon State University",
			Location:    "Corvallis, OR, USA",
			Period:      "Sep 2019 – Jun 2023",
			GPA:         "3.6/4.0",
			Type:        "bachelors",
			Order:       2,
		},
	}
}

func ExperienceData() []domain.Experience {
	return []domain.Experience{
		{
			Title:    "Software Engineering Intern (Platform)",
			Company:  "Streamline Analytics",
			Location: "Remote",
			Period:   "Jun 2025 – Sep 2025",
			Type:     "Internship",
			Color:    "blue",
			Achievements: []string{
				"Built an ingestion service handling 30k events/sec with at-least-once delivery",
				"Cut p99 query latency 40% by adding a read-through cache in front of Postgres",
				"Introduced contract tests for three internal APIs, catching schema drift in CI",
			},
			Tech:  []string{"Go", "PostgreSQL", "Kafka", "Redis", "Docker", "GitHub Actions"},
			Order: 1,
		},
		{
			Title:    "Research Assistant, Systems Lab",
			Company:  "University of Washington",
			Location: "Seattle, WA",
			Period:   "Jan 2025 – Jun 2025",
			Type:     "Research",
			Color:    "cyan",
			Achievements: []string{
				"Prototyped a log-structured key-value store and benchmarked it against RocksDB",
				"Reduced write amplification 25% with a tiered compaction policy",
				"Co-authored a workshop paper on storage-engine tuning for mixed workloads",
			},
			Tech:  []string{"C++", "Go", "RocksDB", "eBPF", "Linux"},
			Order: 2,
		},
		{
			Title:    "Backend Developer (Contract)",
			Company:  "Harborview Logistics",
			Location: "Portland, OR",
			Period:   "Jul 2023 – Dec 2024",
			Type:     "Contract",
			Color:    "purple",
			Achievements: []string{
				"Designed and shipped a shipment-tracking API serving 200+ enterprise clients",
				"Migrated a monolith's billing module to a standalone service with zero downtime",
				"Automated nightly reconciliation, saving the ops team roughly 15 hours/week",
			},
			Tech:  []string{"Go", "gRPC", "PostgreSQL", "RabbitMQ", "Terraform", "AWS"},
			Order: 3,
		},
	}
}

func ProjectsData() []domain.Project {
	return []domain.Project{
		{
			Title:           "Ledgerline — Event-Sourced Budgeting",
			Description:     "Personal finance tracker built on an append-only event log with projections for accounts, budgets, and trends.",
			LongDescription: "Personal finance tracker built on an append-only event log. Commands are validated against aggregate state and emit immutable events; read models are rebuilt on demand. Supports CSV bank imports, rule-based categorization, and monthly rollups. Go backend with a React frontend, deployed on Fly.io.",
			Tech:            []string{"Go", "PostgreSQL", "React", "Fly.io", "Docker"},
			Category:        "Full-Stack",
			Featured:        true,
			Github:          "https://github.com/alexmercer-dev/ledgerline",
			Demo:            strptr("https://ledgerline.dev"),
			Image:           "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=800&h=400&fit=crop",
			Status:          "completed",
			Highlights: []string{
				"Append-only event store with replayable projections",
				"Rule-based transaction categorization",
				"CSV import pipeline with dedupe",
				"Zero-downtime deploys via blue/green",
			},
			Order: 1,
		},
		{
			Title:           "Relay — Minimal Message Queue",
			Description:     "A single-binary message queue with consumer groups, ack deadlines, and an HTTP/JSON API. Written to understand broker internals.",
			LongDescription: "A single-binary message queue written in Go: segmented write-ahead log, consumer groups with pending-entry tracking, ack deadlines with automatic redelivery, and an HTTP/JSON API. Benchmarked at 80k msgs/sec on commodity hardware. Includes a tview-based inspector TUI.",
			Tech:            []string{"Go", "BoltDB", "HTTP/JSON"},
			Category:        "Systems",
			Featured:        true,
			Github:          "https://github.com/alexmercer-dev/relay",
			Image:           "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=800&h=400&fit=crop",
			Status:          "completed",
			Highlights: []string{
				"Segmented write-ahead log with checksummed frames",
				"Consumer groups with redelivery on missed acks",
				"80k msgs/sec sustained throughput in benchmarks",
			},
			Order: 2,
		},
		{
			Title:           "Driftwatch — Schema Drift Detector",
			Description:     "CLI that diffs live database schemas against checked-in migrations and fails CI on drift.",
			LongDescription: "CLI tool that introspects live Postgres and MySQL schemas, normalizes them, and diffs against the schema produced by replaying checked-in migrations. Reports drift as annotated CI failures. Used by two teams at a previous contract.",
			Tech:            []string{"Go", "PostgreSQL", "MySQL", "GitHub Actions"},
			Category:        "Tooling",
			Featured:        false,
			Github:          "https://github.com/alexmercer-dev/driftwatch",
			Image:           "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=800&h=400&fit=crop",
			Status:          "in-progress",
			Highlights: []string{
				"Schema normalization across Postgres and MySQL",
				"CI-friendly annotated diff output",
			},
			Order: 3,
		},
	}
}

func SkillsData() []domain.Skill {
	return []domain.Skill{
		// Languages
		{Name: "Go", Level: 92, Category: "programming", SkillGroup: "languages", Order: 1},
		{Name: "Python", Level: 85, Category: "programming", SkillGroup: "languages", Order: 2},
		{Name: "SQL", Level: 88, Category: "database", SkillGroup: "languages", Order: 3},
		{Name: "TypeScript", Level: 75, Category: "programming", SkillGroup: "languages", Order: 4},

		// Frameworks
		{Name: "Gin", Level: 90, Category: "backend", SkillGroup: "frameworks", Order: 1},
		{Name: "gRPC", Level: 85, Category: "backend", SkillGroup: "frameworks", Order: 2},
		{Name: "React", Level: 70, Category: "frontend", SkillGroup: "frameworks", Order: 3},
		{Name: "FastAPI", Level: 78, Category: "backend", SkillGroup: "frameworks", Order: 4},

		// Tools
		{Name: "PostgreSQL", Level: 88, Category: "database", SkillGroup: "tools", Order: 1},
		{Name: "MongoDB", Level: 80, Category: "database", SkillGroup: "tools", Order: 2},
		{Name: "Redis", Level: 82, Category: "database", SkillGroup: "tools", Order: 3},
		{Name: "Docker", Level: 85, Category: "devops", SkillGroup: "tools", Order: 4},
		{Name: "Kubernetes", Level: 70, Category: "devops", SkillGroup: "tools", Order: 5},
		{Name: "AWS (EC2, S3, RDS)", Level: 78, Category: "cloud", SkillGroup: "tools", Order: 6},

		// AI/ML
		{Name: "RAG Pipelines", Level: 72, Category: "specialized", SkillGroup: "aiMl", Order: 1},
		{Name: "OpenAI/Claude APIs", Level: 80, Category: "specialized", SkillGroup: "aiMl", Order: 2},
		{Name: "Vector Databases", Level: 68, Category: "specialized", SkillGroup: "aiMl", Order: 3},
	}
}
