package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.maxTokens", 500)

	// AI Configuration - Feedback operation defaults
	v.SetDefault("ai.feedback.provider", "gemini")
	v.SetDefault("ai.feedback.model", "")
	v.SetDefault("ai.feedback.timeout", 30*time.Second)
	v.SetDefault("ai.feedback.apiKey", "")
	v.SetDefault("ai.feedback.maxRetries", 2)
	v.SetDefault("ai.feedback.temperature", 0.7)
	v.SetDefault("ai.feedback.maxTokens", 500)

	// AI Configuration - Questions operation defaults
	v.SetDefault("ai.questions.provider", "gemini")
	v.SetDefault("ai.questions.model", "")
	v.SetDefault("ai.questions.timeout", 30*time.Second)
	v.SetDefault("ai.questions.apiKey", "")
	v.SetDefault("ai.questions.maxRetries", 2)
	v.SetDefault("ai.questions.temperature", 0.7)
	v.SetDefault("ai.questions.maxTokens", 600)

	// AI Configuration - Posting operation defaults
	v.SetDefault("ai.posting.provider", "gemini")
	v.SetDefault("ai.posting.model", "")
	v.SetDefault("ai.posting.timeout", 60*time.Second)
	v.SetDefault("ai.posting.apiKey", "")
	v.SetDefault("ai.posting.maxRetries", 2)
	v.SetDefault("ai.posting.temperature", 0.8) // More creative output for postings
	v.SetDefault("ai.posting.maxTokens", 1000)

	// Circuit Breaker Configuration defaults for all operations
	for _, op := range []string{"feedback", "questions", "posting"} {
		v.SetDefault("ai."+op+".circuitBreaker.enabled", true)
		v.SetDefault("ai."+op+".circuitBreaker.maxRequests", 3)
		v.SetDefault("ai."+op+".circuitBreaker.interval", 60*time.Second)
		v.SetDefault("ai."+op+".circuitBreaker.timeout", 60*time.Second)
		v.SetDefault("ai."+op+".circuitBreaker.minRequests", 3)
		v.SetDefault("ai."+op+".circuitBreaker.failureThreshold", 0.6)
	}

	// Recruitment Configuration - scoring weights and tiers
	v.SetDefault("recruitment.weights.technicalSkills", 0.30)
	v.SetDefault("recruitment.weights.experience", 0.20)
	v.SetDefault("recruitment.weights.culturalFit", 0.15)
	v.SetDefault("recruitment.thresholds.strongRecommend", 85.0)
	v.SetDefault("recruitment.thresholds.recommend", 70.0)
	v.SetDefault("recruitment.thresholds.consider", 55.0)

	// Cultural-fit keyword table
	v.SetDefault("recruitment.culturalCategories", []map[string]any{
		{"name": "teamwork", "keywords": []string{"team", "collaboration", "cooperation", "partnership"}},
		{"name": "leadership", "keywords": []string{"lead", "manage", "supervise", "mentor", "guide"}},
		{"name": "innovation", "keywords": []string{"innovate", "creative", "problem-solving", "improve"}},
		{"name": "communication", "keywords": []string{"communicate", "present", "write", "speak", "explain"}},
		{"name": "adaptability", "keywords": []string{"adapt", "flexible", "change", "learn", "grow"}},
	})

	// Positions that require a technical assessment stage
	v.SetDefault("recruitment.technicalPositions", []string{
		"Software Engineer",
		"DevOps Engineer",
		"Data Analyst",
		"QA Engineer",
		"Cloud Architect",
		"Network Engineer",
	})

	// Interview stage catalog
	v.SetDefault("recruitment.stages", []map[string]any{
		{
			"name":            "Initial Screening",
			"durationMinutes": 30,
			"interviewType":   "Phone/Video Call",
			"participants":    []string{"HR Recruiter"},
		},
		{
			"name":            "Technical Assessment",
			"durationMinutes": 60,
			"interviewType":   "Technical Test + Discussion",
			"participants":    []string{"Technical Lead", "Team Member"},
		},
		{
			"name":            "HR Interview",
			"durationMinutes": 45,
			"interviewType":   "In-person/Video Call",
			"participants":    []string{"HR Manager"},
		},
		{
			"name":            "Final Round",
			"durationMinutes": 90,
			"interviewType":   "Panel Interview",
			"participants":    []string{"Department Head", "HR Manager", "Technical Lead"},
		},
		{
			"name":            "Reference Check",
			"durationMinutes": 20,
			"interviewType":   "Phone Call",
			"participants":    []string{"HR Recruiter"},
		},
	})

	// Analyzer tables
	v.SetDefault("recruitment.analyzer.departmentSkills", []map[string]any{
		{"department": "Engineering", "skills": []string{"Software Development", "DevOps", "Data Engineering", "QA"}},
		{"department": "Analytics", "skills": []string{"Data Analysis", "Business Intelligence", "Machine Learning"}},
		{"department": "Marketing", "skills": []string{"Digital Marketing", "Content Creation", "SEO", "Social Media"}},
		{"department": "IT", "skills": []string{"System Administration", "Network Engineering", "Cloud Computing"}},
		{"department": "Human Resources", "skills": []string{"Recruitment", "Employee Relations", "Training"}},
		{"department": "Finance", "skills": []string{"Financial Analysis", "Accounting", "Budgeting"}},
		{"department": "Design", "skills": []string{"UI/UX Design", "Graphic Design", "Product Design"}},
		{"department": "Sales", "skills": []string{"Business Development", "Account Management", "Lead Generation"}},
		{"department": "Quality Assurance", "skills": []string{"Testing", "Quality Control", "Process Improvement"}},
		{"department": "Business Development", "skills": []string{"Strategy", "Partnerships", "Market Research"}},
		{"department": "Operations", "skills": []string{"Project Management", "Process Optimization", "Supply Chain"}},
		{"department": "Customer Service", "skills": []string{"Support", "Client Relations", "Problem Resolution"}},
	})
	v.SetDefault("recruitment.analyzer.positionSkills", []map[string]any{
		{"position": "Software Engineer", "skills": []string{"Python", "JavaScript", "SQL", "Git", "Agile"}},
		{"position": "Senior Software Engineer", "skills": []string{"Python", "JavaScript", "SQL", "Git", "Agile", "System Design", "Leadership"}},
		{"position": "Data Analyst", "skills": []string{"SQL", "Python", "Excel", "Data Visualization", "Statistical Analysis"}},
		{"position": "DevOps Engineer", "skills": []string{"Linux", "Docker", "Kubernetes", "AWS/Azure", "CI/CD", "Infrastructure as Code"}},
		{"position": "Marketing Specialist", "skills": []string{"Digital Marketing", "Social Media", "Content Creation", "Analytics Tools"}},
		{"position": "HR Manager", "skills": []string{"HRIS", "Employee Relations", "Recruitment", "Labor Law", "Performance Management"}},
		{"position": "Financial Analyst", "skills": []string{"Financial Modeling", "Excel", "Accounting Software", "Financial Analysis"}},
		{"position": "Cloud Architect", "skills": []string{"AWS", "Azure", "GCP", "Terraform", "Microservices", "Security"}},
		{"position": "Product Designer", "skills": []string{"UI/UX Design", "Figma", "User Research", "Prototyping", "Design Systems"}},
		{"position": "Sales Executive", "skills": []string{"CRM", "Sales Techniques", "Negotiation", "Relationship Building"}},
		{"position": "QA Engineer", "skills": []string{"Testing Tools", "Automation", "Test Planning", "Bug Tracking", "Quality Standards"}},
	})
	v.SetDefault("recruitment.analyzer.highPriorityDepartments", []string{"Engineering", "IT", "Finance"})
	v.SetDefault("recruitment.analyzer.mediumPriorityDepartments", []string{"Marketing", "Sales"})

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	// TLS Configuration defaults
	v.SetDefault("server.tls.enabled", false)
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.geminiKey", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "recruitflow")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)
}
