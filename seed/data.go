// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"fmt"

	"github.com/adareyes/talentflow/models"
)

// Curated job titles; jobs beyond this list reuse faker-picked tags.
var jobTitles = []string{
	"Software Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Cloud Architect",
	"Site Reliability Engineer",
	"Business Intelligence Analyst",
	"Systems Engineer",
	"Data Analyst",
	"UI/UX Designer",
	"Mobile App Developer",
	"QA Engineer",
	"Security Engineer",
	"Database Administrator",
	"Network Engineer",
	"Embedded Systems Developer",
	"Systems Administrator",
	"Product Engineer",
	"Technical Support Engineer",
}

// Tag sets aligned index-for-index with jobTitles.
var jobTags = [][]string{
	{"React", "TypeScript", "Node.js"},
	{"React", "JavaScript", "CSS"},
	{"Node.js", "Python", "SQL"},
	{"React", "Node.js", "AWS"},
	{"Docker", "Kubernetes", "AWS"},
	{"AWS", "Azure", "GCP"},
	{"Kubernetes", "Monitoring", "Linux"},
	{"Python", "SQL", "Power BI"},
	{"Python", "Java", "SQL"},
	{"SQL", "Python", "Tableau"},
	{"Figma", "Sketch", "UX"},
	{"React Native", "Swift", "Kotlin"},
	{"Selenium", "Jest", "Cypress"},
	{"Security", "Penetration Testing", "Compliance"},
	{"SQL", "PostgreSQL", "MongoDB"},
	{"Networking", "Cisco", "Security"},
	{"C", "C++", "Embedded"},
	{"Linux", "Windows Server", "Scripting"},
	{"Agile", "Product Management", "Technical"},
	{"Customer Support", "Troubleshooting", "Documentation"},
}

var fallbackJobTags = []string{"React", "Node.js", "Python", "AWS", "Docker", "TypeScript"}

var candidateTags = []string{
	"Frontend", "Backend", "Fullstack", "Senior", "Junior", "Mid-level", "Remote", "Relocate",
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// assessmentSections builds the three-section questionnaire template used
// for seeded assessments. The index keeps question ids unique per
// assessment; the final question is shown only when the portfolio question
// is answered Yes.
func assessmentSections(i int) []models.AssessmentSection {
	return []models.AssessmentSection{
		{
			ID:    fmt.Sprintf("section-1-%d", i),
			Title: "Personal Information",
			Questions: []models.Question{
				{
					ID:        fmt.Sprintf("q1-%d", i),
					Type:      models.QuestionText,
					Question:  "What is your full name?",
					Required:  true,
					MaxLength: intPtr(100),
				},
				{
					ID:        fmt.Sprintf("q2-%d", i),
					Type:      models.QuestionText,
					Question:  "What is your email address?",
					Required:  true,
					MaxLength: intPtr(255),
				},
			},
		},
		{
			ID:    fmt.Sprintf("section-2-%d", i),
			Title: "Experience",
			Questions: []models.Question{
				{
					ID:       fmt.Sprintf("q3-%d", i),
					Type:     models.QuestionNumeric,
					Question: "How many years of experience do you have?",
					Required: true,
					MinValue: floatPtr(0),
					MaxValue: floatPtr(50),
				},
				{
					ID:       fmt.Sprintf("q4-%d", i),
					Type:     models.QuestionSingle,
					Question: "Are you open to relocation?",
					Required: true,
					Options:  []string{"Yes", "No", "Maybe"},
				},
				{
					ID:       fmt.Sprintf("q5-%d", i),
					Type:     models.QuestionMulti,
					Question: "Which technologies are you proficient in?",
					Options:  []string{"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java", "Go"},
				},
				{
					ID:        fmt.Sprintf("q6-%d", i),
					Type:      models.QuestionLongText,
					Question:  "Describe your most challenging project.",
					Required:  true,
					MaxLength: intPtr(1000),
				},
			},
		},
		{
			ID:    fmt.Sprintf("section-3-%d", i),
			Title: "Additional Information",
			Questions: []models.Question{
				{
					ID:       fmt.Sprintf("q7-%d", i),
					Type:     models.QuestionSingle,
					Question: "Do you have a portfolio?",
					Required: true,
					Options:  []string{"Yes", "No"},
				},
				{
					ID:        fmt.Sprintf("q8-%d", i),
					Type:      models.QuestionText,
					Question:  "If yes, please provide the URL",
					MaxLength: intPtr(500),
					ConditionalLogic: &models.ConditionalLogic{
						DependsOn:     fmt.Sprintf("q7-%d", i),
						ExpectedValue: "Yes",
					},
				},
			},
		},
	}
}
