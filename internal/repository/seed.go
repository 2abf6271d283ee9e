package repository

import "github.com/portfolio/backend/internal/model"

// SeedProjects returns the catalog the server starts with.
// A fresh copy is built on every call so callers may keep the slices.
func SeedProjects() []*model.Project {
	return []*model.Project{
		{
			ID:           "1",
			Title:        "Remote Interview Platform",
			Description:  "Developed a real-time coding interview platform with synchronized code editing and live host-participant collaboration using Socket.IO. Implemented REST APIs and deployed backend on cloud with optimized uptime and responsiveness.",
			Images:       []string{"/Remote-Interview.png"},
			Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Socket.IO"},
			Category:     "fullstack",
			LiveURL:      "https://remote-interview-platform-bqb6.onrender.com",
			GitHubURL:    "https://github.com/Rushikesh1821/remote_coding_interview.git",
			Featured:     true,
			Order:        1,
		},
		{
			ID:           "2",
			Title:        "AI Finance Tracker",
			Description:  "Personal finance tracker managing income and categorized expenses. Designed CRUD workflows and summary insights for budgeting and spending trends.",
			Images:       []string{"/AiFinanceTracker.png"},
			Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Tailwind CSS"},
			Category:     "fullstack",
			LiveURL:      "https://finance-tracker-sepia-zeta.vercel.app/",
			GitHubURL:    "https://github.com/Rushikesh1821/FinanceTracker.git",
			Featured:     true,
			Order:        2,
		},
		{
			ID:           "3",
			Title:        "College Placement Management System",
			Description:  "Designed and developed a comprehensive AI-enabled college placement management platform to automate and streamline the end-to-end campus recruitment process for students, recruiters, and Training & Placement Officers (TPOs).",
			Images:       []string{"/Placeme.png"},
			Technologies: []string{"React", "Node.js", "MongoDB", "Express", "AI/ML"},
			Category:     "fullstack",
			LiveURL:      "https://example-aigenerator.com",
			GitHubURL:    "https://github.com/Rushikesh1821/placeme.git",
			Featured:     true,
			Order:        3,
		},
	}
}
