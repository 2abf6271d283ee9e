package client

import "github.com/portfolio/backend/internal/model"

// FallbackProjects is the catalog bundled with the client, shown when the API
// is unreachable or empty. It has the same shape as the API's projects.
func FallbackProjects() []*model.Project {
	return []*model.Project{
		{
			ID:           "1",
			Title:        "E-Commerce Platform",
			Description:  "A full-featured e-commerce platform built with MERN stack featuring user authentication, product management, cart functionality, and secure payment integration with Stripe.",
			Images:       []string{"https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=800&h=450&fit=crop"},
			Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Stripe", "Redux"},
			Category:     "fullstack",
			LiveURL:      "https://example-ecommerce.com",
			GitHubURL:    "https://github.com/rushikesh/ecommerce",
			Featured:     true,
			Order:        1,
		},
		{
			ID:           "2",
			Title:        "Task Management Dashboard",
			Description:  "A collaborative task management application with real-time updates, drag-and-drop functionality, team workspaces, and progress tracking analytics.",
			Images:       []string{"https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=800&h=450&fit=crop"},
			Technologies: []string{"React", "Socket.io", "Node.js", "PostgreSQL", "Tailwind CSS"},
			Category:     "fullstack",
			LiveURL:      "https://example-taskboard.com",
			GitHubURL:    "https://github.com/rushikesh/taskboard",
			Featured:     true,
			Order:        2,
		},
		{
			ID:           "3",
			Title:        "AI Content Generator",
			Description:  "An AI-powered content generation tool that creates blog posts, social media content, and marketing copy using OpenAI GPT-4 API with customizable templates.",
			Images:       []string{"https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=450&fit=crop"},
			Technologies: []string{"Next.js", "OpenAI API", "TypeScript", "Prisma", "Tailwind CSS"},
			Category:     "fullstack",
			LiveURL:      "https://example-aigenerator.com",
			GitHubURL:    "https://github.com/rushikesh/ai-content",
			Featured:     true,
			Order:        3,
		},
		{
			ID:           "4",
			Title:        "Real-Time Chat Application",
			Description:  "A modern chat application with real-time messaging, file sharing, voice messages, and end-to-end encryption for secure communications.",
			Images:       []string{"https://images.unsplash.com/photo-1611746872915-64382b5c76da?w=800&h=450&fit=crop"},
			Technologies: []string{"React", "Socket.io", "Node.js", "MongoDB", "WebRTC"},
			Category:     "fullstack",
			LiveURL:      "https://example-chat.com",
			GitHubURL:    "https://github.com/rushikesh/chat-app",
			Order:        4,
		},
		{
			ID:           "5",
			Title:        "Crypto Portfolio Tracker",
			Description:  "A cryptocurrency portfolio tracking dashboard with real-time price updates, portfolio analytics, and personalized watchlists using CoinGecko API.",
			Images:       []string{"https://images.unsplash.com/photo-1621761191319-c6fb62004040?w=800&h=450&fit=crop"},
			Technologies: []string{"React", "Chart.js", "Node.js", "REST API", "Tailwind CSS"},
			Category:     "frontend",
			LiveURL:      "https://example-crypto.com",
			GitHubURL:    "https://github.com/rushikesh/crypto-tracker",
			Order:        5,
		},
		{
			ID:           "6",
			Title:        "RESTful API Service",
			Description:  "A scalable RESTful API service with JWT authentication, rate limiting, comprehensive documentation, and automated testing using Jest.",
			Images:       []string{"https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=800&h=450&fit=crop"},
			Technologies: []string{"Node.js", "Express", "MongoDB", "JWT", "Swagger", "Jest"},
			Category:     "backend",
			LiveURL:      "https://api-docs.example.com",
			GitHubURL:    "https://github.com/rushikesh/rest-api",
			Order:        6,
		},
	}
}
