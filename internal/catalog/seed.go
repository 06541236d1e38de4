// ABOUTME: Built-in seed destinations used when no catalog file is supplied
// ABOUTME: Small static data set; production deployments provide a YAML file
package catalog

import "github.com/creative-h/agentQ-Travel-Planner/internal/models"

func seedDestinations() []models.Destination {
	return []models.Destination{
		{
			ID:            1,
			Name:          "Bali, Indonesia",
			Description:   "Tropical paradise with beautiful beaches, vibrant culture, and lush rice terraces.",
			BudgetLevel:   "medium",
			Categories:    []string{"beach", "culture", "nature", "food"},
			AvgCostPerDay: 50,
			BestSeasons:   []string{"April", "May", "June", "September"},
			Popularity:    0.9,
			ImageURL:      "https://example.com/bali.jpg",
		},
		{
			ID:            2,
			Name:          "Paris, France",
			Description:   "City of lights and romance with iconic landmarks, world-class museums, and exquisite cuisine.",
			BudgetLevel:   "high",
			Categories:    []string{"culture", "food", "history", "city"},
			AvgCostPerDay: 150,
			BestSeasons:   []string{"April", "May", "June", "September", "October"},
			Popularity:    0.95,
			ImageURL:      "https://example.com/paris.jpg",
		},
		{
			ID:            3,
			Name:          "Kyoto, Japan",
			Description:   "Ancient capital with thousands of temples, traditional gardens, and geisha culture.",
			BudgetLevel:   "high",
			Categories:    []string{"culture", "history", "food", "nature"},
			AvgCostPerDay: 100,
			BestSeasons:   []string{"March", "April", "October", "November"},
			Popularity:    0.8,
			ImageURL:      "https://example.com/kyoto.jpg",
		},
		{
			ID:            4,
			Name:          "Cusco, Peru",
			Description:   "Gateway to Machu Picchu with stunning Incan architecture and high-altitude Andean landscapes.",
			BudgetLevel:   "medium",
			Categories:    []string{"adventure", "history", "culture", "nature"},
			AvgCostPerDay: 60,
			BestSeasons:   []string{"May", "June", "July", "August", "September"},
			Popularity:    0.7,
			ImageURL:      "https://example.com/cusco.jpg",
		},
		{
			ID:            5,
			Name:          "Cape Town, South Africa",
			Description:   "Coastal city with Table Mountain views, diverse culture, and nearby wildlife.",
			BudgetLevel:   "medium",
			Categories:    []string{"nature", "wildlife", "city", "food", "beach"},
			AvgCostPerDay: 70,
			BestSeasons:   []string{"January", "February", "March", "November", "December"},
			Popularity:    0.75,
			ImageURL:      "https://example.com/capetown.jpg",
		},
		{
			ID:            6,
			Name:          "Bangkok, Thailand",
			Description:   "Bustling metropolis with ornate shrines, vibrant street life, and world-renowned street food.",
			BudgetLevel:   "low",
			Categories:    []string{"food", "culture", "city", "budget"},
			AvgCostPerDay: 30,
			BestSeasons:   []string{"November", "December", "January", "February"},
			Popularity:    0.85,
			ImageURL:      "https://example.com/bangkok.jpg",
		},
		{
			ID:            7,
			Name:          "New York City, USA",
			Description:   "Iconic skyline, Broadway shows, diverse neighborhoods, and world-class museums and restaurants.",
			BudgetLevel:   "high",
			Categories:    []string{"city", "culture", "food", "nightlife", "shopping"},
			AvgCostPerDay: 200,
			BestSeasons:   []string{"April", "May", "September", "October", "December"},
			Popularity:    0.9,
			ImageURL:      "https://example.com/nyc.jpg",
		},
		{
			ID:            8,
			Name:          "Santorini, Greece",
			Description:   "Stunning island with white-washed buildings, blue domes, and breathtaking Aegean Sea views.",
			BudgetLevel:   "high",
			Categories:    []string{"beach", "romantic", "food", "luxury"},
			AvgCostPerDay: 150,
			BestSeasons:   []string{"May", "June", "September", "October"},
			Popularity:    0.85,
			ImageURL:      "https://example.com/santorini.jpg",
		},
		{
			ID:            9,
			Name:          "Hanoi, Vietnam",
			Description:   "Ancient capital with French colonial architecture, bustling Old Quarter, and incredible street food.",
			BudgetLevel:   "low",
			Categories:    []string{"food", "culture", "history", "budget", "city"},
			AvgCostPerDay: 25,
			BestSeasons:   []string{"October", "November", "April", "May"},
			Popularity:    0.7,
			ImageURL:      "https://example.com/hanoi.jpg",
		},
		{
			ID:            10,
			Name:          "Queenstown, New Zealand",
			Description:   "Adventure capital surrounded by mountains and lakes, perfect for outdoor activities.",
			BudgetLevel:   "high",
			Categories:    []string{"adventure", "nature", "outdoor", "scenic"},
			AvgCostPerDay: 120,
			BestSeasons:   []string{"December", "January", "February", "March"},
			Popularity:    0.75,
			ImageURL:      "https://example.com/queenstown.jpg",
		},
	}
}
