package memory

import (
	"time"

	"github.com/rainesports/site-api/internal/domain/discord"
	"github.com/rainesports/site-api/internal/domain/news"
	"github.com/rainesports/site-api/internal/domain/roster"
	"github.com/rainesports/site-api/internal/domain/tournament"
)

// Seed data loaded at process start. The whole data set is process-lifetime
// only: a restart resets to exactly this.

func SeedMembers() []roster.NewMember {
	return []roster.NewMember{
		{
			Name:        "StormRider",
			Role:        "IGL (In-Game Leader)",
			Rank:        "Champion League",
			KDA:         "2.8",
			ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400&h=400&fit=crop&crop=face",
			Description: "Strategic mastermind leading the team with exceptional game sense and communication.",
		},
		{
			Name:        "NeonStrike",
			Role:        "Fragger",
			Rank:        "Elite League",
			KDA:         "3.2",
			ImageURL:    "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?w=400&h=400&fit=crop&crop=face",
			Description: "Aggressive entry fragger with incredible aim and clutch potential.",
		},
		{
			Name:        "CyberVault",
			Role:        "Support Player",
			Rank:        "Elite League",
			KDA:         "2.1",
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Description: "Team player focused on rotations, heals, and setting up teammates for success.",
		},
	}
}

func SeedTournaments() []tournament.NewTournament {
	win15 := "Victory - 15 Eliminations"
	win18 := "Victory - 18 Eliminations"
	upcoming := true
	past := false

	return []tournament.NewTournament{
		{Opponent: "Fortnite Championship Series", Date: "January 15, 2025", Type: "FNCS Qualifier", IsUpcoming: &upcoming},
		{Opponent: "Elite Gaming Squad", Date: "January 20, 2025", Type: "Scrim Match", IsUpcoming: &upcoming},
		{Opponent: "Thunder Esports", Date: "December 28, 2024", Type: "Practice Match", Result: &win15, IsUpcoming: &past},
		{Opponent: "Cyber Warriors", Date: "December 25, 2024", Type: "Scrimmage", Result: &win18, IsUpcoming: &past},
	}
}

func SeedNews() []news.NewItem {
	return []news.NewItem{
		{
			Title:       "Rain Esports is Born - New Fortnite Team Launches!",
			Excerpt:     "We're officially launching Rain Esports! Join us as we build the next champion Fortnite team from the ground up.",
			Content:     "Welcome to Rain Esports! We're a brand new competitive Fortnite team with big dreams and the determination to reach the top. Our mission is to build a championship-caliber squad while fostering an amazing community of passionate gamers. We're actively recruiting talented players and building our fanbase. Join our Discord to be part of the journey from day one!",
			ImageURL:    "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			PublishedAt: "Jan 3, 2025",
			Author:      "Rain Esports Management",
		},
		{
			Title:       "Player Tryouts Now Open!",
			Excerpt:     "Think you have what it takes? We're holding open tryouts for all positions. Show us your skills!",
			Content:     "Rain Esports is officially holding tryouts for our competitive roster! We're looking for dedicated players in all roles: IGL, Fragger, Support, and Flex players. Tryouts are open to all skill levels - we value attitude, teamwork, and improvement potential just as much as current skill. Join our Discord and sign up for tryout sessions happening every weekend!",
			ImageURL:    "https://images.unsplash.com/photo-1556438064-2d7646166914?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			PublishedAt: "Jan 5, 2025",
			Author:      "Rain Esports Coaching Staff",
		},
		{
			Title:       "Discord Community Launch Event",
			Excerpt:     "Join our Discord launch party! Custom games, giveaways, and meet the founding members of Rain Esports.",
			Content:     "Celebrate the launch of Rain Esports with our Discord community event! We'll be hosting custom Creative maps, build battles, elimination tournaments, and giving away exclusive skins and V-Bucks to our first 500 members. This is your chance to be part of Rain Esports history and help shape our community culture from the beginning.",
			ImageURL:    "https://images.unsplash.com/photo-1556438064-2d7646166914?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			PublishedAt: "Jan 1, 2025",
			Author:      "Rain Esports Community Team",
		},
	}
}

func SeedDiscordStats() *discord.Stats {
	return &discord.Stats{
		TotalMembers:  440,
		OnlineMembers: 136,
		InviteURL:     "https://discord.gg/CXdR3GQVzR",
		UpdatedAt:     time.Now(),
	}
}
