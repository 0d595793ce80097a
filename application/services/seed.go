package services

import (
	"time"

	"ejama-backend/domain/entities"
)

// Starter content written on first load so new installs are not empty.
// IDs are fixed so repeated seeding overwrites rather than duplicates.

func seedCategories() []entities.Category {
	return []entities.Category{
		{
			ID:           "c-1",
			Title:        "Menstrual Health Basics",
			Description:  "Ask questions, share experiences, learn the basics.",
			Icon:         "🩸",
			MembersCount: 124,
		},
		{
			ID:           "c-2",
			Title:        "Products & Access",
			Description:  "Talk about pads, tampons, cups, brands, and availability.",
			Icon:         "🧻",
			MembersCount: 88,
		},
		{
			ID:           "c-3",
			Title:        "Cramps & Pain Support",
			Description:  "Home tips, comfort routines, when to seek help.",
			Icon:         "💊",
			MembersCount: 67,
		},
		{
			ID:           "c-4",
			Title:        "Myths & Stigma",
			Description:  "Break stigma, share facts, and support each other.",
			Icon:         "💬",
			MembersCount: 52,
		},
	}
}

func seedThreads(now time.Time) []entities.Thread {
	return []entities.Thread{
		{
			ID:         "t-1",
			CategoryID: "c-1",
			Title:      "What's considered a normal cycle length?",
			CreatedBy:  "Ejama Team",
			CreatedAt:  now,
		},
		{
			ID:         "t-2",
			CategoryID: "c-3",
			Title:      "What helps you most with cramps?",
			CreatedBy:  "Community",
			CreatedAt:  now,
		},
		{
			ID:         "t-3",
			CategoryID: "c-2",
			Title:      "Pads vs tampons: how did you choose?",
			CreatedBy:  "Community",
			CreatedAt:  now,
		},
	}
}

func seedPosts(now time.Time) []entities.Post {
	return []entities.Post{
		{
			ID:        "p-1",
			ThreadID:  "t-1",
			Author:    "Ejama Team",
			CreatedAt: now,
			Content:   "Many people have cycles between 21–35 days. What's \"normal\" can vary — the key is consistency for YOU. If there's a sudden change, it may be worth checking with a healthcare professional.",
			Likes:     4,
		},
		{
			ID:        "p-2",
			ThreadID:  "t-2",
			Author:    "Amina",
			CreatedAt: now,
			Content:   "Heat pad + ginger tea + light stretching works for me. If it's really bad I rest and avoid caffeine.",
			Likes:     7,
		},
		{
			ID:        "p-3",
			ThreadID:  "t-3",
			Author:    "Chidera",
			CreatedAt: now,
			Content:   "I started with pads then tried tampons later. Comfort + activity level mattered most. Also having access and good hygiene helped.",
			Likes:     3,
		},
	}
}

func seedQuestions(now time.Time) []entities.Question {
	q1Answered := now.Add(-24 * time.Hour)
	q2Answered := now.Add(-48 * time.Hour)
	return []entities.Question{
		{
			ID:         "q-1",
			Question:   "What's considered a normal amount of bleeding during a period?",
			Category:   "Menstrual Health",
			IsPrivate:  false,
			AskedBy:    "anonymous",
			AskedAt:    now.Add(-48 * time.Hour),
			Answer:     "A typical period involves losing about 30-40ml of blood over 3-7 days. Heavy bleeding (menorrhagia) is when you lose more than 80ml or need to change protection every 1-2 hours. If you're soaking through pads/tampons frequently or passing large clots, consult a healthcare provider.",
			AnsweredBy: "Dr. Amina Hassan",
			AnsweredAt: &q1Answered,
			Status:     entities.QuestionAnswered,
		},
		{
			ID:         "q-2",
			Question:   "Are menstrual cups safe to use?",
			Category:   "Products & Hygiene",
			IsPrivate:  false,
			AskedBy:    "anonymous",
			AskedAt:    now.Add(-72 * time.Hour),
			Answer:     "Yes, menstrual cups are safe when used correctly. They're made from medical-grade silicone and can be worn for up to 12 hours. Make sure to wash your hands before insertion/removal, clean the cup thoroughly, and boil it between cycles. If you experience any irritation or unusual symptoms, discontinue use and consult a healthcare provider.",
			AnsweredBy: "Dr. Sarah Okonkwo",
			AnsweredAt: &q2Answered,
			Status:     entities.QuestionAnswered,
		},
		{
			ID:        "q-3",
			Question:  "How can I reduce severe period cramps naturally?",
			Category:  "Pain Management",
			IsPrivate: false,
			AskedBy:   "anonymous",
			AskedAt:   now.Add(-120 * time.Hour),
			Status:    entities.QuestionPending,
		},
	}
}
