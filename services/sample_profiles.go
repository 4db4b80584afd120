package services

import "github.com/JAMAL4664jfk/studentKonnect-sub000/models"

// SampleProfiles is the fixed local set served when the backend is
// unreachable. The ids are deliberately namespaced so they can never collide
// with real rows.
func SampleProfiles() []models.Profile {
	return []models.Profile{
		{
			UserID:   "sample-aarav",
			FullName: "Aarav Mehta",
			Age:      21,
			Campus:   "Engineering",
			Bio:      "Third-year CS, weekend cricketer, always up for chai.",
			Photos:   []string{"https://cdn.studentkonnect.app/samples/aarav-1.jpg"},
			Verified: true,
		},
		{
			UserID:   "sample-diya",
			FullName: "Diya Sharma",
			Age:      20,
			Campus:   "Design",
			Bio:      "Sketchbooks, film clubs and campus podcasts.",
			Photos:   []string{"https://cdn.studentkonnect.app/samples/diya-1.jpg"},
			Verified: true,
		},
		{
			UserID:   "sample-kabir",
			FullName: "Kabir Nair",
			Age:      22,
			Campus:   "Business",
			Bio:      "Runs the kayaking society. Ask me about the fest.",
			Photos:   []string{"https://cdn.studentkonnect.app/samples/kabir-1.jpg"},
			Verified: false,
		},
		{
			UserID:   "sample-meera",
			FullName: "Meera Iyer",
			Age:      19,
			Campus:   "Sciences",
			Bio:      "Astro major. I will make you look at the moon.",
			Photos:   []string{"https://cdn.studentkonnect.app/samples/meera-1.jpg"},
			Verified: true,
		},
	}
}
