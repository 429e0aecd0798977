package repository

import "github.com/Raymond9734/profile-directory/internal/models"

// SeedProfiles returns the development data set used by the in-memory repository
func SeedProfiles() []*models.Profile {
	return []*models.Profile{
		{
			ID:           1,
			Name:         "Atharva Kadam",
			Title:        "Senior Full Stack Developer",
			Role:         "Engineering Lead",
			City:         "pune",
			State:        "Maharastra",
			Location:     &models.Coordinates{Lat: 18.5204, Lng: 73.8567},
			Description:  "Passionate about building scalable web applications and mentoring junior developers. Expert in modern JavaScript frameworks and cloud architecture.",
			Skills:       []string{"React", "Node.js", "AWS", "TypeScript", "MongoDB"},
			Experience:   "10+ years",
			Availability: "Full-time",
			Email:        "atharva.kadam@example.com",
			Phone:        "+91 000000000",
			LinkedIn:     "linkedin.com/in/atharvakadam",
			ImageURL:     "https://api.dicebear.com/7.x/avataaars/svg?seed=alex",
		},
		{
			ID:           2,
			Name:         "Mayur Girase",
			Title:        "Product Designer",
			Role:         "Design Lead",
			City:         "Nashik",
			State:        "Maharastra",
			Location:     &models.Coordinates{Lat: 19.9975, Lng: 73.7898},
			Description:  "Award-winning product designer specializing in creating delightful user experiences. Strong focus on accessibility and inclusive design principles.",
			Skills:       []string{"UI/UX Design", "Design Systems", "Figma", "User Research", "Prototyping"},
			Experience:   "8 years",
			Availability: "Contract",
			Email:        "mayur.girase@example.com",
			Phone:        "+91 0000000000",
			LinkedIn:     "linkedin.com/in/mayurgirase",
			ImageURL:     "https://api.dicebear.com/7.x/avataaars/svg?seed=maya",
		},
		{
			ID:           3,
			Name:         "Kiran Fugat",
			Title:        "Cloud Solutions Designer",
			Role:         "Technical Lead",
			City:         "Mumbai",
			State:        "Maharastra",
			Location:     &models.Coordinates{Lat: 19.0760, Lng: 72.8777},
			Description:  "Cloud solutions Designer with expertise in designing and implementing scalable infrastructure. Specialized in multi-cloud environments and serverless architecture.",
			Skills:       []string{"AWS", "Azure", "Kubernetes", "Terraform", "DevOps"},
			Experience:   "12 years",
			Availability: "Remote",
			Email:        "kiran.fugat@example.com",
			Phone:        "+91 0000000000",
			LinkedIn:     "linkedin.com/in/kiranfugat",
			ImageURL:     "https://api.dicebear.com/7.x/avataaars/svg?seed=sophie",
		},
		{
			ID:           4,
			Name:         "Rohit Diobale",
			Title:        "Mobile Developer",
			Role:         "Senior Developer",
			City:         "Nanded",
			State:        "Maharastra",
			Location:     &models.Coordinates{Lat: 19.1485, Lng: 77.3191},
			Description:  "Experienced mobile developer with a track record of delivering high-performance native and cross-platform applications. Passionate about mobile UX and performance optimization.",
			Skills:       []string{"React Native", "iOS", "Android", "Flutter", "Mobile Architecture"},
			Experience:   "7 years",
			Availability: "Hybrid",
			Email:        "rohit.doibale@example.com",
			Phone:        "+91 000000000",
			LinkedIn:     "linkedin.com/in/rohitdiobale",
			ImageURL:     "https://api.dicebear.com/7.x/avataaars/svg?seed=marcus",
		},
	}
}
