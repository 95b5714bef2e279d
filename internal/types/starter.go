package types

// StarterDocument returns the sample resume a fresh editing session starts
// from when nothing has been persisted yet.
func StarterDocument() *ResumeDocument {
	return &ResumeDocument{
		Profile: Profile{
			Name:     "John Doe",
			Title:    "Software Engineer",
			Email:    "john.doe@example.com",
			Phone:    "(123) 456-7890",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/johndoe",
			Summary: "Experienced software engineer with a passion for creating elegant, " +
				"efficient solutions to complex problems. Skilled in full-stack development " +
				"with a focus on scalable, maintainable code.",
		},
		Experience: []WorkExperience{
			{
				ID:        NewEntryID(),
				Company:   "Tech Solutions Inc.",
				Position:  "Senior Software Engineer",
				StartDate: "01/2020",
				EndDate:   "Present",
				Location:  "San Francisco, CA",
				Description: []string{
					"Led development of a microservice architecture that improved system reliability by 35%",
					"Mentored junior developers and conducted code reviews to ensure code quality",
					"Implemented CI/CD pipelines that reduced deployment time by 40%",
				},
			},
			{
				ID:        NewEntryID(),
				Company:   "WebDev Startup",
				Position:  "Full Stack Developer",
				StartDate: "06/2017",
				EndDate:   "12/2019",
				Location:  "San Francisco, CA",
				Description: []string{
					"Built RESTful APIs for mobile and web applications using Node.js and Express",
					"Developed responsive, user-friendly front-end interfaces with React",
					"Collaborated with design team to implement UI/UX improvements",
				},
			},
		},
		Education: []Education{
			{
				ID:          NewEntryID(),
				Institution: "University of California, Berkeley",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   "08/2013",
				EndDate:     "05/2017",
				Location:    "Berkeley, CA",
				GPA:         "3.8",
			},
		},
		Skills: []string{
			"JavaScript", "TypeScript", "React", "Node.js", "Express", "MongoDB",
			"AWS", "Docker", "Git", "CI/CD", "Problem Solving", "Team Leadership",
		},
	}
}
