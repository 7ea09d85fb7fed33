package constants

// TechSkills is the keyword taxonomy matched against resume text.
// Whole-word, case-insensitive; matches are reported in this casing.
var TechSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby", "Swift", "Go",
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring", "Express",
	"SQL", "NoSQL", "MongoDB", "MySQL", "PostgreSQL", "Oracle", "GraphQL",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Jenkins", "Git",
	"HTML", "CSS", "SASS", "LESS", "Bootstrap", "Tailwind", "Material UI",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Data Science",
	"Machine Learning", "AI", "NLP", "Computer Vision", "Deep Learning",
}
