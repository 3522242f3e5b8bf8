package catalog

// JobProfile describes a position the matching engine can score against.
// Skills are lowercase keywords; their order is preserved in match results.
type JobProfile struct {
	Title       string   `json:"title"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// Default returns the built-in job catalog. The slice order matters: equal
// scores during matching are resolved in favor of the earlier entry.
// The catalog is built once at startup and never mutated.
func Default() []JobProfile {
	return []JobProfile{
		{
			Title:       "Frontend Developer",
			Skills:      []string{"javascript", "react", "html", "css", "frontend", "ui"},
			Description: "Work on React-based frontend applications with modern UI.",
		},
		{
			Title:       "Backend Developer",
			Skills:      []string{"node.js", "express", "mongodb", "rest api", "jwt"},
			Description: "Build scalable backend APIs and integrate databases.",
		},
		{
			Title:       "Full Stack Developer",
			Skills:      []string{"javascript", "node.js", "react", "mongodb", "express"},
			Description: "Handle both frontend and backend parts of the web app.",
		},
		{
			Title:       "DevOps Engineer",
			Skills:      []string{"docker", "kubernetes", "aws", "ci/cd", "linux"},
			Description: "Automate deployments, manage infrastructure.",
		},
	}
}
