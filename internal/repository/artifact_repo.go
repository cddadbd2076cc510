package repository

// ArtifactRepository defines the optional diagnostic collaborator. When a
// subject stays unresolved, the resolver may hand it the raw page markup for
// manual inspection. Failures here are never fatal to the run.
type ArtifactRepository interface {
	SaveHTML(subjectName, html string) error
}
