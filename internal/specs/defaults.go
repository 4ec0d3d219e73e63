package specs

import "os"

// defaultBody is the example README written into new specs.
const defaultBody = `
# {{ project }}

Created by {{ user }}.
`

// DefaultSpec returns the example spec written by `tmpl new`.
func DefaultSpec() *Spec {
	spec := NewSpec()
	spec.Variables["user"] = String(currentUser())
	spec.Variables["project"] = String("project-name")
	spec.Templates = append(spec.Templates, Template{
		Path: "README.md",
		Body: defaultBody,
	})
	return spec
}

// currentUser is a hint for the example spec only.
func currentUser() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	if user := os.Getenv("USERNAME"); user != "" {
		return user
	}
	return "username"
}
