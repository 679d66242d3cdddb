package testutil

// Test user information used across all test helpers.
const (
	// TestAuthor is the default author name for test commits.
	TestAuthor = "Test User"

	// TestEmail is the default email for test commits.
	TestEmail = "test@example.com"
)

// Test locations.
const (
	// UpstreamPath is where NewTemplateUpstream creates the template
	// repository inside its filesystem.
	UpstreamPath = "/upstream/briefcase-tester-dummy-template"

	// UpstreamURL is the file URL of the repository at UpstreamPath, served
	// by ServeFilesystem.
	UpstreamURL = "file://" + UpstreamPath + "/.git"
)

// Test template content.
const (
	// TemplateConfigPath is the cookiecutter configuration file of a template.
	TemplateConfigPath = "cookiecutter.json"

	// TemplateConfigContent is a minimal cookiecutter configuration.
	TemplateConfigContent = `{
  "app_name": "myapp",
  "formal_name": "My App",
  "bundle": "com.example"
}
`

	// TemplateVersionPath records which branch a checkout came from.
	TemplateVersionPath = "VERSION"
)
