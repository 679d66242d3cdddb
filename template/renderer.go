package template

import "context"

// RenderRequest is a single render of a template.
type RenderRequest struct {
	// Template is a repository URL, a local directory or a cache path.
	Template string

	// Checkout is the branch, tag or commit to render from.
	Checkout string

	// OutputDir is where the project directory is created.
	OutputDir string

	ExtraContext RenderContext

	// NoInput disables prompting for variables.
	NoInput bool
}

// Renderer renders a template into a directory.
//
// A renderer clones remote templates it has not seen into the cache
// itself. Failures are classified with these codes:
//   - CodeRepositoryNotFound: the location is not a template repository
//   - CodeCloneFailed: the checkout reference does not exist
//   - CodeUnreachable: the repository host could not be contacted
type Renderer interface {
	Render(ctx context.Context, req RenderRequest) error
}

