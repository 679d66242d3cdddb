// Package cache manages the local clones the render engine keeps of remote
// templates.
//
// The render engine clones a remote template into <dir>/<repo name> the
// first time it is used. On later runs the cache resolves the template
// location to that clone, fetches origin and checks out the requested
// branch, so the render engine works from a local, up-to-date copy:
//
//	~/.cookiecutters/
//	└── briefcase-macOS-app-template/   # clone of https://github.com/beeware/briefcase-macOS-app-template.git
//
// # Usage
//
//	c, err := cache.New()
//	res, err := c.Resolve("https://github.com/beeware/briefcase-macOS-app-template.git")
//	if res.Cached {
//	    if err := c.Update(ctx, res.Repository, "v0.3.20"); err != nil {
//	        return err
//	    }
//	}
//	render(res.Location)
//
// # Offline use
//
// When origin cannot be reached, Update prints a warning to stdout and
// checks out the branch from the refs already in the clone.
//
// # Directory
//
// The cache directory is cookiecutters_dir from ~/.cookiecutterrc (or the
// file named by COOKIECUTTER_CONFIG), defaulting to ~/.cookiecutters, so
// clones made by the render engine are found. WithDir overrides it.
package cache
