// Package git wraps go-git for the version-control needs of the template
// cache: opening cached clones, fetching their remotes and checking out
// remote-tracking branches.
//
// All repository I/O goes through go-billy filesystems. By default the OS
// filesystem is used; tests pass memfs via WithFilesystem.
//
// # Opening and cloning
//
//	repo, err := git.Open("/home/me/.cookiecutters/briefcase-macOS-app-template")
//	if errors.GetCode(err) == errors.CodeNoSuchPath {
//	    // nothing cached yet
//	}
//
//	repo, err := git.Clone(ctx, "https://github.com/beeware/briefcase-macOS-app-template.git", dest)
//
// # Remotes and refs
//
// Remote returns a configured remote. Fetch refreshes its remote-tracking
// branches, and Ref resolves one of them for checkout:
//
//	remote, err := repo.Remote("origin")
//	if err := remote.Fetch(ctx); err != nil {
//	    return err
//	}
//	ref, err := remote.Ref("v0.3.12")
//	if err != nil {
//	    return err // CodeRefNotFound when the branch does not exist
//	}
//	err = ref.Checkout() // forced, detached HEAD
//
// # Network operations
//
// Clone and Fetch go through the RemoteOperations interface. The default
// implementation uses go-git's transports. NewCLIRemoteOperations runs the
// git binary instead so user credential helpers and proxies apply; git's
// fatal exit status 128 is reported as CodeUnreachable.
//
// # Errors
//
// go-git errors are classified into platform error codes from the errors
// package. Connection failures that never reached the remote (DNS, refused,
// unroutable) carry CodeUnreachable so callers can degrade to offline use.
//
// # Escape hatches
//
// Underlying and Filesystem expose the go-git repository and billy
// filesystem for operations this package does not wrap.
package git
