// # Overview
//
// Every failure that leaves a package in this module is either a PlatformError
// or wraps one. The code tells callers what happened without matching on
// message text:
//
//	err := gen.Generate(ctx, app, target)
//	switch errors.GetCode(err) {
//	case errors.CodeInvalidTemplate:
//	    // the template location is not a template repository
//	case errors.CodeUnsupportedVersion:
//	    // the repository has no branch for this version
//	case errors.CodeNetwork:
//	    // a required clone could not reach the network
//	}
//
// Adapter packages (git, template/cookiecutter) report the lower level codes
// CodeNoSuchPath, CodeRefNotFound, CodeUnreachable, CodeRepositoryNotFound and
// CodeCloneFailed; the template package translates those into the three
// caller-facing codes above.
//
// Wrapping keeps the standard library contract:
//
//	if err := remote.Fetch(ctx); err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "failed to fetch template")
//	}
//
// errors.Is, errors.As and errors.Unwrap work across the chain, and GetCode
// reports the outermost code.
package errors
