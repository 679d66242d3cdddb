// Package exec runs external tools such as git, cookiecutter and python.
//
// Command implements Executor on top of os/exec. Settings passed to New are
// global; the With* methods configure the next Run only:
//
//	cmd := exec.New(exec.WithInheritEnv(), exec.WithDisableColors())
//	res, err := cmd.WithDir(repo).WithTimeout(30*time.Second).Run("git", "fetch", "origin")
//
// Stdout, stderr and their interleaving are always captured. WithPassthrough
// additionally streams them to the configured writers.
//
// A failed run returns the Result together with an *ExecError holding the exit
// code and output; ExitCode extracts the code from any wrapped error:
//
//	if exec.ExitCode(err) == 128 {
//		// git could not reach the remote
//	}
//
// CommandWrapper pins a tool name so callers only pass arguments:
//
//	git := exec.NewWrapper(exec.New(), "git")
//	_, err := git.WithDir(repo).Run("status")
//
// Consumers accept the Executor interface so tests can substitute a fake.
package exec
