// Package cookiecutter renders templates with the cookiecutter CLI.
//
// Each render writes a throwaway cookiecutter config file that points
// cookiecutter at the template cache directory and carries the render
// context as default_context, then runs:
//
//	cookiecutter --no-input --checkout <ref> --output-dir <dir> --config-file <file> <template>
//
// Failures are classified from cookiecutter's output so callers can tell a
// missing repository, a missing branch and an unreachable host apart.
package cookiecutter
