// Package template turns an application configuration and a target
// platform into a rendered project skeleton.
//
// The work happens in three steps. Locate picks the template source,
// either the app's own template or the default one for the platform. The
// Generator then resolves a checkout reference from the tool version,
// refreshes any cached clone of the template, and hands the request to a
// Renderer. When a development build asks for a version branch the
// template does not have yet, the Generator retries once with the
// fallback branch.
//
// Basic usage:
//
//	c, err := cache.New()
//	if err != nil {
//		return err
//	}
//
//	gen := template.NewGenerator(c, cookiecutter.New(), version.MustParse("0.3.14"),
//		template.WithPythonVersion("3.12"),
//	)
//
//	result, err := gen.Generate(ctx, app, template.Target{
//		Platform:     "macOS",
//		OutputFormat: "app",
//		OutputDir:    "build/my-app/macos",
//	})
//	if result.TemplatePopulated {
//		// persist result.Template on the app
//	}
package template
