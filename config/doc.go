// Package config loads briefcase's own settings and application
// configurations.
//
// Settings are layered: built-in defaults, then the user config file at
// $XDG_CONFIG_HOME/briefcase/config.toml, then BRIEFCASE_ environment
// variables (BRIEFCASE_RENDER_TIMEOUT sets render.timeout).
//
// Application configurations come from a project's pyproject.toml:
//
//	[tool.briefcase]
//	project_name = "Hello World"
//	bundle = "com.example"
//	version = "0.0.1"
//
//	[tool.briefcase.app.helloworld]
//	formal_name = "Hello World"
//	sources = ["src/helloworld"]
//
//	[tool.briefcase.app.helloworld.macOS]
//	requires = ["toga-cocoa"]
package config
