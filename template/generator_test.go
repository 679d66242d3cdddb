package template

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	platformerrors "github.com/yngvem/briefcase/errors"
	"github.com/yngvem/briefcase/git/cache"
	"github.com/yngvem/briefcase/version"
)

const (
	defaultURL = "https://github.com/beeware/briefcase-tester-dummy-template.git"
	cacheDir   = "/home/user/.cookiecutters"
	cachePath  = cacheDir + "/briefcase-tester-dummy-template"
	outputDir  = "/project/tester"
)

var target = Target{Platform: "tester", OutputFormat: "dummy", OutputDir: outputDir}

func newHarness(t *testing.T, toolVersion string, opts ...GeneratorOption) (*Generator, *recorder, *fakeOpener, *fakeRenderer, *bytes.Buffer) {
	t.Helper()

	rec := &recorder{}
	opener := &fakeOpener{rec: rec, repos: map[string]*fakeRepository{}}
	renderer := &fakeRenderer{rec: rec, failures: map[string]error{}}
	stdout := &bytes.Buffer{}

	c, err := cache.New(cache.WithDir(cacheDir), cache.WithOpener(opener), cache.WithStdout(stdout))
	require.NoError(t, err)

	opts = append([]GeneratorOption{
		WithFilesystem(memfs.New()),
		WithPythonVersion("3.X"),
		WithClock(func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }),
	}, opts...)
	return NewGenerator(c, renderer, version.MustParse(toolVersion), opts...), rec, opener, renderer, stdout
}

// cacheTemplate registers a cached clone whose origin has refs.
func cacheTemplate(opener *fakeOpener, fetchErr error, refs ...string) {
	opener.repos[cachePath] = &fakeRepository{
		rec:    opener.rec,
		remote: &fakeRemote{rec: opener.rec, refs: refs, fetchErr: fetchErr},
	}
}

func myApp() AppConfig {
	return AppConfig{
		AppName:    "my-app",
		FormalName: "My App",
		Bundle:     "com.example",
		Version:    "1.2.3",
		Sources:    []string{"src/my_app"},
		Supported:  true,
	}
}

func cloneFailed() error {
	return platformerrors.New(platformerrors.CodeCloneFailed, "branch not found")
}

func TestGenerate_DefaultTemplate(t *testing.T) {
	tests := []struct {
		version  string
		checkout string
	}{
		{"37.42.7", "v37.42.7"},
		{"37.42.7a1", "v37.42.7"},
		{"37.42.7b2", "v37.42.7"},
		{"37.42.7rc3", "v37.42.7"},
		{"37.42.7.post1", "v37.42.7"},
		{"37.42.7.dev73+gad61a29.d20220919", "v37.42.7"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			gen, rec, _, renderer, _ := newHarness(t, tt.version)

			result, err := gen.Generate(context.Background(), myApp(), target)
			require.NoError(t, err)

			assert.Equal(t, Result{
				Template:          defaultURL,
				TemplatePopulated: true,
				Checkout:          tt.checkout,
				Attempts:          1,
			}, result)
			assert.Equal(t, []string{
				"open " + cachePath,
				"render " + defaultURL + "@" + tt.checkout,
			}, rec.calls)

			require.Len(t, renderer.requests, 1)
			req := renderer.requests[0]
			assert.Equal(t, outputDir, req.OutputDir)
			assert.True(t, req.NoInput)
			assert.Equal(t, "my_app", req.ExtraContext["module_name"])
			assert.Equal(t, "com.example", req.ExtraContext["package_name"])
			assert.Equal(t, "3.X", req.ExtraContext["python_version"])
			assert.Equal(t, "2024", req.ExtraContext["year"])
			assert.Equal(t, "June", req.ExtraContext["month"])
			assert.Equal(t, "dummy", req.ExtraContext["output_format"])
		})
	}
}

func TestGenerate_DoesNotModifyApp(t *testing.T) {
	gen, _, _, _, _ := newHarness(t, "37.42.7")
	app := myApp()

	result, err := gen.Generate(context.Background(), app, target)
	require.NoError(t, err)

	assert.Empty(t, app.Template)
	assert.Equal(t, defaultURL, result.Template)
}

func TestGenerate_DevFallback(t *testing.T) {
	gen, rec, _, renderer, _ := newHarness(t, "37.42.7.dev0+gad61a29.d20220919")
	renderer.failures["v37.42.7"] = cloneFailed()

	result, err := gen.Generate(context.Background(), myApp(), target)
	require.NoError(t, err)

	assert.Equal(t, "main", result.Checkout)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, []string{
		"open " + cachePath,
		"render " + defaultURL + "@v37.42.7",
		"open " + cachePath,
		"render " + defaultURL + "@main",
	}, rec.calls)
}

func TestGenerate_DevFallbackCustomBranch(t *testing.T) {
	gen, rec, _, renderer, _ := newHarness(t, "37.42.7.dev1", WithFallbackBranch("develop"))
	renderer.failures["v37.42.7"] = cloneFailed()

	result, err := gen.Generate(context.Background(), myApp(), target)
	require.NoError(t, err)

	assert.Equal(t, "develop", result.Checkout)
	assert.Equal(t, "render "+defaultURL+"@develop", rec.calls[len(rec.calls)-1])
}

func TestGenerate_DevFallbackFails(t *testing.T) {
	gen, _, _, renderer, _ := newHarness(t, "37.42.7.dev1")
	renderer.failures["v37.42.7"] = cloneFailed()
	renderer.failures["main"] = cloneFailed()

	result, err := gen.Generate(context.Background(), myApp(), target)
	require.Error(t, err)

	assert.Equal(t, platformerrors.CodeUnsupportedVersion, platformerrors.GetCode(err))
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, "main", result.Checkout)
	assert.Len(t, renderer.requests, 2)
}

func TestGenerate_NoFallback(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		app      func() AppConfig
		checkout string
	}{
		{
			name:     "release build",
			version:  "37.42.7",
			app:      myApp,
			checkout: "v37.42.7",
		},
		{
			name:     "prerelease build",
			version:  "37.42.7rc3",
			app:      myApp,
			checkout: "v37.42.7",
		},
		{
			name:    "explicit branch",
			version: "37.42.7.dev1",
			app: func() AppConfig {
				app := myApp()
				app.TemplateBranch = "v37.42.7"
				return app
			},
			checkout: "v37.42.7",
		},
		{
			name:    "local template",
			version: "37.42.7.dev1",
			app: func() AppConfig {
				app := myApp()
				app.Template = "/path/to/template"
				return app
			},
			checkout: "v37.42.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, _, _, renderer, _ := newHarness(t, tt.version)
			renderer.failures[tt.checkout] = cloneFailed()

			result, err := gen.Generate(context.Background(), tt.app(), target)
			require.Error(t, err)

			assert.Equal(t, platformerrors.CodeUnsupportedVersion, platformerrors.GetCode(err))
			assert.Equal(t, 1, result.Attempts)
			assert.Len(t, renderer.requests, 1)
		})
	}
}

func TestGenerate_DevBuildFailuresNotRetried(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode platformerrors.ErrorCode
	}{
		{
			name:     "repository not found",
			err:      platformerrors.New(platformerrors.CodeRepositoryNotFound, "not a repository"),
			wantCode: platformerrors.CodeInvalidTemplate,
		},
		{
			name:     "unreachable",
			err:      platformerrors.New(platformerrors.CodeUnreachable, "exit status 128"),
			wantCode: platformerrors.CodeNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, rec, _, renderer, _ := newHarness(t, "37.42.7.dev1")
			renderer.failures["v37.42.7"] = tt.err

			result, err := gen.Generate(context.Background(), myApp(), target)
			require.Error(t, err)

			assert.Equal(t, tt.wantCode, platformerrors.GetCode(err))
			assert.Equal(t, 1, result.Attempts)
			assert.Equal(t, "v37.42.7", result.Checkout)
			assert.Len(t, renderer.requests, 1)
			assert.Equal(t, []string{
				"open " + cachePath,
				"render " + defaultURL + "@v37.42.7",
			}, rec.calls)
		})
	}
}

func TestGenerate_ExplicitBranch(t *testing.T) {
	gen, rec, _, _, _ := newHarness(t, "37.42.7")
	app := myApp()
	app.TemplateBranch = "some_branch"

	result, err := gen.Generate(context.Background(), app, target)
	require.NoError(t, err)

	assert.Equal(t, "some_branch", result.Checkout)
	assert.Equal(t, "render "+defaultURL+"@some_branch", rec.calls[1])
}

func TestGenerate_ExplicitRepositoryTemplate(t *testing.T) {
	gen, rec, _, _, _ := newHarness(t, "37.42.7")
	app := myApp()
	app.Template = "https://example.com/magic/special-template.git"

	result, err := gen.Generate(context.Background(), app, target)
	require.NoError(t, err)

	assert.Equal(t, app.Template, result.Template)
	assert.False(t, result.TemplatePopulated)
	assert.Equal(t, []string{
		"open " + cacheDir + "/special-template",
		"render " + app.Template + "@v37.42.7",
	}, rec.calls)
}

func TestGenerate_ExplicitLocalTemplate(t *testing.T) {
	gen, rec, _, _, _ := newHarness(t, "37.42.7")
	app := myApp()
	app.Template = "/path/to/special-template"

	result, err := gen.Generate(context.Background(), app, target)
	require.NoError(t, err)

	assert.False(t, result.TemplatePopulated)
	assert.Equal(t, []string{"render /path/to/special-template@v37.42.7"}, rec.calls)
}

func TestGenerate_RenderFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode platformerrors.ErrorCode
	}{
		{
			name:     "offline first clone",
			err:      platformerrors.New(platformerrors.CodeUnreachable, "exit status 128"),
			wantCode: platformerrors.CodeNetwork,
		},
		{
			name:     "invalid repository",
			err:      platformerrors.New(platformerrors.CodeRepositoryNotFound, "not a repository"),
			wantCode: platformerrors.CodeInvalidTemplate,
		},
		{
			name:     "missing branch",
			err:      cloneFailed(),
			wantCode: platformerrors.CodeUnsupportedVersion,
		},
		{
			name:     "other failure",
			err:      platformerrors.New(platformerrors.CodeExecutionFailed, "boom"),
			wantCode: platformerrors.CodeExecutionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, _, _, renderer, _ := newHarness(t, "37.42.7")
			renderer.failures["v37.42.7"] = tt.err

			result, err := gen.Generate(context.Background(), myApp(), target)
			require.Error(t, err)

			assert.Equal(t, tt.wantCode, platformerrors.GetCode(err))
			assert.True(t, result.TemplatePopulated)
			assert.Equal(t, defaultURL, result.Template)
		})
	}
}

func TestGenerate_ErrorContext(t *testing.T) {
	gen, _, _, renderer, _ := newHarness(t, "37.42.7")
	renderer.failures["v37.42.7"] = cloneFailed()

	_, err := gen.Generate(context.Background(), myApp(), target)
	require.Error(t, err)

	var perr platformerrors.PlatformError
	require.True(t, platformerrors.As(err, &perr))
	assert.Equal(t, defaultURL, perr.Context()["template"])
	assert.Equal(t, "v37.42.7", perr.Context()["branch"])
}

func TestGenerate_CachedTemplate(t *testing.T) {
	gen, rec, opener, renderer, stdout := newHarness(t, "37.42.7")
	cacheTemplate(opener, nil, "v37.42.7")

	result, err := gen.Generate(context.Background(), myApp(), target)
	require.NoError(t, err)

	assert.Equal(t, defaultURL, result.Template)
	assert.Equal(t, []string{
		"open " + cachePath,
		"remote origin",
		"fetch",
		"ref v37.42.7",
		"checkout v37.42.7",
		"render " + cachePath + "@v37.42.7",
	}, rec.calls)
	assert.Equal(t, cachePath, renderer.requests[0].Template)
	assert.Empty(t, stdout.String())
}

func TestGenerate_CachedTemplateOffline(t *testing.T) {
	gen, rec, opener, _, stdout := newHarness(t, "37.42.7")
	cacheTemplate(opener, platformerrors.New(platformerrors.CodeUnreachable, "no such host"), "v37.42.7")

	_, err := gen.Generate(context.Background(), myApp(), target)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "** WARNING: Unable to update template")
	assert.Equal(t, "render "+cachePath+"@v37.42.7", rec.calls[len(rec.calls)-1])
}

func TestGenerate_CachedTemplateFetchFailure(t *testing.T) {
	gen, _, opener, renderer, _ := newHarness(t, "37.42.7")
	cacheTemplate(opener, platformerrors.New(platformerrors.CodeUnauthorized, "denied"), "v37.42.7")

	_, err := gen.Generate(context.Background(), myApp(), target)
	require.Error(t, err)

	assert.Equal(t, platformerrors.CodeNetwork, platformerrors.GetCode(err))
	assert.Empty(t, renderer.requests)
}

func TestGenerate_CachedMissingBranch(t *testing.T) {
	gen, rec, opener, renderer, _ := newHarness(t, "37.42.7")
	cacheTemplate(opener, nil, "main")

	result, err := gen.Generate(context.Background(), myApp(), target)
	require.Error(t, err)

	assert.Equal(t, platformerrors.CodeUnsupportedVersion, platformerrors.GetCode(err))
	assert.Equal(t, 1, result.Attempts)
	assert.Empty(t, renderer.requests)
	assert.Equal(t, "ref v37.42.7", rec.calls[len(rec.calls)-1])
}

func TestGenerate_CachedMissingBranchDevFallback(t *testing.T) {
	gen, rec, opener, _, _ := newHarness(t, "37.42.7.dev3")
	cacheTemplate(opener, nil, "main")

	result, err := gen.Generate(context.Background(), myApp(), target)
	require.NoError(t, err)

	assert.Equal(t, "main", result.Checkout)
	assert.Equal(t, []string{
		"open " + cachePath,
		"remote origin",
		"fetch",
		"ref v37.42.7",
		"open " + cachePath,
		"remote origin",
		"fetch",
		"ref main",
		"checkout main",
		"render " + cachePath + "@main",
	}, rec.calls)
}

func TestGenerate_OutputDir(t *testing.T) {
	fs := memfs.New()
	gen, _, _, _, _ := newHarness(t, "37.42.7", WithFilesystem(fs))

	_, err := gen.Generate(context.Background(), myApp(), target)
	require.NoError(t, err)

	info, err := fs.Stat(outputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// An existing directory is fine.
	_, err = gen.Generate(context.Background(), myApp(), target)
	require.NoError(t, err)
}

func TestGenerate_MissingOutputDir(t *testing.T) {
	gen, _, _, renderer, _ := newHarness(t, "37.42.7")

	_, err := gen.Generate(context.Background(), myApp(), Target{Platform: "tester", OutputFormat: "dummy"})
	require.Error(t, err)

	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
	assert.Empty(t, renderer.requests)
}

func TestGenerate_Organization(t *testing.T) {
	gen, _, _, renderer, _ := newHarness(t, "37.42.7", WithOrganization("https://git.example.com/mirror"))

	result, err := gen.Generate(context.Background(), myApp(), target)
	require.NoError(t, err)

	assert.Equal(t, "https://git.example.com/mirror/briefcase-tester-dummy-template.git", result.Template)
	assert.Equal(t, result.Template, renderer.requests[0].Template)
}
