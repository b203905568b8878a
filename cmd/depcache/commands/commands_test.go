package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/cmd/depcache/commands"
	"go.trai.ch/depcache/internal/app"
	"go.trai.ch/depcache/internal/build"
	"go.trai.ch/depcache/internal/core/domain"
)

type mockApp struct {
	keysFunc    func(ctx context.Context, cwd string, opts app.Options) ([]domain.Descriptor, error)
	restoreFunc func(ctx context.Context, cwd string, opts app.Options) ([]domain.RestoreResult, error)
	saveFunc    func(ctx context.Context, cwd string, opts app.Options) ([]app.SaveResult, error)
}

func (m *mockApp) Keys(ctx context.Context, cwd string, opts app.Options) ([]domain.Descriptor, error) {
	if m.keysFunc != nil {
		return m.keysFunc(ctx, cwd, opts)
	}
	return nil, nil
}

func (m *mockApp) Restore(ctx context.Context, cwd string, opts app.Options) ([]domain.RestoreResult, error) {
	if m.restoreFunc != nil {
		return m.restoreFunc(ctx, cwd, opts)
	}
	return nil, nil
}

func (m *mockApp) Save(ctx context.Context, cwd string, opts app.Options) ([]app.SaveResult, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, cwd, opts)
	}
	return nil, nil
}

type verbosity struct{ verbose bool }

func (v *verbosity) SetVerbose(verbose bool) { v.verbose = verbose }

var mavenDescriptor = domain.Descriptor{
	Name:        "dependencies-maven",
	Baseline:    "dependencies-maven-Linux",
	PrimaryKey:  "dependencies-maven-Linux-PR42-0123456789abcdef",
	RestoreKeys: []string{"dependencies-maven-Linux-PR42", "dependencies-maven-Linux-main"},
	Paths:       []domain.Pattern{domain.Include("~/.m2/repository")},
}

func TestCommands_Keys(t *testing.T) {
	t.Run("prints descriptors as yaml", func(t *testing.T) {
		var capturedOpts app.Options
		mock := &mockApp{
			keysFunc: func(_ context.Context, cwd string, opts app.Options) ([]domain.Descriptor, error) {
				assert.NotEmpty(t, cwd)
				capturedOpts = opts
				return []domain.Descriptor{mavenDescriptor}, nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"keys", "-c", "ci/depcache.yaml"})
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "ci/depcache.yaml", capturedOpts.Config)
		assert.Contains(t, out.String(), "primaryKey: dependencies-maven-Linux-PR42-0123456789abcdef")
		assert.Contains(t, out.String(), "- ~/.m2/repository")

		eventKey := strings.Index(out.String(), "- dependencies-maven-Linux-PR42\n")
		defaultKey := strings.Index(out.String(), "- dependencies-maven-Linux-main\n")
		require.NotEqual(t, -1, eventKey)
		assert.Less(t, eventKey, defaultKey, "restore keys keep their order")
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			keysFunc: func(context.Context, string, app.Options) ([]domain.Descriptor, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"keys"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Restore(t *testing.T) {
	mock := &mockApp{
		restoreFunc: func(context.Context, string, app.Options) ([]domain.RestoreResult, error) {
			return []domain.RestoreResult{
				{Descriptor: mavenDescriptor, MatchedKey: mavenDescriptor.PrimaryKey, Exact: true},
				{Descriptor: domain.Descriptor{Name: "dependencies-gradle"}},
			}, nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"restore"})
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "dependencies-maven\tcached\t"+mavenDescriptor.PrimaryKey)
	assert.Contains(t, out.String(), "dependencies-gradle\tskipped\t")
}

func TestCommands_Save(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.Options
		mock := &mockApp{
			saveFunc: func(_ context.Context, _ string, opts app.Options) ([]app.SaveResult, error) {
				capturedOpts = opts
				return []app.SaveResult{{Descriptor: mavenDescriptor, Status: domain.VertexStatusCompleted}}, nil
			},
		}

		v := &verbosity{}
		cli := commands.New(mock, v)
		cli.SetArgs([]string{"save", "--force", "--verbose"})
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, capturedOpts.Force)
		assert.True(t, v.verbose)
		assert.Contains(t, out.String(), "dependencies-maven\tcompleted\t"+mavenDescriptor.PrimaryKey)
	})

	t.Run("defaults to the population policy", func(t *testing.T) {
		var capturedOpts app.Options
		mock := &mockApp{
			saveFunc: func(_ context.Context, _ string, opts app.Options) ([]app.SaveResult, error) {
				capturedOpts = opts
				return nil, nil
			},
		}

		v := &verbosity{}
		cli := commands.New(mock, v)
		cli.SetArgs([]string{"save"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, capturedOpts.Force)
		assert.False(t, v.verbose)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	cli.SetArgs([]string{"version"})
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "depcache version "+build.Version+"\n", out.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	cli.SetArgs([]string{"--version"})
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "depcache version "+build.Version)
}
