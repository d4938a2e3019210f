package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/moji/cmd/moji/commands"
	"go.trai.ch/moji/internal/app"
	"go.trai.ch/moji/internal/core/domain"
)

// stubApp records the options each command passed down.
type stubApp struct {
	buildOpts *app.BuildOptions
	cleanOpts *app.BuildOptions
	buildErr  error
}

func (s *stubApp) Build(_ context.Context, opts app.BuildOptions) (*domain.Report, error) {
	s.buildOpts = &opts
	return &domain.Report{}, s.buildErr
}

func (s *stubApp) Clean(opts app.BuildOptions) error {
	s.cleanOpts = &opts
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestBuildCommandPassesFlags(t *testing.T) {
	stub := &stubApp{}

	_, err := execute(t, stub, "build", "-c", "custom.yaml", "--no-seqs", "-r", "256", "-j", "4", "--render-only")
	require.NoError(t, err)

	require.NotNil(t, stub.buildOpts)
	assert.Equal(t, "custom.yaml", stub.buildOpts.ConfigPath)
	assert.True(t, stub.buildOpts.NoSequences)
	assert.Equal(t, 256, stub.buildOpts.Resolution)
	assert.Equal(t, 4, stub.buildOpts.Workers)
	assert.True(t, stub.buildOpts.RenderOnly)
}

func TestBuildCommandDefaults(t *testing.T) {
	stub := &stubApp{}

	_, err := execute(t, stub, "build")
	require.NoError(t, err)

	require.NotNil(t, stub.buildOpts)
	assert.Equal(t, "", stub.buildOpts.ConfigPath)
	assert.False(t, stub.buildOpts.NoSequences)
	assert.Equal(t, 0, stub.buildOpts.Resolution)
}

func TestBuildCommandPropagatesError(t *testing.T) {
	stub := &stubApp{buildErr: domain.ErrBuildFailed}

	_, err := execute(t, stub, "build")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestCleanCommand(t *testing.T) {
	stub := &stubApp{}

	_, err := execute(t, stub, "clean", "-c", "custom.yaml")
	require.NoError(t, err)

	require.NotNil(t, stub.cleanOpts)
	assert.Equal(t, "custom.yaml", stub.cleanOpts.ConfigPath)
	assert.Nil(t, stub.buildOpts)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, &stubApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "moji version")
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute(t, &stubApp{}, "frobnicate")
	assert.Error(t, err)
}
