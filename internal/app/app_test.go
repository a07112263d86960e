package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/app"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/mk/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// enterProject changes into a fresh directory, optionally containing make.py,
// and returns the directory as reported by os.Getwd.
func enterProject(t *testing.T, withScript bool) string {
	t.Helper()

	t.Chdir(t.TempDir())
	dir, err := os.Getwd()
	require.NoError(t, err)

	if withScript {
		require.NoError(t, os.WriteFile(filepath.Join(dir, domain.DefaultScript), []byte("print('hi')\n"), 0o600))
	}
	return dir
}

func TestApp_Run_Success(t *testing.T) {
	dir := enterProject(t, true)
	t.Setenv("PATH", "/usr/bin:/bin")

	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockEnvResolver(ctrl)
	mockLauncher := mocks.NewMockLauncher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	gomock.InOrder(
		mockResolver.EXPECT().Resolve(gomock.Any(), dir).Return("/proj/.venv", nil),
		mockLauncher.EXPECT().Launch(gomock.Any(), ports.LaunchRequest{
			EnvPath:    "/proj/.venv",
			Dir:        dir,
			Script:     domain.DefaultScript,
			Args:       []string{"build", "--verbose"},
			SearchPath: "/usr/bin:/bin",
		}).Return(0, nil),
	)

	a := app.New(mockResolver, mockLauncher, mockLogger, domain.DefaultScript)
	code, err := a.Run(context.Background(), []string{"build", "--verbose"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_Run_PropagatesExitCode(t *testing.T) {
	enterProject(t, true)
	t.Setenv("PATH", "/usr/bin")

	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockEnvResolver(ctrl)
	mockLauncher := mocks.NewMockLauncher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("/proj/.venv", nil)
	mockLauncher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(2, nil)

	a := app.New(mockResolver, mockLauncher, mockLogger, domain.DefaultScript)
	code, err := a.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

func TestApp_Run_ScriptMissing(t *testing.T) {
	enterProject(t, false)

	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockEnvResolver(ctrl)
	mockLauncher := mocks.NewMockLauncher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	a := app.New(mockResolver, mockLauncher, mockLogger, domain.DefaultScript)
	_, err := a.Run(context.Background(), []string{"build"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScriptNotFound)
	assert.Equal(t, "cannot find 'make.py' file: script not found", err.Error())
}

func TestApp_Run_CustomScript(t *testing.T) {
	dir := enterProject(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.py"), nil, 0o600))
	t.Setenv("PATH", "/usr/bin")

	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockEnvResolver(ctrl)
	mockLauncher := mocks.NewMockLauncher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	mockResolver.EXPECT().Resolve(gomock.Any(), dir).Return("/proj/.venv", nil)
	mockLauncher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.LaunchRequest) (int, error) {
			assert.Equal(t, "tasks.py", req.Script)
			return 0, nil
		},
	)

	a := app.New(mockResolver, mockLauncher, mockLogger, "tasks.py")
	_, err := a.Run(context.Background(), nil)
	require.NoError(t, err)
}

func TestApp_Run_PathUnset(t *testing.T) {
	enterProject(t, true)
	t.Setenv("PATH", "")
	require.NoError(t, os.Unsetenv("PATH"))

	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockEnvResolver(ctrl)
	mockLauncher := mocks.NewMockLauncher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	a := app.New(mockResolver, mockLauncher, mockLogger, domain.DefaultScript)
	_, err := a.Run(context.Background(), nil)

	require.ErrorIs(t, err, domain.ErrPathUnset)
}

func TestApp_Run_ResolveFailure(t *testing.T) {
	enterProject(t, true)
	t.Setenv("PATH", "/usr/bin")

	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockEnvResolver(ctrl)
	mockLauncher := mocks.NewMockLauncher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return("", &domain.ResolutionError{Message: "No venv found for current working directory."})

	a := app.New(mockResolver, mockLauncher, mockLogger, domain.DefaultScript)
	code, err := a.Run(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoEnvironment)
	assert.Equal(t, 0, code)
}

func TestApp_Run_LaunchFailure(t *testing.T) {
	enterProject(t, true)
	t.Setenv("PATH", "/usr/bin")

	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockEnvResolver(ctrl)
	mockLauncher := mocks.NewMockLauncher(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("/proj/.venv", nil)
	mockLauncher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(0, domain.ErrSpawnFailed)

	a := app.New(mockResolver, mockLauncher, mockLogger, domain.DefaultScript)
	_, err := a.Run(context.Background(), nil)

	require.ErrorIs(t, err, domain.ErrSpawnFailed)
}
