package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bundlex/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// isolateGitConfig keeps the best-effort safe.directory mutation away from
// the developer's real global git configuration.
func isolateGitConfig(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(t.TempDir(), "gitconfig"))
}

func TestRunBundlesAPlainDirectory(t *testing.T) {
	isolateGitConfig(t)

	root := t.TempDir()
	writeProjectFile(t, root, "main.py", []byte("print(1)\n"))
	writeProjectFile(t, root, "src/util.py", []byte("x = 2\n"))
	writeProjectFile(t, root, "config/config.yaml", []byte("key: value\n"))
	writeProjectFile(t, root, "debug.log", []byte("noise\n"))

	outputPath := filepath.Join(t.TempDir(), "out", "bundle.txt")
	result, err := Run(Arguments{
		Root:     root,
		Output:   outputPath,
		Settings: config.Default(),
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, outputPath, result.OutputPath)
	assert.Equal(t, result.Written, len(result.Files))
	assert.Empty(t, result.Skipped)
	assert.Contains(t, result.Files, "main.py")
	assert.Contains(t, result.Files, "config/config.yaml")
	// The default exclusions keep log noise out.
	assert.NotContains(t, result.Files, "debug.log")

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Source: main.py #")
	assert.Contains(t, string(data), "key: value\n")
}

func TestRunWithTreePrologue(t *testing.T) {
	isolateGitConfig(t)

	root := t.TempDir()
	writeProjectFile(t, root, "a.txt", []byte("a\n"))

	outputPath := filepath.Join(t.TempDir(), "bundle.txt")
	result, err := Run(Arguments{
		Root:     root,
		Output:   outputPath,
		WithTree: true,
		Settings: config.Default(),
	}, zap.NewNop())
	require.NoError(t, err)
	require.NotEmpty(t, result.Files)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), filepath.Base(root)+"/\n"))
	assert.Contains(t, string(data), "└── ")
}

func TestRunWritesSeparateTreeFile(t *testing.T) {
	isolateGitConfig(t)

	root := t.TempDir()
	writeProjectFile(t, root, "a.txt", []byte("a\n"))

	outDir := t.TempDir()
	outputPath := filepath.Join(outDir, "bundle.txt")
	treePath := filepath.Join(outDir, "tree", "tree.txt")
	_, err := Run(Arguments{
		Root:     root,
		Output:   outputPath,
		TreePath: treePath,
		Settings: config.Default(),
	}, zap.NewNop())
	require.NoError(t, err)

	treeData, err := os.ReadFile(treePath)
	require.NoError(t, err)
	assert.Contains(t, string(treeData), "└── a.txt")

	// Without WithTree the bundle itself starts with a section, not the tree.
	bundleData, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(string(bundleData), filepath.Base(root)+"/\n"))
}

func TestRunEmptyDirectoryWritesNothing(t *testing.T) {
	isolateGitConfig(t)

	root := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "bundle.txt")
	result, err := Run(Arguments{
		Root:     root,
		Output:   outputPath,
		Settings: config.Default(),
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Empty(t, result.OutputPath)
	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunDefaultOutputName(t *testing.T) {
	isolateGitConfig(t)

	root := t.TempDir()
	writeProjectFile(t, root, "a.txt", []byte("a\n"))

	// Run from a scratch working directory so the default-named artifact
	// lands somewhere disposable.
	workDir := t.TempDir()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	defer func() {
		require.NoError(t, os.Chdir(previous))
	}()

	result, err := Run(Arguments{Root: root, Settings: config.Default()}, zap.NewNop())
	require.NoError(t, err)

	expected := filepath.Base(root) + "_bundle.txt"
	assert.Equal(t, expected, result.OutputPath)
	_, statErr := os.Stat(filepath.Join(workDir, expected))
	assert.NoError(t, statErr)
}

func TestRunRejectsBadRoots(t *testing.T) {
	isolateGitConfig(t)

	t.Run("missing directory", func(t *testing.T) {
		_, err := Run(Arguments{Root: filepath.Join(t.TempDir(), "gone")}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		_, err := Run(Arguments{Root: path}, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}
