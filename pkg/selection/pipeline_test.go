package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMatchesExclusion(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		rel     string
		matches bool
	}{
		{"directory name hits itself", "node_modules", "node_modules/lib/index.js", true},
		{"directory name hits at depth", "node_modules", "web/node_modules/lib/index.js", true},
		{"no substring matching", "node_modules", "my_node_modules_backup/index.js", false},
		{"glob hits the file component", "*.log", "logs/app.log", true},
		{"glob needs the full component", "*.log", "logs/app.log.bak", false},
		{"dotfile exact", ".env", "config/.env", true},
		{"dotfile glob", ".env.*", "config/.env.local", true},
		{"dotfile glob misses the base", ".env.*", "config/.env", false},
		{"case sensitive", "*.log", "APP.LOG", false},
		{"separator pattern matches whole path", "docs/*.log", "docs/app.log", true},
		{"separator pattern does not descend", "docs/*.log", "docs/sub/app.log", false},
		{"separator pattern needs the prefix", "docs/*.log", "app.log", false},
		{"os noise file", ".DS_Store", "assets/.DS_Store", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, MatchesExclusion(tt.pattern, tt.rel))
		})
	}
}

func TestPipelineDeduplicatesFirstSeen(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "a")
	writeTestFile(t, root, "b.txt", "b")
	writeTestFile(t, root, "c.txt", "c")

	pipeline := Pipeline{Explicit: []string{"b.txt", "c.txt"}}
	final := pipeline.Finalize(root, []string{"a.txt", "b.txt", "a.txt"}, zap.NewNop())
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, final)
}

func TestPipelineAppliesHardExclusions(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "main.py", "print(1)\n")
	writeTestFile(t, root, "node_modules/lib/index.js", "x")
	writeTestFile(t, root, "debug.log", "line\n")
	writeTestFile(t, root, "config/config.yaml", "key: value\n")

	pipeline := Pipeline{
		Explicit:   []string{"config/config.yaml"},
		Exclusions: []string{"node_modules", "*.log"},
	}
	candidates := []string{"main.py", "node_modules/lib/index.js", "debug.log"}
	final := pipeline.Finalize(root, candidates, zap.NewNop())
	assert.Equal(t, []string{"main.py", "config/config.yaml"}, final)
}

func TestPipelineExclusionsBeatExplicitIncludes(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, ".env", "SECRET=1\n")

	pipeline := Pipeline{
		Explicit:   []string{".env"},
		Exclusions: []string{".env"},
	}
	final := pipeline.Finalize(root, nil, zap.NewNop())
	assert.Empty(t, final)
}

func TestPipelineDropsMissingFiles(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "present.txt", "here\n")

	pipeline := Pipeline{Explicit: []string{"ghost.txt"}}
	final := pipeline.Finalize(root, []string{"present.txt", "vanished.txt"}, zap.NewNop())
	assert.Equal(t, []string{"present.txt"}, final)
}

func TestPipelineDropsDirectories(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "sub/inner.txt", "x")

	pipeline := Pipeline{}
	final := pipeline.Finalize(root, []string{"sub", "sub/inner.txt"}, zap.NewNop())
	assert.Equal(t, []string{"sub/inner.txt"}, final)
}

func TestPipelineEmptyCandidatesYieldExplicitOnly(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "config/config.yaml", "key: value\n")

	pipeline := Pipeline{Explicit: []string{"config/config.yaml"}}
	final := pipeline.Finalize(root, nil, zap.NewNop())
	require.Equal(t, []string{"config/config.yaml"}, final)
}
