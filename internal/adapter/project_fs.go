package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	m "catchup.dev/pkg/catchup/internal/model"
)

// ProjectFS abstracts the filesystem lookups the domain layer relies on when
// working with an exercise project: resolving the directory the user named,
// finding the test definition file and the built executable, and reading the
// exercism metadata.
type ProjectFS interface {
	// ResolveProject turns the user-supplied project argument into an
	// absolute project directory. Tried in order: absolute path as-is,
	// relative to the working directory, relative to the configured
	// workspace, then workspace/cpp. First existing directory wins.
	ResolveProject(input string) (m.Project, error)

	// FindTestFile returns the test definition file in dir, matching
	// "*<suffix>". When several files match they are ordered
	// lexicographically, the first is returned and the rest are reported
	// so the caller can warn about the ambiguity.
	FindTestFile(dir m.Path, suffix string) (chosen m.Path, ignored []m.Path, err error)

	// ReadFileText loads a file's content. An absent file reads as empty
	// text rather than an error; tag extraction treats it as "no tags".
	ReadFileText(path m.Path) (string, error)

	// ResolveExecutable locates the test binary for a project. An empty
	// explicit path searches the build directory; a relative explicit
	// path is taken relative to <project>/build. The returned path is
	// absolute and verified to exist.
	ResolveExecutable(project m.Project, explicit string) (m.Path, error)

	// ReadExerciseConfig loads <project>/.exercism/config.json. A missing
	// file is ErrNoExerciseConfig so the submission step can skip
	// politely.
	ReadExerciseConfig(dir m.Path) (*m.ExerciseConfig, error)

	// HasCMakeLists reports whether dir holds a CMakeLists.txt.
	HasCMakeLists(dir m.Path) bool
}

// LocalProjectFS implements ProjectFS against the real filesystem.
type LocalProjectFS struct {
	workspace string
}

// NewLocalProjectFS constructs a LocalProjectFS. workspace is the optional
// exercises root used by the project resolution heuristics; empty disables
// the workspace-relative lookups.
func NewLocalProjectFS(workspace string) *LocalProjectFS {
	return &LocalProjectFS{workspace: workspace}
}

// ResolveProject implements the lookup order documented on ProjectFS.
func (a *LocalProjectFS) ResolveProject(input string) (m.Project, error) {
	dir, err := a.resolveDir(input)
	if err != nil {
		return m.Project{}, err
	}

	return m.Project{Dir: m.Path(dir), Name: filepath.Base(dir)}, nil
}

func (a *LocalProjectFS) resolveDir(input string) (string, error) {
	var candidates []string

	if filepath.IsAbs(input) {
		candidates = []string{input}
	} else {
		candidates = []string{input}
		if a.workspace != "" {
			candidates = append(candidates,
				filepath.Join(a.workspace, input),
				filepath.Join(a.workspace, "cpp", input),
			)
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			continue
		}

		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", candidate, err)
		}

		return abs, nil
	}

	return "", fmt.Errorf("project directory %q does not exist", input)
}

// FindTestFile globs for "*<suffix>" in dir and picks the lexicographically
// first match.
func (a *LocalProjectFS) FindTestFile(dir m.Path, suffix string) (m.Path, []m.Path, error) {
	matches, err := filepath.Glob(filepath.Join(string(dir), "*"+suffix))
	if err != nil {
		return "", nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	if len(matches) == 0 {
		return "", nil, fmt.Errorf("%w in %s (expected a file ending in %s)", ErrNoTestFile, dir, suffix)
	}

	sort.Strings(matches)

	ignored := make([]m.Path, 0, len(matches)-1)
	for _, match := range matches[1:] {
		ignored = append(ignored, m.Path(match))
	}

	return m.Path(matches[0]), ignored, nil
}

// ReadFileText loads path's content; an absent file reads as empty text.
func (a *LocalProjectFS) ReadFileText(path m.Path) (string, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return string(content), nil
}

// ResolveExecutable implements the lookup documented on ProjectFS.
func (a *LocalProjectFS) ResolveExecutable(project m.Project, explicit string) (m.Path, error) {
	if explicit == "" {
		return a.findBuiltExecutable(project)
	}

	path := explicit
	if !filepath.IsAbs(path) {
		path = filepath.Join(string(project.Dir), "build", path)
	}

	if err := checkExecutable(path); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	return m.Path(abs), nil
}

// findBuiltExecutable scans <project>/build for executable regular files,
// preferring names mentioning the project or "test"; ties go to the newest.
func (a *LocalProjectFS) findBuiltExecutable(project m.Project) (m.Path, error) {
	buildDir := filepath.Join(string(project.Dir), "build")

	entries, err := os.ReadDir(buildDir)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read %s (build the project first)", ErrExecutableMissing, buildDir)
	}

	var (
		best          string
		bestPreferred bool
		bestModTime   time.Time
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.Mode()&0o111 == 0 {
			continue
		}

		name := entry.Name()
		preferred := strings.Contains(name, project.Name) || strings.Contains(strings.ToLower(name), "test")

		better := best == "" ||
			(preferred && !bestPreferred) ||
			(preferred == bestPreferred && info.ModTime().After(bestModTime))
		if better {
			best = name
			bestPreferred = preferred
			bestModTime = info.ModTime()
		}
	}

	if best == "" {
		return "", fmt.Errorf("%w in %s", ErrExecutableMissing, buildDir)
	}

	abs, err := filepath.Abs(filepath.Join(buildDir, best))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", best, err)
	}

	return m.Path(abs), nil
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExecutableMissing, path)
	}

	if info.Mode()&0o111 == 0 {
		return fmt.Errorf("%w: %s is not executable", ErrExecutableMissing, path)
	}

	return nil
}

// ReadExerciseConfig loads and parses <project>/.exercism/config.json.
func (a *LocalProjectFS) ReadExerciseConfig(dir m.Path) (*m.ExerciseConfig, error) {
	path := filepath.Join(string(dir), ".exercism", "config.json")

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrNoExerciseConfig, dir)
		}

		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var config m.ExerciseConfig
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &config, nil
}

// HasCMakeLists reports whether dir holds a CMakeLists.txt.
func (a *LocalProjectFS) HasCMakeLists(dir m.Path) bool {
	info, err := os.Stat(filepath.Join(string(dir), "CMakeLists.txt"))

	return err == nil && !info.IsDir()
}
