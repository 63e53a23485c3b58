package tui

import (
	"path"
	"regexp"
	"strings"
)

var (
	binSymlinkRegex  = regexp.MustCompile(`node_modules/\.bin/([^/\s]+)`)
	pnpmPackageRegex = regexp.MustCompile(`node_modules/\.pnpm/([^/\s]+)`)
	npmPackageRegex  = regexp.MustCompile(`node_modules/([^/\s]+(?:/[^/\s]+)?)`)
	homebrewRegex    = regexp.MustCompile(`/(?:opt/homebrew|usr/local|home/linuxbrew/\.linuxbrew)/Cellar/([^/\s]+)/`)
	appBundleRegex   = regexp.MustCompile(`/([^/]+)\.app/Contents/`)
	snapRegex        = regexp.MustCompile(`^/snap/([^/\s]+)/`)
	flatpakRegex     = regexp.MustCompile(`--app-id=([^\s]+)|/flatpak/app/([^/\s]+)/`)
)

// commandFormatter turns a raw command line into a short program label
type commandFormatter interface {
	// CanFormat reports whether cmd looks like something this formatter knows
	CanFormat(cmd string) bool

	// Format returns the label, or "" to let the next formatter try
	Format(cmd string) string
}

// commandFormatters is tried in order; the first non-empty label wins
var commandFormatters = []commandFormatter{
	binSymlinkFormatter{}, // before pnpm/npm: .bin paths also contain node_modules
	pnpmFormatter{},
	npmFormatter{},
	homebrewFormatter{},
	appBundleFormatter{},
	sandboxFormatter{},
	projectFormatter{},
	systemBinaryFormatter{},
}

// formatCommand returns a readable label for a command line. An empty
// command gives "".
func formatCommand(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return ""
	}
	for _, f := range commandFormatters {
		if !f.CanFormat(cmd) {
			continue
		}
		if label := f.Format(cmd); label != "" {
			return label
		}
	}
	return scriptFormat(cmd)
}

// withProject appends the project directory to label when one is found
func withProject(label, cmd string) string {
	if project := extractProjectName(cmd); project != "" {
		return label + " (" + project + ")"
	}
	return label
}

type binSymlinkFormatter struct{}

func (binSymlinkFormatter) CanFormat(cmd string) bool {
	return strings.Contains(cmd, "node_modules/.bin/")
}

// Format: node ~/Code/site/node_modules/.bin/vite -> vite (site)
func (binSymlinkFormatter) Format(cmd string) string {
	m := binSymlinkRegex.FindStringSubmatch(cmd)
	if len(m) < 2 {
		return ""
	}
	return withProject(m[1], cmd)
}

type pnpmFormatter struct{}

func (pnpmFormatter) CanFormat(cmd string) bool {
	return strings.Contains(cmd, "node_modules/.pnpm/")
}

func (pnpmFormatter) Format(cmd string) string {
	if pkg := extractPnpmPackage(cmd); pkg != "" {
		return withProject(pkg, cmd)
	}
	return ""
}

type npmFormatter struct{}

func (npmFormatter) CanFormat(cmd string) bool {
	return strings.Contains(cmd, "node_modules/") && !strings.Contains(cmd, "node_modules/.pnpm/")
}

func (npmFormatter) Format(cmd string) string {
	if pkg := extractNpmPackage(cmd); pkg != "" {
		return withProject(pkg, cmd)
	}
	return ""
}

type homebrewFormatter struct{}

func (homebrewFormatter) CanFormat(cmd string) bool {
	return strings.Contains(cmd, "/Cellar/")
}

// Format: /opt/homebrew/Cellar/<formula>/<version>/... -> <formula>
func (homebrewFormatter) Format(cmd string) string {
	if m := homebrewRegex.FindStringSubmatch(cmd); len(m) >= 2 {
		return m[1]
	}
	return ""
}

type appBundleFormatter struct{}

func (appBundleFormatter) CanFormat(cmd string) bool {
	return strings.Contains(cmd, ".app/Contents/")
}

func (appBundleFormatter) Format(cmd string) string {
	if m := appBundleRegex.FindStringSubmatch(cmd); len(m) >= 2 {
		return m[1]
	}
	return ""
}

// sandboxFormatter names snap and flatpak applications by their package
type sandboxFormatter struct{}

func (sandboxFormatter) CanFormat(cmd string) bool {
	return strings.HasPrefix(cmd, "/snap/") ||
		strings.Contains(cmd, "--app-id=") ||
		strings.Contains(cmd, "/flatpak/app/")
}

func (sandboxFormatter) Format(cmd string) string {
	if m := snapRegex.FindStringSubmatch(cmd); len(m) >= 2 {
		return m[1] + " (snap)"
	}
	if m := flatpakRegex.FindStringSubmatch(cmd); m != nil {
		for _, id := range m[1:] {
			if id != "" {
				return id + " (flatpak)"
			}
		}
	}
	return ""
}

type projectFormatter struct{}

// projectDirs mark the parent of a project checkout
var projectDirs = []string{
	"/Code/",
	"/code/",
	"/Projects/",
	"/projects/",
	"/Developer/",
	"/src/",
	"/repos/",
	"/git/",
	"/workspace/",
}

func (projectFormatter) CanFormat(cmd string) bool {
	return extractProjectName(cmd) != ""
}

// Format: python3 /home/u/code/api/main.py -> python3 (api)
func (projectFormatter) Format(cmd string) string {
	exe := extractExecutable(cmd)
	if exe == "" {
		return ""
	}
	return withProject(exe, cmd)
}

type systemBinaryFormatter struct{}

var systemPaths = []string{
	"/usr/bin/",
	"/usr/sbin/",
	"/usr/lib/",
	"/usr/libexec/",
	"/usr/local/bin/",
	"/bin/",
	"/sbin/",
	"/lib/systemd/",
	"/System/",
}

func (systemBinaryFormatter) CanFormat(cmd string) bool {
	for _, p := range systemPaths {
		if strings.HasPrefix(cmd, p) {
			return !isScriptRunner(extractExecutable(cmd))
		}
	}
	return false
}

func (systemBinaryFormatter) Format(cmd string) string {
	return extractExecutable(cmd)
}

// extractExecutable returns the base name of the first word of cmd. Both
// slash styles are accepted and a trailing .exe is dropped.
func extractExecutable(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return ""
	}
	exe := path.Base(strings.ReplaceAll(fields[0], `\`, "/"))
	return strings.TrimSuffix(strings.TrimSuffix(exe, ".exe"), ".EXE")
}

// extractProjectName returns the first directory below a known project root
func extractProjectName(cmd string) string {
	for _, dir := range projectDirs {
		idx := strings.Index(cmd, dir)
		if idx == -1 {
			continue
		}
		name := cmd[idx+len(dir):]
		if end := strings.IndexAny(name, "/ \t"); end >= 0 {
			name = name[:end]
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// extractPnpmPackage: node_modules/.pnpm/@scope+name@1.2.3/... -> name
func extractPnpmPackage(cmd string) string {
	m := pnpmPackageRegex.FindStringSubmatch(cmd)
	if len(m) < 2 {
		return ""
	}
	pkg := m[1]
	if strings.HasPrefix(pkg, "@") {
		if _, rest, ok := strings.Cut(pkg, "+"); ok {
			pkg = rest
		}
	}
	name, _, _ := strings.Cut(pkg, "@")
	return name
}

// extractNpmPackage: node_modules/@scope/name/... -> name
func extractNpmPackage(cmd string) string {
	m := npmPackageRegex.FindStringSubmatch(cmd)
	if len(m) < 2 {
		return ""
	}
	parts := strings.Split(m[1], "/")
	if strings.HasPrefix(parts[0], "@") && len(parts) > 1 {
		return parts[1]
	}
	return parts[0]
}

// scriptRunners are interpreters whose first argument names the program
var scriptRunners = map[string]bool{
	"node":    true,
	"bun":     true,
	"deno":    true,
	"python":  true,
	"python3": true,
	"ruby":    true,
	"perl":    true,
	"php":     true,
	"bash":    true,
	"sh":      true,
}

func isScriptRunner(exe string) bool {
	return scriptRunners[exe]
}

var scriptExtensions = []string{".js", ".mjs", ".ts", ".py", ".rb", ".pl", ".php", ".sh"}

// scriptFormat is the fallback: the executable, plus the script it runs
func scriptFormat(cmd string) string {
	exe := extractExecutable(cmd)
	fields := strings.Fields(cmd)
	if len(fields) < 2 || !isScriptRunner(exe) {
		return exe
	}

	// skip interpreter flags such as python3 -u or node --inspect
	for _, arg := range fields[1:] {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		script := path.Base(arg)
		for _, ext := range scriptExtensions {
			script = strings.TrimSuffix(script, ext)
		}
		if script != "" && script != exe {
			return exe + " (" + script + ")"
		}
		break
	}
	return exe
}
