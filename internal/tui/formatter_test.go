package tui

import "testing"

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// node_modules/.bin symlinks
		{
			name:     "bin symlink with project",
			input:    "node /Users/jilles/Code/cf-question-agent/node_modules/.bin/vite",
			expected: "vite (cf-question-agent)",
		},
		{
			name:     "bin symlink without project",
			input:    "node /tmp/node_modules/.bin/tsc --watch",
			expected: "tsc",
		},

		// pnpm
		{
			name:     "pnpm scoped package",
			input:    "node /Users/jilles/Code/goal-shark-api/node_modules/.pnpm/@cloudflare+workerd@1.2.3/node_modules/@cloudflare/workerd/bin/workerd",
			expected: "workerd (goal-shark-api)",
		},
		{
			name:     "pnpm regular package",
			input:    "node /home/dev/projects/shop/node_modules/.pnpm/vite@5.0.0/node_modules/vite/bin/vite.js",
			expected: "vite (shop)",
		},

		// npm
		{
			name:     "npm scoped package",
			input:    "node /Users/jilles/Code/my-app/node_modules/@cloudflare/workers-sdk/bin/wrangler.js",
			expected: "workers-sdk (my-app)",
		},
		{
			name:     "npm regular package",
			input:    "node /Users/jilles/Code/my-app/node_modules/vite/bin/vite.js",
			expected: "vite (my-app)",
		},

		// Homebrew
		{
			name:     "homebrew apple silicon",
			input:    "/opt/homebrew/Cellar/postgresql@16/16.2/bin/postgres -D /opt/homebrew/var/postgresql@16",
			expected: "postgresql@16",
		},
		{
			name:     "homebrew intel mac",
			input:    "/usr/local/Cellar/node/20.0.0/bin/node",
			expected: "node",
		},
		{
			name:     "linuxbrew",
			input:    "/home/linuxbrew/.linuxbrew/Cellar/redis/7.2.4/bin/redis-server *:6379",
			expected: "redis",
		},

		// macOS app bundles
		{
			name:     "app bundle with spaces",
			input:    "/Applications/Visual Studio Code.app/Contents/MacOS/Electron",
			expected: "Visual Studio Code",
		},

		// Sandboxed apps
		{
			name:     "snap",
			input:    "/snap/firefox/4173/usr/lib/firefox/firefox -contentproc -childID 3",
			expected: "firefox (snap)",
		},
		{
			name:     "flatpak install path",
			input:    "/var/lib/flatpak/app/org.gimp.GIMP/x86_64/stable/active/files/bin/gimp-2.10",
			expected: "org.gimp.GIMP (flatpak)",
		},

		// Project directories
		{
			name:     "interpreter in a project",
			input:    "python3 /home/u/code/api/main.py",
			expected: "python3 (api)",
		},
		{
			name:     "binary built in a project",
			input:    "/home/u/repos/gateway/bin/server --port 8080",
			expected: "server (gateway)",
		},

		// System binaries
		{
			name:     "sbin daemon",
			input:    "/usr/sbin/sshd -D",
			expected: "sshd",
		},
		{
			name:     "systemd unit binary",
			input:    "/lib/systemd/systemd-journald",
			expected: "systemd-journald",
		},
		{
			name:     "system interpreter runs a script",
			input:    "/usr/bin/python3 -u /opt/tools/backup.py",
			expected: "python3 (backup)",
		},

		// Fallback
		{
			name:     "node script",
			input:    "node server.js",
			expected: "node (server)",
		},
		{
			name:     "interpreter with flags only",
			input:    "node --inspect",
			expected: "node",
		},
		{
			name:     "plain executable",
			input:    "/opt/google/chrome/chrome --type=renderer",
			expected: "chrome",
		},
		{
			name:     "windows path",
			input:    `C:\Windows\System32\svchost.exe -k netsvcs`,
			expected: "svchost",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCommand(tt.input); got != tt.expected {
				t.Errorf("formatCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractPnpmPackage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"node_modules/.pnpm/vite@5.0.0/node_modules/vite", "vite"},
		{"node_modules/.pnpm/@cloudflare+workerd@1.2.3/node_modules", "workerd"},
		{"node_modules/.pnpm/esbuild/bin", "esbuild"},
		{"/usr/bin/node", ""},
	}

	for _, tt := range tests {
		if got := extractPnpmPackage(tt.input); got != tt.expected {
			t.Errorf("extractPnpmPackage(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtractNpmPackage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"node_modules/vite/bin/vite.js", "vite"},
		{"node_modules/@cloudflare/workerd/bin", "workerd"},
		{"node_modules/typescript", "typescript"},
		{"/usr/bin/node", ""},
	}

	for _, tt := range tests {
		if got := extractNpmPackage(tt.input); got != tt.expected {
			t.Errorf("extractNpmPackage(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtractProjectName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/Users/jilles/Code/my-project/src/index.ts", "my-project"},
		{"/home/u/projects/shop --port 8080", "shop"},
		{"/home/u/workspace/api", "api"},
		{"/usr/bin/vim", ""},
		{"/home/u/Code/", ""},
	}

	for _, tt := range tests {
		if got := extractProjectName(tt.input); got != tt.expected {
			t.Errorf("extractProjectName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtractExecutable(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/usr/bin/vim file.txt", "vim"},
		{"vim", "vim"},
		{`C:\Program\app.EXE`, "app"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extractExecutable(tt.input); got != tt.expected {
			t.Errorf("extractExecutable(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
