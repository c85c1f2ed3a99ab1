package classify

import "strings"

// Rules holds the immutable exclusion tables consulted by a Classifier.
// Directory names and extensions are stored lower-cased.
type Rules struct {
	dirs       map[string]struct{}
	files      map[string]struct{}
	extensions map[string]struct{}
}

var defaultDirs = []string{
	".git", ".svn", ".hg", ".bzr",
	"node_modules", "bower_components", "vendor", "deps",
	"target", "build", "dist", "out", "bin", "obj",
	".vscode", ".idea", ".vs",
	"__pycache__", ".pytest_cache", ".mypy_cache", ".tox", ".gradle",
	"coverage", ".nyc_output", "htmlcov",
	"cmake-build-debug", "cmake-build-release",
}

var defaultFiles = []string{
	".DS_Store", "Thumbs.db", "desktop.ini",
	"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "Cargo.lock",
	"poetry.lock", "Pipfile.lock", "composer.lock", "Gemfile.lock", "go.sum",
	".gitignore", ".dockerignore", ".npmignore", ".gitattributes", ".textifyignore",
	"Dockerfile", "docker-compose.yml", "docker-compose.yaml",
}

var defaultExtensions = []string{
	// executables and objects
	"exe", "dll", "so", "dylib", "bin", "obj", "o", "a", "lib", "class", "jar", "war",
	"pyc", "pyo", "wasm",
	// images
	"jpg", "jpeg", "png", "gif", "bmp", "ico", "svg", "webp", "tif", "tiff", "psd",
	// audio and video
	"mp3", "mp4", "avi", "mov", "wav", "flac", "ogg", "mkv", "webm", "m4a",
	// archives
	"zip", "tar", "gz", "rar", "7z", "bz2", "xz", "tgz", "zst",
	// documents
	"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "odt",
	// fonts
	"ttf", "otf", "woff", "woff2", "eot",
	// databases
	"db", "sqlite", "sqlite3",
}

// DefaultRules returns the built-in exclusion tables.
func DefaultRules() Rules {
	return NewRules(defaultDirs, defaultFiles, defaultExtensions)
}

// NewRules builds exclusion tables from the given lists. Extensions may be
// given with or without the leading dot.
func NewRules(dirs, files, extensions []string) Rules {
	r := Rules{
		dirs:       make(map[string]struct{}, len(dirs)),
		files:      make(map[string]struct{}, len(files)),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, d := range dirs {
		r.dirs[strings.ToLower(d)] = struct{}{}
	}
	for _, f := range files {
		r.files[f] = struct{}{}
	}
	for _, e := range extensions {
		r.extensions[strings.ToLower(strings.TrimPrefix(e, "."))] = struct{}{}
	}
	return r
}

// IsExcludedDir matches a single path segment against the directory table.
func (r Rules) IsExcludedDir(name string) bool {
	_, ok := r.dirs[strings.ToLower(name)]
	return ok
}

// IsExcludedFile matches a file's base name exactly.
func (r Rules) IsExcludedFile(name string) bool {
	_, ok := r.files[name]
	return ok
}

// IsBinaryExtension reports whether name ends in a known binary extension.
func (r Rules) IsBinaryExtension(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return false
	}
	_, ok := r.extensions[strings.ToLower(name[i+1:])]
	return ok
}
