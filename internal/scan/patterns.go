package scan

import (
	"path/filepath"
	"strings"
)

// languagePatterns maps a language to the markers that suggest it. A marker
// starting with "." matches anywhere in the file path; anything else must
// equal the file name exactly.
var languagePatterns = map[string][]string{
	"python":     {".py", "requirements.txt", "setup.py", "Pipfile"},
	"javascript": {".js", "package.json", ".jsx", ".ts", ".tsx"},
	"java":       {".java", "pom.xml", "build.gradle"},
	"ruby":       {".rb", "Gemfile"},
	"go":         {".go", "go.mod"},
	"rust":       {".rs", "Cargo.toml"},
	"php":        {".php", "composer.json"},
	"c#":         {".cs", ".csproj", ".sln"},
}

// frameworkPatterns maps a framework to path substrings that suggest it.
var frameworkPatterns = map[string][]string{
	"django":  {"settings.py", "urls.py", "wsgi.py", "asgi.py"},
	"flask":   {"app.py", "flask", "templates/"},
	"react":   {"react", "jsx", "tsx", "components/"},
	"vue":     {"vue", "components/"},
	"angular": {"angular", "component.ts"},
	"spring":  {"Application.java", "SpringApplication"},
	"rails":   {"config/routes.rb"},
	"express": {"express", "routes/"},
	"laravel": {"artisan"},
}

// excludedDirs are never descended into during a scan.
var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"venv":         true,
	".venv":        true,
	"__pycache__":  true,
	"memory-bank":  true,
}

// matchLanguages returns the languages whose markers match the given path.
func matchLanguages(path string) []string {
	name := filepath.Base(path)
	var langs []string
	for lang, markers := range languagePatterns {
		for _, m := range markers {
			if strings.HasPrefix(m, ".") {
				if strings.Contains(path, m) {
					langs = append(langs, lang)
					break
				}
			} else if m == name {
				langs = append(langs, lang)
				break
			}
		}
	}
	return langs
}

// matchFrameworks returns the frameworks whose markers appear in the path.
func matchFrameworks(path string) []string {
	var fws []string
	for fw, markers := range frameworkPatterns {
		for _, m := range markers {
			if strings.Contains(path, m) {
				fws = append(fws, fw)
				break
			}
		}
	}
	return fws
}
