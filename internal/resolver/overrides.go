package resolver

// extensionOverrides maps lowercase file extensions (no leading dot) to
// grammar display names. It corrects extensions where the engine's own
// filename matching is ambiguous or picks the wrong grammar. It only
// participates in automatic detection; a forced syntax bypasses it.
//
// Static for the process lifetime. Externalizing it to a config file is a
// possible future extension; the resolver algorithm would not change.
var extensionOverrides = map[string]string{
	"c":          "C",
	"h":          "C",
	"cpp":        "C++",
	"cxx":        "C++",
	"cc":         "C++",
	"hpp":        "C++",
	"hxx":        "C++",
	"java":       "Java",
	"py":         "Python",
	"js":         "JavaScript",
	"ts":         "TypeScript",
	"rs":         "Rust",
	"go":         "Go",
	"php":        "PHP",
	"rb":         "Ruby",
	"cs":         "C#",
	"html":       "HTML",
	"css":        "CSS",
	"xml":        "XML",
	"json":       "JSON",
	"yaml":       "YAML",
	"yml":        "YAML",
	"md":         "markdown",
	"sh":         "Bash",
	"bash":       "Bash",
	"zsh":        "Bash",
	"fish":       "Fish",
	"ps1":        "PowerShell",
	"sql":        "SQL",
	"r":          "R",
	"lua":        "Lua",
	"vim":        "VimL",
	"dockerfile": "Docker",
	"toml":       "TOML",
	"ini":        "INI",
	"cfg":        "INI",
	"conf":       "INI",
}

// OverriddenExtensions returns the extensions covered by the override table.
func OverriddenExtensions() []string {
	exts := make([]string, 0, len(extensionOverrides))
	for ext := range extensionOverrides {
		exts = append(exts, ext)
	}
	return exts
}

// OverrideFor returns the grammar display name mapped to the extension, if any.
func OverrideFor(ext string) (string, bool) {
	name, ok := extensionOverrides[ext]
	return name, ok
}
