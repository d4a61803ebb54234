package provision

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/Avinava/sf-preflight/internal/project"
)

// Template kinds, also the lookup keys for provision.templates overrides
const (
	KindPrettier         = "prettier"
	KindPrettierIgnore   = "prettierignore"
	KindEditorConfig     = "editorconfig"
	KindGitIgnore        = "gitignore"
	KindVSCodeSettings   = "vscode_settings"
	KindCSpell           = "cspell"
	KindCSpellDictionary = "cspell_dictionary"
)

// jsonKinds marks the kinds whose rendered content must be well-formed JSON
var jsonKinds = map[string]bool{
	KindPrettier:       true,
	KindVSCodeSettings: true,
	KindCSpell:         true,
}

// TemplateData exposes project descriptor fields to the templates
type TemplateData struct {
	ProjectName string
	Namespace   string
	APIVersion  string
}

// DataFromProject builds template data from a parsed descriptor (nil-safe)
func DataFromProject(info *project.Info) TemplateData {
	if info == nil {
		return TemplateData{}
	}
	return TemplateData{
		ProjectName: info.Name,
		Namespace:   info.Namespace,
		APIVersion:  info.APIVersion,
	}
}

// render runs the template text through text/template with the sprig
// function map. Unparseable text (possible with user overrides) is returned
// verbatim rather than failing the provisioner.
func render(text string, data TemplateData) string {
	tpl, err := template.New("artifact").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return strings.TrimLeft(text, "\n")
	}
	var b strings.Builder
	if err := tpl.Execute(&b, data); err != nil {
		return strings.TrimLeft(text, "\n")
	}
	return strings.TrimLeft(b.String(), "\n")
}

// isWellFormedJSON reports whether the content parses as JSON
func isWellFormedJSON(content string) bool {
	k := koanf.New(".")
	return k.Load(rawbytes.Provider([]byte(content)), json.Parser()) == nil
}

const prettierTemplate = `
{
  "trailingComma": "none",
  "printWidth": 100,
  "tabWidth": 2,
  "plugins": ["prettier-plugin-apex"],
  "overrides": [
    {
      "files": "**/lwc/**/*.html",
      "options": { "parser": "lwc" }
    },
    {
      "files": "*.{cmp,page,component}",
      "options": { "parser": "html" }
    }
  ]
}
`

const prettierIgnoreTemplate = `
# Directories generated by the Salesforce CLI and local dev server
.sfdx
.sf
.localdevserver
deploy-options.json
coverage/

# Static resources are deployed as-is
**/staticresources/**
`

const editorConfigTemplate = `
root = true

[*]
charset = utf-8
end_of_line = lf
indent_size = 2
indent_style = space
insert_final_newline = true
trim_trailing_whitespace = true

[*.md]
trim_trailing_whitespace = false
`

const gitIgnoreTemplate = `
# Salesforce CLI working directories
.sfdx/
.sf/
.localdevserver/

# Scratch org metadata
deploy-options.json

# Dependencies
node_modules/

# Test output
coverage/
junit.xml

# OS cruft
.DS_Store
`

const vscodeSettingsTemplate = `
{
  "search.exclude": {
    "**/node_modules": true,
    "**/.sfdx": true,
    "**/.sf": true,
    "**/.localdevserver": true
  },
  "files.watcherExclude": {
    "**/.sfdx/**": true,
    "**/.sf/**": true
  },
  "editor.formatOnSave": true,
  "editor.defaultFormatter": "esbenp.prettier-vscode",
  "salesforcedx-vscode-core.show-cli-success-msg": false
}
`

// cspellTemplate seeds the spell checker with the project dictionary and,
// when the project declares one, its namespace.
const cspellTemplate = `
{
  "version": "0.2",
  "language": "en",
  "dictionaryDefinitions": [
    {
      "name": "salesforce-terms",
      "path": "./.cspell/salesforce-terms.txt"
    }
  ],
  "dictionaries": ["salesforce-terms"],
  "words": [{{ with .Namespace }}"{{ . | lower }}"{{ end }}],
  "ignorePaths": [
    ".sfdx/**",
    ".sf/**",
    "node_modules/**",
    "**/staticresources/**"
  ],
  "ignoreRegExpList": ["/\\b[a-zA-Z0-9]{15}(?:[a-zA-Z0-9]{3})?\\b/g"]
}
`

const cspellDictionaryTemplate = `
apex
aura
autonumber
customfield
customobject
flexipage
forceignore
jsconfig
lightningcomponentbundle
lwc
multipicklist
onmousedown
picklist
recordtype
salesforcedx
sfdx
sobject
sobjects
soql
sosl
systemmode
usermode
vlocity
visualforce
workitem
`
