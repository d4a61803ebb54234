package provision

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Avinava/sf-preflight/internal/config"
	"github.com/Avinava/sf-preflight/internal/derrors"
)

// Record-ID ignore pattern migration. Early releases shipped an unanchored
// alternation that also swallowed ordinary 15-plus character words; the fix
// anchors it on word boundaries. The literals below are the exact strings as
// they appear inside cspell.json.
const (
	legacyRecordIDPattern = `/[a-zA-Z0-9]{18}|[a-zA-Z0-9]{15}/g`
	fixedRecordIDPattern  = `/\\b[a-zA-Z0-9]{15}(?:[a-zA-Z0-9]{3})?\\b/g`
)

// CSpellProvisioner manages cspell.json and the Salesforce terms dictionary.
// Besides the uniform create/overwrite policy it performs a one-time content
// migration on an existing, non-forced cspell.json: the legacy record-ID
// regex literal is rewritten in place, leaving all other content untouched.
// This is the only mutation of an existing non-forced file anywhere in
// sf-preflight.
type CSpellProvisioner struct {
	base
}

// NewCSpell creates the spell checker provisioner
func NewCSpell(cfg *config.Settings, root string, data TemplateData) *CSpellProvisioner {
	return &CSpellProvisioner{base: base{cfg: cfg, root: root, data: data}}
}

// Name returns the display name
func (p *CSpellProvisioner) Name() string { return "Spell checker" }

// ConfigKey returns the settings key gating this provisioner
func (p *CSpellProvisioner) ConfigKey() string { return "provision.spell_checker" }

// Enabled reports whether this provisioner should run
func (p *CSpellProvisioner) Enabled() bool {
	return p.cfg.Provision.RunOnStartup && p.cfg.Provision.SpellChecker
}

// Execute writes cspell.json and the dictionary, migrating the legacy
// record-ID pattern when the config already exists
func (p *CSpellProvisioner) Execute(force bool) ([]string, error) {
	if p.root == "" {
		return nil, nil
	}

	var written []string

	if !force {
		migrated, err := p.migrateRecordIDPattern()
		if err != nil {
			return nil, err
		}
		if migrated {
			written = append(written, "cspell.json (migrated)")
		}
	}

	rel, err := p.writeManaged("cspell.json", KindCSpell, cspellTemplate, force)
	if err != nil {
		return written, err
	}
	if rel != "" {
		written = append(written, rel)
	}

	rel, err = p.writeManaged(".cspell/salesforce-terms.txt", KindCSpellDictionary, cspellDictionaryTemplate, force)
	if err != nil {
		return written, err
	}
	if rel != "" {
		written = append(written, rel)
	}

	return written, nil
}

// migrateRecordIDPattern rewrites the legacy regex literal in an existing
// cspell.json. Returns true when a replacement was made.
func (p *CSpellProvisioner) migrateRecordIDPattern() (bool, error) {
	target := filepath.Join(p.root, "cspell.json")

	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, derrors.NewProvisionError(target, "failed to read cspell.json", err)
	}

	content := string(data)
	if !strings.Contains(content, legacyRecordIDPattern) {
		return false, nil
	}

	migrated := strings.ReplaceAll(content, legacyRecordIDPattern, fixedRecordIDPattern)
	if err := os.WriteFile(target, []byte(migrated), 0644); err != nil {
		return false, derrors.NewProvisionError(target, "failed to migrate cspell.json", err)
	}
	return true, nil
}
