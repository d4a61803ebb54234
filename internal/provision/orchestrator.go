package provision

import (
	"github.com/Avinava/sf-preflight/internal/config"
	"github.com/Avinava/sf-preflight/internal/logger"
	"github.com/Avinava/sf-preflight/internal/project"
)

// Orchestrator runs registered provisioners in registration order and
// aggregates the files they change. A failure in one provisioner is logged
// and does not prevent the remaining ones from running.
type Orchestrator struct {
	log          *logger.Logger
	provisioners []Provisioner
}

// NewOrchestrator creates an empty orchestrator
func NewOrchestrator(log *logger.Logger) *Orchestrator {
	return &Orchestrator{log: log}
}

// Register appends a provisioner. Order only affects reporting, not
// correctness: provisioners are independent.
func (o *Orchestrator) Register(p Provisioner) {
	o.provisioners = append(o.provisioners, p)
}

// Provisioners returns the registered provisioners in order
func (o *Orchestrator) Provisioners() []Provisioner {
	return o.provisioners
}

// RunStartup executes every enabled provisioner without force and returns
// the aggregated list of created files
func (o *Orchestrator) RunStartup() []string {
	return o.run(false)
}

// RunForce asks for confirmation, then executes every enabled provisioner
// with force, overwriting customized files with defaults. The second return
// reports whether the user confirmed.
func (o *Orchestrator) RunForce(confirm func() bool) ([]string, bool) {
	if !confirm() {
		return nil, false
	}
	return o.run(true), true
}

func (o *Orchestrator) run(force bool) []string {
	var changed []string

	for _, p := range o.provisioners {
		if !p.Enabled() {
			o.log.Debug().Str("provisioner", p.Name()).Str("key", p.ConfigKey()).Msg("Skipping disabled provisioner")
			continue
		}

		written, err := p.Execute(force)
		if err != nil {
			// Fault isolation: one broken provisioner must not abort the rest.
			o.log.Error().Str("provisioner", p.Name()).Err(err).Msg("Provisioner failed")
		}
		changed = append(changed, written...)
	}

	return changed
}

// Defaults registers the standard provisioner set in its canonical order
func Defaults(o *Orchestrator, cfg *config.Settings, root string, info *project.Info) {
	data := DataFromProject(info)
	o.Register(NewPrettier(cfg, root, data))
	o.Register(NewEditorConfig(cfg, root, data))
	o.Register(NewGitIgnore(cfg, root, data))
	o.Register(NewVSCodeSettings(cfg, root, data))
	o.Register(NewCSpell(cfg, root, data))
}
