package probe

import (
	"context"

	"github.com/Avinava/sf-preflight/internal/runner"
)

// NodeCommand is the version query for the Node.js runtime
const NodeCommand = "node --version"

// Node probes the Node.js runtime against a minimum major version
type Node struct {
	Runner   runner.Runner
	MinMajor int
}

// Check runs the Node.js probe
func (p *Node) Check(ctx context.Context) Status {
	status := Status{Name: "Node.js"}

	out, err := p.Runner.Run(ctx, NodeCommand)
	if err != nil {
		status.Error = err.Error()
		return status
	}

	status.Installed = true
	status.Version, status.MajorVersion = extractVersion(out)
	status.Valid = status.MajorVersion >= p.MinMajor && status.MajorVersion > 0
	return status
}
