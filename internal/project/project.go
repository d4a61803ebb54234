// Package project detects and parses Salesforce DX project descriptors.
package project

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// DescriptorName is the project descriptor expected at a workspace root
const DescriptorName = "sfdx-project.json"

// UnnamedProject is the placeholder used when the descriptor has no name
const UnnamedProject = "Unnamed Project"

// PackageDirectory is one entry of the descriptor's packageDirectories list
type PackageDirectory struct {
	Path    string
	Default bool
}

// Info holds the fields read from a project descriptor. It is re-read on
// every request, never cached.
type Info struct {
	Path               string // workspace root containing the descriptor
	Name               string
	Namespace          string
	APIVersion         string
	PackageDirectories []PackageDirectory
}

// Detector locates the project descriptor across workspace roots.
// Roots are scanned in order; the first match wins and remaining roots are
// not merged.
type Detector struct {
	Roots []string
}

// NewDetector creates a detector over the given workspace roots
func NewDetector(roots []string) *Detector {
	return &Detector{Roots: roots}
}

// IsProject reports whether any workspace root contains the descriptor
func (d *Detector) IsProject() bool {
	for _, root := range d.Roots {
		if _, err := os.Stat(filepath.Join(root, DescriptorName)); err == nil {
			return true
		}
	}
	return false
}

// Root returns the first workspace root containing the descriptor
func (d *Detector) Root() (string, bool) {
	for _, root := range d.Roots {
		if _, err := os.Stat(filepath.Join(root, DescriptorName)); err == nil {
			return root, true
		}
	}
	return "", false
}

// Info reads and parses the first descriptor found across workspace roots.
// A read failure for one root is swallowed and detection continues with the
// next. Missing or malformed fields degrade to defaults rather than failing.
func (d *Detector) Info() (*Info, bool) {
	for _, root := range d.Roots {
		data, err := os.ReadFile(filepath.Join(root, DescriptorName))
		if err != nil {
			continue
		}
		return parseDescriptor(root, data), true
	}
	return nil, false
}

func parseDescriptor(root string, data []byte) *Info {
	info := &Info{
		Path:       root,
		Name:       UnnamedProject,
		APIVersion: "unknown",
	}

	doc := string(data)
	if name := gjson.Get(doc, "name"); name.Exists() && name.String() != "" {
		info.Name = name.String()
	}
	if ns := gjson.Get(doc, "namespace"); ns.Exists() {
		info.Namespace = ns.String()
	}
	if api := gjson.Get(doc, "sourceApiVersion"); api.Exists() && api.String() != "" {
		info.APIVersion = api.String()
	}
	for _, dir := range gjson.Get(doc, "packageDirectories").Array() {
		info.PackageDirectories = append(info.PackageDirectories, PackageDirectory{
			Path:    dir.Get("path").String(),
			Default: dir.Get("default").Bool(),
		})
	}

	return info
}
