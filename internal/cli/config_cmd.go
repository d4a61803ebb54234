package cli

import (
	"fmt"
)

// ConfigParams contains parameters for the Config command
type ConfigParams struct {
	CommonParams
}

// Config prints the effective merged settings as YAML
func Config(params ConfigParams) error {
	a, err := newApp(params.CommonParams)
	if err != nil {
		return err
	}

	dump, err := a.settings.Dump()
	if err != nil {
		return fmt.Errorf("failed to render settings: %w", err)
	}

	fmt.Fprint(a.out, dump)
	return nil
}
