package ioformat

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// BuildConfig is the optional ini-file counterpart to the CLI's -d/-c/-v/-t/-r
// flags, grounded on the teacher's io/config.go BallConfig/BoxConfig
// pattern: a flat section of required/optional fields plus a CheckInit
// validation pass. CheckInit fills in no defaults; an omitted field keeps
// its zero value.
type BuildConfig struct {
	// Required
	Subdivision string // "ok" or "kd"
	Criterion   string // "pr", "pm", "pm2", or "pmr"

	// Required by some criteria
	VerticesPerLeaf  int
	TetrahedraPerLeaf int

	// Optional
	Reindex bool
}

// CheckInit validates con against the constraints each criterion imposes
// on its thresholds (spec's "Configuration error" kind), following
// BallConfig.CheckInit's structure: one error-returning check per field.
func (con *BuildConfig) CheckInit() error {
	if !isSubdivisionToken(con.Subdivision) {
		return fmt.Errorf("ioformat: Subdivision must be 'ok' or 'kd', got %q", con.Subdivision)
	}
	if !isCriterionToken(con.Criterion) {
		return fmt.Errorf("ioformat: Criterion must be one of pr, pm, pm2, pmr, got %q", con.Criterion)
	}

	switch con.Criterion {
	case "pr":
		if con.VerticesPerLeaf <= 0 {
			return fmt.Errorf("ioformat: criterion 'pr' requires a positive VerticesPerLeaf")
		}
	case "pmr", "pm2":
		if con.TetrahedraPerLeaf <= 0 {
			return fmt.Errorf("ioformat: criterion %q requires a positive TetrahedraPerLeaf", con.Criterion)
		}
	case "pm":
		if con.VerticesPerLeaf <= 0 && con.TetrahedraPerLeaf <= 0 {
			return fmt.Errorf("ioformat: criterion 'pm' requires VerticesPerLeaf, TetrahedraPerLeaf, or both")
		}
	}
	return nil
}

// configWrapper is the gcfg section layout a -cfg ini file must use:
//
//	[Build]
//	Subdivision = ok
//	Criterion = pmr
//	TetrahedraPerLeaf = 64
//	Reindex = true
type configWrapper struct {
	Build BuildConfig
}

// ReadBuildConfig loads and validates a BuildConfig from an ini file,
// following io/config.go's ReadBoundsConfig entrypoint.
func ReadBuildConfig(fname string) (*BuildConfig, error) {
	wrap := configWrapper{}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return nil, fmt.Errorf("ioformat: reading config %q: %w", fname, err)
	}
	if err := wrap.Build.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Build, nil
}
