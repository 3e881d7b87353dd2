package ioformat

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeConfig names the build configuration a .tree file's name encodes, per
// spec §6.2: subdivision type, build criterion, and whichever of the
// vertex/tetrahedra-per-leaf thresholds the criterion uses.
type TreeConfig struct {
	Subdivision string // "ok" or "kd"
	Criterion   string // "pr", "pm", "pm2", or "pmr"
	KV          int
	HasKV       bool
	KT          int
	HasKT       bool
}

// EncodeTreeFilename appends TreeConfig's tokens to base, underscore
// separated, so DecodeTreeFilename can recover the configuration without
// reading the file itself.
func EncodeTreeFilename(base string, cfg TreeConfig) string {
	parts := []string{base, cfg.Subdivision, cfg.Criterion}
	if cfg.HasKV {
		parts = append(parts, "v", strconv.Itoa(cfg.KV))
	}
	if cfg.HasKT {
		parts = append(parts, "t", strconv.Itoa(cfg.KT))
	}
	return strings.Join(parts, "_") + ".tree"
}

// DecodeTreeFilename recovers a TreeConfig from a filename built by
// EncodeTreeFilename.
func DecodeTreeFilename(name string) (TreeConfig, error) {
	name = strings.TrimSuffix(name, ".tree")
	name = name[strings.LastIndex(name, "/")+1:]
	tokens := strings.Split(name, "_")

	var cfg TreeConfig
	i := 0
	// The base name itself may contain underscores, so scan from the end
	// for the first recognizable subdivision/criterion pair instead of
	// assuming a fixed prefix length.
	for i = len(tokens) - 2; i >= 0; i-- {
		if isSubdivisionToken(tokens[i]) && isCriterionToken(tokens[i+1]) {
			cfg.Subdivision = tokens[i]
			cfg.Criterion = tokens[i+1]
			i += 2
			break
		}
	}
	if cfg.Subdivision == "" {
		return TreeConfig{}, fmt.Errorf(
			"ioformat: %q does not encode a subdivision/criterion pair", name)
	}

	for i < len(tokens) {
		switch tokens[i] {
		case "v":
			if i+1 >= len(tokens) {
				return TreeConfig{}, fmt.Errorf("ioformat: %q: dangling 'v' token", name)
			}
			kv, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				return TreeConfig{}, fmt.Errorf("ioformat: %q: bad v threshold: %w", name, err)
			}
			cfg.KV, cfg.HasKV = kv, true
			i += 2
		case "t":
			if i+1 >= len(tokens) {
				return TreeConfig{}, fmt.Errorf("ioformat: %q: dangling 't' token", name)
			}
			kt, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				return TreeConfig{}, fmt.Errorf("ioformat: %q: bad t threshold: %w", name, err)
			}
			cfg.KT, cfg.HasKT = kt, true
			i += 2
		default:
			return TreeConfig{}, fmt.Errorf("ioformat: %q: unexpected token %q", name, tokens[i])
		}
	}
	return cfg, nil
}

func isSubdivisionToken(tok string) bool { return tok == "ok" || tok == "kd" }

func isCriterionToken(tok string) bool {
	switch tok {
	case "pr", "pm", "pm2", "pmr":
		return true
	}
	return false
}
