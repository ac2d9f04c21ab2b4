package level

import (
	_ "embed"
)

//go:embed defaults/rooftop.yaml
var rooftopYAML []byte

//go:embed defaults/clockwork.yaml
var clockworkYAML []byte

// Register the built-in levels.
func init() {
	Register(rooftopYAML)
	Register(clockworkYAML)
}
