package config

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/earfet/fet"
)

//go:embed presets.yml
var presetsYAML []byte

var presets = func() map[string]fet.PitchRange {
	var ret map[string]fet.PitchRange
	if err := yaml.Unmarshal(presetsYAML, &ret); err != nil {
		panic(fmt.Sprintf("config: embedded presets.yml is invalid: %v", err))
	}
	return ret
}()

// PresetNames returns the names of the built in pitch ranges, sorted.
func PresetNames() []string {
	ret := make([]string, 0, len(presets))
	for name := range presets {
		ret = append(ret, name)
	}
	slices.Sort(ret)
	return ret
}

// Preset returns the built in pitch range with the given name.
func Preset(name string) (fet.PitchRange, bool) {
	r, ok := presets[strings.ToLower(name)]
	return r, ok
}
