package config

import "sort"

var Presets = map[string]*Config{
	"line": {
		Range: []uint{1 << 16}, Backend: "cpu", MinChunk: 4096, Verify: true,
	},
	"tile": {
		Range: []uint{16, 16}, Backend: "serial", Verify: true,
	},
	"image-hd": {
		Range: []uint{1080, 1920}, Backend: "cpu", MinChunk: 8192, Verify: true,
	},
	"window": {
		Range: []uint{64, 64}, Offset: []uint{32, 32}, Backend: "cpu", MinChunk: 512, Verify: true,
	},
	"volume": {
		Range: []uint{64, 64, 64}, Backend: "cpu", MinChunk: 4096, Verify: true,
	},
	"cube": {
		Range: []uint{2, 3, 4}, Backend: "serial", Verify: true,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Range = append([]uint(nil), p.Range...)
	cfg.Offset = append([]uint(nil), p.Offset...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
