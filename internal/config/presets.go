package config

import "sort"

var Presets = map[string]WindowConfig{
	"svga":    {Width: 800, Height: 600},
	"hd":      {Width: 1280, Height: 720},
	"fhd":     {Width: 1920, Height: 1080, FPS: 60},
	"compact": {Width: 480, Height: 320, FPS: 30},
}

func GetPreset(name string) *WindowConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
