package config

var Presets = map[string]map[string]*Config{
	"voltage_divider": {
		"classroom": {
			Scene: "voltage_divider", FPS: 30, Width: 110, Height: 34,
			Params: ParamsConfig{Vin: 9, R1: 10000, R2: 10000, RL: 1e6},
		},
		"heavy_load": {
			Scene: "voltage_divider", FPS: 30, Width: 110, Height: 34,
			Params: ParamsConfig{Vin: 9, R1: 10000, R2: 10000, RL: 2000},
		},
		"quick": {
			Scene: "voltage_divider", FPS: 15, Width: 90, Height: 28,
			Params: ParamsConfig{Vin: 9, R1: 10000, R2: 10000, RL: 1e6},
		},
	},
	"regulator_comparison": {
		"brownout": {
			Scene: "regulator_comparison", FPS: 30, Width: 110, Height: 34,
			Params: ParamsConfig{Vin: 5, R1: 91, R2: 180, RL: 1e6, LEDs: 0, Vmin: 3.0},
		},
		"stiff": {
			Scene: "regulator_comparison", FPS: 30, Width: 110, Height: 34,
			Params: ParamsConfig{Vin: 5, R1: 33, R2: 68, RL: 1e6, LEDs: 0, Vmin: 3.0},
		},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}
