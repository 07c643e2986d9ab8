package life

import (
	"strconv"

	"fractal-life/pkg/core"
)

// Parameters returns the tunables grouped for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	n := l.cfg.Noise
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("scale", "Noise scale", n.Scale),
				intParam("octaves", "Octaves", n.Octaves),
				floatParam("persistence", "Persistence", n.Persistence),
				floatParam("min_density", "Min density", n.MinDensity),
				floatParam("max_density", "Max density", n.MaxDensity),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: formatFloat(value),
	}
}
