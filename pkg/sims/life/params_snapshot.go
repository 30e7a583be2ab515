package life

import (
	"strconv"

	"gol-ca/pkg/core"
)

// Parameters reports the construction options and live counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				{Key: "boundary", Label: "Boundary", Type: core.ParamTypeString, Value: l.cfg.Boundary.String()},
				floatParam("density", "Seed density", l.cfg.Density),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("turn", "Turn", l.turn),
				intParam("alive", "Alive", l.Population()),
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

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
