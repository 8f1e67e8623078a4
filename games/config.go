package games

import (
	"github.com/BurntSushi/toml"

	"github.com/gamely/cubegames"
)

// LoadLimits reads a per-color limits override from a TOML file:
//
//	red = 12
//	green = 13
//	blue = 14
//
// Colors left out of the file keep their default ceiling.
func LoadLimits(path string) (cubegames.Limits, error) {
	limits := cubegames.DefaultLimits()
	if _, err := toml.DecodeFile(path, &limits); err != nil {
		return cubegames.Limits{}, err
	}
	return limits, nil
}
