package orbitalgenesis

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _genesisconfig{}
)

// _genesisconfig is a "hidden" struct, just use `genesisConfig`
type _genesisconfig struct {
	outputDir  string
	minPlanets int
	maxPlanets int
}

// genesisConfig returns the generation configuration. The configuration file
// is optional: without the GENESIS_CONFIG environment variable the compiled
// defaults apply, so generation stays total.
func genesisConfig() _genesisconfig {
	if cfgLoaded {
		return config
	}
	config = _genesisconfig{
		outputDir:  ".",
		minPlanets: defaultMinPlanets,
		maxPlanets: defaultMaxPlanets,
	}
	if confPath := os.Getenv("GENESIS_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		if out := viper.GetString("general.output_path"); out != "" {
			config.outputDir = out
		}
		if v := viper.GetInt("generation.min_planets"); v > 0 {
			config.minPlanets = v
		}
		if v := viper.GetInt("generation.max_planets"); v > 0 {
			config.maxPlanets = v
		}
		if config.maxPlanets < config.minPlanets {
			config.maxPlanets = config.minPlanets
		}
	}
	cfgLoaded = true
	return config
}
