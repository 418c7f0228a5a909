package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Candidate      string  `mapstructure:"candidate"`
	Baseline       string  `mapstructure:"baseline"`
	CandidateLabel string  `mapstructure:"candidate_label"`
	BaselineLabel  string  `mapstructure:"baseline_label"`
	Metric         string  `mapstructure:"metric"`
	Alpha          float64 `mapstructure:"alpha"`
	Format         string  `mapstructure:"format"`
	Output         string  `mapstructure:"output"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".analyzer")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
