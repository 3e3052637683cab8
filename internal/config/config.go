package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexiusacademia/canoecalc/internal/analysis"
	"github.com/alexiusacademia/canoecalc/internal/criteria"
	"github.com/alexiusacademia/canoecalc/internal/section"
)

// EnvPrefix is prepended to environment overrides, e.g.
// CANOE_THRESHOLDS_MINFREEBOARDIN=6
const EnvPrefix = "CANOE"

// Settings is everything read from the config file and environment
type Settings struct {
	LogLevel string
	Analysis analysis.Config
}

// Load reads settings from the YAML or JSON file at path (optional) and the
// environment, over the defaults of the complete analysis.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	def := analysis.DefaultConfig()

	v.SetDefault("logLevel", "info")

	v.SetDefault("water.densityPcf", def.Constants.WaterDensityPCF)
	v.SetDefault("water.gravityFtS2", def.Constants.GravityFtS2)
	v.SetDefault("water.inchesPerFoot", def.Constants.InchesPerFoot)

	// Individual threshold keys are left unset so that IsSet only reports
	// values a user actually supplied on top of the preset.
	v.SetDefault("thresholds.preset", "orchestrator")

	v.SetDefault("formFactor", def.FormFactor)
	v.SetDefault("kgFraction", def.KGFraction)
	v.SetDefault("kgMode", def.KGMode.String())
	v.SetDefault("sectionModel", def.SectionModel.String())
	v.SetDefault("aggregation", def.Aggregation.String())

	v.SetDefault("concrete.densityPcf", def.DensityPCF)
	v.SetDefault("concrete.flexuralStrengthPsi", def.FlexuralStrengthPSI)
}

func decode(v *viper.Viper) (*Settings, error) {
	cfg := analysis.DefaultConfig()

	cfg.Constants.WaterDensityPCF = v.GetFloat64("water.densityPcf")
	cfg.Constants.GravityFtS2 = v.GetFloat64("water.gravityFtS2")
	cfg.Constants.InchesPerFoot = v.GetFloat64("water.inchesPerFoot")

	th, err := criteria.Preset(v.GetString("thresholds.preset"))
	if err != nil {
		return nil, err
	}
	if v.IsSet("thresholds.minFreeboardIn") {
		th.MinFreeboardIn = v.GetFloat64("thresholds.minFreeboardIn")
	}
	if v.IsSet("thresholds.minGmIn") {
		th.MinGMIn = v.GetFloat64("thresholds.minGmIn")
	}
	if v.IsSet("thresholds.minSafetyFactor") {
		th.MinSafetyFactor = v.GetFloat64("thresholds.minSafetyFactor")
	}
	cfg.Thresholds = th

	cfg.FormFactor = v.GetFloat64("formFactor")
	cfg.KGFraction = v.GetFloat64("kgFraction")
	if cfg.KGFraction <= 0 {
		return nil, fmt.Errorf("kgFraction must be positive, got %v", cfg.KGFraction)
	}

	switch mode := strings.ToLower(v.GetString("kgMode")); mode {
	case "fixed":
		cfg.KGMode = analysis.KGFixedFraction
	case "weighted":
		cfg.KGMode = analysis.KGWeighted
	default:
		return nil, fmt.Errorf("unknown kgMode %q (want fixed or weighted)", mode)
	}

	model, ok := section.ParseModel(strings.ToLower(v.GetString("sectionModel")))
	if !ok {
		return nil, fmt.Errorf("unknown sectionModel %q (want thin-shell or rectangular)", v.GetString("sectionModel"))
	}
	cfg.SectionModel = model

	switch agg := strings.ToLower(v.GetString("aggregation")); agg {
	case "all":
		cfg.Aggregation = analysis.AggregateAll
	case "structural":
		cfg.Aggregation = analysis.AggregateStructural
	default:
		return nil, fmt.Errorf("unknown aggregation %q (want all or structural)", agg)
	}

	cfg.DensityPCF = v.GetFloat64("concrete.densityPcf")
	cfg.FlexuralStrengthPSI = v.GetFloat64("concrete.flexuralStrengthPsi")

	return &Settings{
		LogLevel: v.GetString("logLevel"),
		Analysis: cfg,
	}, nil
}
