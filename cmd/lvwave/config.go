package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys. Flag names equal the keys; nested keys map to env vars with
// '.' and '-' replaced by '_', e.g. log.level → LVWAVE_LOG_LEVEL.
const (
	keyModel       = "model"
	keyTotalMass   = "total-mass"
	keyMassRatio   = "mass-ratio"
	keyChi1        = "chi1"
	keyChi2        = "chi2"
	keyDistance    = "distance"
	keyPhic        = "phic"
	keyInclination = "inclination"
	keyFMin        = "f-min"
	keyFMax        = "f-max"
	keyDeltaF      = "delta-f"
	keyWorkers     = "workers"
	keyFormat      = "format"
	keyOutput      = "output"
	keyPolarize    = "polarize"
	keyRepeat      = "repeat"
	keyLogLevel    = "log.level"
	keyLogFormat   = "log.format"
	keyConfig      = "config"

	envPrefix = "LVWAVE"
)

// Model names accepted by --model.
const (
	modelIMRPhenomD = "imrphenomd"
	modelTaylorF2   = "taylorf2"
)

// Sentinel errors for driver configuration.
var (
	errUnknownModel  = errors.New("lvwave: unknown model")
	errUnknownFormat = errors.New("lvwave: unknown output format")
	errBadGrid       = errors.New("lvwave: invalid frequency grid")
	errBadWorkers    = errors.New("lvwave: workers must be positive")
	errBadRepeat     = errors.New("lvwave: repeat must be positive")
)

// config is the resolved driver configuration.
type config struct {
	Model       string
	TotalMass   float64
	MassRatio   float64
	Chi1        float64
	Chi2        float64
	Distance    float64
	Phic        float64
	Inclination float64
	FMin        float64
	FMax        float64
	DeltaF      float64
	Workers     int
	Format      string
	Output      string
	Polarize    bool
	Repeat      int
	LogLevel    string
	LogFormat   string
}

// registerFlags declares every persistent flag with its default. The
// defaults reproduce the 90 M☉ reference binary.
func registerFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "YAML config file")
	fs.String(keyModel, modelIMRPhenomD, "waveform model: imrphenomd|taylorf2")
	fs.Float64(keyTotalMass, 90, "total mass (M☉)")
	fs.Float64(keyMassRatio, 0.5, "mass ratio m2/m1 in (0, 1]")
	fs.Float64(keyChi1, 0, "aligned spin of the heavier body")
	fs.Float64(keyChi2, 0, "aligned spin of the lighter body")
	fs.Float64(keyDistance, 100, "luminosity distance (Mpc)")
	fs.Float64(keyPhic, 0.1, "coalescence phase (rad)")
	fs.Float64(keyInclination, 0, "inclination θ_JN (rad)")
	fs.Float64(keyFMin, 20, "lower band edge (Hz), must be > 0")
	fs.Float64(keyFMax, 1500, "upper band edge and grid end (Hz)")
	fs.Float64(keyDeltaF, 0.25, "grid spacing (Hz)")
	fs.Int(keyWorkers, 1, "parallel evaluation workers")
	fs.String(keyFormat, formatTable, "output format: table|csv|parquet")
	fs.String(keyOutput, "", "output file (default stdout)")
	fs.Bool(keyPolarize, true, "write h₊/h× instead of raw h")
	fs.Int(keyRepeat, 100, "bench iterations")
	fs.String(keyLogLevel, "info", "log level: debug|info|warn|error")
	fs.String(keyLogFormat, "console", "log format: json|console")
}

// newViper binds fs to a fresh viper instance with env overrides.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return v, nil
}

// loadConfig reads the optional config file and resolves every key.
func loadConfig(v *viper.Viper) (config, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	cfg := config{
		Model:       strings.ToLower(v.GetString(keyModel)),
		TotalMass:   v.GetFloat64(keyTotalMass),
		MassRatio:   v.GetFloat64(keyMassRatio),
		Chi1:        v.GetFloat64(keyChi1),
		Chi2:        v.GetFloat64(keyChi2),
		Distance:    v.GetFloat64(keyDistance),
		Phic:        v.GetFloat64(keyPhic),
		Inclination: v.GetFloat64(keyInclination),
		FMin:        v.GetFloat64(keyFMin),
		FMax:        v.GetFloat64(keyFMax),
		DeltaF:      v.GetFloat64(keyDeltaF),
		Workers:     v.GetInt(keyWorkers),
		Format:      strings.ToLower(v.GetString(keyFormat)),
		Output:      v.GetString(keyOutput),
		Polarize:    v.GetBool(keyPolarize),
		Repeat:      v.GetInt(keyRepeat),
		LogLevel:    v.GetString(keyLogLevel),
		LogFormat:   v.GetString(keyLogFormat),
	}

	return cfg, cfg.validate()
}

// validate checks the driver-level settings. Physical parameters are left
// to the model constructors. f-min must be positive: both models diverge at
// f = 0.
func (c config) validate() error {
	switch c.Model {
	case modelIMRPhenomD, modelTaylorF2:
	default:
		return fmt.Errorf("%q: %w", c.Model, errUnknownModel)
	}
	switch c.Format {
	case formatTable, formatCSV, formatParquet:
	default:
		return fmt.Errorf("%q: %w", c.Format, errUnknownFormat)
	}
	if !(c.DeltaF > 0) || !(c.FMin > 0) || c.FMin > c.FMax {
		return fmt.Errorf("delta-f=%g f-min=%g f-max=%g: %w", c.DeltaF, c.FMin, c.FMax, errBadGrid)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%d: %w", c.Workers, errBadWorkers)
	}
	if c.Repeat <= 0 {
		return fmt.Errorf("%d: %w", c.Repeat, errBadRepeat)
	}

	return nil
}
