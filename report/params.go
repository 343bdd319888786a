package report

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/alphablotto"
)

// LoadParams reads simulation parameters from a YAML file.
// Fields missing from the file keep their values in defaults.
func LoadParams(filename string, defaults alphablotto.Params) (alphablotto.Params, error) {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return defaults, errors.Wrapf(err, "reading params from %v", filename)
	}

	params := defaults
	if err := yaml.Unmarshal(buf, &params); err != nil {
		return defaults, errors.Wrapf(err, "parsing params from %v", filename)
	}

	return params, nil
}

// SaveParams writes simulation parameters as YAML.
func SaveParams(filename string, params alphablotto.Params) error {
	buf, err := yaml.Marshal(params)
	if err != nil {
		return err
	}

	return errors.Wrapf(ioutil.WriteFile(filename, buf, 0644), "writing params to %v", filename)
}
