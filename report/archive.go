package report

import (
	"encoding/gob"
	"os"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/timpalpant/alphablotto"
)

// SaveResults writes the full results of a run, including the reduced
// strategies and frequencies of every budget pair, as gzipped gob.
func SaveResults(filename string, results *alphablotto.Results) error {
	glog.Infof("Saving results to: %v", filename)
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %v", filename)
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	enc := gob.NewEncoder(w)
	if err := enc.Encode(results); err != nil {
		return errors.Wrap(err, "encoding results")
	}

	if err := w.Close(); err != nil {
		return err
	}

	return f.Close()
}

// LoadResults reads results saved by SaveResults.
func LoadResults(filename string) (*alphablotto.Results, error) {
	glog.Infof("Loading results from: %v", filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %v", filename)
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", filename)
	}
	defer r.Close()

	var results alphablotto.Results
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&results); err != nil {
		return nil, errors.Wrap(err, "decoding results")
	}

	return &results, nil
}
