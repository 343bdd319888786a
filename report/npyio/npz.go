package npyio

import (
	"bufio"
	"os"
	"sort"

	"github.com/klauspost/compress/zip"
)

// MakeNPZ saves each of the given matrices as <name>.npy within a single
// zip archive, which numpy.load reads as an NpzFile.
func MakeNPZ(output string, matrices map[string][][]float64) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	b := bufio.NewWriter(f)
	z := zip.NewWriter(b)

	names := make([]string, 0, len(matrices))
	for name := range matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w, err := z.Create(name + ".npy")
		if err != nil {
			return err
		}

		if err := Write(w, matrices[name]); err != nil {
			return err
		}
	}

	if err := z.Close(); err != nil {
		return err
	}

	return b.Flush()
}
