package golden

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Default file names inside a fixture directory.
const (
	InputFile  = "input.dat"
	CoeffsFile = "coeffs.dat"
	GoldenFile = "golden_output.dat"
)

// Fixture is one harness case.
type Fixture struct {
	Input  []int32
	Coeffs []int32
	Golden []int32
}

// Load reads a fixture from three files. Every file that cannot be opened
// is reported, and the error matches ErrMissingInputResource. Parse
// failures are returned as-is.
func Load(inputPath, coeffsPath, goldenPath string) (*Fixture, error) {
	paths := []string{inputPath, coeffsPath, goldenPath}
	files := make([]*os.File, len(paths))
	var errs []error
	for i, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files[i] = f
	}
	defer func() {
		for _, f := range files {
			if f != nil {
				_ = f.Close()
			}
		}
	}()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrMissingInputResource, errors.Join(errs...))
	}

	var fx Fixture
	dst := []*[]int32{&fx.Input, &fx.Coeffs, &fx.Golden}
	for i, f := range files {
		s, err := ReadSamples(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paths[i], err)
		}
		*dst[i] = s
	}
	return &fx, nil
}

// LoadDir reads input.dat, coeffs.dat and golden_output.dat from dir.
func LoadDir(dir string) (*Fixture, error) {
	return Load(
		filepath.Join(dir, InputFile),
		filepath.Join(dir, CoeffsFile),
		filepath.Join(dir, GoldenFile),
	)
}

// Save writes the fixture into dir using the default file names.
func (fx *Fixture) Save(dir string) error {
	files := []struct {
		name string
		data []int32
	}{
		{InputFile, fx.Input},
		{CoeffsFile, fx.Coeffs},
		{GoldenFile, fx.Golden},
	}
	for _, file := range files {
		if err := writeFile(filepath.Join(dir, file.name), file.data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, data []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("golden: %w", err)
	}
	if err := WriteSamples(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("golden: write %s: %w", path, err)
	}
	return f.Close()
}
