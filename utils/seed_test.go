package utils

import (
	"path/filepath"
	"testing"

	"github.com/sheikhrachel/go-gol-universe/model"
)

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]byte(`{"width": 5, "height": 4, "alive": [[0, 1], [3, 4]]}`))
	if err != nil {
		t.Fatal(err)
	}

	u := seed.Universe()
	if u.Width() != 5 || u.Height() != 4 {
		t.Fatalf("dimensions = %dx%d", u.Width(), u.Height())
	}
	if u.Population() != 2 || u.Get(0, 1) != model.Alive || u.Get(3, 4) != model.Alive {
		t.Fatalf("unexpected universe:\n%s", u)
	}
}

func TestParseSeedRejectsBadSeeds(t *testing.T) {
	tests := map[string]string{
		"syntax":      `[`,
		"empty":       `{"width": 0, "height": 3}`,
		"row outside": `{"width": 3, "height": 3, "alive": [[3, 0]]}`,
		"col outside": `{"width": 3, "height": 3, "alive": [[0, 3]]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSeed([]byte(body)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadSeed(t *testing.T) {
	path := writeFile(t, "seed.json", `{"width": 3, "height": 3, "alive": [[1, 0], [1, 1], [1, 2]]}`)
	seed, err := LoadSeed(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(seed.Coords()) != 3 {
		t.Fatalf("coords = %v", seed.Coords())
	}

	if _, err = LoadSeed(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing seed")
	}
}
