package objio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTriangles(t *testing.T) {
	path := writeOBJ(t, `# comment
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)
	positions, triangles, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(positions) != 3 {
		t.Errorf("got %d positions, want 3", len(positions))
	}
	if len(triangles) != 1 {
		t.Fatalf("got %d triangles, want 1", len(triangles))
	}
	if triangles[0] != [3]uint32{0, 1, 2} {
		t.Errorf("triangle = %v, want [0 1 2]", triangles[0])
	}
	if positions[1].X() != 1 || positions[2].Y() != 1 {
		t.Errorf("positions parsed wrong: %v", positions)
	}
}

func TestLoadQuadFanTriangulation(t *testing.T) {
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)
	_, triangles, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := [][3]uint32{{0, 1, 2}, {0, 2, 3}}
	if len(triangles) != 2 || triangles[0] != want[0] || triangles[1] != want[1] {
		t.Errorf("triangles = %v, want %v", triangles, want)
	}
}

func TestLoadSlashFormsAndNegativeIndices(t *testing.T) {
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1 2/1/1 -1//1
`)
	_, triangles, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if triangles[0] != [3]uint32{0, 1, 2} {
		t.Errorf("triangle = %v, want [0 1 2]", triangles[0])
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"zero index":      "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"out of range":    "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"bad coordinate":  "v 0 0 x\n",
		"short vertex":    "v 0 0\n",
		"short face":      "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"no faces at all": "v 0 0 0\nv 1 0 0\nv 0 1 0\n",
		"bad face index":  "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 x\n",
	}
	for name, content := range cases {
		if _, _, err := Load(writeOBJ(t, content)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
