package text

import "testing"

func TestFontFaceFallsBackWithoutRegisteredFont(t *testing.T) {
	reg := NewRegistry()
	snap := reg.Snapshot()

	face := snap.FontFace([]string{"Nonexistent"}, 16, false, false)
	w, h := face.MeasureString("hello")
	if w <= 0 || h <= 0 {
		t.Fatalf("expected positive measurement from fallback face, got w=%v h=%v", w, h)
	}
}

func TestFindBlobPrefersExactWeightAndStyle(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Sans", []byte("regular"), false, false)
	reg.Register("Sans", []byte("bold"), true, false)
	snap := reg.Snapshot()

	blob, ok := snap.findBlob([]string{"Sans"}, true, false)
	if !ok || blob.Bold != true {
		t.Fatalf("expected bold blob, got %+v ok=%v", blob, ok)
	}
}

func TestFindBlobFallsBackAcrossFamilyList(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Backup", []byte("regular"), false, false)
	snap := reg.Snapshot()

	blob, ok := snap.findBlob([]string{"Missing", "Backup"}, false, false)
	if !ok || blob.Family != "Backup" {
		t.Fatalf("expected fallback to Backup family, got %+v ok=%v", blob, ok)
	}
}
