package geo

import (
	"math"
	"testing"
)

func TestDecodeLocation_SignHandling(t *testing.T) {
	p := DecodeLocation("0000000a,fffffff6")
	if p == nil {
		t.Fatal("expected a decoded point, got nil")
	}
	if math.Abs(p.Lat-0.00001) > 1e-12 {
		t.Fatalf("expected lat 0.00001, got %v", p.Lat)
	}
	if math.Abs(p.Lng-(-0.00001)) > 1e-12 {
		t.Fatalf("expected lng -0.00001, got %v", p.Lng)
	}
}

func TestDecodeLocation_RealCoordinates(t *testing.T) {
	// 40.7580° N, 73.9855° W (Times Square)
	p := DecodeLocation("026deaf0,fb971224")
	if p == nil {
		t.Fatal("expected a decoded point, got nil")
	}
	if math.Abs(p.Lat-40.758) > 1e-3 {
		t.Fatalf("expected lat ~40.758, got %v", p.Lat)
	}
	if math.Abs(p.Lng-(-73.9855)) > 1e-3 {
		t.Fatalf("expected lng ~-73.9855, got %v", p.Lng)
	}
}

func TestDecodeLocation_Malformed(t *testing.T) {
	for _, input := range []string{
		"",
		"deadbeef",
		"0000000a",
		"0000000a,xyz",
		"xyz,0000000a",
		"0000000a,0000000a,0000000a",
	} {
		if p := DecodeLocation(input); p != nil {
			t.Fatalf("expected nil for %q, got %+v", input, p)
		}
	}
}

func TestHaversineKm_ZeroDistance(t *testing.T) {
	if d := HaversineKm(0, 0, 0, 0); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestHaversineKm_QuarterMeridian(t *testing.T) {
	d := HaversineKm(0, 0, 0, 90)
	if math.Abs(d-10007.54) > 0.5 {
		t.Fatalf("expected ~10007.54 km, got %v", d)
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := HaversineKm(51.5074, -0.1278, 48.8566, 2.3522)
	b := HaversineKm(48.8566, 2.3522, 51.5074, -0.1278)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("expected symmetric distances, got %v and %v", a, b)
	}
	// London to Paris is ~344 km
	if math.Abs(a-344) > 5 {
		t.Fatalf("expected ~344 km, got %v", a)
	}
}

func TestKmToMiles(t *testing.T) {
	if m := KmToMiles(100); math.Abs(m-62.1371) > 1e-9 {
		t.Fatalf("expected 62.1371, got %v", m)
	}
}
