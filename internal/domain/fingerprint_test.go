package domain

import (
	"regexp"
	"testing"
)

func TestFingerprintIgnoresOrderAndDuplicates(t *testing.T) {
	a := NewFingerprint([]string{"p1", "p2", "p3"})
	perms := [][]string{
		{"p3", "p2", "p1"},
		{"p2", "p1", "p3"},
		{"p1", "p1", "p2", " p3 ", "p2"},
	}
	for _, ids := range perms {
		if got := NewFingerprint(ids); got != a {
			t.Fatalf("NewFingerprint(%v) = %s, want %s", ids, got, a)
		}
	}
}

func TestFingerprintDistinguishesSets(t *testing.T) {
	if NewFingerprint([]string{"p1", "p2"}) == NewFingerprint([]string{"p1", "p3"}) {
		t.Fatal("different sets share a fingerprint")
	}
	// the separator keeps {"a","bc"} and {"ab","c"} apart
	if NewFingerprint([]string{"a", "bc"}) == NewFingerprint([]string{"ab", "c"}) {
		t.Fatal("concatenation collision")
	}
}

func TestFingerprintIsStableHex(t *testing.T) {
	fp := NewFingerprint([]string{"p1", "p2"})
	if !regexp.MustCompile(`^[0-9a-f]{64}$`).MatchString(fp.String()) {
		t.Fatalf("unexpected fingerprint %q", fp)
	}
	// persisted cache keys depend on this exact digest
	const want = "b98d848751a3c1557a6b378fb3cc331ca8fa3ec54f8e6ab124e70ac897050b13"
	if fp.String() != want {
		t.Fatalf("fingerprint changed: %s", fp)
	}
}
