package password

import "testing"

func TestDigest_Deterministic(t *testing.T) {
	h := NewDigest("NewsApiSalt")

	first, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical digests, got %q and %q", first, second)
	}
}

func TestDigest_VerifyRoundTrip(t *testing.T) {
	h := NewDigest("NewsApiSalt")

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("expected verify to succeed for matching password")
	}
	if h.Verify("s3cret2", digest) {
		t.Fatalf("expected verify to fail for wrong password")
	}
	if h.Verify("", digest) {
		t.Fatalf("expected verify to fail for empty password")
	}
}

func TestDigest_SaltChangesDigest(t *testing.T) {
	a, _ := NewDigest("saltA").Hash("pw")
	b, _ := NewDigest("saltB").Hash("pw")
	if a == b {
		t.Fatalf("different salts must produce different digests")
	}
}

func TestBcrypt_VerifyRoundTrip(t *testing.T) {
	h := NewBcrypt()

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("expected verify to succeed for matching password")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("expected verify to fail for wrong password")
	}
}
