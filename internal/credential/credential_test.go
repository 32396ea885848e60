package credential

import (
	"strings"
	"testing"
)

func TestManager_RoundTrip(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	secret := "AIzaSy-example-api-key-0000"
	stored, err := m.Encrypt(secret)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !strings.HasPrefix(stored, EncryptedPrefix) {
		t.Errorf("Expected encrypted prefix, got %q", stored)
	}
	if strings.Contains(stored, secret) {
		t.Error("Ciphertext must not contain the plaintext")
	}

	got, err := m.Decrypt(stored)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if got != secret {
		t.Errorf("Expected %q, got %q", secret, got)
	}
}

func TestManager_EmptyValues(t *testing.T) {
	m, _ := NewManager()

	if enc, _ := m.Encrypt(""); enc != "" {
		t.Errorf("Encrypt of empty string should be empty, got %q", enc)
	}
	if dec, _ := m.Decrypt(""); dec != "" {
		t.Errorf("Decrypt of empty string should be empty, got %q", dec)
	}
}

func TestManager_PlaintextPassthrough(t *testing.T) {
	m, _ := NewManager()

	// Legacy unencrypted values come back unchanged.
	got, err := m.Decrypt("plain-value")
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if got != "plain-value" {
		t.Errorf("Expected passthrough, got %q", got)
	}
}

func TestManager_CorruptCiphertext(t *testing.T) {
	m, _ := NewManager()

	if _, err := m.Decrypt(EncryptedPrefix + "not-base64!!!"); err == nil {
		t.Error("Expected error for invalid base64")
	}
	if _, err := m.Decrypt(EncryptedPrefix + "QQ=="); err == nil {
		t.Error("Expected error for truncated ciphertext")
	}
}

func TestIsEncrypted(t *testing.T) {
	if !IsEncrypted(EncryptedPrefix + "abc") {
		t.Error("Expected IsEncrypted true for prefixed value")
	}
	if IsEncrypted("abc") {
		t.Error("Expected IsEncrypted false for plain value")
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("short"); got != "****" {
		t.Errorf("Expected '****', got %q", got)
	}
	if got := MaskSecret("AIzaSyExampleKey1234"); got != "AIza...1234" {
		t.Errorf("Unexpected mask: %q", got)
	}
}
