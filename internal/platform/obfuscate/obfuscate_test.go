package obfuscate

import "testing"

func TestApplyIsInvolutive(t *testing.T) {
	inputs := []string{"", "a", "admin123", "p@ss word", "секрет"}
	for _, input := range inputs {
		if got := Apply(Apply(input)); got != input {
			t.Fatalf("double Apply(%q) = %q, want original", input, got)
		}
	}
}

func TestApplyChangesNonEmptyInput(t *testing.T) {
	if Apply("admin123") == "admin123" {
		t.Fatal("Apply returned the input unchanged")
	}
}

func TestVerify(t *testing.T) {
	stored := Apply("hunter2")
	if !Verify("hunter2", stored) {
		t.Fatal("Verify rejected the correct password")
	}
	if Verify("hunter3", stored) {
		t.Fatal("Verify accepted a wrong password")
	}
}
