package util

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"john@siteguard.com", "  sarah.j@siteguard.com  "}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, esperava nil", email, err)
		}
	}

	invalid := []string{"", "   ", "sem-arroba", "@dominio.com"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) deveria falhar", email)
		}
	}
}

func TestRequireString(t *testing.T) {
	if err := RequireString("valor", "nome"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	err := RequireString("   ", "nome")
	if err == nil {
		t.Fatal("string vazia deveria falhar")
	}
	if err.Error() != "nome obrigatório" {
		t.Fatalf("mensagem inesperada: %q", err.Error())
	}
}
