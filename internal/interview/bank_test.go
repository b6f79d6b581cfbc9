package interview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBankValidate(t *testing.T) {
	bank := DefaultBank()

	if err := bank.Validate(DefaultTechnicalCount, DefaultBehavioralCount); err != nil {
		t.Fatalf("default bank must satisfy the default counts: %v", err)
	}

	if err := bank.Validate(9, 1); err == nil {
		t.Fatal("expected an error when a pool cannot supply 9 technical questions")
	}
}

func TestRolePoolFallsBackToDefault(t *testing.T) {
	bank := DefaultBank()

	pool := bank.RolePool("Astronaut")
	if len(pool.Technical) != len(bank.Default.Technical) {
		t.Fatal("unknown role must fall back to the default pool")
	}

	frontend := bank.RolePool("Frontend Developer")
	if frontend.Technical[0] == bank.Default.Technical[0] {
		t.Fatal("known role must resolve to its own pool")
	}
}

func TestLoadBank(t *testing.T) {
	content := `roles:
  Data Analyst:
    technical:
      - How do you validate a dataset?
      - Explain normalization.
    behavioral:
      - Tell me about a report that changed a decision.
default:
  technical:
    - Describe a project you are proud of.
  behavioral:
    - How do you handle deadlines?
`
	path := filepath.Join(t.TempDir(), "questions.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pool := bank.RolePool("Data Analyst")
	if len(pool.Technical) != 2 || len(pool.Behavioral) != 1 {
		t.Fatalf("unexpected pool sizes: %d technical, %d behavioral", len(pool.Technical), len(pool.Behavioral))
	}
	if bank.Default.Technical[0] != "Describe a project you are proud of." {
		t.Fatalf("unexpected default pool: %v", bank.Default.Technical)
	}
}

func TestLoadBankKeepsBuiltinDefaultWhenOmitted(t *testing.T) {
	content := `roles:
  Data Analyst:
    technical:
      - How do you validate a dataset?
    behavioral:
      - Tell me about a report that changed a decision.
`
	path := filepath.Join(t.TempDir(), "questions.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	builtin := DefaultBank().Default
	if len(bank.Default.Technical) != len(builtin.Technical) {
		t.Fatal("omitted default pool must fall back to the built-in one")
	}
}

func TestLoadBankMissingFile(t *testing.T) {
	if _, err := LoadBank(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
