package credential

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/nmiguel/vendas"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "users.jsonl"))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := testStore(t)

	if err := s.Register("ana", "s3cret"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	ok, err := s.Authenticate("ana", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if !ok {
		t.Error("valid credentials rejected")
	}

	ok, err = s.Authenticate("ana", "wrong")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if ok {
		t.Error("wrong password accepted")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s := testStore(t)

	if err := s.Register("ana", "s3cret"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := s.Register("ana", "other"); !errors.Is(err, vendas.ErrUserExists) {
		t.Errorf("duplicate registration: error = %v, want ErrUserExists", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	s := testStore(t)

	if err := s.Register("", "pass"); !errors.Is(err, vendas.ErrValidation) {
		t.Errorf("empty username: error = %v, want ErrValidation", err)
	}
	if err := s.Register("ana", ""); !errors.Is(err, vendas.ErrValidation) {
		t.Errorf("empty password: error = %v, want ErrValidation", err)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	s := testStore(t)

	// The user file does not even exist yet: an empty store, not an error.
	ok, err := s.Authenticate("ghost", "pass")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if ok {
		t.Error("unknown user authenticated")
	}
}

func TestPasswordsAreNotStoredInClear(t *testing.T) {
	s := testStore(t)

	if err := s.Register("ana", "s3cret"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	users, err := s.load()
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if users["ana"] == "s3cret" {
		t.Error("password stored in clear text")
	}
}
