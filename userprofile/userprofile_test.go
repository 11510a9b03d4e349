package userprofile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewUser(t *testing.T) {

	got := NewUser("Pawan", "alienwaresec", "pawan@gmail.com", 21, false)

	want := &User{
		Name:     "Pawan",
		Username: "alienwaresec",
		Email:    "pawan@gmail.com",
		ID:       21,
		Indian:   false,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewUser() mismatch (-want +got):\n%s", diff)
	}
}
