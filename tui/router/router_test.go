package router

import (
	"testing"
)

func TestNew(t *testing.T) {
	r := New(Login)

	if r.Current() != Login {
		t.Errorf("Expected current route %s, got %s", Login, r.Current())
	}
	if r.CanGoBack() {
		t.Error("Expected no history on a new router")
	}
}

func TestNavigateTo(t *testing.T) {
	// Arrange
	r := New(Login)

	// Act
	cmd := r.NavigateTo("/forgot")

	// Assert
	if r.Current() != Forgot {
		t.Fatalf("Expected current route %s, got %s", Forgot, r.Current())
	}
	msg, ok := cmd().(NavigatedMsg)
	if !ok {
		t.Fatalf("Expected NavigatedMsg, got %T", cmd())
	}
	if msg.Transition.From != Login || msg.Transition.To != Forgot {
		t.Errorf("Unexpected transition %s", msg.Transition)
	}
	if msg.Transition.String() != "/login -> /forgot" {
		t.Errorf("Unexpected transition string %q", msg.Transition.String())
	}
}

func TestNavigateTo_UnknownRoute(t *testing.T) {
	// Arrange
	r := New(Login)

	// Act
	cmd := r.NavigateTo("https://example.com/registration")

	// Assert
	if r.Current() != Login {
		t.Errorf("Expected route to stay %s, got %s", Login, r.Current())
	}
	if len(r.History()) != 1 {
		t.Errorf("Expected history to be unchanged, got %v", r.History())
	}
	if _, ok := cmd().(ErrorMsg); !ok {
		t.Errorf("Expected ErrorMsg, got %T", cmd())
	}
}

func TestBack(t *testing.T) {
	// Arrange
	r := New(Login)
	r.NavigateTo(string(Registration))

	// Act
	cmd := r.Back()

	// Assert
	if r.Current() != Login {
		t.Errorf("Expected to be back at %s, got %s", Login, r.Current())
	}
	msg := cmd().(NavigatedMsg)
	if msg.Transition.From != Registration || msg.Transition.To != Login {
		t.Errorf("Unexpected transition %s", msg.Transition)
	}
	if r.Back() != nil {
		t.Error("Expected nil command when there is nothing to go back to")
	}
}

func TestReset(t *testing.T) {
	// Arrange
	r := New(Login)
	r.NavigateTo(string(Registration))
	r.NavigateTo(string(Login))

	// Act
	cmd := r.Reset(Home)

	// Assert
	if r.Current() != Home {
		t.Errorf("Expected %s, got %s", Home, r.Current())
	}
	if r.CanGoBack() {
		t.Errorf("Expected history to be cleared, got %v", r.History())
	}
	if _, ok := cmd().(NavigatedMsg); !ok {
		t.Errorf("Expected NavigatedMsg, got %T", cmd())
	}
	if _, ok := r.Reset(Route("/nowhere"))().(ErrorMsg); !ok {
		t.Error("Expected ErrorMsg for an unknown reset target")
	}
	if r.Current() != Home {
		t.Error("Expected failed reset to keep the current route")
	}
}

func TestHistory_ReturnsCopy(t *testing.T) {
	r := New(Login)
	history := r.History()
	history[0] = Home

	if r.History()[0] != Login {
		t.Error("Expected History to return a copy")
	}
}

func TestRoute_IsValid(t *testing.T) {
	for _, route := range []Route{Restoring, Home, Login, Registration, Forgot, Locations} {
		if !route.IsValid() {
			t.Errorf("Expected %s to be valid", route)
		}
	}
	for _, route := range []Route{"", "/nowhere", "locations"} {
		if route.IsValid() {
			t.Errorf("Expected %q to be invalid", route)
		}
	}
}
