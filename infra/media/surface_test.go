package media

import (
	"errors"
	"testing"
	"time"

	"github.com/reelfeed/reelfeed/domain"
)

func TestPlayHonorsAutoplayPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy AutoplayPolicy
		muted  bool
		want   error
	}{
		{"muted-only while muted", AutoplayMutedOnly, true, nil},
		{"muted-only while unmuted", AutoplayMutedOnly, false, domain.ErrAutoplayBlocked},
		{"always while unmuted", AutoplayAlways, false, nil},
		{"never", AutoplayNever, true, domain.ErrAutoplayBlocked},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSurface("https://cdn.example.com/v.mp4", tc.policy, 0)
			s.SetMuted(tc.muted)
			err := s.Play()
			if !errors.Is(err, tc.want) && !(err == nil && tc.want == nil) {
				t.Fatalf("Play() = %v, want %v", err, tc.want)
			}
			if tc.want != nil && !s.Paused() {
				t.Fatal("a rejected play must leave the surface paused")
			}
			if tc.want == nil && s.Paused() {
				t.Fatal("an accepted play must start the surface")
			}
		})
	}
}

func TestPlayWithoutSourceFails(t *testing.T) {
	s := NewSurface("https://cdn.example.com/v.mp4", AutoplayAlways, 0)
	s.ClearSource()
	if err := s.Play(); !errors.Is(err, domain.ErrMediaFailed) {
		t.Fatalf("Play() after teardown = %v, want ErrMediaFailed", err)
	}
}

func TestClearSourceReleasesEverything(t *testing.T) {
	s := NewSurface("https://cdn.example.com/v.mp4", AutoplayAlways, 100*time.Millisecond)
	s.BeginLoad()
	if err := s.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}

	s.ClearSource()
	if !s.Paused() {
		t.Error("cleared surface must be paused")
	}
	if s.Loading() {
		t.Error("cleared surface must not keep loading")
	}
	if s.Source() != "" {
		t.Errorf("source = %q after clear", s.Source())
	}
}

func TestBeginLoadReportsConfiguredDelay(t *testing.T) {
	s := NewSurface("https://cdn.example.com/v.mp4", AutoplayMutedOnly, 250*time.Millisecond)
	if d := s.BeginLoad(); d != 250*time.Millisecond {
		t.Fatalf("delay = %v", d)
	}
	if !s.Loading() {
		t.Fatal("BeginLoad must mark the surface loading")
	}
	s.CancelLoad()
	if s.Loading() {
		t.Fatal("CancelLoad must clear the loading flag")
	}
}

func TestParsePolicy(t *testing.T) {
	if ParsePolicy("always") != AutoplayAlways {
		t.Error(`"always" not parsed`)
	}
	if ParsePolicy("never") != AutoplayNever {
		t.Error(`"never" not parsed`)
	}
	if ParsePolicy("") != AutoplayMutedOnly || ParsePolicy("bogus") != AutoplayMutedOnly {
		t.Error("unknown strings must default to muted-only")
	}
}

func TestPreloadLoaderTracksOpenHandles(t *testing.T) {
	l := NewPreloadLoader(AutoplayMutedOnly)

	h1, err := l.Open("https://cdn.example.com/a.mp4")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	h2, err := l.Open("https://cdn.example.com/b.mp4")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if l.ActiveCount() != 2 {
		t.Fatalf("active = %d, want 2", l.ActiveCount())
	}

	h1.Release()
	h1.Release() // second release is a no-op
	if l.ActiveCount() != 1 {
		t.Fatalf("active = %d after release, want 1", l.ActiveCount())
	}
	h2.Release()
	if l.ActiveCount() != 0 {
		t.Fatalf("active = %d after all released, want 0", l.ActiveCount())
	}
}
