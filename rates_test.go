package cgt

import (
	"errors"
	"testing"
	"time"

	"github.com/ohehir/cgt/date"
)

func TestRateCache_resolvesOncePerDate(t *testing.T) {
	source := &fakeRater{rates: map[string]float64{"2023-03-01": 1.10}}
	cache := NewRateCache(source)
	on := date.New(2023, time.March, 1)

	first, err := cache.Rate(on)
	if err != nil {
		t.Fatalf("Rate() error = %v", err)
	}
	second, err := cache.Rate(on)
	if err != nil {
		t.Fatalf("Rate() error = %v", err)
	}
	if first != 1.10 || second != first {
		t.Errorf("Rate() = %v then %v, want 1.10 both times", first, second)
	}
	if source.calls != 1 {
		t.Errorf("source resolved %d times, want exactly 1", source.calls)
	}
}

func TestRateCache_distinctDatesResolveSeparately(t *testing.T) {
	source := &fakeRater{rates: map[string]float64{"2023-03-01": 1.10, "2023-03-02": 1.20}}
	cache := NewRateCache(source)

	a, _ := cache.Rate(date.New(2023, time.March, 1))
	b, _ := cache.Rate(date.New(2023, time.March, 2))
	if a != 1.10 || b != 1.20 {
		t.Errorf("Rate() = %v, %v, want 1.10, 1.20", a, b)
	}
	if source.calls != 2 {
		t.Errorf("source resolved %d times, want 2", source.calls)
	}
}

// flakyRater fails on its first resolution and succeeds afterwards.
type flakyRater struct{ calls int }

func (r *flakyRater) Rate(on date.Date) (float64, error) {
	r.calls++
	if r.calls == 1 {
		return 0, &RateUnavailableError{Date: on, Err: errNoRate}
	}
	return 1.05, nil
}

func TestRateCache_failuresAreNotCached(t *testing.T) {
	source := &flakyRater{}
	cache := NewRateCache(source)
	on := date.New(2023, time.March, 1)

	if _, err := cache.Rate(on); err == nil {
		t.Fatal("Rate() expected error on first resolution, got nil")
	}
	rate, err := cache.Rate(on)
	if err != nil {
		t.Fatalf("Rate() error = %v, want retry against the source after a failure", err)
	}
	if rate != 1.05 {
		t.Errorf("Rate() = %v, want 1.05", rate)
	}
}

func TestRateCache_rejectsNonPositiveRates(t *testing.T) {
	for _, bad := range []float64{0, -1.1} {
		source := &fakeRater{rates: map[string]float64{"2023-03-01": bad}}
		cache := NewRateCache(source)
		_, err := cache.Rate(date.New(2023, time.March, 1))
		var rue *RateUnavailableError
		if !errors.As(err, &rue) {
			t.Errorf("Rate() with source rate %v: error = %v, want RateUnavailableError", bad, err)
		}
	}
}
