package mandel

import (
	"slices"
	"sync"
	"testing"
)

func testDefinition(t *testing.T) SetDefinition {
	t.Helper()
	def, err := NewSetDefinition(Region{MinReal: -2, MaxReal: 1, MinImag: -1, MaxImag: 1}, 64, 2, 50, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	return def
}

func TestCalculatorMatchesSingleThreaded(t *testing.T) {
	def := testDefinition(t)
	want := def.Calc()

	for _, workers := range []int{1, 2, 4, 8} {
		calc := Calculator{Workers: workers}
		got, err := calc.Calc(def)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if got.Def != def {
			t.Errorf("workers=%d: definition changed: %+v", workers, got.Def)
		}
		if !slices.Equal(got.Data, want.Data) {
			t.Errorf("workers=%d: parallel result differs from single-threaded calculation", workers)
		}
	}
}

func TestCalculatorStripFactor(t *testing.T) {
	def := testDefinition(t)
	want := def.Calc()

	// an explicit factor changes the strip layout but never the result
	for _, factor := range []int{1, 3, 10} {
		calc := Calculator{Workers: 2, StripFactor: factor}
		got, err := calc.Calc(def)
		if err != nil {
			t.Fatalf("factor=%d: %v", factor, err)
		}
		if !slices.Equal(got.Data, want.Data) {
			t.Errorf("factor=%d: result differs from single-threaded calculation", factor)
		}
	}
}

func TestCalculatorStripHook(t *testing.T) {
	def := testDefinition(t)

	var m sync.Mutex
	var calls []int
	total := -1

	calc := Calculator{
		Workers:     3,
		StripFactor: 4,
		OnStripDone: func(done, tot int) {
			m.Lock()
			defer m.Unlock()
			calls = append(calls, done)
			total = tot
		},
	}
	if _, err := calc.Calc(def); err != nil {
		t.Fatal(err)
	}

	if total != 12 {
		t.Errorf("hook reported %d total strips, want 12", total)
	}
	if len(calls) != 12 {
		t.Fatalf("hook called %d times, want 12", len(calls))
	}
	slices.Sort(calls)
	for i, done := range calls {
		if done != i+1 {
			t.Fatalf("done values are not 1..12: %v", calls)
		}
	}
}

func TestCalculatorRejectsInvalidWorkerCount(t *testing.T) {
	def := testDefinition(t)
	for _, workers := range []int{0, -1} {
		if _, err := (Calculator{Workers: workers}).Calc(def); err == nil {
			t.Errorf("workers=%d: expected an error", workers)
		}
	}
}

func TestCalculatorMoreStripsThanRows(t *testing.T) {
	def, err := NewSetDefinition(Region{MinReal: -2, MaxReal: 1, MinImag: -0.1, MaxImag: 0.1}, 60, 1, 30, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if def.HeightPx >= 4*DefaultStripFactor {
		t.Fatalf("definition too tall for this test: %d rows", def.HeightPx)
	}

	calc := Calculator{Workers: 4} // 40 strips, most of them empty
	got, err := calc.Calc(def)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got.Data, def.Calc().Data) {
		t.Error("result differs from single-threaded calculation")
	}
}
