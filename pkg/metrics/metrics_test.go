package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsEnabled(t *testing.T) {
	if !IsEnabled() {
		t.Error("Expected metrics to be enabled by default")
	}

	Disable()
	if IsEnabled() {
		t.Error("Expected metrics to be disabled after Disable()")
	}

	Enable()
	if !IsEnabled() {
		t.Error("Expected metrics to be enabled after Enable()")
	}
}

func TestRecordSplit(t *testing.T) {
	Enable()
	OperationsTotal.Reset()
	ShareCount.Reset()

	RecordSplit(61, 3, 7)

	count := testutil.CollectAndCount(OperationsTotal)
	if count != 1 {
		t.Errorf("Expected 1 operation recorded, got %d", count)
	}

	histCount := testutil.CollectAndCount(ShareCount)
	if histCount != 1 {
		t.Errorf("Expected 1 histogram sample, got %d", histCount)
	}

	RecordSplit(89, 2, 5)
	count = testutil.CollectAndCount(OperationsTotal)
	if count != 2 {
		t.Errorf("Expected 2 operations recorded, got %d", count)
	}
}

func TestRecordSplitWhenDisabled(t *testing.T) {
	Disable()
	defer Enable()

	OperationsTotal.Reset()
	RecordSplit(61, 3, 7)

	count := testutil.CollectAndCount(OperationsTotal)
	if count != 0 {
		t.Errorf("Expected 0 operations when disabled, got %d", count)
	}
}

func TestRecordCombine(t *testing.T) {
	Enable()
	OperationsTotal.Reset()
	ShareCount.Reset()

	RecordCombine(61, 3)

	count := testutil.CollectAndCount(OperationsTotal)
	if count != 1 {
		t.Errorf("Expected 1 operation recorded, got %d", count)
	}

	histCount := testutil.CollectAndCount(ShareCount)
	if histCount != 1 {
		t.Errorf("Expected 1 histogram sample, got %d", histCount)
	}
}

func TestRecordError(t *testing.T) {
	Enable()
	ErrorsTotal.Reset()

	RecordError(OpSplit)
	count := testutil.CollectAndCount(ErrorsTotal)
	if count != 1 {
		t.Errorf("Expected 1 error recorded, got %d", count)
	}

	RecordError(OpCombine)
	count = testutil.CollectAndCount(ErrorsTotal)
	if count != 2 {
		t.Errorf("Expected 2 errors recorded, got %d", count)
	}
}

func TestRecordErrorWhenDisabled(t *testing.T) {
	Disable()
	defer Enable()

	ErrorsTotal.Reset()
	RecordError(OpSplit)

	count := testutil.CollectAndCount(ErrorsTotal)
	if count != 0 {
		t.Errorf("Expected 0 errors when disabled, got %d", count)
	}
}

func TestMetricsNamespace(t *testing.T) {
	if Namespace != "sharing" {
		t.Errorf("Expected namespace 'sharing', got '%s'", Namespace)
	}
}

func TestConcurrentMetricUpdates(t *testing.T) {
	Enable()
	OperationsTotal.Reset()

	done := make(chan bool)
	operations := 100

	for i := 0; i < operations; i++ {
		go func() {
			RecordSplit(61, 3, 7)
			done <- true
		}()
	}

	for i := 0; i < operations; i++ {
		<-done
	}

	count := testutil.CollectAndCount(OperationsTotal)
	if count == 0 {
		t.Error("Expected operations to be recorded concurrently")
	}
}

func BenchmarkRecordSplit(b *testing.B) {
	Enable()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		RecordSplit(61, 3, 7)
	}
}

func BenchmarkRecordCombine(b *testing.B) {
	Enable()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		RecordCombine(61, 3)
	}
}
