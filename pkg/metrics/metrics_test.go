package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStoreMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)
	m.Observe("inventory", "save", 20*time.Millisecond, nil)
	m.Observe("inventory", "save", 5*time.Millisecond, errors.New("boom"))
	m.IncParseFailure("menu")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	ok, err := fetchCounterValue(mfs, "restroboost_store_operations_total", map[string]string{"collection": "inventory", "op": "save", "outcome": OutcomeOK})
	if err != nil || ok != 1 {
		t.Fatalf("expected ok=1, got %f (%v)", ok, err)
	}
	failed, err := fetchCounterValue(mfs, "restroboost_store_operations_total", map[string]string{"collection": "inventory", "op": "save", "outcome": OutcomeError})
	if err != nil || failed != 1 {
		t.Fatalf("expected error=1, got %f (%v)", failed, err)
	}
	parse, err := fetchCounterValue(mfs, "restroboost_store_parse_failures_total", map[string]string{"collection": "menu"})
	if err != nil || parse != 1 {
		t.Fatalf("expected parse failures=1, got %f (%v)", parse, err)
	}

	sum, err := fetchHistogramSum(mfs, "restroboost_store_operation_duration_seconds", map[string]string{"collection": "inventory", "op": "save"})
	if err != nil {
		t.Fatalf("fetch duration: %v", err)
	}
	if sum <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", sum)
	}
}

func TestHTTPMetricsExportsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.Observe("GET", "/api/v1/menu", 200, time.Millisecond)
	m.Observe("GET", "", 404, time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	got, err := fetchCounterValue(mfs, "restroboost_http_requests_total", map[string]string{"method": "GET", "route": "/api/v1/menu", "status": "200"})
	if err != nil || got != 1 {
		t.Fatalf("expected 1 request, got %f (%v)", got, err)
	}
	got, err = fetchCounterValue(mfs, "restroboost_http_requests_total", map[string]string{"route": "unknown", "status": "404"})
	if err != nil || got != 1 {
		t.Fatalf("expected unknown route to be counted, got %f (%v)", got, err)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	store := NewStoreMetrics(nil)
	store.Observe("orders", "load", time.Millisecond, nil)
	store.IncParseFailure("orders")

	var nilStore *StoreMetrics
	nilStore.Observe("orders", "load", time.Millisecond, nil)

	var nilHTTP *HTTPMetrics
	nilHTTP.Observe("GET", "/", 200, time.Millisecond)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	found := 0
	for _, pair := range pairs {
		if v, ok := want[pair.GetName()]; ok {
			if v != pair.GetValue() {
				return false
			}
			found++
		}
	}
	return found == len(want)
}
