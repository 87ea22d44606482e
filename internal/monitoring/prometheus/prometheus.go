// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime        *prometheus.HistogramVec
	dependencyAvailable *prometheus.GaugeVec
	commissionOutcomes  *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(m.withService(tags)).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailable == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailable.With(m.withService(tags)).Set(value)

	return nil
}

func (m *Monitor) IncCommissionOutcome(tags map[string]string, value float64) error {
	if m.commissionOutcomes == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.commissionOutcomes.With(m.withService(tags)).Add(value)

	return nil
}

func (m *Monitor) withService(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}
	return labels
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	)

	if existing, ok := m.register(m.responseTime).(*prometheus.HistogramVec); ok {
		m.responseTime = existing
	}
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)

	if existing, ok := m.register(m.dependencyAvailable).(*prometheus.GaugeVec); ok {
		m.dependencyAvailable = existing
	}
}

func (m *Monitor) registerCounters() {
	m.commissionOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commission_generation_outcomes_total",
			Help: "Referrals processed by commission generation, by outcome",
		},
		[]string{"outcome", "service"},
	)

	if existing, ok := m.register(m.commissionOutcomes).(*prometheus.CounterVec); ok {
		m.commissionOutcomes = existing
	}
}

// register returns the collector already registered under the same
// descriptor, or c itself.
func (m *Monitor) register(c prometheus.Collector) prometheus.Collector {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector
	}

	m.logger.Errorf("failed to register metric: %v", err)
	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
