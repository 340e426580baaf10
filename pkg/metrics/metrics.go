// Package metrics holds the Prometheus collectors shared by the HTTP layer,
// the database wrapper and the reservation use cases.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса. Все методы безопасны для nil-получателя,
// поэтому компоненты работают и при выключенных метриках.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	reservationsCreated  *prometheus.CounterVec
	reservationsRejected *prometheus.CounterVec
	loginAttempts        *prometheus.CounterVec
	holdsExpired         prometheus.Counter
}

// New регистрирует коллекторы в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует коллекторы в переданном регистре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries.",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state.",
			ConstLabels: labels,
		}, []string{"state"}),
		reservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Reservations accepted by the validator.",
			ConstLabels: labels,
		}, []string{"pricing"}),
		reservationsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_rejected_total",
			Help:        "Reservations rejected by the validator.",
			ConstLabels: labels,
		}, []string{"reason"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "login_attempts_total",
			Help:        "Login attempts by outcome.",
			ConstLabels: labels,
		}, []string{"result"}),
		holdsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_holds_expired_total",
			Help:        "Pending reservations cancelled after the payment hold expired.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.reservationsCreated,
		m.reservationsRejected,
		m.loginAttempts,
		m.holdsExpired,
	)

	return m
}

// ObserveHTTP учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDBQuery учитывает выполненный SQL запрос
func (m *Metrics) ObserveDBQuery(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetPoolStats публикует состояние пула соединений
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.dbConnections.WithLabelValues("wait_count").Set(float64(stats.WaitCount))
}

// RecordReservationCreated учитывает принятое бронирование
func (m *Metrics) RecordReservationCreated(pricing string) {
	if m == nil {
		return
	}
	m.reservationsCreated.WithLabelValues(pricing).Inc()
}

// RecordReservationRejected учитывает отклоненное бронирование
func (m *Metrics) RecordReservationRejected(reason string) {
	if m == nil {
		return
	}
	m.reservationsRejected.WithLabelValues(reason).Inc()
}

// RecordLogin учитывает попытку входа
func (m *Metrics) RecordLogin(result string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(result).Inc()
}

// RecordHoldsExpired учитывает отмененные по таймауту бронирования
func (m *Metrics) RecordHoldsExpired(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.holdsExpired.Add(float64(n))
}
