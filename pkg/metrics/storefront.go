package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Storefront records storefront activity: HTTP traffic, cart and checkout
// actions, form rejections and live sessions.
type Storefront struct {
	requests       *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	cartActions    *prometheus.CounterVec
	checkoutSteps  *prometheus.CounterVec
	formRejections *prometheus.CounterVec
	sessions       prometheus.Gauge
}

// NewStorefront registers the storefront collectors on the provided registerer.
// A nil registerer yields a recorder whose methods are no-ops.
func NewStorefront(reg prometheus.Registerer) *Storefront {
	if reg == nil {
		return &Storefront{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skt",
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route and status.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "skt",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	cartActions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skt",
		Name:      "cart_actions_total",
		Help:      "Cart mutations, by action.",
	}, []string{"action"})
	checkoutSteps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skt",
		Name:      "checkout_steps_total",
		Help:      "Checkout steps reached.",
	}, []string{"step"})
	formRejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skt",
		Name:      "form_rejections_total",
		Help:      "Form submissions rejected by validation, by form.",
	}, []string{"form"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "skt",
		Name:      "sessions_active",
		Help:      "Storefront sessions currently held in memory.",
	})
	reg.MustRegister(requests, latency, cartActions, checkoutSteps, formRejections, sessions)
	return &Storefront{
		requests:       requests,
		latency:        latency,
		cartActions:    cartActions,
		checkoutSteps:  checkoutSteps,
		formRejections: formRejections,
		sessions:       sessions,
	}
}

func (m *Storefront) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Storefront) IncCartAction(action string) {
	if m == nil || m.cartActions == nil {
		return
	}
	m.cartActions.WithLabelValues(normalizeLabel(action)).Inc()
}

func (m *Storefront) IncCheckoutStep(step string) {
	if m == nil || m.checkoutSteps == nil {
		return
	}
	m.checkoutSteps.WithLabelValues(normalizeLabel(step)).Inc()
}

func (m *Storefront) IncFormRejection(form string) {
	if m == nil || m.formRejections == nil {
		return
	}
	m.formRejections.WithLabelValues(normalizeLabel(form)).Inc()
}

func (m *Storefront) SetSessions(n int) {
	if m == nil || m.sessions == nil {
		return
	}
	m.sessions.Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
