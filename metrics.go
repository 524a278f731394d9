package websms

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFault    = "fault"
)

var (
	sendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "websms_client",
			Name:      "sends_total",
			Help:      "Send attempts by outcome (accepted, rejected, fault).",
		},
		[]string{"outcome"},
	)

	sendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "websms_client",
			Name:      "send_duration_seconds",
			Help:      "Wall time of completed gateway exchanges.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
