// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// WriteText writes every metric family gathered from g whose name starts
// with prefix in the Prometheus text exposition format. An empty prefix
// writes everything.
func WriteText(w io.Writer, g prometheus.Gatherer, prefix string) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range filterFamilies(families, prefix) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteDefault writes this package's metrics from the default registry.
func WriteDefault(w io.Writer) error {
	return WriteText(w, prometheus.DefaultGatherer, Namespace+"_")
}

func filterFamilies(families []*dto.MetricFamily, prefix string) []*dto.MetricFamily {
	if prefix == "" {
		return families
	}
	out := families[:0:0]
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), prefix) {
			out = append(out, mf)
		}
	}
	return out
}
